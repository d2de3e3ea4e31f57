/*
 * Copyright 2025 Sproutbook Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/sproutbook/sproutbook/logging"

var appLogger = logging.Logger(logging.SourceApp)
var requestStdLogger = logging.StdLogger(logging.SourceWebRequest)
