// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flamego/flamego"
)

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env        string
		production bool
		wantErr    bool
	}{
		{"", false, false},
		{"development", false, false},
		{"dev", false, false},
		{"DEV", false, false},
		{"production", true, false},
		{"prod", true, false},
		{" Production ", true, false},
		{"staging", false, true},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv(runtimeEnvVar, tt.env)

			production, err := isProduction()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.env)
				}
				return
			}
			if err != nil {
				t.Fatalf("isProduction failed: %v", err)
			}
			if production != tt.production {
				t.Errorf("expected production=%v for %q, got %v", tt.production, tt.env, production)
			}
		})
	}
}

func TestCSRFSecretRequiredInProduction(t *testing.T) {
	t.Setenv("CSRF_SECRET", "")

	if _, err := csrfSecret(true); err == nil {
		t.Fatalf("expected error when CSRF_SECRET is unset in production")
	}

	secret, err := csrfSecret(false)
	if err != nil {
		t.Fatalf("csrfSecret failed in development: %v", err)
	}
	if secret == "" {
		t.Fatalf("expected development fallback secret")
	}

	t.Setenv("CSRF_SECRET", "super-secret")
	secret, err = csrfSecret(true)
	if err != nil {
		t.Fatalf("csrfSecret failed with CSRF_SECRET set: %v", err)
	}
	if secret != "super-secret" {
		t.Fatalf("expected secret from environment, got %q", secret)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC)
	if got := formatDate(date); got != "Mar 9, 2025" {
		t.Fatalf("expected %q, got %q", "Mar 9, 2025", got)
	}
	if got := formatDate(&date); got != "Mar 9, 2025" {
		t.Fatalf("expected pointer form to render, got %q", got)
	}
	if got := formatDate((*time.Time)(nil)); got != "" {
		t.Fatalf("expected empty string for nil date, got %q", got)
	}
	if got := formatDate("2025-03-09"); got != "" {
		t.Fatalf("expected empty string for unsupported type, got %q", got)
	}
}

func TestSafeChartHTMLRendersWithoutEscaping(t *testing.T) {
	t.Parallel()

	chart := `<div class="chart"><script>render()</script></div>`

	tpl, err := template.New("chart").Funcs(template.FuncMap{
		"safeChartHTML": safeChartHTML,
	}).Parse(`{{ safeChartHTML .Chart }}`)
	if err != nil {
		t.Fatalf("failed to parse template: %v", err)
	}

	var rendered strings.Builder
	if err := tpl.Execute(&rendered, map[string]string{"Chart": chart}); err != nil {
		t.Fatalf("failed to execute template: %v", err)
	}

	if rendered.String() != chart {
		t.Fatalf("expected chart markup unescaped, got %q", rendered.String())
	}
}

func TestQRImageSrcRendersWithoutTemplateSentinel(t *testing.T) {
	t.Parallel()

	tpl, err := template.New("qr").Funcs(template.FuncMap{
		"qrImageSrc": qrImageSrc,
	}).Parse(`<img src="{{ qrImageSrc .QR }}">`)
	if err != nil {
		t.Fatalf("failed to parse template: %v", err)
	}

	var rendered strings.Builder
	if err := tpl.Execute(&rendered, map[string]string{"QR": "aGVsbG8="}); err != nil {
		t.Fatalf("failed to execute template: %v", err)
	}

	out := rendered.String()
	if strings.Contains(out, "#ZgotmplZ") {
		t.Fatalf("expected rendered html without template sentinel, got %q", out)
	}
	if !strings.Contains(out, `src="data:image/png;base64,aGVsbG8="`) {
		t.Fatalf("expected rendered html to contain data image URL, got %q", out)
	}
}

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}
