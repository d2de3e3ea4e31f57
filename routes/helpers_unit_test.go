// SPDX-FileCopyrightText: 2025 Sproutbook Authors
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/flamego/session"

	"github.com/sproutbook/sproutbook/growth"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

func TestSetFlashHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(session.Session, string)
		wantTyp FlashType
	}{
		{name: "error", set: SetErrorFlash, wantTyp: FlashError},
		{name: "success", set: SetSuccessFlash, wantTyp: FlashSuccess},
		{name: "warning", set: SetWarningFlash, wantTyp: FlashWarning},
		{name: "info", set: SetInfoFlash, wantTyp: FlashInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			tt.set(s, "hello")

			msg, ok := s.flash.(FlashMessage)
			if !ok {
				t.Fatalf("expected FlashMessage, got %T", s.flash)
			}
			if msg.Type != tt.wantTyp {
				t.Errorf("expected type %q, got %q", tt.wantTyp, msg.Type)
			}
			if msg.Message != "hello" {
				t.Errorf("expected message hello, got %q", msg.Message)
			}
		})
	}
}

func TestParseDateField(t *testing.T) {
	t.Parallel()

	parsed, err := parseDateField("2024-03-15")
	if err != nil {
		t.Fatalf("parseDateField failed: %v", err)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("parseDateField = %v, want %v", parsed, want)
	}

	if _, err := parseDateField(""); !errors.Is(err, errMissingDate) {
		t.Errorf("expected errMissingDate, got %v", err)
	}
	if _, err := parseDateField("  "); !errors.Is(err, errMissingDate) {
		t.Errorf("expected errMissingDate for whitespace, got %v", err)
	}
	if _, err := parseDateField("15/03/2024"); !errors.Is(err, errInvalidDate) {
		t.Errorf("expected errInvalidDate, got %v", err)
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  growth.Metric
		ok    bool
	}{
		{"height", growth.MetricHeight, true},
		{"weight", growth.MetricWeight, true},
		{"head_circumference", growth.MetricHeadCircumference, true},
		{"girth", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := parseMetric(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseMetric(%q) = (%q, %v), want (%q, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseStandardDefaultsToWHO(t *testing.T) {
	t.Parallel()

	if got := parseStandard("singapore"); got != growth.StandardSingapore {
		t.Errorf("parseStandard(singapore) = %q", got)
	}
	if got := parseStandard("who"); got != growth.StandardWHO {
		t.Errorf("parseStandard(who) = %q", got)
	}
	if got := parseStandard(""); got != growth.StandardWHO {
		t.Errorf("parseStandard(empty) = %q, want WHO default", got)
	}
	if got := parseStandard("cdc"); got != growth.StandardWHO {
		t.Errorf("parseStandard(unknown) = %q, want WHO default", got)
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"parent", "guardian", "relative"} {
		if _, ok := parseRole(value); !ok {
			t.Errorf("parseRole(%q) not ok", value)
		}
	}
	if _, ok := parseRole("owner"); ok {
		t.Errorf("expected parseRole(owner) to fail")
	}
}

func TestParseOptionalChildID(t *testing.T) {
	t.Parallel()

	if got := parseOptionalChildID(""); got != nil {
		t.Errorf("expected nil for empty value, got %v", got)
	}
	if got := parseOptionalChildID("not-a-uuid"); got != nil {
		t.Errorf("expected nil for invalid uuid, got %v", got)
	}

	id := "7f9c24e5-2f3a-4b3c-9c1d-8f6a5e4d3c2b"
	got := parseOptionalChildID(id)
	if got == nil || got.String() != id {
		t.Errorf("parseOptionalChildID(%q) = %v", id, got)
	}
}

func TestOptionalFormValue(t *testing.T) {
	t.Parallel()

	if got := optionalFormValue("   "); got != nil {
		t.Errorf("expected nil for whitespace, got %q", *got)
	}
	got := optionalFormValue("  note ")
	if got == nil || *got != "note" {
		t.Errorf("expected trimmed value, got %v", got)
	}
}

func TestGetSessionUserID(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if _, ok := getSessionUserID(s); ok {
		t.Errorf("expected no user id in fresh session")
	}

	s.Set("user_id", "abc")
	userID, ok := getSessionUserID(s)
	if !ok || userID != "abc" {
		t.Errorf("getSessionUserID = (%q, %v)", userID, ok)
	}

	s.Set("user_id", "")
	if _, ok := getSessionUserID(s); ok {
		t.Errorf("expected empty user id to be treated as missing")
	}
}
