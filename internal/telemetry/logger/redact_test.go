// Package logger provides structured logging for DocFold.
package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestRedaction(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		value  string
		redact bool
	}{
		{name: "password key", key: "password", value: "hunter2", redact: true},
		{name: "token key", key: "auth_token", value: "abc-123", redact: true},
		{name: "authorization header", key: "authorization", value: "abc-123", redact: true},
		{name: "nested match", key: "user_password", value: "hunter2", redact: true},
		{name: "plain key", key: "username", value: "alice", redact: false},
		{name: "folder key", key: "folder", value: "todos", redact: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Level: "info", Format: "json", Output: &buf})

			log.Info("event", tc.key, tc.value)
			out := buf.String()

			if tc.redact {
				if strings.Contains(out, tc.value) {
					t.Errorf("sensitive value leaked: %s", out)
				}
				if !strings.Contains(out, redactedValue) {
					t.Errorf("redaction placeholder missing: %s", out)
				}
			} else if !strings.Contains(out, tc.value) {
				t.Errorf("benign value was redacted: %s", out)
			}
		})
	}
}

func TestRedaction_EmptyValueKept(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("event", "token", "")
	if strings.Contains(buf.String(), redactedValue) {
		t.Errorf("empty value should not be redacted: %s", buf.String())
	}
}

func TestIsSensitiveKey(t *testing.T) {
	if !IsSensitiveKey("Password") {
		t.Error("IsSensitiveKey(Password) = false")
	}
	if IsSensitiveKey("document") {
		t.Error("IsSensitiveKey(document) = true")
	}
}
