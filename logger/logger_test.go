package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"path", "/auth/login",
		"password", "hunter22",
		"Cookie", "accessToken=abc",
		"value", "eyJhbGciOiJIUzI1NiJ9.eyJyb2xlIjoiQURNSU4ifQ.sig",
		"dangling",
	})

	assert.Equal(t, []interface{}{
		"path", "/auth/login",
		"password", "[REDACTED]",
		"Cookie", "[REDACTED]",
		"value", "[REDACTED]",
		"dangling",
	}, out)
}

func TestDefaultLogIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		Log.Info("hello", "k", "v")
		Log.With("component", "test").Debug("debug")
	})
}
