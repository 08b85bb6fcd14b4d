// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"testing"
)

// configKeys are every variable Load reads
var configKeys = []string{
	"BALUNGPISAH_API_URL",
	"NEXT_PUBLIC_API_URL",
	"BALUNGPISAH_TIMEOUT",
	"BALUNGPISAH_ALL_PROXY",
	"BALUNGPISAH_SESSION_FILE",
	"BALUNGPISAH_METRICS_ADDR",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// withCleanEnv unsets every config variable, then sets extra. The original
// values are restored when the test ends.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    withCleanEnv(t, map[string]string{"BALUNGPISAH_TIMEOUT": "5"})
//	}
func withCleanEnv(t *testing.T, extra map[string]string) {
	t.Helper()
	for _, key := range configKeys {
		// t.Setenv registers the restore; Unsetenv then clears the value
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range extra {
		t.Setenv(key, value)
	}
}
