// Package testutil provides shared fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteVocabFile writes tokens in the one-token-per-line vocabulary format
// to a file under tb's temp dir and returns its path. The file is removed
// automatically when the test finishes.
func WriteVocabFile(tb testing.TB, tokens []string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte(strings.Join(tokens, "\n")), 0o644); err != nil {
		tb.Fatalf("write vocab fixture: %v", err)
	}

	return path
}
