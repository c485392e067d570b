package main

import (
	"strings"
	"testing"

	"github.com/example/go-textcodec/internal/testutil"
)

func TestVocabCommand_ReportsSizes(t *testing.T) {
	vocabPath := testutil.WriteVocabFile(t, []string{"cat", "dog", "fish"})

	out, err := runCommand(t, "", "vocab", "--paths-vocab-path", vocabPath)
	if err != nil {
		t.Fatalf("vocab returned unexpected error: %v", err)
	}

	for _, want := range []string{"tokens: 3", "oov buckets: 1", "vocab size: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("vocab output %q missing %q", out, want)
		}
	}
}

func TestVocabCommand_List(t *testing.T) {
	vocabPath := testutil.WriteVocabFile(t, []string{"cat", "dog"})

	out, err := runCommand(t, "", "vocab", "--list", "--paths-vocab-path", vocabPath)
	if err != nil {
		t.Fatalf("vocab returned unexpected error: %v", err)
	}

	for _, want := range []string{"0\tcat\n", "1\tdog\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("vocab output %q missing %q", out, want)
		}
	}
}

func TestVocabCommand_MissingFile(t *testing.T) {
	if _, err := runCommand(t, "", "vocab", "--paths-vocab-path", "does/not/exist.txt"); err == nil {
		t.Fatal("vocab with missing file succeeded; want error")
	}
}
