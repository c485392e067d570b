package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/example/go-textcodec/internal/config"
)

// runCommand executes a fresh root command with args and captured stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"tokenize", "encode", "decode", "vocab"}
	for _, name := range want {
		found := false

		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}

		if !found {
			t.Errorf("expected subcommand %q not found in root", name)
		}
	}
}

func TestNewRootCmd_HasPersistentConfigFlag(t *testing.T) {
	root := NewRootCmd()
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config persistent flag to be registered")
	}
}

func TestSetupLogger_DoesNotPanic(_ *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		setupLogger(level)
	}
}

func TestSetupLogger_InvalidLevelFallsBackToInfo(_ *testing.T) {
	// Should not panic on invalid level.
	setupLogger("not-a-level")
}

func TestRequireConfig_FailsWhenNotInitialized(t *testing.T) {
	origCfg, origLoaded := activeCfg, cfgLoaded

	t.Cleanup(func() { activeCfg, cfgLoaded = origCfg, origLoaded })

	activeCfg = config.Config{}
	cfgLoaded = false

	_, err := requireConfig()
	if err == nil {
		t.Fatal("expected error when config is not loaded")
	}
}

// A loaded config is accepted as-is, even when it happens to match the
// zero value field for field.
func TestRequireConfig_SucceedsWhenLoaded(t *testing.T) {
	origCfg, origLoaded := activeCfg, cfgLoaded

	t.Cleanup(func() { activeCfg, cfgLoaded = origCfg, origLoaded })

	activeCfg = config.DefaultConfig()
	cfgLoaded = true

	got, err := requireConfig()
	if err != nil {
		t.Fatalf("requireConfig returned unexpected error: %v", err)
	}

	if got.Codec.Backend != config.BackendToken {
		t.Errorf("unexpected Backend: %q", got.Codec.Backend)
	}
}

func TestReadInputText(t *testing.T) {
	t.Run("flag value wins over stdin", func(t *testing.T) {
		got, err := readInputText("from flag", strings.NewReader("from stdin"))
		if err != nil {
			t.Fatalf("readInputText returned unexpected error: %v", err)
		}
		if got != "from flag" {
			t.Errorf("readInputText = %q; want %q", got, "from flag")
		}
	})

	t.Run("falls back to stdin", func(t *testing.T) {
		got, err := readInputText("", strings.NewReader("piped text\n"))
		if err != nil {
			t.Fatalf("readInputText returned unexpected error: %v", err)
		}
		if got != "piped text" {
			t.Errorf("readInputText = %q; want %q", got, "piped text")
		}
	})

	t.Run("empty everything is an error", func(t *testing.T) {
		if _, err := readInputText("", strings.NewReader("")); err == nil {
			t.Fatal("expected error for empty input")
		}
	})
}
