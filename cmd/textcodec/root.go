package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-textcodec/internal/codec"
	"github.com/example/go-textcodec/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
	cfgLoaded bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "textcodec",
		Short: "Convert text to token id sequences and back",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			cfgLoaded = true
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newVocabCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if !cfgLoaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// newCodecFromConfig builds the configured codec backend. backendOverride,
// when non-empty, takes precedence over the configured backend.
func newCodecFromConfig(cfg config.Config, backendOverride string) (codec.TextCodec, error) {
	backend := backendOverride
	if backend == "" {
		backend = cfg.Codec.Backend
	}
	backend, err := config.NormalizeBackend(backend)
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendByte:
		return codec.ByteCodec{}, nil
	case config.BackendToken:
		return codec.NewTokenCodec(codec.Options{
			VocabFile:  cfg.Paths.VocabPath,
			OOVBuckets: cfg.Codec.OOVBuckets,
			OOVToken:   cfg.Codec.OOVToken,
			Hash:       cfg.Codec.Hash,
		})
	default:
		return nil, fmt.Errorf("unsupported codec backend %q", backend)
	}
}

func readInputText(text string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimRight(string(b), "\n")
	if input == "" {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return input, nil
}
