package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths     PathsConfig     `mapstructure:"paths"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Codec     CodecConfig     `mapstructure:"codec"`
	LogLevel  string          `mapstructure:"log_level"`
}

type PathsConfig struct {
	VocabPath string `mapstructure:"vocab_path"`
}

type TokenizerConfig struct {
	AlphanumOnly   bool     `mapstructure:"alphanum_only"`
	ReservedTokens []string `mapstructure:"reserved_tokens"`
}

type CodecConfig struct {
	Backend    string `mapstructure:"backend"`
	OOVBuckets int    `mapstructure:"oov_buckets"`
	OOVToken   string `mapstructure:"oov_token"`
	Hash       string `mapstructure:"hash"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			VocabPath: "vocab.txt",
		},
		Tokenizer: TokenizerConfig{
			AlphanumOnly:   true,
			ReservedTokens: nil,
		},
		Codec: CodecConfig{
			Backend:    BackendToken,
			OOVBuckets: 1,
			OOVToken:   "UNK",
			Hash:       HashMD5,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-vocab-path", defaults.Paths.VocabPath, "Path to vocabulary file (one token per line)")
	fs.Bool("tokenizer-alphanum-only", defaults.Tokenizer.AlphanumOnly, "Keep only alphanumeric runs when tokenizing")
	fs.StringSlice("tokenizer-reserved-tokens", defaults.Tokenizer.ReservedTokens, "Literal tokens never split by the tokenizer (repeatable)")
	fs.String("codec-backend", defaults.Codec.Backend, "Codec backend (token|byte)")
	fs.Int("codec-oov-buckets", defaults.Codec.OOVBuckets, "Number of ids reserved for out-of-vocabulary hash buckets")
	fs.String("codec-oov-token", defaults.Codec.OOVToken, "Marker token returned when decoding an OOV id")
	fs.String("codec-hash", defaults.Codec.Hash, "OOV bucket hash algorithm (md5|sha256)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("TEXTCODEC")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("textcodec")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	backend, err := NormalizeBackend(cfg.Codec.Backend)
	if err != nil {
		return Config{}, err
	}
	cfg.Codec.Backend = backend

	hash, err := NormalizeHash(cfg.Codec.Hash)
	if err != nil {
		return Config{}, err
	}
	cfg.Codec.Hash = hash

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.vocab_path", c.Paths.VocabPath)
	v.SetDefault("tokenizer.alphanum_only", c.Tokenizer.AlphanumOnly)
	v.SetDefault("tokenizer.reserved_tokens", c.Tokenizer.ReservedTokens)
	v.SetDefault("codec.backend", c.Codec.Backend)
	v.SetDefault("codec.oov_buckets", c.Codec.OOVBuckets)
	v.SetDefault("codec.oov_token", c.Codec.OOVToken)
	v.SetDefault("codec.hash", c.Codec.Hash)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("paths.vocab_path", "paths-vocab-path")
	v.RegisterAlias("tokenizer.alphanum_only", "tokenizer-alphanum-only")
	v.RegisterAlias("tokenizer.reserved_tokens", "tokenizer-reserved-tokens")
	v.RegisterAlias("codec.backend", "codec-backend")
	v.RegisterAlias("codec.oov_buckets", "codec-oov-buckets")
	v.RegisterAlias("codec.oov_token", "codec-oov-token")
	v.RegisterAlias("codec.hash", "codec-hash")
	v.RegisterAlias("log_level", "log-level")
}
