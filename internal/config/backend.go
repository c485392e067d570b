package config

import (
	"fmt"
	"strings"
)

const (
	BackendToken = "token"
	BackendByte  = "byte"
)

const (
	HashMD5    = "md5"
	HashSHA256 = "sha256"
)

// NormalizeBackend canonicalizes a codec backend name. An empty string
// selects the token backend.
func NormalizeBackend(raw string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(raw))
	if backend == "" {
		backend = BackendToken
	}
	switch backend {
	case BackendToken, BackendByte:
		return backend, nil
	case "vocab":
		return BackendToken, nil
	case "bytes":
		return BackendByte, nil
	default:
		return "", fmt.Errorf("invalid codec backend %q (expected %s|%s)", raw, BackendToken, BackendByte)
	}
}

// NormalizeHash canonicalizes an OOV bucket hash algorithm name. An empty
// string selects md5, keeping existing bucket assignments valid.
func NormalizeHash(raw string) (string, error) {
	hash := strings.ToLower(strings.TrimSpace(raw))
	if hash == "" {
		hash = HashMD5
	}
	switch hash {
	case HashMD5, HashSHA256:
		return hash, nil
	case "sha-256":
		return HashSHA256, nil
	default:
		return "", fmt.Errorf("invalid hash algorithm %q (expected %s|%s)", raw, HashMD5, HashSHA256)
	}
}
