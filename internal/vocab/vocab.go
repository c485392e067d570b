// Package vocab provides the ordered token vocabulary backing the token
// codec, including the one-token-per-line file format.
package vocab

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Vocabulary is a fixed, ordered, index-addressed list of tokens. The index
// of a token equals its position in the source ordering. It is immutable
// after construction and safe for concurrent use.
//
// Duplicate entries keep their positions for index-to-token lookups, but the
// first occurrence's index is canonical for token-to-index lookups.
type Vocabulary struct {
	tokens  []string
	indexOf map[string]int
}

// New builds a Vocabulary from an ordered token list. Entries are trimmed of
// surrounding whitespace; blank entries are skipped.
func New(tokens []string) *Vocabulary {
	v := &Vocabulary{indexOf: make(map[string]int, len(tokens))}

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		// Insert-if-absent keeps the first occurrence canonical, so
		// encoding a duplicate token always yields one stable index.
		if _, ok := v.indexOf[tok]; !ok {
			v.indexOf[tok] = len(v.tokens)
		}
		v.tokens = append(v.tokens, tok)
	}

	return v
}

// Load reads a vocabulary file: UTF-8 text, one token per line, in index
// order, no header. Lines are trimmed of surrounding whitespace and blank
// lines are skipped.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	var tokens []string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary file %q: %w", path, err)
	}

	v := New(tokens)
	slog.Debug("loaded vocabulary", "path", path, "tokens", v.Len())

	return v, nil
}

// Save writes the vocabulary to path in the same one-token-per-line format
// Load reads, preserving index order.
func (v *Vocabulary) Save(path string) error {
	data := strings.Join(v.tokens, "\n")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write vocabulary file: %w", err)
	}
	return nil
}

// Len returns the number of vocabulary entries.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Index returns the canonical index of tok and whether it is present.
func (v *Vocabulary) Index(tok string) (int, bool) {
	i, ok := v.indexOf[tok]
	return i, ok
}

// Token returns the token stored at index i.
func (v *Vocabulary) Token(i int) (string, error) {
	if i < 0 || i >= len(v.tokens) {
		return "", fmt.Errorf("vocabulary index %d out of range [0, %d)", i, len(v.tokens))
	}
	return v.tokens[i], nil
}

// Tokens returns a copy of the vocabulary in index order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}
