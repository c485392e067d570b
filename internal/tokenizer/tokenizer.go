// Package tokenizer splits text into token sequences and joins them back.
// Tokens are maximal homogeneous runs of Unicode word characters (letters,
// digits, underscore) or non-word characters; configured reserved tokens
// survive as single atomic units regardless of their character mix.
package tokenizer

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyReservedToken is returned when New is given an empty string as a
// reserved token.
var ErrEmptyReservedToken = errors.New("reserved token must not be empty")

// Options configures a Tokenizer.
type Options struct {
	// AlphanumOnly keeps only word-character runs; separator runs are
	// dropped entirely and Join uses a single space, which loses the
	// original spacing and punctuation. When false, every run is kept and
	// Join concatenates, reproducing the tokenized input exactly.
	AlphanumOnly bool

	// ReservedTokens are literal strings that are always emitted as single
	// tokens, even when they straddle word/non-word boundaries. When
	// several reserved tokens could match at the same position, the
	// first-listed one wins.
	ReservedTokens []string
}

// Tokenizer splits strings into tokens and joins them back.
// It is immutable after construction and safe for concurrent use.
type Tokenizer struct {
	alphanumOnly bool
	reserved     []string
}

// New constructs a Tokenizer from opts.
func New(opts Options) (*Tokenizer, error) {
	for _, tok := range opts.ReservedTokens {
		if tok == "" {
			return nil, ErrEmptyReservedToken
		}
	}

	return &Tokenizer{
		alphanumOnly: opts.AlphanumOnly,
		reserved:     append([]string(nil), opts.ReservedTokens...),
	}, nil
}

// Tokenize splits s into tokens in left-to-right order. It is total: every
// input has a well-defined result, and the empty string yields no tokens.
func (t *Tokenizer) Tokenize(s string) []string {
	var toks []string

	for _, seg := range t.splitReserved(s) {
		if seg.reserved {
			toks = append(toks, seg.text)
			continue
		}
		toks = appendRuns(toks, seg.text, t.alphanumOnly)
	}

	return toks
}

// Join reassembles tokens into a string. With AlphanumOnly unset this is the
// exact inverse of Tokenize; otherwise tokens are joined with single spaces.
func (t *Tokenizer) Join(tokens []string) string {
	if t.alphanumOnly {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens, "")
}

type segment struct {
	text     string
	reserved bool
}

// splitReserved partitions s into plain substrings and exact reserved-token
// matches, scanning left to right. At each position candidates are tried in
// configured order, so an earlier-listed token shadows a longer later one.
func (t *Tokenizer) splitReserved(s string) []segment {
	if len(t.reserved) == 0 {
		return []segment{{text: s}}
	}

	var segs []segment
	start := 0
	i := 0

	for i < len(s) {
		matched := ""
		for _, tok := range t.reserved {
			if strings.HasPrefix(s[i:], tok) {
				matched = tok
				break
			}
		}
		if matched == "" {
			// Byte-wise advance is safe: a valid UTF-8 reserved token
			// never matches starting at a continuation byte.
			i++
			continue
		}

		if i > start {
			segs = append(segs, segment{text: s[start:i]})
		}
		segs = append(segs, segment{text: matched, reserved: true})
		i += len(matched)
		start = i
	}

	if start < len(s) {
		segs = append(segs, segment{text: s[start:]})
	}

	return segs
}

// appendRuns splits s into maximal word/non-word character runs and appends
// them to toks. Non-word runs are dropped when alphanumOnly is set.
func appendRuns(toks []string, s string, alphanumOnly bool) []string {
	start := 0
	inWord := false

	for i, r := range s {
		w := isWordChar(r)
		if i == 0 {
			inWord = w
			continue
		}
		if w != inWord {
			if inWord || !alphanumOnly {
				toks = append(toks, s[start:i])
			}
			start = i
			inWord = w
		}
	}

	if start < len(s) && (inWord || !alphanumOnly) {
		toks = append(toks, s[start:])
	}

	return toks
}

// isWordChar reports whether r is a Unicode word character: a letter, a
// digit, or the underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
