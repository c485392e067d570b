package codec

import (
	"fmt"
	"strings"

	"github.com/example/go-textcodec/internal/tokenizer"
	"github.com/example/go-textcodec/internal/vocab"
)

// DefaultOOVToken is the marker used for decoded OOV ids when Options does
// not name one.
const DefaultOOVToken = "UNK"

// Options configures a TokenCodec. Exactly one of VocabList and VocabFile
// must be set.
type Options struct {
	// VocabList is an ordered in-memory vocabulary.
	VocabList []string

	// VocabFile is the path of a one-token-per-line vocabulary file.
	VocabFile string

	// OOVBuckets is the number of ids reserved past the vocabulary for
	// tokens the vocabulary does not contain. Zero makes unknown tokens an
	// encode error.
	OOVBuckets int

	// OOVToken is returned when decoding any OOV bucket id. Empty selects
	// DefaultOOVToken.
	OOVToken string

	// Hash names the OOV bucket digest algorithm, HashMD5 or HashSHA256.
	// Empty selects HashMD5.
	Hash string
}

// TokenCodec maps tokens to integer ids through an ordered vocabulary.
// In-vocabulary tokens encode to their index; unknown tokens are assigned a
// deterministic hash bucket in [Len, Len+OOVBuckets). Decoding an OOV bucket
// id yields the marker token, losing the original token identity.
type TokenCodec struct {
	vocabulary *vocab.Vocabulary
	oovBuckets int
	oovToken   string
	hash       string
	splitter   *tokenizer.Tokenizer
}

// NewTokenCodec constructs a TokenCodec from opts.
func NewTokenCodec(opts Options) (*TokenCodec, error) {
	if (len(opts.VocabList) == 0) == (opts.VocabFile == "") {
		return nil, ErrVocabSource
	}
	if opts.OOVBuckets < 0 {
		return nil, fmt.Errorf("%w: OOV bucket count must not be negative, got %d", ErrConfig, opts.OOVBuckets)
	}

	var v *vocab.Vocabulary
	if opts.VocabFile != "" {
		loaded, err := vocab.Load(opts.VocabFile)
		if err != nil {
			return nil, err
		}
		v = loaded
	} else {
		v = vocab.New(opts.VocabList)
	}
	if v.Len() == 0 && opts.OOVBuckets == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary with no OOV buckets cannot encode any token", ErrConfig)
	}

	hash := opts.Hash
	if hash == "" {
		hash = HashMD5
	}
	if _, err := bucketHash(hash, "", 1); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfig, err)
	}

	oovToken := opts.OOVToken
	if oovToken == "" {
		oovToken = DefaultOOVToken
	}

	// The text pipeline splits on (and drops) non-word runs before mapping.
	splitter, err := tokenizer.New(tokenizer.Options{AlphanumOnly: true})
	if err != nil {
		return nil, err
	}

	return &TokenCodec{
		vocabulary: v,
		oovBuckets: opts.OOVBuckets,
		oovToken:   oovToken,
		hash:       hash,
		splitter:   splitter,
	}, nil
}

// EncodeToken maps a single token to its id.
func (c *TokenCodec) EncodeToken(token string) (int, error) {
	if id, ok := c.vocabulary.Index(token); ok {
		return id, nil
	}

	switch {
	case c.oovBuckets == 0:
		return 0, fmt.Errorf("%w: %q", ErrOutOfVocabulary, token)
	case c.oovBuckets == 1:
		return c.vocabulary.Len(), nil
	default:
		bucket, err := bucketHash(c.hash, token, c.oovBuckets)
		if err != nil {
			return 0, err
		}
		return c.vocabulary.Len() + bucket, nil
	}
}

// EncodeTokens maps each token in toks to its id.
func (c *TokenCodec) EncodeTokens(toks []string) ([]int, error) {
	ids := make([]int, 0, len(toks))
	for _, tok := range toks {
		id, err := c.EncodeToken(tok)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Encode tokenizes text into alphanumeric runs and maps each run to an id.
func (c *TokenCodec) Encode(text string) ([]int, error) {
	return c.EncodeTokens(c.splitter.Tokenize(text))
}

// DecodeID maps a single id back to a token. Ids in the OOV range decode to
// the configured marker token unconditionally.
func (c *TokenCodec) DecodeID(id int) (string, error) {
	if id < 0 || id >= c.VocabSize() {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidID, id, c.VocabSize())
	}
	if id < c.vocabulary.Len() {
		return c.vocabulary.Token(id)
	}
	return c.oovToken, nil
}

// Decode maps each id back to a token and joins the tokens with single
// spaces. Original spacing and punctuation are not recoverable.
func (c *TokenCodec) Decode(ids []int) (string, error) {
	toks := make([]string, 0, len(ids))
	for _, id := range ids {
		tok, err := c.DecodeID(id)
		if err != nil {
			return "", err
		}
		toks = append(toks, tok)
	}
	return strings.Join(toks, " "), nil
}

// VocabSize returns the size of the id space: vocabulary entries plus OOV
// buckets. It is constant for the codec's lifetime.
func (c *TokenCodec) VocabSize() int {
	return c.vocabulary.Len() + c.oovBuckets
}

// Tokens returns the vocabulary as an ordered snapshot.
func (c *TokenCodec) Tokens() []string {
	return c.vocabulary.Tokens()
}
