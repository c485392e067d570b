// Package codec converts between text and integer id sequences.
//
// Two implementations of the TextCodec contract are provided: TokenCodec,
// backed by an ordered vocabulary with deterministic hash buckets for
// unknown tokens, and ByteCodec, which maps raw UTF-8 bytes to ids 0-255.
// All codecs are immutable after construction and safe for concurrent use.
package codec

import "errors"

// TextCodec converts between text and integer ids.
type TextCodec interface {
	// Encode converts text into a sequence of integer ids.
	Encode(text string) ([]int, error)
	// Decode converts ids back into text.
	Decode(ids []int) (string, error)
	// VocabSize returns the size of the id space; valid ids are
	// [0, VocabSize).
	VocabSize() int
}

// ErrConfig is returned when a TokenCodec is constructed from invalid
// options, such as a negative bucket count or an unknown hash algorithm.
var ErrConfig = errors.New("invalid codec configuration")

// ErrVocabSource is returned when a TokenCodec is constructed with both or
// neither of VocabList and VocabFile.
var ErrVocabSource = errors.New("exactly one of VocabList or VocabFile must be provided")

// ErrOutOfVocabulary is returned by encode for a token absent from the
// vocabulary when no OOV buckets are configured.
var ErrOutOfVocabulary = errors.New("out of vocabulary token")

// ErrInvalidID is returned by decode for an id outside [0, VocabSize).
var ErrInvalidID = errors.New("id out of range")
