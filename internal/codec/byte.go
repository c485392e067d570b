package codec

import "fmt"

// ByteCodec maps each raw byte of UTF-8 text to an id in [0, 256). The zero
// value is ready to use.
type ByteCodec struct{}

// Encode returns one id per byte of text.
func (ByteCodec) Encode(text string) ([]int, error) {
	ids := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		ids[i] = int(text[i])
	}
	return ids, nil
}

// Decode reassembles the bytes named by ids.
func (ByteCodec) Decode(ids []int) (string, error) {
	b := make([]byte, len(ids))
	for i, id := range ids {
		if id < 0 || id > 255 {
			return "", fmt.Errorf("%w: %d not in [0, 256)", ErrInvalidID, id)
		}
		b[i] = byte(id)
	}
	return string(b), nil
}

// VocabSize returns 256, one id per possible byte value.
func (ByteCodec) VocabSize() int { return 1 << 8 }
