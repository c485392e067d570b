package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteCodec_Encode(t *testing.T) {
	ids, err := ByteCodec{}.Encode("Go!")
	if err != nil {
		t.Fatalf("Encode returned unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{71, 111, 33}, ids); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestByteCodec_MultibyteRunes(t *testing.T) {
	ids, err := ByteCodec{}.Encode("é")
	if err != nil {
		t.Fatalf("Encode returned unexpected error: %v", err)
	}
	// One id per UTF-8 byte, not per rune.
	if diff := cmp.Diff([]int{0xC3, 0xA9}, ids); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestByteCodec_RoundTrip(t *testing.T) {
	c := ByteCodec{}

	for _, s := range []string{"", "plain ascii", "héllo wörld", "emoji 😀", "\x00\x01\xff"} {
		ids, err := c.Encode(s)
		if err != nil {
			t.Fatalf("Encode(%q) returned unexpected error: %v", s, err)
		}

		got, err := c.Decode(ids)
		if err != nil {
			t.Fatalf("Decode returned unexpected error: %v", err)
		}
		if got != s {
			t.Errorf("Decode(Encode(%q)) = %q; want the input back", s, got)
		}
	}
}

func TestByteCodec_DecodeInvalidID(t *testing.T) {
	for _, id := range []int{-1, 256, 1000} {
		_, err := ByteCodec{}.Decode([]int{id})
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("Decode([%d]) returned %v; want ErrInvalidID", id, err)
		}
	}
}

func TestByteCodec_VocabSize(t *testing.T) {
	if got := (ByteCodec{}).VocabSize(); got != 256 {
		t.Errorf("VocabSize = %d; want 256", got)
	}
}
