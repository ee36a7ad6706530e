package huffman

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// Pack concatenates the code of every rune of text, in input order, into one
// bit stream and packs it into bytes most-significant bit first. The stream
// is zero-filled up to the next byte boundary; padding is the number of
// filler bits, so len(payload)*8 - padding is the exact number of code bits.
//
// Text must be valid UTF-8 and every rune of it must have a code in codes;
// otherwise Pack fails with ErrInvalidInput.
func Pack(text string, codes CodeTable) (payload []byte, padding uint8, err error) {
	lookup := make(map[rune]bitCode, len(codes))
	for sym, code := range codes {
		bc, err := parseCode(code)
		if err != nil {
			return nil, 0, fmt.Errorf("symbol %q: %w", sym, err)
		}
		lookup[sym] = bc
	}

	var buf bytes.Buffer
	buf.Grow(len(text))
	w := bitio.NewWriter(&buf)
	for i, r := range text {
		if r == utf8.RuneError && !isLiteralRuneError(text[i:]) {
			return nil, 0, fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidInput, i)
		}
		bc, ok := lookup[r]
		if !ok {
			return nil, 0, fmt.Errorf("%w: symbol %q has no code", ErrInvalidInput, r)
		}
		for _, c := range bc {
			w.TryWriteBits(c.bits, c.n)
		}
	}
	padding = w.TryAlign()
	if w.TryError != nil {
		return nil, 0, w.TryError
	}
	return buf.Bytes(), padding, nil
}
