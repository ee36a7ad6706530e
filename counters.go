package huffman

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

// Frequencies maps each symbol of a text to the number of times it occurs.
// A table is built for a single Encode call and discarded afterwards.
type Frequencies map[rune]uint64

// CountSymbols counts the runes of text in one pass. Text must be valid
// UTF-8: an invalid byte cannot survive the rune round-trip, so it is
// rejected with ErrInvalidInput rather than silently replaced.
func CountSymbols(text string) (Frequencies, error) {
	freqs := make(Frequencies)
	for i, r := range text {
		if r == utf8.RuneError && !isLiteralRuneError(text[i:]) {
			return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidInput, i)
		}
		freqs[r]++
	}
	return freqs, nil
}

// Total returns the number of counted symbols.
func (f Frequencies) Total() uint64 {
	var total uint64
	for _, count := range f {
		total += count
	}
	return total
}

// symbols returns the distinct symbols in ascending order.
func (f Frequencies) symbols() []rune {
	return slices.Sorted(maps.Keys(f))
}

// isLiteralRuneError reports whether s starts with an encoded U+FFFD rather
// than an invalid byte. A literal U+FFFD is three bytes wide; a decoding
// failure is one.
func isLiteralRuneError(s string) bool {
	_, size := utf8.DecodeRuneInString(s)
	return size > 1
}
