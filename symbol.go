package huffman

import (
	"fmt"
	"maps"
	"slices"
)

// Code digits. A code is stored as a string of these two characters, one
// per bit.
const (
	digitZero = '0'
	digitOne  = '1'

	chunkBits = 64 // widest run handed to bitio in a single WriteBits call
)

// CodeTable maps every symbol of a message to its Huffman code. A table
// produced by Encode is prefix-free and every code has at least one digit.
// Tables read from the wire are validated when they are used to decode.
type CodeTable map[rune]string

// Symbols returns the symbols of the table in ascending order.
func (c CodeTable) Symbols() []rune {
	return slices.Sorted(maps.Keys(c))
}

// chunk is a run of up to 64 code bits, right-aligned in bits.
type chunk struct {
	bits uint64
	n    uint8
}

// bitCode is a code split into MSB-first chunks ready for bitio.WriteBits.
// Codes longer than 64 digits only occur for extremely skewed inputs but are
// still handled by emitting several chunks.
type bitCode []chunk

// parseCode converts a digit string into its packed form.
func parseCode(code string) (bitCode, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidInput)
	}
	out := make(bitCode, 0, (len(code)+chunkBits-1)/chunkBits)
	var cur chunk
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case digitZero:
			cur.bits <<= 1
		case digitOne:
			cur.bits = cur.bits<<1 | 1
		default:
			return nil, fmt.Errorf("%w: code %q contains non-binary digit %q", ErrInvalidInput, code, code[i])
		}
		cur.n++
		if cur.n == chunkBits {
			out = append(out, cur)
			cur = chunk{}
		}
	}
	if cur.n > 0 {
		out = append(out, cur)
	}
	return out, nil
}

// digitBit maps a code digit to the trie branch it selects.
func digitBit(d byte) (int, bool) {
	switch d {
	case digitZero:
		return 0, true
	case digitOne:
		return 1, true
	}
	return 0, false
}
