package huffman

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// trieNode is one vertex of a decode trie. Index 0 is the root, which is
// never anyone's child, so a zero child index means "absent".
type trieNode struct {
	child    [2]int32
	symbol   rune
	terminal bool
}

// trie is a decode trie rebuilt from a code table, held in an arena.
type trie []trieNode

// buildTrie inserts every code of codes digit by digit, creating
// intermediate nodes on demand and marking the last node with the symbol.
// It rejects symbols that are not valid code points, empty codes,
// non-binary digits and tables that are not prefix-free.
func buildTrie(codes CodeTable) (trie, error) {
	t := make(trie, 1, 2*len(codes))
	for _, sym := range codes.Symbols() {
		code := codes[sym]
		if !utf8.ValidRune(sym) {
			return nil, fmt.Errorf("%w: symbol %d is not a valid code point", ErrInvalidInput, sym)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("%w: symbol %q has an empty code", ErrInvalidInput, sym)
		}
		cur := int32(0)
		for i := 0; i < len(code); i++ {
			bit, ok := digitBit(code[i])
			if !ok {
				return nil, fmt.Errorf("%w: code %q for symbol %q contains non-binary digit %q",
					ErrInvalidInput, code, sym, code[i])
			}
			if t[cur].terminal {
				return nil, fmt.Errorf("%w: code %q for symbol %q extends the code of %q",
					ErrInvalidInput, code, sym, t[cur].symbol)
			}
			next := t[cur].child[bit]
			if next == 0 {
				next = int32(len(t))
				t = append(t, trieNode{})
				t[cur].child[bit] = next
			}
			cur = next
		}
		if t[cur].terminal || t[cur].child != [2]int32{} {
			return nil, fmt.Errorf("%w: code %q for symbol %q is a prefix of another code",
				ErrInvalidInput, code, sym)
		}
		t[cur].terminal = true
		t[cur].symbol = sym
	}
	return t, nil
}

// Decode turns payload back into text using codes. padding is the number of
// filler bits at the end of the last byte; they are never read.
//
// An empty payload with zero padding decodes to the empty string. A non-empty payload
// requires a non-empty, prefix-free table of binary codes, otherwise Decode
// fails with ErrInvalidInput. A bit sequence that leaves the trie, or stops
// in the middle of a code, fails with ErrCorruptData. No partial text is
// returned on failure.
func Decode(payload []byte, codes CodeTable, padding int) (string, error) {
	if padding < 0 || padding > 7 {
		return "", fmt.Errorf("%w: padding %d outside [0,7]", ErrInvalidInput, padding)
	}
	if len(payload) == 0 {
		if padding != 0 {
			return "", fmt.Errorf("%w: %d padding bits in an empty payload", ErrInvalidInput, padding)
		}
		return "", nil
	}
	if len(codes) == 0 {
		return "", fmt.Errorf("%w: empty code table for %d payload bytes", ErrInvalidInput, len(payload))
	}
	t, err := buildTrie(codes)
	if err != nil {
		return "", err
	}

	totalBits := len(payload)*8 - padding
	r := bitio.NewReader(bytes.NewReader(payload))
	var sb strings.Builder
	sb.Grow(len(payload))
	cur := int32(0)
	for i := 0; i < totalBits; i++ {
		one, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: bit %d: %v", ErrCorruptData, i, err)
		}
		bit := 0
		if one {
			bit = 1
		}
		next := t[cur].child[bit]
		if next == 0 {
			return "", fmt.Errorf("%w: no code matches the bits ending at bit %d", ErrCorruptData, i)
		}
		if t[next].terminal {
			sb.WriteRune(t[next].symbol)
			cur = 0
			continue
		}
		cur = next
	}
	if cur != 0 {
		return "", fmt.Errorf("%w: bitstream ends inside a code", ErrCorruptData)
	}
	return sb.String(), nil
}
