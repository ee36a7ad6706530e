package huffman

import "errors"

var (
	// ErrInvalidInput reports arguments that cannot be encoded or decoded:
	// a missing code table, malformed code digits, out-of-range padding or
	// text that is not valid UTF-8.
	ErrInvalidInput = errors.New("huffman: invalid input")

	// ErrCorruptData reports bytes that do not form a valid message: a bad
	// format tag, inconsistent frame lengths, or a bitstream with no matching
	// code under the supplied table.
	ErrCorruptData = errors.New("huffman: corrupt data")
)
