package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	countSize      = 4 // int32 entry count
	entrySymbol    = 4 // int32 symbol
	entryCodeLen   = 2 // uint16 code length
	minEntrySize   = entrySymbol + entryCodeLen
	maxCodeDigits  = math.MaxUint16
	readAllocLimit = 1 << 12 // cap on entries preallocated from an untrusted count
)

// WriteTo serializes the table as a codes blob. All integers are
// little-endian:
//
//   - 4 bytes entry count (int32)
//   - per entry, in ascending symbol order:
//     4 bytes symbol (int32), 2 bytes code length (uint16), the code digits
//
// Sorting makes a table serialize to the same bytes on every call.
func (c CodeTable) WriteTo(w io.Writer) (int64, error) {
	if len(c) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d codes exceed the count field", ErrInvalidInput, len(c))
	}
	var (
		n   int64
		hdr [entrySymbol + entryCodeLen]byte
	)
	binary.LittleEndian.PutUint32(hdr[:countSize], uint32(len(c)))
	if nn, err := w.Write(hdr[:countSize]); err != nil {
		return n, err
	} else {
		n += int64(nn)
	}
	for _, sym := range c.Symbols() {
		code := c[sym]
		if len(code) > maxCodeDigits {
			return n, fmt.Errorf("%w: code for symbol %q has %d digits, limit %d",
				ErrInvalidInput, sym, len(code), maxCodeDigits)
		}
		binary.LittleEndian.PutUint32(hdr[:entrySymbol], uint32(sym))
		binary.LittleEndian.PutUint16(hdr[entrySymbol:], uint16(len(code)))
		if nn, err := w.Write(hdr[:]); err != nil {
			return n, err
		} else {
			n += int64(nn)
		}
		if nn, err := io.WriteString(w, code); err != nil {
			return n, err
		} else {
			n += int64(nn)
		}
	}
	return n, nil
}

// ReadFrom replaces the table with one deserialized from r. A short read, a
// negative count or a repeated symbol fails with ErrCorruptData. Code digits
// are not checked here; Decode rejects malformed codes.
func (c *CodeTable) ReadFrom(r io.Reader) (int64, error) {
	var (
		n   int64
		hdr [entrySymbol + entryCodeLen]byte
	)
	if _, err := io.ReadFull(r, hdr[:countSize]); err != nil {
		return n, corrupt("code count", err)
	}
	n += countSize
	count := int32(binary.LittleEndian.Uint32(hdr[:countSize]))
	if count < 0 {
		return n, fmt.Errorf("%w: negative code count %d", ErrCorruptData, count)
	}
	table := make(CodeTable, min(int(count), readAllocLimit))
	for i := range int(count) {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return n, corrupt(fmt.Sprintf("entry %d", i), err)
		}
		n += int64(len(hdr))
		sym := rune(int32(binary.LittleEndian.Uint32(hdr[:entrySymbol])))
		codeLen := int(binary.LittleEndian.Uint16(hdr[entrySymbol:]))
		digits := make([]byte, codeLen)
		if _, err := io.ReadFull(r, digits); err != nil {
			return n, corrupt(fmt.Sprintf("code of entry %d", i), err)
		}
		n += int64(codeLen)
		if _, dup := table[sym]; dup {
			return n, fmt.Errorf("%w: symbol %q appears twice", ErrCorruptData, sym)
		}
		table[sym] = string(digits)
	}
	*c = table
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c CodeTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one codes blob.
func (c *CodeTable) UnmarshalBinary(data []byte) error {
	if len(data) >= countSize {
		count := int64(int32(binary.LittleEndian.Uint32(data)))
		if count*minEntrySize > int64(len(data)-countSize) {
			return fmt.Errorf("%w: %d codes cannot fit in %d bytes", ErrCorruptData, count, len(data))
		}
	}
	r := bytes.NewReader(data)
	if _, err := c.ReadFrom(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes after code table", ErrCorruptData, r.Len())
	}
	return nil
}

// corrupt wraps a read failure. Running out of bytes means the declared
// lengths do not match the data.
func corrupt(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrCorruptData, what)
	}
	return fmt.Errorf("reading %s: %w", what, err)
}
