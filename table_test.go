package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"maps"
	"testing"
)

func TestCodeTableWriteToLayout(t *testing.T) {
	codes := CodeTable{'b': "10", 'A': "0"}
	var buf bytes.Buffer
	n, err := codes.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := []byte{
		2, 0, 0, 0, // count
		'A', 0, 0, 0, 1, 0, '0', // symbols in ascending order
		'b', 0, 0, 0, 2, 0, '1', '0',
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("blob=% x\nwant % x", buf.Bytes(), want)
	}
	if n != int64(len(want)) {
		t.Fatalf("n=%d want %d", n, len(want))
	}
}

func TestCodeTableRoundtrip(t *testing.T) {
	codes := mustTree(t, "Der Zug nach Köln fährt um 12:30 ab.").Codes()
	var buf bytes.Buffer
	if _, err := codes.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got CodeTable
	if _, err := got.ReadFrom(&buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !maps.Equal(got, codes) {
		t.Fatalf("roundtrip mismatch: %v != %v", got, codes)
	}
}

func TestCodeTableMarshalBinaryStable(t *testing.T) {
	codes := mustTree(t, "stable serialization of code tables").Codes()
	first, err := codes.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for range 10 {
		again, _ := codes.MarshalBinary()
		if !bytes.Equal(first, again) {
			t.Fatalf("serialization depends on map order")
		}
	}
}

func TestCodeTableUnmarshalErrors(t *testing.T) {
	valid, err := CodeTable{'a': "0", 'b': "1"}.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	negative := make([]byte, 4)
	binary.LittleEndian.PutUint32(negative, 0xFFFFFFFF)
	huge := make([]byte, 8)
	binary.LittleEndian.PutUint32(huge, 1<<30)
	dup := []byte{
		2, 0, 0, 0,
		'a', 0, 0, 0, 1, 0, '0',
		'a', 0, 0, 0, 1, 0, '1',
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short_count", []byte{1, 0}},
		{"truncated_entry", valid[:6]},
		{"truncated_digits", valid[:len(valid)-1]},
		{"trailing", append(bytes.Clone(valid), 0)},
		{"negative_count", negative},
		{"count_exceeds_data", huge},
		{"duplicate_symbol", dup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CodeTable
			if err := c.UnmarshalBinary(tt.data); !errors.Is(err, ErrCorruptData) {
				t.Fatalf("want ErrCorruptData, got %v", err)
			}
		})
	}
}

func TestCodeTableWriteToCodeTooLong(t *testing.T) {
	codes := CodeTable{'a': string(bytes.Repeat([]byte{'0'}, maxCodeDigits+1))}
	if _, err := codes.MarshalBinary(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}
