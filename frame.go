package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// frameMagic tags version 1 of the frame layout and of the codes blob
// inside it. A frame with any other tag is rejected outright.
const frameMagic = "HUF1"

const (
	magicSize       = len(frameMagic)
	codesLenSize    = 4
	paddingSize     = 1
	frameHeaderSize = magicSize + codesLenSize + paddingSize
)

// Frame is a self-contained compressed message: the code table the sender
// used, the number of padding bits and the packed payload.
type Frame struct {
	Codes   CodeTable
	Padding uint8
	Payload []byte
}

// BuildFrame serializes payload, codes and padding into one blob.
//
// Layout (integers little-endian):
//
//	magic "HUF1" (4) | codesLength int32 (4) | padding (1) | codes blob (codesLength) | payload
//
// The codes blob is described on CodeTable.WriteTo. The payload runs to the
// end of the blob, so no length is stored for it.
func BuildFrame(payload []byte, codes CodeTable, padding uint8) ([]byte, error) {
	return Frame{Codes: codes, Padding: padding, Payload: payload}.MarshalBinary()
}

// ExtractFrame parses a blob produced by BuildFrame. A zero-length blob is
// the empty message: no codes, zero padding, empty payload.
func ExtractFrame(data []byte) (Frame, error) {
	var f Frame
	if err := f.UnmarshalBinary(data); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Text decodes the payload of f.
func (f Frame) Text() (string, error) {
	return Decode(f.Payload, f.Codes, int(f.Padding))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f Frame) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the frame to w. Padding above 7 is rejected with
// ErrInvalidInput since no byte can carry eight filler bits.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	if f.Padding > 7 {
		return 0, fmt.Errorf("%w: padding %d outside [0,7]", ErrInvalidInput, f.Padding)
	}
	codes, err := f.Codes.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if len(codes) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: code table of %d bytes exceeds the length field", ErrInvalidInput, len(codes))
	}

	var (
		n   int64
		hdr [frameHeaderSize]byte
	)
	copy(hdr[:magicSize], frameMagic)
	binary.LittleEndian.PutUint32(hdr[magicSize:], uint32(len(codes)))
	hdr[magicSize+codesLenSize] = f.Padding
	for _, part := range [][]byte{hdr[:], codes, f.Payload} {
		nn, err := w.Write(part)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadFrom replaces f with a frame read from r. The payload extends to the
// end of r, so ReadFrom consumes r entirely.
func (f *Frame) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	n := int64(len(data))
	if err != nil {
		return n, err
	}
	return n, f.UnmarshalBinary(data)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It checks, in
// order, the magic tag, the declared codes length against the bytes left and
// the codes blob itself; every failure is ErrCorruptData. The payload is
// copied out of data.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		*f = Frame{Codes: CodeTable{}, Payload: []byte{}}
		return nil
	}
	if len(data) < frameHeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrCorruptData, len(data), frameHeaderSize)
	}
	if string(data[:magicSize]) != frameMagic {
		return fmt.Errorf("%w: format tag %q, want %q", ErrCorruptData, data[:magicSize], frameMagic)
	}
	codesLen := int64(int32(binary.LittleEndian.Uint32(data[magicSize:])))
	padding := data[magicSize+codesLenSize]
	rest := data[frameHeaderSize:]
	if codesLen < 0 || codesLen > int64(len(rest)) {
		return fmt.Errorf("%w: codes length %d, %d bytes available", ErrCorruptData, codesLen, len(rest))
	}

	var codes CodeTable
	if err := codes.UnmarshalBinary(rest[:codesLen]); err != nil {
		return err
	}
	*f = Frame{
		Codes:   codes,
		Padding: padding,
		Payload: bytes.Clone(rest[codesLen:]),
	}
	return nil
}
