package compare

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/icza/huffman/hufio"
	"github.com/klauspost/compress/zstd"

	"github.com/axiomhq/huffman"
)

// Codec is a lossless byte compressor.
type Codec interface {
	Name() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Codecs returns the built-in codecs in name order.
func Codecs() ([]Codec, error) {
	z, err := newZstd()
	if err != nil {
		return nil, err
	}
	return []Codec{Brotli{}, Frame{}, Hufio{}, Snappy{}, z}, nil
}

// Frame stores text as a self-describing huffman frame. Input must be
// valid UTF-8.
type Frame struct{}

func (Frame) Name() string { return "huffman" }

func (Frame) Compress(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: not UTF-8", huffman.ErrInvalidInput)
	}
	return huffman.Compress(string(data))
}

func (Frame) Decompress(data []byte) ([]byte, error) {
	text, err := huffman.Decompress(data)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Hufio is the adaptive byte-oriented Huffman stream of icza/huffman.
type Hufio struct{}

func (Hufio) Name() string { return "hufio" }

func (Hufio) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := hufio.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Hufio) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(hufio.NewReader(bytes.NewReader(data)))
}

// Snappy favours speed over ratio.
type Snappy struct{}

func (Snappy) Name() string { return "snappy" }

func (Snappy) Compress(data []byte) ([]byte, error) { return snappy.Encode(nil, data), nil }

func (Snappy) Decompress(data []byte) ([]byte, error) { return snappy.Decode(nil, data) }

// Brotli at the library's default quality.
type Brotli struct{}

func (Brotli) Name() string { return "brotli" }

func (Brotli) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli close: %w", err)
	}
	return buf.Bytes(), nil
}

func (Brotli) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
}

// Zstd wraps a shared encoder and decoder; both are safe for concurrent
// EncodeAll and DecodeAll calls.
type Zstd struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func newZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Zstd{enc: enc, dec: dec}, nil
}

func (*Zstd) Name() string { return "zstd" }

func (z *Zstd) Compress(data []byte) ([]byte, error) {
	return z.enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

func (z *Zstd) Decompress(data []byte) ([]byte, error) { return z.dec.DecodeAll(data, nil) }
