package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/axiomhq/huffman"
)

func TestCompressDecompressBase64(t *testing.T) {
	const text = "she sells sea shells by the sea shore"
	var packed bytes.Buffer
	if err := run([]string{"compress", "-base64"}, strings.NewReader(text), &packed); err != nil {
		t.Fatalf("compress: %v", err)
	}
	var out bytes.Buffer
	if err := run([]string{"decompress", "-base64"}, &packed, &out); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if out.String() != text {
		t.Fatalf("got %q, want %q", out.String(), text)
	}
}

func TestCompressToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.huf")
	if err := run([]string{"compress", "-out", path}, strings.NewReader("AAAA"), nil); err != nil {
		t.Fatalf("compress: %v", err)
	}
	var out bytes.Buffer
	if err := run([]string{"decompress", "-in", path}, nil, &out); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if out.String() != "AAAA" {
		t.Fatalf("got %q", out.String())
	}
}

func TestCompare(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"compare"}, strings.NewReader(strings.Repeat("banana ", 300)), &out); err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"input 2,100 bytes", "huffman", "zstd", "smallest:"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	if err := run(nil, nil, nil); !errors.Is(err, errUsage) {
		t.Fatalf("no args: %v", err)
	}
	// An unknown command must fail before stdin is touched.
	if err := run([]string{"explode"}, iotest.ErrReader(errors.New("stdin read")), &bytes.Buffer{}); !errors.Is(err, errUsage) {
		t.Fatalf("unknown command: %v", err)
	}
	if err := run([]string{"compress", "-bogus"}, nil, nil); !errors.Is(err, errUsage) {
		t.Fatalf("bad flag: %v", err)
	}
	err := run([]string{"decompress"}, strings.NewReader("XXXX\x00\x00\x00\x00\x00"), &bytes.Buffer{})
	if !errors.Is(err, huffman.ErrCorruptData) {
		t.Fatalf("corrupt frame: %v", err)
	}
}
