package compare

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestCodecsRoundtrip(t *testing.T) {
	codecs, err := Codecs()
	if err != nil {
		t.Fatalf("codecs: %v", err)
	}
	inputs := []string{
		"a",
		"abracadabra",
		strings.Repeat("the quick brown fox ", 50),
		"naïve café ☕ 日本語",
	}
	for _, c := range codecs {
		for _, in := range inputs {
			t.Run(c.Name(), func(t *testing.T) {
				comp, err := c.Compress([]byte(in))
				if err != nil {
					t.Fatalf("compress: %v", err)
				}
				out, err := c.Decompress(comp)
				if err != nil {
					t.Fatalf("decompress: %v", err)
				}
				if string(out) != in {
					t.Fatalf("got %q want %q", out, in)
				}
			})
		}
	}
}

func TestRun(t *testing.T) {
	data, err := os.ReadFile("../../testdata/sample.txt")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	rep, err := Run(context.Background(), data)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.InputBytes != len(data) {
		t.Fatalf("input bytes = %d, want %d", rep.InputBytes, len(data))
	}
	want := []string{"brotli", "huffman", "hufio", "snappy", "zstd"}
	if len(rep.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(rep.Results), len(want))
	}
	for i, res := range rep.Results {
		if res.Codec != want[i] {
			t.Fatalf("result %d is %q, want %q", i, res.Codec, want[i])
		}
		if res.Error != "" {
			t.Fatalf("%s failed: %s", res.Codec, res.Error)
		}
		if res.Bytes == 0 || res.Ratio <= 0 {
			t.Fatalf("%s: empty measurement %+v", res.Codec, res)
		}
	}
	if _, ok := rep.Best(); !ok {
		t.Fatalf("no best result")
	}
}

func TestRunInvalidUTF8(t *testing.T) {
	rep, err := Run(context.Background(), []byte{'o', 'k', 0xff})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, res := range rep.Results {
		if res.Codec == "huffman" {
			if res.Error == "" {
				t.Fatalf("huffman accepted invalid UTF-8")
			}
			continue
		}
		if res.Error != "" {
			t.Fatalf("%s failed: %s", res.Codec, res.Error)
		}
	}
}

type lossy struct{}

func (lossy) Name() string                          { return "lossy" }
func (lossy) Compress(data []byte) ([]byte, error)   { return data[:len(data)/2], nil }
func (lossy) Decompress(data []byte) ([]byte, error) { return data, nil }

func TestRunCodecsMismatch(t *testing.T) {
	rep, err := RunCodecs(context.Background(), []byte("abcdef"), lossy{}, Snappy{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Results[0].Codec != "lossy" || rep.Results[0].Error != ErrMismatch.Error() {
		t.Fatalf("mismatch not reported: %+v", rep.Results[0])
	}
	best, ok := rep.Best()
	if !ok || best.Codec != "snappy" {
		t.Fatalf("best = %+v, %v", best, ok)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunCodecs(ctx, []byte("x"), Snappy{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
