package huffman

import (
	"errors"
	"slices"
	"testing"
)

func TestCountSymbols(t *testing.T) {
	freqs, err := CountSymbols("abracadabra")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	want := map[rune]uint64{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	if len(freqs) != len(want) {
		t.Fatalf("distinct=%d want %d", len(freqs), len(want))
	}
	for r, n := range want {
		if freqs[r] != n {
			t.Fatalf("freq[%q]=%d want %d", r, freqs[r], n)
		}
	}
	if freqs.Total() != 11 {
		t.Fatalf("total=%d want 11", freqs.Total())
	}
	if got := freqs.symbols(); !slices.Equal(got, []rune{'a', 'b', 'c', 'd', 'r'}) {
		t.Fatalf("symbols not sorted: %q", got)
	}
}

func TestCountSymbolsMultibyte(t *testing.T) {
	freqs, err := CountSymbols("héllo wörld �")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if freqs['é'] != 1 || freqs['ö'] != 1 || freqs['l'] != 3 || freqs['�'] != 1 {
		t.Fatalf("unexpected counts: %v", freqs)
	}
}

func TestCountSymbolsInvalidUTF8(t *testing.T) {
	_, err := CountSymbols("ok\xffnot")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestCountSymbolsEmpty(t *testing.T) {
	freqs, err := CountSymbols("")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if len(freqs) != 0 || freqs.Total() != 0 {
		t.Fatalf("empty text produced %v", freqs)
	}
}
