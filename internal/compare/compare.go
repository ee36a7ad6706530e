// Package compare measures the huffman frame against general-purpose
// compressors on the same input.
package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
)

var log = logging.MustGetLogger("huffman/compare")

// ErrMismatch is reported when a codec does not reproduce its input.
var ErrMismatch = errors.New("compare: round-trip mismatch")

// Result is the outcome of one codec.
type Result struct {
	Codec    string        `json:"codec"`
	Bytes    int           `json:"bytes"`
	Ratio    float64       `json:"ratio"`
	Duration time.Duration `json:"durationNs"`
	Error    string        `json:"error,omitempty"`
}

// Report lists one Result per codec, sorted by codec name.
type Report struct {
	InputBytes int      `json:"inputBytes"`
	Results    []Result `json:"results"`
}

// Best returns the smallest successful result.
func (r Report) Best() (Result, bool) {
	var best Result
	found := false
	for _, res := range r.Results {
		if res.Error != "" {
			continue
		}
		if !found || res.Bytes < best.Bytes {
			best, found = res, true
		}
	}
	return best, found
}

// Run compresses data with the built-in codecs.
func Run(ctx context.Context, data []byte) (Report, error) {
	codecs, err := Codecs()
	if err != nil {
		return Report{}, err
	}
	return RunCodecs(ctx, data, codecs...)
}

// RunCodecs compresses data with every codec concurrently and checks that
// each one decompresses back to data. A failing codec is recorded in its
// Result; only cancellation of ctx fails the whole run.
func RunCodecs(ctx context.Context, data []byte, codecs ...Codec) (Report, error) {
	results := make([]Result, len(codecs))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range codecs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = measure(c, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	slices.SortFunc(results, func(a, b Result) int { return strings.Compare(a.Codec, b.Codec) })
	return Report{InputBytes: len(data), Results: results}, nil
}

func measure(c Codec, data []byte) Result {
	res := Result{Codec: c.Name()}
	start := time.Now()
	err := roundTrip(c, data, &res)
	res.Duration = time.Since(start)
	if err != nil {
		log.Warningf("%s: %v", res.Codec, err)
		res.Error = err.Error()
		return res
	}
	if len(data) > 0 {
		res.Ratio = float64(res.Bytes) / float64(len(data))
	}
	log.Debugf("%s: %d -> %d bytes in %s", res.Codec, len(data), res.Bytes, res.Duration)
	return res
}

func roundTrip(c Codec, data []byte, res *Result) error {
	comp, err := c.Compress(data)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	res.Bytes = len(comp)
	out, err := c.Decompress(comp)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if !bytes.Equal(out, data) {
		return ErrMismatch
	}
	return nil
}
