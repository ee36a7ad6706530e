// Command huff compresses text into huffman frames and back.
//
// Usage:
//
//	huff compress   [-in path] [-out path] [-base64] [-v]
//	huff decompress [-in path] [-out path] [-base64] [-v]
//	huff compare    [-in path] [-out path] [-v]
//
// Input defaults to stdin and output to stdout. -v enables debug logging.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/axiomhq/huffman"
	"github.com/axiomhq/huffman/internal/compare"
	"github.com/axiomhq/huffman/internal/logsetup"
)

const progName = "huff"

var log = logging.MustGetLogger("huffman/huff")

var errUsage = errors.New("usage: huff compress|decompress|compare [-in path] [-out path] [-base64] [-v]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}
}

type command func(input []byte, o options) ([]byte, error)

var commands = map[string]command{
	"compress":   func(in []byte, o options) ([]byte, error) { return compressCmd(in, o.b64) },
	"decompress": func(in []byte, o options) ([]byte, error) { return decompressCmd(in, o.b64) },
	"compare":    func(in []byte, _ options) ([]byte, error) { return compareCmd(in) },
}

type options struct {
	in, out string
	b64     bool
	verbose bool
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return errUsage
	}
	fs := flag.NewFlagSet(progName+" "+name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var o options
	fs.StringVar(&o.in, "in", "", "input file (default stdin)")
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	fs.BoolVar(&o.b64, "base64", false, "frames are base64 text")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	level := "WARNING"
	if o.verbose {
		level = "DEBUG"
	}
	if _, err := logsetup.Setup(os.Stderr, progName, level); err != nil {
		return err
	}

	input, err := readInput(o.in, stdin)
	if err != nil {
		return err
	}
	output, err := cmd(input, o)
	if err != nil {
		return err
	}
	return writeOutput(o.out, stdout, output)
}

func compressCmd(input []byte, b64 bool) ([]byte, error) {
	res, err := huffman.Encode(string(input))
	if err != nil {
		return nil, err
	}
	frame, err := res.Frame()
	if err != nil {
		return nil, err
	}
	log.Debugf("%d bytes, %d symbols, %d bits, %d byte frame", len(input), len(res.Codes), res.Bits(), len(frame))
	if b64 {
		return []byte(base64.StdEncoding.EncodeToString(frame) + "\n"), nil
	}
	return frame, nil
}

func decompressCmd(input []byte, b64 bool) ([]byte, error) {
	if b64 {
		raw, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(input)))
		if err != nil {
			return nil, fmt.Errorf("base64: %w", err)
		}
		input = raw
	}
	text, err := huffman.Decompress(input)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func compareCmd(input []byte) ([]byte, error) {
	rep, err := compare.Run(context.Background(), input)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	p := message.NewPrinter(language.English) // thousands separators
	p.Fprintf(&buf, "input %d bytes\n", rep.InputBytes)
	for _, r := range rep.Results {
		if r.Error != "" {
			p.Fprintf(&buf, "%-8s failed: %s\n", r.Codec, r.Error)
			continue
		}
		p.Fprintf(&buf, "%-8s %12d bytes %7.2f%% %v\n", r.Codec, r.Bytes, 100*r.Ratio, r.Duration)
	}
	if best, ok := rep.Best(); ok {
		p.Fprintf(&buf, "smallest: %s\n", best.Codec)
	}
	return buf.Bytes(), nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
