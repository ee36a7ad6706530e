package logsetup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	leveled, err := Setup(&buf, "huff", "INFO")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	log := logging.MustGetLogger("huffman/test")
	log.Info("compressed 42 bytes")
	log.Debug("hidden detail")

	out := buf.String()
	if !strings.Contains(out, "huff: ") || !strings.Contains(out, "compressed 42 bytes") {
		t.Fatalf("missing record in %q", out)
	}
	if !strings.Contains(out, "huffman/test") {
		t.Fatalf("module not formatted in %q", out)
	}
	if strings.Contains(out, "hidden detail") {
		t.Fatalf("debug record logged at INFO: %q", out)
	}

	leveled.SetLevel(logging.DEBUG, "")
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("level change not applied")
	}
}

func TestSetupBadLevel(t *testing.T) {
	if _, err := Setup(&bytes.Buffer{}, "huff", "LOUD"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
