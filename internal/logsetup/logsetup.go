// Package logsetup installs the process-wide go-logging backend shared by
// the huffman binaries.
package logsetup

import (
	"fmt"
	"io"

	"github.com/op/go-logging"
)

// Format is the record layout used by every binary.
const Format = "%{level:8s} %{module:-20s} | %{message}"

// Setup routes all loggers to w at the given level ("DEBUG", "INFO", ...).
// The returned backend can be used to change the level later.
func Setup(w io.Writer, prefix, level string) (logging.LeveledBackend, error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	backend := logging.NewLogBackend(w, prefix+": ", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(Format))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return leveled, nil
}
