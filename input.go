package main

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// acquireInput returns the JSON text to process: stdin when something is
// piped in, the system clipboard otherwise. Surrounding whitespace is
// trimmed; an empty result is an error either way.
func acquireInput() (string, error) {
	var text string
	if stdinIsPiped() {
		log.Debug("reading input from stdin")
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		text = strings.TrimSpace(string(raw))
	} else {
		log.Debug("reading input from clipboard")
		raw, err := clipboard.ReadAll()
		if err != nil {
			return "", errors.Wrap(err, "reading clipboard")
		}
		text = strings.TrimSpace(raw)
	}
	if text == "" {
		return "", errEmptyInput
	}
	log.WithField("bytes", len(text)).Debug("input acquired")
	return text, nil
}

func stdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "writing clipboard")
	}
	return nil
}
