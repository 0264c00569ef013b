// jsonclip pretty-prints JSON from the system clipboard or stdin, optionally
// plucking a nested value out by a dot/bracket path and copying the result
// back to the clipboard.
//
// The whole run is one pass: acquire input, parse, extract, render, copy.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "1.0.2"

// options is the only process-wide state: parsed once at startup, then
// passed along read-only.
type options struct {
	path        string
	copyResult  bool
	noColor     bool
	showVersion bool
	debug       bool
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "jsonclip",
		Short: "pretty-print JSON from the clipboard or stdin",
		Long: `jsonclip reads a JSON document from stdin (when piped) or from the system
clipboard, validates it and pretty-prints it with highlighting. A nested
value can be extracted with --path, and the result copied back with --copy.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Println("jsonclip " + version)
				return nil
			}
			if opts.debug {
				log.SetLevel(log.DebugLevel)
			}
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				opts.noColor = true
			}
			return run(opts, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "extract the value at a dot/bracket path (e.g. data.items[0].price)")
	cmd.Flags().BoolVarP(&opts.copyResult, "copy", "c", false, "copy the formatted result back to the clipboard")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable highlighting, print plain indented JSON")
	cmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "print the version and exit")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

// run drives one pass over the acquired input and writes the rendered result
// to out.
func run(opts options, out io.Writer) error {
	text, err := acquireInput()
	if err != nil {
		return err
	}

	rendered, clip, err := process(opts, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)

	if opts.copyResult {
		if err := copyToClipboard(clip); err != nil {
			return err
		}
		log.Debug("result copied to clipboard")
	}
	return nil
}

// process turns input text into the rendered output and, for --copy, the
// clipboard payload: indented JSON for documents, objects and arrays, the
// bare literal for an extracted scalar.
func process(opts options, text string) (rendered, clip string, err error) {
	doc, err := parseDocument(text)
	if err != nil {
		return "", "", err
	}

	value := doc
	extracted := false
	if opts.path != "" {
		v, ok := extractPath(doc, opts.path)
		if !ok {
			return "", "", &pathNotFoundError{path: opts.path}
		}
		log.WithField("path", opts.path).Debug("path resolved")
		value = v
		extracted = true
	}

	rendered, err = renderValue(value, !opts.noColor)
	if err != nil {
		return "", "", err
	}

	if opts.copyResult {
		if extracted {
			if s, ok := scalarForm(value); ok {
				return rendered, s, nil
			}
		}
		clip, err = renderValue(value, false)
		if err != nil {
			return "", "", err
		}
	}
	return rendered, clip, nil
}
