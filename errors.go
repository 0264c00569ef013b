package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// The tool is single-shot: every error here is terminal and maps to exit
// status 1. The kinds only differ in how their message is built.

var errEmptyInput = errors.New("no JSON input found on stdin or clipboard")

// invalidJSONError carries the fully rendered parse diagnostic.
type invalidJSONError struct {
	diagnostic string
}

func (e *invalidJSONError) Error() string { return e.diagnostic }

// pathNotFoundError echoes the path the user asked for.
type pathNotFoundError struct {
	path string
}

func (e *pathNotFoundError) Error() string {
	return fmt.Sprintf("path %q not found in input", e.path)
}
