// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequired is returned by BuildCommand when either the
	// experiment or the template path is empty.
	ErrMissingRequired = errors.New("ipcress: missing required argument")

	// ErrNoProducts is returned when an ipcress report holds no product
	// blocks. A run without products is an experiment design problem,
	// not an empty result.
	ErrNoProducts = errors.New("ipcress: no PCR products found")

	// ErrZeroDenominator is returned when a match string has a zero
	// primer length.
	ErrZeroDenominator = errors.New("ipcress: zero denominator in match")
)

// ExternalToolError is returned when the ipcress process exits
// unsuccessfully. Stderr holds the captured standard error verbatim.
type ExternalToolError struct {
	Cmd    string
	Err    error
	Stderr string
}

func (e *ExternalToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("ipcress: %q failed: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("ipcress: %q failed: %v\n%s", e.Cmd, e.Err, e.Stderr)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

// MalformedBlockError is returned when a product block does not follow
// the ipcress pretty layout. Block is the index of the product block in
// the report and Line the 0-based line within that block.
type MalformedBlockError struct {
	Block  int
	Line   int
	Reason string
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("ipcress: malformed product block %d line %d: %s", e.Block, e.Line, e.Reason)
}

// DuplicateIDError is returned when two products resolve to the same
// identifier.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("ipcress: duplicate product identifier %q", e.ID)
}

// ValidationError is returned for experiment, template and metadata
// files that do not satisfy their format. Line is 1-based, zero when the
// failure is not tied to a line.
type ValidationError struct {
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Line == 0 {
		return "ipcress: " + e.Reason
	}
	return fmt.Sprintf("ipcress: line %d: %s", e.Line, e.Reason)
}

func malformed(line int, format string, args ...interface{}) error {
	return &MalformedBlockError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
