// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"bytes"
	"strings"

	"github.com/biogo/external"
)

// Logger is the logging interface used by Run. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// ExternalCommandWarning is logged ahead of every external command.
const ExternalCommandWarning = "Running external command line application. " +
	"This may print messages to stdout and/or stderr. " +
	"The command may not be re-runnable as it can depend on temporary files."

// Run executes the command built by cb and returns its standard output.
// The full command line is logged to l before execution when l is not nil.
// A failed run is returned as an *ExternalToolError holding the captured
// standard error. Run blocks until the process exits.
func Run(cb external.CommandBuilder, l Logger) ([]byte, error) {
	cmd, err := cb.BuildCommand()
	if err != nil {
		return nil, err
	}
	cl := strings.Join(cmd.Args, " ")
	if l != nil {
		l.Printf("%s", ExternalCommandWarning)
		l.Printf("command: %s", cl)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()
	if err != nil {
		return nil, &ExternalToolError{Cmd: cl, Err: err, Stderr: stderr.String()}
	}
	return stdout.Bytes(), nil
}

// Simulate runs the ipcress command built by cb and parses its report.
func Simulate(cb external.CommandBuilder, l Logger) ([]Product, error) {
	out, err := Run(cb, l)
	if err != nil {
		return nil, err
	}
	return ParseReport(string(out))
}
