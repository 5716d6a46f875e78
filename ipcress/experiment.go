// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Experiment is a primer pair experiment as read by ipcress.
type Experiment struct {
	ID        string
	Forward   string
	Reverse   string
	MinLength int
	MaxLength int
}

// ReadExperiments reads a whitespace-delimited ipcress experiment file of
// exactly five columns:
//
//  experiment_id primer_fwd primer_rev min_length max_length
//
// Blank lines and lines starting with '#' are ignored. Format violations
// are returned as a *ValidationError.
func ReadExperiments(r io.Reader) ([]Experiment, error) {
	var exps []Experiment
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		f := strings.Fields(text)
		if len(f) != 5 {
			return nil, &ValidationError{
				Line:   line,
				Reason: fmt.Sprintf("the ipcress experiment file should have 5 columns, %d were found", len(f)),
			}
		}
		e := Experiment{ID: f[0], Forward: f[1], Reverse: f[2]}
		var err error
		e.MinLength, err = strconv.Atoi(f[3])
		if err != nil {
			return nil, &ValidationError{Line: line, Reason: fmt.Sprintf("invalid minimum length %q", f[3])}
		}
		if e.MinLength < 0 {
			return nil, &ValidationError{Line: line, Reason: "the minimum length of a PCR product cannot be negative"}
		}
		e.MaxLength, err = strconv.Atoi(f[4])
		if err != nil {
			return nil, &ValidationError{Line: line, Reason: fmt.Sprintf("invalid maximum length %q", f[4])}
		}
		if e.MaxLength < 0 {
			return nil, &ValidationError{Line: line, Reason: "the maximum length of a PCR product cannot be negative"}
		}
		exps = append(exps, e)
	}
	err := sc.Err()
	if err != nil {
		return nil, err
	}
	if len(exps) == 0 {
		return nil, &ValidationError{Reason: "no experiments"}
	}
	return exps, nil
}

// WriteExperiments writes exps to w in the space-separated form read by
// ipcress.
func WriteExperiments(w io.Writer, exps []Experiment) error {
	bw := bufio.NewWriter(w)
	for _, e := range exps {
		_, err := fmt.Fprintf(bw, "%s %s %s %d %d\n", e.ID, e.Forward, e.Reverse, e.MinLength, e.MaxLength)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
