// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// FASTAID returns id with every whitespace character replaced by '_'.
func FASTAID(id string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, id)
}

// WriteFASTA writes each product to w as a FASTA entry in product order,
// wrapping sequence lines at width. A width less than one writes each
// sequence on a single line.
func WriteFASTA(w io.Writer, products []Product, width int) error {
	if width < 1 {
		for _, p := range products {
			if len(p.Sequence) > width {
				width = len(p.Sequence)
			}
		}
		if width < 1 {
			width = 1
		}
	}
	fw := fasta.NewWriter(w, width)
	for _, p := range products {
		s := linear.NewSeq(FASTAID(p.ID), alphabet.BytesToLetters([]byte(p.Sequence)), alphabet.DNAredundant)
		_, err := fw.Write(s)
		if err != nil {
			return fmt.Errorf("ipcress: failed to write sequence %q: %w", s.Name(), err)
		}
	}
	return nil
}

// ReadTemplates scans a template FASTA stream and returns the number of
// sequences in it. A stream without sequences is a *ValidationError.
func ReadTemplates(r io.Reader) (int, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAredundant)))
	var n int
	for sc.Next() {
		if sc.Seq().Len() == 0 {
			return n, &ValidationError{Reason: fmt.Sprintf("empty template sequence %q", sc.Seq().Name())}
		}
		n++
	}
	err := sc.Error()
	if err != nil {
		return n, fmt.Errorf("ipcress: failed during template read: %w", err)
	}
	if n == 0 {
		return 0, &ValidationError{Reason: "no template sequences"}
	}
	return n, nil
}
