// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation is the strand on which an amplicon was found.
type Orientation string

const (
	Forward Orientation = "forward"
	Revcomp Orientation = "revcomp"
)

// Product is a single PCR product reported by ipcress.
type Product struct {
	Experiment  string
	Target      string
	Orientation Orientation

	// MatchesFwd and MatchesRev are "matched/length" for the forward
	// and reverse primer of the experiment.
	MatchesFwd string
	MatchesRev string

	Length   int
	RangeMin int
	RangeMax int
	Start    int

	// ID is the product annotation line without its leading '>'.
	ID       string
	Sequence string
}

// Line offsets within a product block of the pretty report.
const (
	experimentLine  = 2
	targetLine      = 4
	matchesLine     = 5
	productLine     = 6
	orientationLine = 7
	idLine          = 16
	sequenceLine    = 17
)

const (
	targetMarker = "Target:"
	startMarker  = "start"
	completed    = "completed ipcress analysis"
)

// ParseProduct returns the Product described by the lines of a single
// ipcress product block as returned by Split.
func ParseProduct(lines []string) (Product, error) {
	if len(lines) <= sequenceLine {
		return Product{}, malformed(len(lines), "short block: %d lines", len(lines))
	}

	var p Product
	p.Experiment = afterLast(lines[experimentLine], ":")

	i := strings.LastIndex(lines[targetLine], targetMarker)
	if i < 0 {
		return Product{}, malformed(targetLine, "missing %q marker", targetMarker)
	}
	p.Target = strings.TrimSpace(lines[targetLine][i+len(targetMarker):])

	p.Orientation = Orientation(afterLast(lines[orientationLine], ":"))
	if p.Orientation != Forward && p.Orientation != Revcomp {
		return Product{}, malformed(orientationLine, "unknown orientation %q", p.Orientation)
	}

	// ipcress lists the primer matches in strand order, so a revcomp
	// product reports the reverse primer first.
	m := strings.Fields(lines[matchesLine])
	if len(m) < 3 {
		return Product{}, malformed(matchesLine, "expected 2 match counts: %q", lines[matchesLine])
	}
	p.MatchesFwd, p.MatchesRev = m[1], m[2]
	if p.Orientation == Revcomp {
		p.MatchesFwd, p.MatchesRev = p.MatchesRev, p.MatchesFwd
	}
	for _, s := range []string{p.MatchesFwd, p.MatchesRev} {
		_, d, err := parseMatch(s)
		if err != nil {
			return Product{}, malformed(matchesLine, "%v", err)
		}
		if d == 0 {
			return Product{}, malformed(matchesLine, "zero primer length in %q", s)
		}
	}

	f := strings.Fields(lines[productLine])
	if len(f) < 5 {
		return Product{}, malformed(productLine, "expected 5 fields: %q", lines[productLine])
	}
	var err error
	p.Length, err = strconv.Atoi(f[1])
	if err != nil {
		return Product{}, malformed(productLine, "invalid length: %v", err)
	}
	r := strings.Split(f[4][:len(f[4])-1], "-")
	if len(r) != 2 {
		return Product{}, malformed(productLine, "invalid range %q", f[4])
	}
	p.RangeMin, err = strconv.Atoi(r[0])
	if err != nil {
		return Product{}, malformed(productLine, "invalid range minimum: %v", err)
	}
	p.RangeMax, err = strconv.Atoi(r[1])
	if err != nil {
		return Product{}, malformed(productLine, "invalid range maximum: %v", err)
	}

	id := strings.TrimSpace(lines[idLine])
	if !strings.HasPrefix(id, ">") {
		return Product{}, malformed(idLine, "missing product annotation: %q", lines[idLine])
	}
	p.ID = id[1:]
	s := strings.SplitN(lines[idLine], startMarker, 3)
	if len(s) < 2 {
		return Product{}, malformed(idLine, "missing %q marker", startMarker)
	}
	pos := strings.Fields(s[1])
	if len(pos) == 0 {
		return Product{}, malformed(idLine, "missing start position")
	}
	p.Start, err = strconv.Atoi(pos[0])
	if err != nil {
		return Product{}, malformed(idLine, "invalid start position: %v", err)
	}

	var seq strings.Builder
	for _, l := range lines[sequenceLine:] {
		if l == "" || strings.Contains(l, completed) {
			break
		}
		seq.WriteString(l)
	}
	if seq.Len() == 0 {
		return Product{}, malformed(sequenceLine, "empty product sequence")
	}
	p.Sequence = seq.String()

	return p, nil
}

// MatchFraction returns the fraction of matched primer bases described by
// a "matched/length" match string.
func MatchFraction(match string) (float64, error) {
	n, d, err := parseMatch(match)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, ErrZeroDenominator
	}
	return float64(n) / float64(d), nil
}

func parseMatch(match string) (n, d int, err error) {
	f := strings.Split(match, "/")
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("ipcress: invalid match %q", match)
	}
	n, err = strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ipcress: invalid match %q: %v", match, err)
	}
	d, err = strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ipcress: invalid match %q: %v", match, err)
	}
	return n, d, nil
}

func afterLast(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		s = s[i+len(sep):]
	}
	return strings.TrimSpace(s)
}
