// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// IndexColumn is the name of the row key column of a metadata table.
const IndexColumn = "id"

// Columns are the data columns of a metadata table in output order.
var Columns = []string{
	"experiment",
	"target",
	"match_orientation",
	"matches_fwd",
	"matches_rev",
	"length",
	"range_min",
	"range_max",
	"start_position",
	"matches_fwd_frac",
	"matches_rev_frac",
}

// Row is the tabular projection of a Product. It carries no sequence.
type Row struct {
	ID          string
	Experiment  string
	Target      string
	Orientation Orientation

	MatchesFwd     string
	MatchesRev     string
	MatchesFwdFrac float64
	MatchesRevFrac float64

	Length   int
	RangeMin int
	RangeMax int
	Start    int
}

// Metadata is a product metadata table with rows in product order.
type Metadata struct {
	Rows []Row
}

// RowKey returns the metadata row key for a product ID, the ID with any
// ":filter" annotation suffix removed.
func RowKey(id string) string {
	if i := strings.Index(id, ":filter"); i >= 0 {
		return id[:i]
	}
	return id
}

// NewMetadata returns the metadata table for products. Row keys must be
// unique; a collision is returned as a *DuplicateIDError.
func NewMetadata(products []Product) (*Metadata, error) {
	m := &Metadata{Rows: make([]Row, 0, len(products))}
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		key := RowKey(p.ID)
		if seen[key] {
			return nil, &DuplicateIDError{ID: key}
		}
		seen[key] = true

		fwd, err := MatchFraction(p.MatchesFwd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		rev, err := MatchFraction(p.MatchesRev)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		m.Rows = append(m.Rows, Row{
			ID:             key,
			Experiment:     p.Experiment,
			Target:         p.Target,
			Orientation:    p.Orientation,
			MatchesFwd:     p.MatchesFwd,
			MatchesRev:     p.MatchesRev,
			MatchesFwdFrac: fwd,
			MatchesRevFrac: rev,
			Length:         p.Length,
			RangeMin:       p.RangeMin,
			RangeMax:       p.RangeMax,
			Start:          p.Start,
		})
	}
	return m, nil
}

// WriteTo writes the table to w as tab-separated text with a header row.
// The first column is the row key.
func (m *Metadata) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	tw := csv.NewWriter(cw)
	tw.Comma = '\t'
	err := tw.Write(append([]string{IndexColumn}, Columns...))
	if err != nil {
		return cw.n, err
	}
	for _, r := range m.Rows {
		err = tw.Write([]string{
			r.ID,
			r.Experiment,
			r.Target,
			string(r.Orientation),
			r.MatchesFwd,
			r.MatchesRev,
			strconv.Itoa(r.Length),
			strconv.Itoa(r.RangeMin),
			strconv.Itoa(r.RangeMax),
			strconv.Itoa(r.Start),
			formatFrac(r.MatchesFwdFrac),
			formatFrac(r.MatchesRevFrac),
		})
		if err != nil {
			return cw.n, err
		}
	}
	tw.Flush()
	return cw.n, tw.Error()
}

// ReadMetadata reads a tab-separated metadata table. The first column is
// taken as the row key whatever its name; every name in Columns must be
// present in the header in any order.
func ReadMetadata(r io.Reader) (*Metadata, error) {
	tr := csv.NewReader(r)
	tr.Comma = '\t'
	tr.FieldsPerRecord = -1

	header, err := tr.Read()
	if err == io.EOF || (err == nil && len(strings.TrimSpace(strings.Join(header, ""))) == 0) {
		return nil, &ValidationError{Line: 1, Reason: "failed to locate header"}
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	required := append([]string(nil), Columns...)
	sort.Strings(required)
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, &ValidationError{Line: 1, Reason: fmt.Sprintf("%q is not a column", name)}
		}
	}

	var m Metadata
	for line := 2; ; line++ {
		rec, err := tr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != len(header) {
			return nil, &ValidationError{Line: line, Reason: fmt.Sprintf("expected %d fields, found %d", len(header), len(rec))}
		}
		row, err := parseRow(rec, col)
		if err != nil {
			return nil, &ValidationError{Line: line, Reason: err.Error()}
		}
		m.Rows = append(m.Rows, row)
	}
	return &m, nil
}

func parseRow(rec []string, col map[string]int) (Row, error) {
	field := func(name string) string { return rec[col[name]] }

	r := Row{
		ID:          rec[0],
		Experiment:  field("experiment"),
		Target:      field("target"),
		Orientation: Orientation(field("match_orientation")),
		MatchesFwd:  field("matches_fwd"),
		MatchesRev:  field("matches_rev"),
	}
	var err error
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"length", &r.Length},
		{"range_min", &r.RangeMin},
		{"range_max", &r.RangeMax},
		{"start_position", &r.Start},
	} {
		*f.dst, err = strconv.Atoi(field(f.name))
		if err != nil {
			return r, fmt.Errorf("invalid %s: %v", f.name, err)
		}
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"matches_fwd_frac", &r.MatchesFwdFrac},
		{"matches_rev_frac", &r.MatchesRevFrac},
	} {
		*f.dst, err = strconv.ParseFloat(field(f.name), 64)
		if err != nil {
			return r, fmt.Errorf("invalid %s: %v", f.name, err)
		}
	}
	if r.Orientation != Forward && r.Orientation != Revcomp {
		return r, errors.New("invalid match_orientation " + strconv.Quote(string(r.Orientation)))
	}
	return r, nil
}

func formatFrac(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
