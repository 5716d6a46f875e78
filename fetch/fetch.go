// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fetch retrieves template sequences for in-silico PCR from the
// NCBI nucleotide database using biogo.ncbi/entrez.
package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/ncbi/entrez"
)

const (
	db   = "nuccore"
	tool = "biogo.pcr"
)

// Logger is the logging interface used by Templates. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// The entrez calls used by Templates.
var (
	searchRecords = entrez.DoSearch
	fetchRecords  = entrez.Fetch
)

var (
	ErrNoAccessions = errors.New("fetch: no accessions")
	ErrNoEmail      = errors.New("fetch: email address required")
)

// Options holds the entrez request options for Templates.
type Options struct {
	// Email is sent to the server with each request and is required.
	Email string

	// RetMax is the number of records retrieved per request.
	// Zero uses 500.
	RetMax int

	// Retries is the number of attempts made to retrieve each batch.
	// Zero uses 5.
	Retries int

	// Log receives progress messages. Nil discards them.
	Log Logger
}

// Query returns the entrez search term matching the given accessions.
func Query(accessions []string) string {
	terms := make([]string, len(accessions))
	for i, a := range accessions {
		terms[i] = a + "[accn]"
	}
	return strings.Join(terms, " OR ")
}

// Templates writes the FASTA records for accessions to w and returns the
// number of bytes written.
func Templates(w io.Writer, accessions []string, o Options) (int64, error) {
	if len(accessions) == 0 {
		return 0, ErrNoAccessions
	}
	if o.Email == "" {
		return 0, ErrNoEmail
	}
	if o.RetMax <= 0 {
		o.RetMax = 500
	}
	if o.Retries <= 0 {
		o.Retries = 5
	}
	if o.Log == nil {
		o.Log = discard{}
	}

	h := entrez.History{}
	s, err := searchRecords(db, Query(accessions), nil, &h, tool, o.Email)
	if err != nil {
		return 0, fmt.Errorf("fetch: search failed: %w", err)
	}
	if s.Count < len(accessions) {
		o.Log.Printf("found %d of %d accessions", s.Count, len(accessions))
	}
	o.Log.Printf("will retrieve %d records", s.Count)

	var (
		buf   = &bytes.Buffer{}
		p     = &entrez.Parameters{RetMax: o.RetMax, RetType: "fasta", RetMode: "text"}
		bn, n int64
	)
	for p.RetStart = 0; p.RetStart < s.Count; p.RetStart += p.RetMax {
		for t := 0; t < o.Retries; t++ {
			buf.Reset()
			var (
				r   io.ReadCloser
				_bn int64
			)
			r, err = fetchRecords(db, p, tool, o.Email, &h)
			if err != nil {
				o.Log.Printf("failed to retrieve records from %d on attempt %d: %v", p.RetStart, t, err)
				continue
			}
			_bn, err = io.Copy(buf, r)
			r.Close()
			if err == nil {
				bn += _bn
				break
			}
			o.Log.Printf("failed to buffer records from %d on attempt %d: %v", p.RetStart, t, err)
		}
		if err != nil {
			return n, fmt.Errorf("fetch: exceeded retries: %w", err)
		}

		_n, err := io.Copy(w, buf)
		n += _n
		if err != nil {
			return n, err
		}
	}
	if bn != n {
		o.Log.Printf("writethrough mismatch: %d != %d", bn, n)
	}
	return n, nil
}
