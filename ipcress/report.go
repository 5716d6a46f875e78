// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipcress

import (
	"errors"
	"strings"
)

const (
	resultDelim   = "Ipcress result"
	experimentTag = "Experiment"
)

// Split partitions an ipcress report into product blocks, each returned as
// its lines. Segments between result delimiters that do not name an
// experiment, the leading banner and any trailing summary, are dropped.
// Split returns ErrNoProducts if no block remains.
func Split(report string) ([][]string, error) {
	var blocks [][]string
	for _, seg := range strings.Split(report, resultDelim) {
		if !strings.Contains(seg, experimentTag) {
			continue
		}
		blocks = append(blocks, strings.Split(seg, "\n"))
	}
	if len(blocks) == 0 {
		return nil, ErrNoProducts
	}
	return blocks, nil
}

// ParseReport parses every product block of an ipcress report in report
// order. Parsing stops at the first malformed block.
func ParseReport(report string) ([]Product, error) {
	blocks, err := Split(report)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(blocks))
	seen := make(map[string]bool, len(blocks))
	for i, b := range blocks {
		p, err := ParseProduct(b)
		if err != nil {
			var mb *MalformedBlockError
			if errors.As(err, &mb) {
				mb.Block = i
			}
			return nil, err
		}
		if seen[p.ID] {
			return nil, &DuplicateIDError{ID: p.ID}
		}
		seen[p.ID] = true
		products = append(products, p)
	}
	return products, nil
}
