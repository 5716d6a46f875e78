// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipcress runs the exonerate ipcress in-silico PCR tool and turns
// its pretty product report into product records, a FASTA file of the
// products and a tabular product metadata report.
package ipcress

import (
	"os/exec"

	"github.com/biogo/external"
)

// Ipcress defines parameters for an ipcress run.
type Ipcress struct {
	// Usage: ipcress -i <experiments> -s <templates> [-options]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}ipcress{{end}}"` // ipcress

	// Input files:
	Experiments string `buildarg:"{{if .}}-i{{split}}{{.}}{{end}}"` // -i: experiment file
	Templates   string `buildarg:"{{if .}}-s{{split}}{{.}}{{end}}"` // -s: template FASTA file

	// Search options, always passed including zero values:
	Seed     int `buildarg:"-S{{split}}{{.}}"` // -S: seed length
	Memory   int `buildarg:"-M{{split}}{{.}}"` // -M: memory limit (Mb)
	Mismatch int `buildarg:"-m{{split}}{{.}}"` // -m: primer mismatches allowed

	// Output options:
	Pretty   bool `buildarg:"{{if .}}-p{{end}}"` // -p: pretty report
	Products bool `buildarg:"{{if .}}-P{{end}}"` // -P: dump product sequences
}

// Params holds the numeric ipcress options. Range checks are the
// responsibility of the caller.
type Params struct {
	Seed     int
	Memory   int
	Mismatch int
}

// DefaultParams are the parameters used when none are given.
var DefaultParams = Params{Seed: 12, Memory: 32, Mismatch: 0}

// New returns an Ipcress run in paired-primer pretty product mode for the
// given experiment and template files. An empty cmd runs "ipcress" from PATH.
func New(cmd, experiments, templates string, p Params) Ipcress {
	return Ipcress{
		Cmd:         cmd,
		Experiments: experiments,
		Templates:   templates,
		Seed:        p.Seed,
		Memory:      p.Memory,
		Mismatch:    p.Mismatch,
		Pretty:      true,
		Products:    true,
	}
}

// BuildCommand returns an exec.Cmd built from the parameters in i.
func (i Ipcress) BuildCommand() (*exec.Cmd, error) {
	if i.Experiments == "" || i.Templates == "" {
		return nil, ErrMissingRequired
	}
	cl := external.Must(external.Build(i))
	return exec.Command(cl[0], cl[1:]...), nil
}
