// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"github.com/cpmech/gosl/chk"
)

// PrefPa is the reference pressure [Pa] at which tabulated entropy
// polynomials are defined (1 bar)
const PrefPa = 1e5

// Data holds one substance record. Records are immutable after load.
type Data struct {

	// input
	ID    string         `json:"id"`    // unique substance identifier; e.g. "ig.N2"
	Class string         `json:"class"` // model class interpreting this record; e.g. "ig"
	Doc   string         `json:"doc"`   // provenance notes
	Mw    float64        `json:"mw"`    // molecular weight [g/mol]
	Tlim  []float64      `json:"Tlim"`  // breakpoints delimiting the piecewise regions [K]
	C     [][]float64    `json:"C"`     // one 8-coefficient group per region
	Atoms map[string]int `json:"atoms"` // chemical composition; may be nil
	Tab   [][]float64    `json:"TAB"`   // optional reference table for external validation tooling

	// derived
	FromFile string `json:"-"` // file this record was loaded from
}

// Check verifies the integrity of the record. Failures here are fatal for
// the substance.
func (o *Data) Check() error {
	if len(o.Tlim) < 2 {
		return chk.Err("substance %q: Tlim must have at least 2 breakpoints (%d given)", o.ID, len(o.Tlim))
	}
	for i := 0; i < len(o.Tlim)-1; i++ {
		if o.Tlim[i] >= o.Tlim[i+1] {
			return chk.Err("substance %q: Tlim must increase monotonically (Tlim[%d]=%g, Tlim[%d]=%g)", o.ID, i, o.Tlim[i], i+1, o.Tlim[i+1])
		}
	}
	if len(o.C) != len(o.Tlim)-1 {
		return chk.Err("substance %q: Tlim and C dimensions must be compatible: len(Tlim)=%d must equal len(C)+1=%d", o.ID, len(o.Tlim), len(o.C)+1)
	}
	for i, c := range o.C {
		if len(c) != 8 {
			return chk.Err("substance %q: region %d must have 8 coefficients (%d given)", o.ID, i, len(c))
		}
	}
	if o.Mw <= 0 {
		return chk.Err("substance %q: molecular weight must be positive (mw=%g)", o.ID, o.Mw)
	}
	return nil
}
