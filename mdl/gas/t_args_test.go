// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/kyleniemeyer/PYroMat/units"
)

func Test_args01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("args01. argument rules")

	o := n2model(tst)
	cfg := molarConfig()

	// more than two simultaneous properties
	if _, err := o.S(cfg, Q("T", 300), Q("p", 1e5), Q("d", 0.1)); err == nil {
		tst.Errorf("three properties must cause an error\n")
		return
	}

	// density and specific volume together
	if _, err := o.S(cfg, Q("d", 0.1), Q("v", 10.0)); err == nil {
		tst.Errorf("d and v together must cause an error\n")
		return
	}

	// two inverse properties
	if _, err := o.T(cfg, Q("h", 1e4), Q("s", 200)); err == nil {
		tst.Errorf("two inverse properties must cause an error\n")
		return
	}

	// temperature with enthalpy or internal energy is over-determined
	if _, err := o.Cp(cfg, Q("T", 300), Q("h", 1e4)); err == nil {
		tst.Errorf("T and h together must cause an error\n")
		return
	}
	if _, err := o.Cp(cfg, Q("T", 300), Q("e", 1e4)); err == nil {
		tst.Errorf("T and e together must cause an error\n")
		return
	}

	// unrecognised property
	if _, err := o.Cp(cfg, Q("q", 1.0)); err == nil {
		tst.Errorf("unknown property must cause an error\n")
		return
	}

	// duplicate: positional T followed by keyword T
	if _, err := o.Cp(cfg, &Arg{V: []float64{300}}, Q("T", 400)); err == nil {
		tst.Errorf("duplicate property must cause an error\n")
		return
	}

	// only two positional slots exist
	pos := &Arg{V: []float64{1.0}}
	if _, err := o.Cp(cfg, pos, pos, pos); err == nil {
		tst.Errorf("three positional arguments must cause an error\n")
		return
	}

	// empty value array
	if _, err := o.Cp(cfg, Q("T")); err == nil {
		tst.Errorf("empty value array must cause an error\n")
		return
	}

	// incompatible broadcast lengths
	if _, err := o.S(cfg, Q("T", 300, 400, 500), Q("p", 1e5, 2e5)); err == nil {
		tst.Errorf("incompatible array lengths must cause an error\n")
		return
	}

	// temperatures beyond the curve fit
	if _, err := o.Cp(cfg, Q("T", 50)); err == nil {
		tst.Errorf("temperature below Tmin must cause an error\n")
		return
	}
	if _, err := o.Cp(cfg, Q("T", 300, 6500)); err == nil {
		tst.Errorf("temperature above Tmax must cause an error\n")
		return
	}
}

func Test_args02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("args02. defaults and positional arguments")

	o := n2model(tst)
	cfg := molarConfig()

	// with no arguments every property sits at the default state
	T, err := o.T(cfg)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T()", 1e-12, T[0], 298.15)

	p, _ := o.P(cfg)
	chk.Float64(tst, "p()", 1e-9, p[0], 101325.0)

	// a given temperature must come straight back
	T, err = o.T(cfg, Q("T", 500))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T(T)", 1e-12, T[0], 500.0)

	// a lone pressure pairs with the default temperature
	T, err = o.T(cfg, Q("p", 2e5))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T(p)", 1e-12, T[0], 298.15)

	// positionals are interpreted as (T, p)
	a, err := o.S(cfg, &Arg{V: []float64{400}}, &Arg{V: []float64{2e5}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	b, _ := o.S(cfg, Q("T", 400), Q("p", 2e5))
	chk.Array(tst, "positional == keyword", 1e-15, a, b)

	// scalar against vector broadcasting
	cp, err := o.Cp(cfg, Q("T", 300, 400, 500), Q("p", 1e5))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if len(cp) != 3 {
		tst.Errorf("broadcast must produce 3 values (%d produced)\n", len(cp))
		return
	}

	// doubling the pressure lowers the entropy by Ru·ln(2)
	s, err := o.S(cfg, Q("T", 400), Q("p", 1e5, 2e5, 4e5))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "s(2p) - s(p)", 1e-12, s[0]-s[1], units.Ru*math.Log(2.0))
	chk.Float64(tst, "s(4p) - s(2p)", 1e-12, s[1]-s[2], units.Ru*math.Log(2.0))

	// callers keep ownership of their slices
	ccfg := &units.Config{Temperature: "C", Pressure: "Pa", Energy: "kJ", Matter: "kmol", Volume: "m3"}
	ccfg.SetDefault()
	TT := []float64{25.0}
	if _, err := o.Cp(ccfg, Q("T", TT...)); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "input is untouched", 1e-15, TT[0], 25.0)
}
