// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kyleniemeyer/PYroMat/inp"
	"github.com/kyleniemeyer/PYroMat/mdl/gas"
	"github.com/kyleniemeyer/PYroMat/units"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	sid := io.ArgToString(0, "ig.N2")
	T := io.ArgToFloat(1, 298.15)
	p := io.ArgToFloat(2, 1.01325)
	ddir := io.ArgToString(3, "data")
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nPYroMat -- thermodynamic properties of ideal gases\n")
		io.Pf("Copyright 2026 The PYroMat Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"substance id", "sid", sid,
			"temperature [K]", "T", T,
			"pressure [bar]", "p", p,
			"data directory", "ddir", ddir,
			"show messages", "verbose", verbose,
		))
	}

	// load substance database
	db, err := inp.LoadDir(ddir)
	if err != nil {
		chk.Panic("cannot load substance database:\n%v", err)
	}
	model, err := db.Get(sid)
	if err != nil {
		chk.Panic("cannot find substance:\n%v", err)
	}

	// evaluate properties at the given state
	cfg := units.NewConfig()
	state := []*gas.Arg{gas.Q("T", T), gas.Q("p", p)}
	d, err := model.D(cfg, state...)
	if err != nil {
		chk.Panic("cannot evaluate properties:\n%v", err)
	}
	cp, _ := model.Cp(cfg, state...)
	cv, _ := model.Cv(cfg, state...)
	h, _ := model.H(cfg, state...)
	s, _ := model.S(cfg, state...)
	e, _ := model.E(cfg, state...)
	gam, _ := model.Gam(cfg, state...)
	R, _ := model.R(cfg)
	mw, _ := model.Mw(cfg)
	Tmin, Tmax, _ := model.Tlim(cfg)

	// results
	io.Pf("\n")
	io.Pforan("%s at T = %g K, p = %g bar\n", sid, T, p)
	io.Pf("  mw  = %12.6f kg/kmol\n", mw)
	io.Pf("  R   = %12.6f kJ/kg/K\n", R)
	io.Pf("  d   = %12.6f kg/m³\n", d[0])
	io.Pf("  cp  = %12.6f kJ/kg/K\n", cp[0])
	io.Pf("  cv  = %12.6f kJ/kg/K\n", cv[0])
	io.Pf("  gam = %12.6f\n", gam[0])
	io.Pf("  h   = %12.4f kJ/kg\n", h[0])
	io.Pf("  e   = %12.4f kJ/kg\n", e[0])
	io.Pf("  s   = %12.6f kJ/kg/K\n", s[0])
	io.Pf("  valid for %g ≤ T ≤ %g K\n", Tmin, Tmax)
}
