// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/kyleniemeyer/PYroMat/num"
	"github.com/kyleniemeyer/PYroMat/units"
)

// Arg holds one named property value, in the caller's configured units.
// Recognised names and their unit conventions:
//	T   temperature         unit_temperature
//	p   pressure            unit_pressure
//	d   density             unit_matter / unit_volume
//	v   specific volume     unit_volume / unit_matter
//	e   internal energy     unit_energy / unit_matter
//	h   enthalpy            unit_energy / unit_matter
//	s   entropy             unit_energy / unit_matter / unit_temperature
// An empty name marks a positional argument; positionals are interpreted in
// the order (T, p).
type Arg struct {
	N string    // property name; empty means positional
	V []float64 // values
}

// Q builds an argument from a property name and values
func Q(name string, values ...float64) *Arg {
	return &Arg{N: name, V: values}
}

// inverseProps are the properties that require root-finding when given
var inverseProps = map[string]bool{"e": true, "h": true, "s": true}

// basicProps are the properties resolvable without iteration
var basicProps = map[string]bool{"T": true, "p": true, "d": true, "v": true}

// resolve normalises a flexible two-property argument list to the triplet
// (T, p, d) in internal units: Kelvin, Pascal, kmol/m³. Temperature is always
// populated; at least one of p and d is populated, but one of them may be nil
// when the remaining state is cheaper to derive on demand.
func (o *IdealGas) resolve(cfg *units.Config, args []*Arg) (T, p, d []float64, err error) {

	// 1) assign positional arguments and collect keywords
	kw := make(map[string][]float64)
	npos := 0
	for _, a := range args {
		name := a.N
		if name == "" {
			switch npos {
			case 0:
				name = "T"
			case 1:
				name = "p"
			default:
				return nil, nil, nil, chk.Err("there are only two positional arguments: T, p")
			}
			npos++
		}
		if _, ok := kw[name]; ok {
			return nil, nil, nil, chk.Err("property %q was specified more than once", name)
		}
		if len(a.V) == 0 {
			return nil, nil, nil, chk.Err("property %q has no values", name)
		}
		kw[name] = a.V
	}

	// apply the default temperature and pressure
	switch len(kw) {
	case 0:
		kw["T"] = []float64{cfg.DefT}
		kw["p"] = []float64{cfg.DefP}
	case 1:
		if _, ok := kw["T"]; !ok {
			kw["T"] = []float64{cfg.DefT}
		} else {
			kw["p"] = []float64{cfg.DefP}
		}
	}

	// 2) argument rules
	// 2.1: no more than two simultaneous properties
	if len(kw) > 2 {
		return nil, nil, nil, chk.Err("specifying more than two simultaneous properties is illegal")
	}

	// 2.2: all properties must be recognised
	var unknown []string
	for name := range kw {
		if !inverseProps[name] && !basicProps[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, nil, nil, chk.Err("unrecognised propert(y/ies): %s", strings.Join(unknown, ", "))
	}

	// 2.3: at most one inverse property
	var inverse []string
	for name := range kw {
		if inverseProps[name] {
			inverse = append(inverse, name)
		}
	}
	if len(inverse) > 1 {
		sort.Strings(inverse)
		return nil, nil, nil, chk.Err("properties may not be specified together: %s", strings.Join(inverse, ", "))
	}

	// 2.4: density and specific volume describe the same quantity
	if _, hasD := kw["d"]; hasD {
		if _, hasV := kw["v"]; hasV {
			return nil, nil, nil, chk.Err("density (d) and specific volume (v) cannot be specified together")
		}
	}

	// 3) copy the values; callers keep ownership of their slices
	for name, vals := range kw {
		cc := make([]float64, len(vals))
		copy(cc, vals)
		kw[name] = cc
	}

	// 4) convert to internal units; 5) check temperature bounds;
	// 6) replace specific volume with density
	if vv, ok := kw["T"]; ok {
		if err = units.TemperatureScale(vv, cfg.Temperature, "K"); err != nil {
			return
		}
		if err = o.checkTrange(vv); err != nil {
			return
		}
	}
	if vv, ok := kw["p"]; ok {
		if err = units.Pressure(vv, cfg.Pressure, "Pa", 1); err != nil {
			return
		}
	}
	if vv, ok := kw["d"]; ok {
		if err = units.Volume(vv, cfg.Volume, "m3", -1); err != nil {
			return
		}
		if err = units.Matter(vv, o.data.Mw, cfg.Matter, "kmol", 1); err != nil {
			return
		}
	}
	if vv, ok := kw["v"]; ok {
		if err = units.Volume(vv, cfg.Volume, "m3", 1); err != nil {
			return
		}
		if err = units.Matter(vv, o.data.Mw, cfg.Matter, "kmol", -1); err != nil {
			return
		}
		for i := range vv {
			vv[i] = 1.0 / vv[i]
		}
		kw["d"] = vv
		delete(kw, "v")
	}
	for _, name := range []string{"h", "e"} {
		if vv, ok := kw[name]; ok {
			if err = units.Energy(vv, cfg.Energy, "kJ", 1); err != nil {
				return
			}
			if err = units.Matter(vv, o.data.Mw, cfg.Matter, "kmol", -1); err != nil {
				return
			}
		}
	}
	if vv, ok := kw["s"]; ok {
		if err = units.Energy(vv, cfg.Energy, "kJ", 1); err != nil {
			return
		}
		if err = units.Matter(vv, o.data.Mw, cfg.Matter, "kmol", -1); err != nil {
			return
		}
		if err = units.Temperature(vv, cfg.Temperature, "K", -1); err != nil {
			return
		}
	}

	// 7) case out the combinations; 8) broadcast; 9) compute T, p, d
	Tmin := o.data.Tlim[0]
	Tmax := o.data.Tlim[len(o.data.Tlim)-1]

	if len(inverse) == 1 {
		invp := inverse[0]
		y := kw[invp]

		if dd, ok := kw["d"]; ok {
			if y, d, err = broadcast2(y, dd); err != nil {
				return
			}
			T = fill(len(y), o.tmid)
			var fn num.Fdf
			if invp == "s" {
				dcap := d
				fn = func(x []float64, _ []bool) (f, dfdx []float64) {
					return o.sdEval(x, dcap, true)
				}
			} else {
				fn = o.inverseFn(invp)
			}
			_, err = num.Invert(fn, y, T, trues(len(y)), Tmin, Tmax, 0, 0)
			return
		}

		if pp, ok := kw["p"]; ok {
			if y, p, err = broadcast2(y, pp); err != nil {
				return
			}
			if invp == "s" {
				// shift the target entropy to the reference pressure
				yy := make([]float64, len(y))
				for i := range y {
					yy[i] = y[i] + units.Ru*math.Log(p[i]/PrefPa)
				}
				y = yy
			}
			T = fill(len(y), o.tmid)
			_, err = num.Invert(o.inverseFn(invp), y, T, trues(len(y)), Tmin, Tmax, 0, 0)
			return
		}

		// temperature accompanies the inverse property
		if invp != "s" {
			return nil, nil, nil, chk.Err("cannot simultaneously specify properties: T, %s", invp)
		}
		if y, T, err = broadcast2(y, kw["T"]); err != nil {
			return
		}
		s0, _ := o.sEval(T, false)
		p = make([]float64, len(y))
		for i := range y {
			p[i] = PrefPa * math.Exp((s0[i]-y[i])/units.Ru)
		}
		return
	}

	if TT, ok := kw["T"]; ok {
		if pp, ok := kw["p"]; ok {
			T, p, err = broadcast2(TT, pp)
			return
		}
		T, d, err = broadcast2(TT, kw["d"])
		return
	}

	// pressure and density determine temperature in closed form
	if p, d, err = broadcast2(kw["p"], kw["d"]); err != nil {
		return
	}
	T = make([]float64, len(p))
	for i := range p {
		T[i] = p[i] / (units.Rgas * d[i])
	}
	return
}

// inverseFn returns the inner function to be inverted for temperature
func (o *IdealGas) inverseFn(name string) num.Fdf {
	switch name {
	case "h":
		return func(x []float64, _ []bool) (f, dfdx []float64) {
			return o.hEval(x, true)
		}
	case "e":
		return func(x []float64, _ []bool) (f, dfdx []float64) {
			return o.eEval(x, true)
		}
	}
	return func(x []float64, _ []bool) (f, dfdx []float64) {
		return o.sEval(x, true)
	}
}

// checkTrange verifies temperatures (already in Kelvin) against the global
// limits, reporting up to 8 offending values
func (o *IdealGas) checkTrange(T []float64) error {
	Tmin := o.data.Tlim[0]
	Tmax := o.data.Tlim[len(o.data.Tlim)-1]
	var bad []float64
	for _, Ti := range T {
		if Ti < Tmin || Ti > Tmax {
			bad = append(bad, Ti)
		}
	}
	if bad == nil {
		return nil
	}
	msg := ""
	for i, v := range bad {
		if i == 8 {
			msg += ", ..."
			break
		}
		if i > 0 {
			msg += ", "
		}
		msg += io.Sf("%g", v)
	}
	return chk.Err("temperature is out of range [%g,%g] K. problematic values are: %s", Tmin, Tmax, msg)
}

// broadcast2 broadcasts two arrays to a common length. A one-element array
// broadcasts against any length; other mismatches are illegal.
func broadcast2(a, b []float64) ([]float64, []float64, error) {
	switch {
	case len(a) == len(b):
		return a, b, nil
	case len(a) == 1:
		return fill(len(b), a[0]), b, nil
	case len(b) == 1:
		return a, fill(len(a), b[0]), nil
	}
	return nil, nil, chk.Err("cannot broadcast arrays with incompatible lengths %d and %d", len(a), len(b))
}

// fill allocates a slice with every element set to v
func fill(n int, v float64) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = v
	}
	return r
}

// trues allocates an all-true active mask
func trues(n int) []bool {
	r := make([]bool, n)
	for i := range r {
		r[i] = true
	}
	return r
}
