// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/kyleniemeyer/PYroMat/units"
)

// IdealGas implements the ideal gas model using the Shomate equation of
// state: piecewise 8-coefficient polynomial fits in T/1000 over the regions
// delimited by the record's temperature breakpoints. Internal computations
// use kJ, kmol, Kelvin and Pascal.
type IdealGas struct {

	// input
	data *Data // substance record; read-only

	// derived
	tmid float64 // initial guess for temperature inversions
}

// add model to factory
func init() {
	allocators["ig"] = func() Model { return new(IdealGas) }
}

// Init initialises the model from a substance record
func (o *IdealGas) Init(dat *Data) error {
	if err := dat.Check(); err != nil {
		return err
	}
	o.data = dat
	o.tmid = 0.5 * (dat.Tlim[0] + dat.Tlim[len(dat.Tlim)-1])
	return nil
}

// T computes temperature [unit_temperature]
//
// When exactly one property is given, the missing slot is filled with the
// default pressure rather than the default temperature; otherwise T() would
// return DefT regardless of its input.
func (o *IdealGas) T(cfg *units.Config, args ...*Arg) ([]float64, error) {
	if len(args) == 1 && args[0].N != "p" {
		args = append(args, &Arg{N: "p", V: []float64{cfg.DefP}})
	}
	T, _, _, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	if err := units.TemperatureScale(T, "K", cfg.Temperature); err != nil {
		return nil, err
	}
	return T, nil
}

// P computes pressure [unit_pressure]
func (o *IdealGas) P(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, p, d, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = make([]float64, len(T))
		for i := range T {
			p[i] = d[i] * units.Rgas * T[i]
		}
	}
	if err := units.Pressure(p, "Pa", cfg.Pressure, 1); err != nil {
		return nil, err
	}
	return p, nil
}

// D computes density [unit_matter / unit_volume]
func (o *IdealGas) D(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, p, d, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = make([]float64, len(T))
		for i := range T {
			d[i] = p[i] / (units.Rgas * T[i])
		}
	}
	if err := units.Matter(d, o.data.Mw, "kmol", cfg.Matter, 1); err != nil {
		return nil, err
	}
	if err := units.Volume(d, "m3", cfg.Volume, -1); err != nil {
		return nil, err
	}
	return d, nil
}

// V computes specific volume [unit_volume / unit_matter]
func (o *IdealGas) V(cfg *units.Config, args ...*Arg) ([]float64, error) {
	d, err := o.D(cfg, args...)
	if err != nil {
		return nil, err
	}
	for i := range d {
		d[i] = 1.0 / d[i]
	}
	return d, nil
}

// Cp computes the isobaric specific heat [unit_energy / unit_temperature / unit_matter]
func (o *IdealGas) Cp(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, _, _, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	out := o.cpEval(T)
	return o.scaleSpecificHeat(cfg, out)
}

// Cv computes the isochoric specific heat cv = cp - Ru [unit_energy / unit_temperature / unit_matter]
func (o *IdealGas) Cv(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, _, _, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	out := o.cpEval(T)
	for i := range out {
		out[i] -= units.Ru
	}
	return o.scaleSpecificHeat(cfg, out)
}

// H computes enthalpy [unit_energy / unit_matter]
func (o *IdealGas) H(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, _, _, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	out, _ := o.hEval(T, false)
	return o.scaleEnergy(cfg, out)
}

// S computes entropy, adjusted from the reference pressure by
// -Ru・ln(p/pref) [unit_energy / unit_temperature / unit_matter]
func (o *IdealGas) S(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, p, d, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = make([]float64, len(T))
		for i := range T {
			p[i] = d[i] * units.Rgas * T[i]
		}
	}
	out, _ := o.sEval(T, false)
	for i := range out {
		out[i] -= units.Ru * math.Log(p[i]/PrefPa)
	}
	return o.scaleSpecificHeat(cfg, out)
}

// E computes internal energy e = h - Ru・T [unit_energy / unit_matter]
func (o *IdealGas) E(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, _, _, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	out, _ := o.eEval(T, false)
	return o.scaleEnergy(cfg, out)
}

// Gam computes the specific heat ratio cp/(cp - Ru), dimensionless
func (o *IdealGas) Gam(cfg *units.Config, args ...*Arg) ([]float64, error) {
	T, _, _, err := o.resolve(cfg, args)
	if err != nil {
		return nil, err
	}
	out := o.cpEval(T)
	for i := range out {
		out[i] = out[i] / (out[i] - units.Ru)
	}
	return out, nil
}

// R returns the gas constant [unit_energy / unit_temperature / unit_matter]
func (o *IdealGas) R(cfg *units.Config) (float64, error) {
	out, err := o.scaleSpecificHeat(cfg, []float64{units.Ru})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// Mw returns the molecular weight [unit_mass / unit_molar]
func (o *IdealGas) Mw(cfg *units.Config) (float64, error) {
	mw := []float64{o.data.Mw}
	if err := units.Mass(mw, "g", cfg.Mass, 1); err != nil {
		return 0, err
	}
	if err := units.Molar(mw, "mol", cfg.Molar, -1); err != nil {
		return 0, err
	}
	return mw[0], nil
}

// Tlim returns the supported temperature range [unit_temperature]
func (o *IdealGas) Tlim(cfg *units.Config) (Tmin, Tmax float64, err error) {
	tt := []float64{o.data.Tlim[0], o.data.Tlim[len(o.data.Tlim)-1]}
	if err = units.TemperatureScale(tt, "K", cfg.Temperature); err != nil {
		return
	}
	return tt[0], tt[1], nil
}

// Atoms returns a copy of the chemical composition map
func (o *IdealGas) Atoms() (map[string]int, error) {
	if o.data.Atoms == nil {
		return nil, chk.Err("substance %q does not have atomic composition data", o.data.ID)
	}
	aa := make(map[string]int, len(o.data.Atoms))
	for k, v := range o.data.Atoms {
		aa[k] = v
	}
	return aa, nil
}

// TH computes temperature from enthalpy; any extra argument is paired with h
func (o *IdealGas) TH(cfg *units.Config, h []float64, args ...*Arg) ([]float64, error) {
	return o.T(cfg, append(args, &Arg{N: "h", V: h})...)
}

// TS computes temperature from entropy and pressure or density
func (o *IdealGas) TS(cfg *units.Config, s []float64, args ...*Arg) ([]float64, error) {
	return o.T(cfg, append(args, &Arg{N: "s", V: s})...)
}

// PS computes pressure from entropy and temperature
func (o *IdealGas) PS(cfg *units.Config, s []float64, args ...*Arg) ([]float64, error) {
	return o.P(cfg, append(args, &Arg{N: "s", V: s})...)
}

// scaleEnergy converts values in kJ/kmol to the configured units, in place
func (o *IdealGas) scaleEnergy(cfg *units.Config, v []float64) ([]float64, error) {
	if err := units.Energy(v, "kJ", cfg.Energy, 1); err != nil {
		return nil, err
	}
	if err := units.Matter(v, o.data.Mw, "kmol", cfg.Matter, -1); err != nil {
		return nil, err
	}
	return v, nil
}

// scaleSpecificHeat converts values in kJ/kmol/K to the configured units, in place
func (o *IdealGas) scaleSpecificHeat(cfg *units.Config, v []float64) ([]float64, error) {
	if _, err := o.scaleEnergy(cfg, v); err != nil {
		return nil, err
	}
	if err := units.Temperature(v, "K", cfg.Temperature, -1); err != nil {
		return nil, err
	}
	return v, nil
}
