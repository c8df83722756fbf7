// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements thermodynamic property models for pure substances
// described by piecewise polynomial curve fits
//
// All property methods accept any two of the state properties listed under
// Arg; unspecified slots fall back to the default temperature and pressure
// of the configuration. Results are returned in the configuration's units.
package gas

import (
	"github.com/cpmech/gosl/chk"

	"github.com/kyleniemeyer/PYroMat/units"
)

// Model defines substance property models
type Model interface {
	Init(dat *Data) error                                            // initialises the model from a checked data record
	T(cfg *units.Config, args ...*Arg) ([]float64, error)            // temperature [unit_temperature]
	P(cfg *units.Config, args ...*Arg) ([]float64, error)            // pressure [unit_pressure]
	D(cfg *units.Config, args ...*Arg) ([]float64, error)            // density [unit_matter / unit_volume]
	V(cfg *units.Config, args ...*Arg) ([]float64, error)            // specific volume [unit_volume / unit_matter]
	Cp(cfg *units.Config, args ...*Arg) ([]float64, error)           // isobaric specific heat [unit_energy / unit_temperature / unit_matter]
	Cv(cfg *units.Config, args ...*Arg) ([]float64, error)           // isochoric specific heat [unit_energy / unit_temperature / unit_matter]
	H(cfg *units.Config, args ...*Arg) ([]float64, error)            // enthalpy [unit_energy / unit_matter]
	S(cfg *units.Config, args ...*Arg) ([]float64, error)            // entropy [unit_energy / unit_temperature / unit_matter]
	E(cfg *units.Config, args ...*Arg) ([]float64, error)            // internal energy [unit_energy / unit_matter]
	Gam(cfg *units.Config, args ...*Arg) ([]float64, error)          // specific heat ratio [-]
	R(cfg *units.Config) (float64, error)                            // gas constant [unit_energy / unit_temperature / unit_matter]
	Mw(cfg *units.Config) (float64, error)                           // molecular weight [unit_mass / unit_molar]
	Tlim(cfg *units.Config) (Tmin, Tmax float64, err error)          // supported temperature range [unit_temperature]
	Atoms() (map[string]int, error)                                  // chemical composition
	TH(cfg *units.Config, h []float64, args ...*Arg) ([]float64, error) // temperature from enthalpy
	TS(cfg *units.Config, s []float64, args ...*Arg) ([]float64, error) // temperature from entropy and pressure or density
	PS(cfg *units.Config, s []float64, args ...*Arg) ([]float64, error) // pressure from entropy and temperature
}

// New substance model
func New(class string) (model Model, err error) {
	allocator, ok := allocators[class]
	if !ok {
		return nil, chk.Err("model %q is not available in 'gas' database", class)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
