// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements element-wise conversions between physical unit systems
//
// Conversions operate in place over slices. The exponent argument handles units
// appearing in the denominator of a compound quantity; e.g. converting the
// temperature dimension of a specific heat uses exponent=-1.
package units

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ru is the universal gas constant [kJ/kmol/K]
const Ru = 8.314462618

// Rgas is the universal gas constant [J/kmol/K]; use for p = d・Rgas・T
// with d in kmol/m³ and p in Pa
const Rgas = 1000 * Ru

// factor tables map unit names to the quantity of base units per unit.
// Bases: K (scale), Pa, J, m³, g, mol
var (
	temperatureFactors = map[string]float64{"K": 1, "C": 1, "R": 5.0 / 9.0, "F": 5.0 / 9.0}
	pressureFactors    = map[string]float64{"Pa": 1, "kPa": 1e3, "MPa": 1e6, "bar": 1e5, "atm": 101325, "psi": 6894.757293168}
	energyFactors      = map[string]float64{"J": 1, "kJ": 1e3, "MJ": 1e6, "cal": 4.184, "kcal": 4184, "BTU": 1055.056}
	volumeFactors      = map[string]float64{"m3": 1, "L": 1e-3, "cm3": 1e-6, "ft3": 0.028316846592, "in3": 1.6387064e-5}
	massFactors        = map[string]float64{"mg": 1e-3, "g": 1, "kg": 1e3, "lbm": 453.59237}
	molarFactors       = map[string]float64{"mol": 1, "kmol": 1e3, "lbmol": 453.59237}
)

// affine scales for absolute temperatures: K = a・x + b
var temperatureScales = map[string][2]float64{
	"K": {1, 0},
	"C": {1, 273.15},
	"R": {5.0 / 9.0, 0},
	"F": {5.0 / 9.0, 459.67 * 5.0 / 9.0},
}

// factor computes the multiplicative conversion factor between two units
func factor(kind string, table map[string]float64, from, to string, exponent int) (s float64, err error) {
	ff, ok := table[from]
	if !ok {
		return 0, chk.Err("unknown %s unit %q", kind, from)
	}
	ft, ok := table[to]
	if !ok {
		return 0, chk.Err("unknown %s unit %q", kind, to)
	}
	return math.Pow(ff/ft, float64(exponent)), nil
}

// mul scales v in place
func mul(v []float64, s float64) {
	for i := range v {
		v[i] *= s
	}
}

// TemperatureFactor returns the conversion factor for temperature differences
// and per-degree quantities. Celsius degrees are Kelvin-sized and Fahrenheit
// degrees are Rankine-sized, so offsets do not apply here.
func TemperatureFactor(from, to string, exponent int) (float64, error) {
	return factor("temperature", temperatureFactors, from, to, exponent)
}

// PressureFactor returns the conversion factor between pressure units
func PressureFactor(from, to string, exponent int) (float64, error) {
	return factor("pressure", pressureFactors, from, to, exponent)
}

// EnergyFactor returns the conversion factor between energy units
func EnergyFactor(from, to string, exponent int) (float64, error) {
	return factor("energy", energyFactors, from, to, exponent)
}

// VolumeFactor returns the conversion factor between volume units
func VolumeFactor(from, to string, exponent int) (float64, error) {
	return factor("volume", volumeFactors, from, to, exponent)
}

// MassFactor returns the conversion factor between mass units
func MassFactor(from, to string, exponent int) (float64, error) {
	return factor("mass", massFactors, from, to, exponent)
}

// MolarFactor returns the conversion factor between molar units
func MolarFactor(from, to string, exponent int) (float64, error) {
	return factor("molar", molarFactors, from, to, exponent)
}

// MatterFactor returns the conversion factor between matter units, which may
// be mass or molar units mixed freely. Crossing between the two bases uses
// the molecular weight mw [g/mol].
func MatterFactor(mw float64, from, to string, exponent int) (float64, error) {
	ff, err := matterToMol(mw, from)
	if err != nil {
		return 0, err
	}
	ft, err := matterToMol(mw, to)
	if err != nil {
		return 0, err
	}
	return math.Pow(ff/ft, float64(exponent)), nil
}

// matterToMol returns the number of moles per matter unit
func matterToMol(mw float64, unit string) (float64, error) {
	if f, ok := molarFactors[unit]; ok {
		return f, nil
	}
	if f, ok := massFactors[unit]; ok {
		if mw <= 0 {
			return 0, chk.Err("molecular weight must be positive to convert matter units (mw=%g)", mw)
		}
		return f / mw, nil
	}
	return 0, chk.Err("unknown matter unit %q", unit)
}

// Temperature converts per-degree temperature dimensions in place
func Temperature(v []float64, from, to string, exponent int) error {
	s, err := TemperatureFactor(from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}

// TemperatureScale converts absolute temperatures in place, honouring the
// zero offsets of the C and F scales
func TemperatureScale(v []float64, from, to string) error {
	sf, ok := temperatureScales[from]
	if !ok {
		return chk.Err("unknown temperature unit %q", from)
	}
	st, ok := temperatureScales[to]
	if !ok {
		return chk.Err("unknown temperature unit %q", to)
	}
	for i := range v {
		v[i] = (sf[0]*v[i] + sf[1] - st[1]) / st[0]
	}
	return nil
}

// Pressure converts pressures in place
func Pressure(v []float64, from, to string, exponent int) error {
	s, err := PressureFactor(from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}

// Energy converts energies in place
func Energy(v []float64, from, to string, exponent int) error {
	s, err := EnergyFactor(from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}

// Volume converts volumes in place
func Volume(v []float64, from, to string, exponent int) error {
	s, err := VolumeFactor(from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}

// Mass converts masses in place
func Mass(v []float64, from, to string, exponent int) error {
	s, err := MassFactor(from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}

// Molar converts molar quantities in place
func Molar(v []float64, from, to string, exponent int) error {
	s, err := MolarFactor(from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}

// Matter converts matter quantities in place; see MatterFactor
func Matter(v []float64, mw float64, from, to string, exponent int) error {
	s, err := MatterFactor(mw, from, to, exponent)
	if err != nil {
		return err
	}
	mul(v, s)
	return nil
}
