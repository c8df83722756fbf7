// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_units01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units01. temperature scales")

	v := []float64{25.0}
	err := TemperatureScale(v, "C", "K")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "25 C → K", 1e-13, v[0], 298.15)

	v = []float64{32.0}
	TemperatureScale(v, "F", "K")
	chk.Float64(tst, "32 F → K", 1e-12, v[0], 273.15)

	v = []float64{1000.0}
	TemperatureScale(v, "K", "R")
	chk.Float64(tst, "1000 K → R", 1e-12, v[0], 1800.0)

	v = []float64{0.0}
	TemperatureScale(v, "K", "F")
	chk.Float64(tst, "0 K → F", 1e-12, v[0], -459.67)

	// per-degree quantities ignore the scale offsets
	f, err := TemperatureFactor("K", "F", -1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "per-K → per-F", 1e-15, f, 5.0/9.0)
	f, _ = TemperatureFactor("C", "K", 1)
	chk.Float64(tst, "ΔC → ΔK", 1e-15, f, 1.0)

	if err := TemperatureScale(v, "K", "celsius"); err == nil {
		tst.Errorf("unknown unit must cause an error\n")
		return
	}
}

func Test_units02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units02. pressure, energy and volume")

	f, err := PressureFactor("bar", "Pa", 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "bar → Pa", 1e-15, f, 1e5)

	f, _ = PressureFactor("atm", "kPa", 1)
	chk.Float64(tst, "atm → kPa", 1e-12, f, 101.325)

	f, _ = EnergyFactor("BTU", "kJ", 1)
	chk.Float64(tst, "BTU → kJ", 1e-12, f, 1.055056)

	f, _ = EnergyFactor("kJ", "J", -1)
	chk.Float64(tst, "per-kJ → per-J", 1e-15, f, 1e-3)

	f, _ = VolumeFactor("L", "m3", 1)
	chk.Float64(tst, "L → m3", 1e-15, f, 1e-3)

	v := []float64{2.0, 4.0}
	if err := Pressure(v, "bar", "Pa", 1); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "pressures", 1e-12, v, []float64{2e5, 4e5})

	if _, err := EnergyFactor("erg", "J", 1); err == nil {
		tst.Errorf("unknown unit must cause an error\n")
		return
	}
}

func Test_units03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units03. matter conversions")

	mw := 28.0134 // N2 [g/mol]

	f, err := MatterFactor(mw, "kg", "kmol", 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kg → kmol", 1e-15, f, 1.0/mw)

	f, _ = MatterFactor(mw, "kmol", "g", -1)
	chk.Float64(tst, "per-kmol → per-g", 1e-15, f, 1.0/(1000.0*mw))

	f, _ = MatterFactor(mw, "mol", "kmol", 1)
	chk.Float64(tst, "mol → kmol", 1e-15, f, 1e-3)

	if _, err := MatterFactor(0, "kg", "kmol", 1); err == nil {
		tst.Errorf("zero molecular weight must cause an error\n")
		return
	}
	if _, err := MatterFactor(mw, "slug", "kmol", 1); err == nil {
		tst.Errorf("unknown unit must cause an error\n")
		return
	}
}

func Test_units04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units04. configuration defaults")

	cfg := NewConfig()
	chk.String(tst, cfg.Temperature, "K")
	chk.String(tst, cfg.Pressure, "bar")
	chk.String(tst, cfg.Energy, "kJ")
	chk.String(tst, cfg.Matter, "kg")
	chk.Float64(tst, "DefT", 1e-15, cfg.DefT, 298.15)
	chk.Float64(tst, "DefP", 1e-15, cfg.DefP, 1.01325)

	// defaults follow the configured units
	var cc Config
	cc.Temperature = "C"
	cc.Pressure = "Pa"
	cc.SetDefault()
	chk.Float64(tst, "DefT [C]", 1e-12, cc.DefT, 25.0)
	chk.Float64(tst, "DefP [Pa]", 1e-12, cc.DefP, 101325.0)
}
