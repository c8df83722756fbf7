// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// Config holds the active unit system and the default state applied when a
// property call leaves temperature or pressure unspecified. A Config is
// read-only during an evaluation; callers needing different unit systems use
// distinct values.
type Config struct {
	DefT        float64 // default temperature [Temperature units]
	DefP        float64 // default pressure [Pressure units]
	Temperature string  // unit of absolute temperature
	Pressure    string  // unit of pressure
	Energy      string  // unit of energy
	Matter      string  // unit of matter quantity (mass or molar)
	Volume      string  // unit of volume
	Mass        string  // unit of mass
	Molar       string  // unit of molar quantity
}

// SetDefault sets default values for empty fields
func (o *Config) SetDefault() {
	if o.Temperature == "" {
		o.Temperature = "K"
	}
	if o.Pressure == "" {
		o.Pressure = "bar"
	}
	if o.Energy == "" {
		o.Energy = "kJ"
	}
	if o.Matter == "" {
		o.Matter = "kg"
	}
	if o.Volume == "" {
		o.Volume = "m3"
	}
	if o.Mass == "" {
		o.Mass = "kg"
	}
	if o.Molar == "" {
		o.Molar = "kmol"
	}
	if o.DefT == 0 {
		o.DefT = 298.15
		if o.Temperature != "K" {
			t := []float64{o.DefT}
			TemperatureScale(t, "K", o.Temperature)
			o.DefT = t[0]
		}
	}
	if o.DefP == 0 {
		o.DefP = 1.01325
		if o.Pressure != "bar" {
			p := []float64{o.DefP}
			Pressure(p, "bar", o.Pressure, 1)
			o.DefP = p[0]
		}
	}
}

// NewConfig returns a configuration with default units (K, bar, kJ, kg, m3)
// and the standard state 298.15 K, 1 atm as the default temperature and
// pressure
func NewConfig() *Config {
	o := new(Config)
	o.SetDefault()
	return o
}
