// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/kyleniemeyer/PYroMat/units"
)

// The evaluators below implement the Shomate-form curve fit in internal
// units: kJ, kmol, Kelvin. Temperatures are pre-validated against Tlim by
// the argument resolver; out-of-range values are a precondition violation.

// region returns the index of the piecewise region containing T. The final
// region includes its upper boundary.
func (o *IdealGas) region(T float64) int {
	n := len(o.data.Tlim) - 1
	for i := 0; i < n-1; i++ {
		if T < o.data.Tlim[i+1] {
			return i
		}
	}
	return n - 1
}

// cpEval computes the isobaric specific heat [kJ/kmol/K]
func (o *IdealGas) cpEval(T []float64) (cp []float64) {
	cp = make([]float64, len(T))
	for i, Ti := range T {
		c := o.data.C[o.region(Ti)]
		t := Ti / 1000.0
		cp[i] = c[0] + t*(c[1]+t*(c[2]+t*c[3])) + c[4]/(t*t)
	}
	return
}

// hEval computes the enthalpy [kJ/kmol] and, with diff=true, its temperature
// derivative ∂h/∂T == cp [kJ/kmol/K]
func (o *IdealGas) hEval(T []float64, diff bool) (h, hT []float64) {
	h = make([]float64, len(T))
	if diff {
		hT = make([]float64, len(T))
	}
	for i, Ti := range T {
		c := o.data.C[o.region(Ti)]
		t := Ti / 1000.0
		h[i] = 1000.0 * (c[5] + t*(c[0]+t*(c[1]/2.0+t*(c[2]/3.0+t*c[3]/4.0))) - c[4]/t)
		if diff {
			hT[i] = c[0] + t*(c[1]+t*(c[2]+t*c[3])) + c[4]/(t*t)
		}
	}
	return
}

// sEval computes the entropy at the reference pressure [kJ/kmol/K] and, with
// diff=true, its temperature derivative ∂s/∂T == cp/T [kJ/kmol/K²]
func (o *IdealGas) sEval(T []float64, diff bool) (s, sT []float64) {
	s = make([]float64, len(T))
	if diff {
		sT = make([]float64, len(T))
	}
	for i, Ti := range T {
		c := o.data.C[o.region(Ti)]
		t := Ti / 1000.0
		s[i] = c[6] + c[0]*math.Log(t) + t*(c[1]+t*(c[2]/2.0+t*c[3]/3.0)) - c[4]/(2.0*t*t)
		if diff {
			// rescale for the t = T/1000 substitution
			sT[i] = (c[0]/t + c[1] + t*(c[2]+t*c[3]) + c[4]/(t*t*t)) / 1000.0
		}
	}
	return
}

// eEval computes the internal energy e = h - Ru・T [kJ/kmol] and, with
// diff=true, ∂e/∂T == cp - Ru
func (o *IdealGas) eEval(T []float64, diff bool) (e, eT []float64) {
	e, eT = o.hEval(T, diff)
	for i, Ti := range T {
		e[i] -= units.Ru * Ti
		if diff {
			eT[i] -= units.Ru
		}
	}
	return
}

// sdEval computes the entropy adjusted for a fixed density [kJ/kmol/K],
//   s(T) - Ru・ln(d・Rgas・T / pref)
// and, with diff=true, its temperature derivative. It is the inner function
// inverted when entropy and density are given together; d must share the
// shape of T.
func (o *IdealGas) sdEval(T, d []float64, diff bool) (s, sT []float64) {
	s, sT = o.sEval(T, diff)
	for i, Ti := range T {
		s[i] -= units.Ru * math.Log(d[i]*units.Rgas*Ti/PrefPa)
		if diff {
			sT[i] -= units.Ru / Ti
		}
	}
	return
}
