// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num implements the vectorised scalar inversion engine
package num

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Fdf computes f(x) and df/dx element-wise. Positions where active is false
// may be skipped; their results are never read.
type Fdf func(x []float64, active []bool) (f, dfdx []float64)

// Invert solves fn(x) == y for x, in place, over the elements flagged in
// active, using damped Newton iterations bounded by [xmin, xmax].
//
// The caller seeds x with an initial guess (the midpoint of the valid domain
// works well for monotonic properties). A Newton step that leaves the domain
// is halved until it lands back inside; more than nmax halvings for a single
// step aborts the inversion, since the function cannot be trusted between the
// bounds. An element is deactivated once |y - f(x)| <= ep・|y|.
//
// ep and nmax default to 1e-6 and 20 when non-positive. When the outer loop
// reaches nmax with elements still active, the best available x is kept and
// the number of unconverged elements is returned along with a warning; this
// failure is non-fatal and callers may retry with a better guess.
func Invert(fn Fdf, y, x []float64, active []bool, xmin, xmax, ep float64, nmax int) (unconverged int, err error) {

	// defaults
	if ep <= 0 {
		ep = 1e-6
	}
	if nmax <= 0 {
		nmax = 20
	}

	// consistency
	n := len(y)
	if len(x) != n || len(active) != n {
		return 0, chk.Err("target, guess and active arrays must have equal lengths (%d, %d, %d)", n, len(x), len(active))
	}
	if xmin >= xmax {
		return 0, chk.Err("invalid domain: xmin=%g must be smaller than xmax=%g", xmin, xmax)
	}

	// iteration state; owned by this call only
	dx := make([]float64, n)

	for it := 0; ; it++ {

		// count remaining work
		nact := 0
		for i := 0; i < n; i++ {
			if active[i] {
				nact++
			}
		}
		if nact == 0 {
			return 0, nil
		}
		if it >= nmax {
			io.Pfred("warning: inversion failed to converge for %d elements after %d iterations\n", nact, nmax)
			return nact, nil
		}

		// evaluate function and derivative over active elements
		f, dfdx := fn(x, active)

		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}

			// Newton step
			e := y[i] - f[i]
			dx[i] = e / dfdx[i]
			x[i] += dx[i]

			// halve the step until back within the domain
			nh := 0
			for x[i] < xmin || x[i] > xmax {
				dx[i] /= 2.0
				x[i] -= dx[i]
				nh++
				if nh > nmax {
					return nact, chk.Err("inversion cannot bring x=%g back within [%g,%g] after %d step bisections", x[i], xmin, xmax, nmax)
				}
			}

			// convergence check uses the residual at the pre-step position
			if math.Abs(e) <= ep*math.Abs(y[i]) {
				active[i] = false
			}
		}
	}
}
