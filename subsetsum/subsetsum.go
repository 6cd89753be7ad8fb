// SPDX-License-Identifier: MIT

package subsetsum

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Problem is a closest-subset-sum instance.
type Problem struct {
	Items  []float64
	Target float64
}

// Result is a certified subset.
type Result struct {
	// Include[i] reports whether Items[i] is in the subset.
	Include []bool
	// Error is |Target − Σ included items|.
	Error float64
	// Optimum is the best error over all subsets, as returned by Solve.
	Optimum float64
}

// Solve returns the smallest |Target − Σ_{i∈S} Items[i]| over all subsets S.
//
// Errors:
//   - ErrInfeasible for more than MaxItems items or a non-finite value.
//
// Complexity:
//   - O(2^(n/2)) time and space.
func Solve(p Problem, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := validate(p, o); err != nil {
		return 0, subsetsumErrorf(opSolve, err)
	}
	best := closest(p.Items, p.Target)
	if math.IsInf(best, 0) || math.IsNaN(best) {
		return 0, subsetsumErrorf(opSolve, ErrInfeasible)
	}

	return best, nil
}

// Certificate returns a subset whose sum is within the optimum plus the
// certificate tolerance max(EvalErr, RelativeTolerance·(|T| + Σ|vᵢ|)).
//
// Implementation:
//   - Stage 1: optimum e = Solve over all items.
//   - Stage 2: for i = 0..n−1 drop item i; if the remaining items can no
//     longer reach e + tol, put it back.
//
// The surviving set is exactly the subset: any optimal subset of it that
// left out a surviving item would have let that item be dropped.
//
// Errors:
//   - ErrInfeasible as for Solve.
//
// Complexity:
//   - O(n·2^(n/2)) time, O(2^(n/2)) space.
func Certificate(p Problem, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := validate(p, o); err != nil {
		return Result{}, subsetsumErrorf(opCertificate, err)
	}
	best := closest(p.Items, p.Target)
	if math.IsInf(best, 0) || math.IsNaN(best) {
		return Result{}, subsetsumErrorf(opCertificate, ErrInfeasible)
	}
	tol := o.tolerance(p)

	n := len(p.Items)
	include := make([]bool, n)
	for i := range include {
		include[i] = true
	}
	rest := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		include[i] = false
		rest = rest[:0]
		for j, v := range p.Items {
			if include[j] {
				rest = append(rest, v)
			}
		}
		if closest(rest, p.Target) > best+tol {
			include[i] = true
		}
	}

	sum := 0.0
	for i, v := range p.Items {
		if include[i] {
			sum += v
		}
	}

	return Result{Include: include, Error: math.Abs(p.Target - sum), Optimum: best}, nil
}

// Tolerance returns the certificate tolerance Certificate uses for p.
func Tolerance(p Problem, opts ...Option) float64 {
	return gatherOptions(opts...).tolerance(p)
}

func (o Options) tolerance(p Problem) float64 {
	abs := make(stats.Float64Data, len(p.Items))
	for i, v := range p.Items {
		abs[i] = math.Abs(v)
	}
	scale, err := stats.Sum(abs)
	if err != nil {
		// empty input
		scale = 0
	}

	return math.Max(o.evalErr, o.relTol*(math.Abs(p.Target)+scale))
}

func validate(p Problem, o Options) error {
	if len(p.Items) > o.maxItems || !finite(p.Target) {
		return ErrInfeasible
	}
	for _, v := range p.Items {
		if !finite(v) {
			return ErrInfeasible
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// closest is the meet-in-the-middle scan: a ascends, b descends.
func closest(items []float64, target float64) float64 {
	h := len(items) / 2
	a, b := SortedSums(items[:h]), SortedSums(items[h:])
	i, j := 0, len(b)-1
	best := math.Inf(1)
	for {
		d := target - (a[i] + b[j])
		best = math.Min(best, math.Abs(d))
		switch {
		case d > 0:
			if i == len(a)-1 {
				return best
			}
			i++
		case d < 0:
			if j == 0 {
				return best
			}
			j--
		default:
			return best
		}
	}
}
