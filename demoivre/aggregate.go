// Copyright 2026 The Binormal Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package demoivre

import "math"

// BinomialSum returns the probability mass of Binomial(n, p) over the
// integer counts k with max(0, ⌊a⌋) <= k <= min(n, ⌊b⌋).
//
// The sum runs in O(n); no closed form is used, so the result is exact
// only up to float summation error. Ranges that select no count at all
// (a > b, or a range entirely outside [0, n]) yield an exact 0 rather
// than an error. Invalid n or p fail with a DomainError.
func BinomialSum(n int, p, a, b float64) (float64, error) {
	if err := (Params{N: n, P: p}).Validate(); err != nil {
		return 0, err
	}
	// Reversed bounds select nothing. Checked before flooring: a > b can
	// still floor to the same count (e.g. 0.9 and 0.1) and the loop would
	// sum it.
	if a > b {
		return 0, nil
	}
	lo := int(math.Floor(a))
	hi := int(math.Floor(b))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += BinomialPMF(n, k, p)
	}
	return sum, nil
}

// BinomialRangeProbability is the strict form of BinomialSum. It
// re-validates the selection invariant 0 <= Min < Max <= n and fails with
// a RangeError instead of degenerating to 0, for callers whose contract
// requires an ordered in-bounds range.
func BinomialRangeProbability(params Params, sel RangeSelection) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if err := sel.Validate(params.N); err != nil {
		return 0, err
	}
	return BinomialSum(params.N, params.P, float64(sel.Min), float64(sel.Max))
}
