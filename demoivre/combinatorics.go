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

// BinomialCoefficient returns the number of ways to choose k items out of
// n, as a float64. k outside [0, n] yields 0.
//
// The value is built with the multiplicative recurrence over the smaller
// of k and n-k factors, which keeps the accumulated floating point error
// low without computing any factorial. The result approximates the exact
// integer; it is trustworthy up to a few hundred trials, beyond which
// relative error becomes visible in double precision.
func BinomialCoefficient(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if nk := n - k; nk < k {
		k = nk
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

// BinomialPMF returns P(X = k) for X ~ Binomial(n, p). k outside [0, n]
// yields 0.
//
// p is expected to lie strictly inside (0, 1); with boundary p the 0^0
// cases resolve to 1, so a caller breaking that invariant still gets the
// correct point mass rather than NaN.
func BinomialPMF(n, k int, p float64) float64 {
	if k < 0 || k > n {
		return 0
	}
	return BinomialCoefficient(n, k) * intPow(p, k) * intPow(1-p, n-k)
}

// intPow pins the 0^0 = 1 convention rather than leaning on math.Pow's
// treatment of that case.
func intPow(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	return math.Pow(base, float64(exp))
}
