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

// Params describes a binomial distribution: N independent Bernoulli trials
// with success probability P. Values are immutable per computation and
// owned by the caller; build a fresh Params whenever the inputs change.
type Params struct {
	N int
	P float64
}

// Validate reports whether the parameters are inside the supported domain:
// N >= 1 and P strictly inside (0, 1).
func (pr Params) Validate() error {
	if pr.N < 1 {
		return &DomainError{Param: "n", Value: float64(pr.N)}
	}
	if pr.P <= 0 || pr.P >= 1 {
		return &DomainError{Param: "p", Value: pr.P}
	}
	return nil
}

// RangeSelection selects the closed integer interval [Min, Max] of success
// counts. The invariant 0 <= Min < Max <= n is the caller's to enforce
// before invoking the strict range operations; those operations re-validate
// and fail rather than guess.
type RangeSelection struct {
	Min, Max int
}

// Validate checks the selection against a trial count n.
func (r RangeSelection) Validate(n int) error {
	if r.Min < 0 || r.Max > n || r.Min >= r.Max {
		return &RangeError{Min: r.Min, Max: r.Max, N: n}
	}
	return nil
}
