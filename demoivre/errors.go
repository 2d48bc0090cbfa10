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

import "fmt"

// DomainError is returned when a parameter lies outside the domain a
// function requires, e.g. a non-positive standard deviation or a success
// probability on or beyond the (0,1) boundary. It carries the offending
// value; the package never papers over a detected invalid state with NaN
// or Inf.
type DomainError struct {
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("demoivre: %s=%v outside valid domain", e.Param, e.Value)
}

// RangeError is returned by the strict range operations when a selection
// violates 0 <= Min < Max <= N.
type RangeError struct {
	Min, Max, N int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("demoivre: range [%d, %d] invalid for n=%d", e.Min, e.Max, e.N)
}
