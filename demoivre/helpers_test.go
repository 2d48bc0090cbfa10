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

// aeq reports whether x and y agree to 8 significant figures.
func aeq(x, y float64) bool {
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	const eps = 1e-8
	return x-eps*x <= y && y <= x+eps*x
}

// within reports whether got is inside tol of want, absolutely.
func within(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}
