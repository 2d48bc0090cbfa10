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

// Package demoivre computes binomial-distribution statistics, their normal
// approximation, and a paired dataset demonstrating the De Moivre–Laplace
// convergence of one to the other.
//
// Everything in this package is a pure function over value parameters. No
// call blocks, mutates shared state, or depends on anything but its
// arguments, so every function is safe to call concurrently and safe to
// memoize by input tuple. Callers driving an interactive loop should do
// that memoization themselves (see the memo subpackage); the core
// recomputes from scratch on every call.
//
// Two accuracy caveats apply throughout. BinomialCoefficient returns a
// float64 approximation of the exact integer and is reliable up to a few
// hundred trials before relative error becomes visible in double
// precision. Erf uses the Abramowitz and Stegun rational approximation
// with a maximum absolute error near 1.5e-7, which is ample for a visual
// comparison but not for rigorous numerical verification.
//
// SeriesPoint.NormalY is a display-scaled quantity, not a probability
// density; see BuildSeries.
package demoivre
