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

import (
	"fmt"
	"math"
	"strconv"
)

// ScaleMode selects the domain the comparison is plotted over.
type ScaleMode int

const (
	// ModeCounts plots raw success counts k in {0..n}.
	ModeCounts ScaleMode = iota
	// ModeProportions plots sample proportions k/n in [0,1].
	ModeProportions
)

func (m ScaleMode) String() string {
	switch m {
	case ModeCounts:
		return "counts"
	case ModeProportions:
		return "proportions"
	}
	return fmt.Sprintf("ScaleMode(%d)", int(m))
}

// ParseScaleMode maps the string forms "counts" and "proportions" to their
// ScaleMode.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "counts":
		return ModeCounts, nil
	case "proportions":
		return ModeProportions, nil
	}
	return 0, fmt.Errorf("demoivre: unknown scale mode %q", s)
}

// SeriesPoint pairs the binomial mass at one success count with the
// display-scaled normal density at the same domain value.
//
// NormalY is scaled so the normal curve visually matches the binomial bar
// heights. It is NOT a probability density: integrating it claims no
// probability mass. Anything other than direct plotting must recompute
// NormalPDF instead.
type SeriesPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	NormalY float64 `json:"normalY"`
	Label   string  `json:"label"`
}

// MeanAndStdDev returns the reference normal parameters for Binomial(n, p)
// under the given scale mode: (np, √(npq)) for counts, (p, √(pq/n)) for
// proportions.
func MeanAndStdDev(n int, p float64, mode ScaleMode) (mu, sigma float64, err error) {
	if err := (Params{N: n, P: p}).Validate(); err != nil {
		return 0, 0, err
	}
	q := 1 - p
	switch mode {
	case ModeCounts:
		return float64(n) * p, math.Sqrt(float64(n) * p * q), nil
	case ModeProportions:
		return p, math.Sqrt(p * q / float64(n)), nil
	}
	return 0, 0, &DomainError{Param: "mode", Value: float64(mode)}
}

// BuildSeries returns the paired comparison dataset for Binomial(n, p):
// exactly n+1 points ordered by ascending X, one per success count. A
// fresh slice is built on every call; the result is never mutated
// afterwards.
//
// The normal curve is rescaled so its peak matches the tallest binomial
// bar. That makes the overlay visually comparable across parameter
// choices at the cost of NormalY's density semantics (see SeriesPoint).
func BuildSeries(n int, p float64, mode ScaleMode) ([]SeriesPoint, error) {
	mu, sigma, err := MeanAndStdDev(n, p, mode)
	if err != nil {
		return nil, err
	}

	masses := make([]float64, n+1)
	maxBinomial := 0.0
	for k := 0; k <= n; k++ {
		masses[k] = BinomialPMF(n, k, p)
		if masses[k] > maxBinomial {
			maxBinomial = masses[k]
		}
	}

	densities := make([]float64, n+1)
	maxNormal := 0.0
	for k := 0; k <= n; k++ {
		d, err := NormalPDF(domainValue(k, n, mode), mu, sigma)
		if err != nil {
			return nil, err
		}
		densities[k] = d
		if d > maxNormal {
			maxNormal = d
		}
	}

	scale := scaleFactor(maxBinomial, maxNormal)

	points := make([]SeriesPoint, 0, n+1)
	for k := 0; k <= n; k++ {
		points = append(points, SeriesPoint{
			X:       domainValue(k, n, mode),
			Y:       masses[k],
			NormalY: densities[k] * scale,
			Label:   pointLabel(k, n, mode),
		})
	}
	return points, nil
}

// scaleFactor maps the normal curve's peak onto the tallest binomial bar.
// When either maximum is zero the ratio would be 0/0 or Inf; an unscaled
// overlay is the only sane fallback.
func scaleFactor(maxBinomial, maxNormal float64) float64 {
	if maxBinomial > 0 && maxNormal > 0 {
		return maxBinomial / maxNormal
	}
	return 1
}

func domainValue(k, n int, mode ScaleMode) float64 {
	if mode == ModeProportions {
		return float64(k) / float64(n)
	}
	return float64(k)
}

func pointLabel(k, n int, mode ScaleMode) string {
	if mode == ModeProportions {
		return strconv.FormatFloat(float64(k)/float64(n), 'g', 4, 64)
	}
	return strconv.Itoa(k)
}
