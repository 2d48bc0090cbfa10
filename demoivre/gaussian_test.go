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
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestErfZero(t *testing.T) {
	if got := Erf(0); got != 0 {
		t.Errorf("Erf(0): expected exact 0, got %g", got)
	}
	negZero := math.Copysign(0, -1)
	if got := Erf(negZero); got != 0 {
		t.Errorf("Erf(-0.0): expected exact 0, got %g", got)
	}
}

func TestErfOddSymmetry(t *testing.T) {
	for x := 0.0; x <= 6; x += 0.01 {
		if l, r := Erf(-x), -Erf(x); !within(l, r, 1.5e-7) {
			t.Fatalf("Erf(-%g)=%g differs from -Erf(%g)=%g", x, l, x, r)
		}
	}
}

func TestErfAgainstStdlib(t *testing.T) {
	// The rational approximation promises 1.5e-7 absolute error against
	// the true error function, which math.Erf computes far more
	// precisely.
	for x := -6.0; x <= 6; x += 0.003 {
		if got, want := Erf(x), math.Erf(x); !within(got, want, 1.5e-7) {
			t.Fatalf("Erf(%g): expected %g within 1.5e-7, got %g", x, want, got)
		}
	}
}

func TestErfRange(t *testing.T) {
	for _, x := range []float64{-50, -10, -1, 1, 10, 50} {
		got := Erf(x)
		if got < -1 || got > 1 {
			t.Errorf("Erf(%g)=%g outside [-1, 1]", x, got)
		}
	}
}

func TestNormalPDF(t *testing.T) {
	peak := 1 / math.Sqrt(2*math.Pi)
	for _, tc := range []struct {
		x, mean, stddev float64
		want            float64
	}{
		{0, 0, 1, peak},
		{1, 0, 1, peak * math.Exp(-0.5)},
		{-1, 0, 1, peak * math.Exp(-0.5)},
		{25, 25, 3.5355339059327378, 1 / (3.5355339059327378 * math.Sqrt(2*math.Pi))},
		{10000, 0, 1, 0},
	} {
		got, err := NormalPDF(tc.x, tc.mean, tc.stddev)
		if err != nil {
			t.Fatalf("NormalPDF(%g, %g, %g): unexpected error %v", tc.x, tc.mean, tc.stddev, err)
		}
		if !within(got, tc.want, 1e-12) {
			t.Errorf("NormalPDF(%g, %g, %g): expected %g, got %g", tc.x, tc.mean, tc.stddev, tc.want, got)
		}
	}
}

func TestNormalPDFInvalidStdDev(t *testing.T) {
	for _, stddev := range []float64{0, -1, -0.0001} {
		_, err := NormalPDF(0, 0, stddev)
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Fatalf("NormalPDF with stddev=%g: expected DomainError, got %v", stddev, err)
		}
		if derr.Param != "stddev" || derr.Value != stddev {
			t.Errorf("DomainError should carry the offending value, got %+v", derr)
		}
	}
}

func TestNormalCDF(t *testing.T) {
	for _, tc := range []struct {
		x, mean, stddev float64
		want            float64
	}{
		{0, 0, 1, 0.5},
		{25, 25, 3.5, 0.5},
		{-10000, 0, 1, 0},
		{10000, 0, 1, 1},
		{1, 0, 1, 0.8413447460685429},
		{-1.96, 0, 1, 0.024997895148220435},
	} {
		got, err := NormalCDF(tc.x, tc.mean, tc.stddev)
		if err != nil {
			t.Fatalf("NormalCDF(%g, %g, %g): unexpected error %v", tc.x, tc.mean, tc.stddev, err)
		}
		if !within(got, tc.want, 1.5e-7) {
			t.Errorf("NormalCDF(%g, %g, %g): expected %g within 1.5e-7, got %g", tc.x, tc.mean, tc.stddev, tc.want, got)
		}
	}

	if _, err := NormalCDF(0, 0, 0); err == nil {
		t.Error("NormalCDF with stddev=0: expected error, got none")
	}
}

func TestNormalIntegral(t *testing.T) {
	// One standard deviation either side of the mean holds ~68.27% of the
	// mass regardless of the parameters.
	for _, tc := range []struct {
		mean, stddev float64
	}{
		{0, 1},
		{25, 3.5355},
		{0.5, 0.0707},
	} {
		got, err := NormalIntegral(tc.mean-tc.stddev, tc.mean+tc.stddev, tc.mean, tc.stddev)
		if err != nil {
			t.Fatalf("NormalIntegral: unexpected error %v", err)
		}
		if !within(got, 0.6826894921370859, 1e-6) {
			t.Errorf("NormalIntegral over mean±stddev (mean=%g stddev=%g): expected ~0.6827, got %g", tc.mean, tc.stddev, got)
		}
	}
}

func TestNormalIntegralEmpty(t *testing.T) {
	for _, a := range []float64{-3, 0, 1.5, 42} {
		got, err := NormalIntegral(a, a, 10, 2)
		if err != nil {
			t.Fatalf("NormalIntegral(%g, %g): unexpected error %v", a, a, err)
		}
		if got != 0 {
			t.Errorf("NormalIntegral(%g, %g, 10, 2): expected 0, got %g", a, a, got)
		}
	}
}

func TestNormalIntegralReversedBounds(t *testing.T) {
	fwd, err := NormalIntegral(-1, 2, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := NormalIntegral(2, -1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if rev != -fwd {
		t.Errorf("reversed bounds: expected %g, got %g", -fwd, rev)
	}
}

func TestNormalCDFAgainstDistuv(t *testing.T) {
	ref := distuv.Normal{Mu: 3, Sigma: 1.7}
	for x := -5.0; x <= 11; x += 0.05 {
		want := ref.CDF(x)
		got, err := NormalCDF(x, 3, 1.7)
		if err != nil {
			t.Fatal(err)
		}
		if !within(got, want, 1.5e-7) {
			t.Fatalf("NormalCDF(%g, 3, 1.7): expected %g (distuv) within 1.5e-7, got %g", x, want, got)
		}
	}
}
