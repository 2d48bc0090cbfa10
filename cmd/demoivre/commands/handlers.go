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

package commands

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/demoivre/binormal/demoivre"
	"github.com/demoivre/binormal/demoivre/memo"
)

var encoder = jsoniter.ConfigCompatibleWithStandardLibrary

type sumResponse struct {
	Mass         float64 `json:"mass"`
	NormalApprox float64 `json:"normalApprox"`
}

// seriesHandler answers GET /api/series?n=50&p=0.5&mode=counts with the
// paired comparison series.
func seriesHandler(cache *memo.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, p, ok := distributionQuery(w, r)
		if !ok {
			return
		}
		m, err := demoivre.ParseScaleMode(queryOr(r, "mode", "counts"))
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		points, err := cache.Series(n, p, m)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, points)
	}
}

// sumHandler answers GET /api/sum?n=50&p=0.5&min=20&max=30 with the exact
// binomial mass over the range and its continuity-corrected normal
// approximation.
func sumHandler(cache *memo.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, p, ok := distributionQuery(w, r)
		if !ok {
			return
		}
		minK, err := intQuery(r, "min", 0)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		maxK, err := intQuery(r, "max", n)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		sel := demoivre.RangeSelection{Min: minK, Max: maxK}
		if err := sel.Validate(n); err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}

		mass, err := cache.Sum(n, p, float64(sel.Min), float64(sel.Max))
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		mu, sigma, err := demoivre.MeanAndStdDev(n, p, demoivre.ModeCounts)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		approx, err := demoivre.NormalIntegral(float64(sel.Min)-0.5, float64(sel.Max)+0.5, mu, sigma)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, sumResponse{Mass: mass, NormalApprox: approx})
	}
}

// distributionQuery parses and validates the n and p query parameters,
// writing a 400 response itself when they are unusable.
func distributionQuery(w http.ResponseWriter, r *http.Request) (n int, p float64, ok bool) {
	n, err := intQuery(r, "n", 50)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return 0, 0, false
	}
	p, err = floatQuery(r, "p", 0.5)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return 0, 0, false
	}
	if err := (demoivre.Params{N: n, P: p}).Validate(); err != nil {
		httpError(w, http.StatusBadRequest, err)
		return 0, 0, false
	}
	return n, p, true
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", key, err)
	}
	return n, nil
}

func floatQuery(r *http.Request, key string, fallback float64) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", key, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("parameter %s: %q is not finite", key, v)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := encoder.NewEncoder(w).Encode(v); err != nil {
		httpError(w, http.StatusInternalServerError, err)
	}
}

func httpError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = encoder.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
