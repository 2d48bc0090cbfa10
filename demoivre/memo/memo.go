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

// Package memo caches demoivre results by their input tuple.
//
// The core package is pure, so a cached value never goes stale; the cache
// exists only to bound redundant O(n) recomputation when an interactive
// caller re-requests the same parameters, e.g. a UI re-rendering on
// unrelated state changes. Errors are never cached.
package memo

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"github.com/demoivre/binormal/demoivre"
)

type seriesKey struct {
	n    int
	p    float64
	mode demoivre.ScaleMode
}

type sumKey struct {
	n    int
	p    float64
	a, b float64
}

// Cache memoizes BuildSeries by (n, p, mode) and BinomialSum by
// (n, p, a, b). Concurrent lookups of the same missing key compute the
// result once and share it. Safe for use from multiple goroutines.
type Cache struct {
	group singleflight.Group

	mu     sync.Mutex
	series map[seriesKey][]demoivre.SeriesPoint
	sums   map[sumKey]float64

	hits    *prometheus.CounterVec
	misses  *prometheus.CounterVec
	entries prometheus.Gauge
}

// New returns an empty Cache. If reg is non-nil, hit/miss counters and an
// entry-count gauge are registered on it; with a nil reg the metrics are
// still maintained but not exported anywhere.
func New(reg prometheus.Registerer) *Cache {
	factory := promauto.With(reg)
	return &Cache{
		series: map[seriesKey][]demoivre.SeriesPoint{},
		sums:   map[sumKey]float64{},
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "demoivre_cache_hits_total",
			Help: "Lookups answered from the cache without recomputation.",
		}, []string{"op"}),
		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "demoivre_cache_misses_total",
			Help: "Lookups that required computing the result.",
		}, []string{"op"}),
		entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "demoivre_cache_entries",
			Help: "Memoized results currently held.",
		}),
	}
}

// Series returns demoivre.BuildSeries(n, p, mode), memoized. The returned
// slice is shared across callers and must be treated as read-only.
func (c *Cache) Series(n int, p float64, mode demoivre.ScaleMode) ([]demoivre.SeriesPoint, error) {
	key := seriesKey{n: n, p: p, mode: mode}
	c.mu.Lock()
	if points, ok := c.series[key]; ok {
		c.mu.Unlock()
		c.hits.WithLabelValues("series").Inc()
		return points, nil
	}
	c.mu.Unlock()
	c.misses.WithLabelValues("series").Inc()

	v, err, _ := c.group.Do(fmt.Sprintf("series:%d:%v:%d", n, p, mode), func() (interface{}, error) {
		points, err := demoivre.BuildSeries(n, p, mode)
		if err != nil {
			return nil, err
		}
		c.store(func() { c.series[key] = points })
		return points, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]demoivre.SeriesPoint), nil
}

// Sum returns demoivre.BinomialSum(n, p, a, b), memoized.
func (c *Cache) Sum(n int, p, a, b float64) (float64, error) {
	key := sumKey{n: n, p: p, a: a, b: b}
	c.mu.Lock()
	if sum, ok := c.sums[key]; ok {
		c.mu.Unlock()
		c.hits.WithLabelValues("sum").Inc()
		return sum, nil
	}
	c.mu.Unlock()
	c.misses.WithLabelValues("sum").Inc()

	v, err, _ := c.group.Do(fmt.Sprintf("sum:%d:%v:%v:%v", n, p, a, b), func() (interface{}, error) {
		sum, err := demoivre.BinomialSum(n, p, a, b)
		if err != nil {
			return nil, err
		}
		c.store(func() { c.sums[key] = sum })
		return sum, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Purge drops every memoized result.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.series = map[seriesKey][]demoivre.SeriesPoint{}
	c.sums = map[sumKey]float64{}
	c.entries.Set(0)
	c.mu.Unlock()
}

func (c *Cache) store(put func()) {
	c.mu.Lock()
	put()
	c.entries.Set(float64(len(c.series) + len(c.sums)))
	c.mu.Unlock()
}
