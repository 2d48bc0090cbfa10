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
	"github.com/spf13/cobra"

	"github.com/demoivre/binormal/demoivre"
)

var (
	trials int
	prob   float64
	mode   string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "demoivre",
		Short:        "Compare a binomial distribution with its normal approximation",
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVar(&trials, "n", 50, "number of Bernoulli trials (clamped to 1-200)")
	root.PersistentFlags().Float64Var(&prob, "p", 0.5, "success probability (clamped to 0.01-0.99)")
	root.PersistentFlags().StringVar(&mode, "mode", "counts", "domain scale: counts or proportions")

	root.AddCommand(seriesCmd(), sumCmd(), integralCmd(), serveCmd())
	return root.Execute()
}

// clampParams folds interactive input into the valid domain before the
// core sees it, the same pre-clamping a slider UI would apply.
func clampParams() (int, float64) {
	n := trials
	if n < 1 {
		n = 1
	}
	if n > 200 {
		n = 200
	}
	p := prob
	if p < 0.01 {
		p = 0.01
	}
	if p > 0.99 {
		p = 0.99
	}
	return n, p
}

func parseMode() (demoivre.ScaleMode, error) {
	return demoivre.ParseScaleMode(mode)
}
