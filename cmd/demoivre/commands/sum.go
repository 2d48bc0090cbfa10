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

	"github.com/spf13/cobra"

	"github.com/demoivre/binormal/demoivre"
)

func sumCmd() *cobra.Command {
	var minK, maxK int
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Probability mass over a range of success counts, exact and approximated",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, p := clampParams()
			params := demoivre.Params{N: n, P: p}
			sel := demoivre.RangeSelection{Min: minK, Max: maxK}

			exact, err := demoivre.BinomialRangeProbability(params, sel)
			if err != nil {
				return err
			}

			mu, sigma, err := demoivre.MeanAndStdDev(n, p, demoivre.ModeCounts)
			if err != nil {
				return err
			}
			// Continuity correction: the normal mass over
			// [min-0.5, max+0.5] approximates the discrete sum.
			approx, err := demoivre.NormalIntegral(float64(sel.Min)-0.5, float64(sel.Max)+0.5, mu, sigma)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "P(%d <= X <= %d) for X ~ Binomial(%d, %g)\n\n", sel.Min, sel.Max, n, p)
			fmt.Fprintf(out, "%-18s %.9f\n", "binomial sum", exact)
			fmt.Fprintf(out, "%-18s %.9f\n", "normal approx", approx)
			fmt.Fprintf(out, "%-18s %.3g\n", "absolute error", math.Abs(exact-approx))
			return nil
		},
	}
	cmd.Flags().IntVar(&minK, "min", 0, "lower success count (inclusive)")
	cmd.Flags().IntVar(&maxK, "max", 1, "upper success count (inclusive)")
	return cmd
}
