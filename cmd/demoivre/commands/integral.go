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

	"github.com/spf13/cobra"

	"github.com/demoivre/binormal/demoivre"
)

func integralCmd() *cobra.Command {
	var a, b float64
	cmd := &cobra.Command{
		Use:   "integral",
		Short: "Normal probability mass between two real bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMode()
			if err != nil {
				return err
			}
			n, p := clampParams()

			mu, sigma, err := demoivre.MeanAndStdDev(n, p, m)
			if err != nil {
				return err
			}
			mass, err := demoivre.NormalIntegral(a, b, mu, sigma)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "N(mean %.6g, std dev %.6g) for Binomial(%d, %g), %s scale\n", mu, sigma, n, p, m)
			fmt.Fprintf(out, "P(%g <= X <= %g) = %.9f\n", a, b, mass)
			return nil
		},
	}
	cmd.Flags().Float64Var(&a, "a", 0, "lower bound")
	cmd.Flags().Float64Var(&b, "b", 1, "upper bound")
	return cmd
}
