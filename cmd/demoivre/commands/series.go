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

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/demoivre/binormal/demoivre"
)

func seriesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the paired binomial / scaled-normal series",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMode()
			if err != nil {
				return err
			}
			n, p := clampParams()

			points, err := demoivre.BuildSeries(n, p, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(points, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			mu, sigma, err := demoivre.MeanAndStdDev(n, p, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "n %d  p %g  mode %s  mean %.6g  std dev %.6g\n\n", n, p, m, mu, sigma)
			fmt.Fprintf(out, "%10s %12s %12s\n", "x", "binomial", "normal")
			for _, pt := range points {
				fmt.Fprintf(out, "%10s %12.6g %12.6g\n", pt.Label, pt.Y, pt.NormalY)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the series as JSON")
	return cmd
}
