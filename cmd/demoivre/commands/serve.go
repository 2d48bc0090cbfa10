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
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/demoivre/binormal/demoivre/memo"
)

func serveCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve series and range-sum data as JSON for a rendering layer",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			cache := memo.New(reg)

			durations := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
				Name:    "demoivre_http_request_duration_seconds",
				Help:    "Time spent answering API requests.",
				Buckets: prometheus.DefBuckets,
			}, []string{"handler"})

			mux := http.NewServeMux()
			mux.Handle("/api/series", promhttp.InstrumentHandlerDuration(
				durations.MustCurryWith(prometheus.Labels{"handler": "series"}),
				seriesHandler(cache),
			))
			mux.Handle("/api/sum", promhttp.InstrumentHandlerDuration(
				durations.MustCurryWith(prometheus.Labels{"handler": "sum"}),
				sumHandler(cache),
			))
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			log.Printf("listening on %s", listen)
			return http.ListenAndServe(listen, mux)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8080", "address to listen on for HTTP requests")
	return cmd
}
