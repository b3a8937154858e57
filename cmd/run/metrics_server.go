// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package run

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// benchmarkResultGaugeVec holds the most recent value scraped from each
// benchmark result column. Results stay queryable until the process exits.
var benchmarkResultGaugeVec = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "hpcbench_result",
		Help: "Most recent value scraped from a benchmark run",
	},
	[]string{"benchmark", "numpe", "column"},
)

func startPrometheusServer(listenAddr string) {
	prometheus.MustRegister(benchmarkResultGaugeVec)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("Starting Prometheus metrics server", slog.String("address", listenAddr))
	go func() {
		server := &http.Server{
			Addr:              listenAddr,
			Handler:           mux,
			ReadHeaderTimeout: 3 * time.Second,
		}
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Prometheus HTTP server ListenAndServe error", slog.String("error", err.Error()))
		}
	}()
}

// updateResultMetrics publishes the numeric cells of one result row. Cells
// that don't parse as numbers, e.g., command lines, are skipped.
func updateResultMetrics(benchmark string, numpe int, columns []string, row []string) {
	for i, column := range columns {
		if i >= len(row) {
			break
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(row[i], ",", ""), 64)
		if err != nil {
			continue
		}
		benchmarkResultGaugeVec.WithLabelValues(benchmark, strconv.Itoa(numpe), column).Set(value)
	}
}
