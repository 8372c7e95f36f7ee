package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/BigDataAnalyticsGroup/rmi-go/internal/dataset"
	"github.com/BigDataAnalyticsGroup/rmi-go/internal/metrics"
	"github.com/BigDataAnalyticsGroup/rmi-go/internal/rmilog"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// NewServeCmd builds one Rmi and exposes /metrics, purely additive
// observability around the build that just happened — grounded on
// hupe1980-vecgo/examples/observability's embedded-index metrics server.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build an Rmi and serve Prometheus metrics about it",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rmilog.New(logLevel(cmd)).WithComponent("serve")

			path, _ := cmd.Flags().GetString("dataset")
			if path == "" {
				return fmt.Errorf("--dataset is required")
			}
			addr, _ := cmd.Flags().GetString("addr")

			keys, err := dataset.LoadBinaryUint64(path)
			if err != nil {
				return err
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			collector := metrics.NewCollector(reg)

			start := time.Now()
			index, err := rmi.New(keys, cfg)
			if err != nil {
				return fmt.Errorf("building rmi: %w", err)
			}
			elapsed := time.Since(start)

			collector.ObserveBuild(elapsed)
			collector.IndexSizeBytes.Set(float64(index.SizeInBytes()))
			collector.EmptyBuckets.Set(float64(index.Stats().EmptyBuckets))

			log.LogBuild(index.NKeys(), index.Layer2Size(), elapsed, index.SizeInBytes())

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			log.Info("serving metrics", "addr", addr)
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().String("addr", ":9090", "Address to serve /metrics on")
	return cmd
}
