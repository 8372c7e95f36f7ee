package main

import (
	"fmt"
	"time"

	"github.com/BigDataAnalyticsGroup/rmi-go/internal/dataset"
	"github.com/BigDataAnalyticsGroup/rmi-go/internal/rmilog"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewBuildCmd reproduces original_source/example.cpp's standalone
// build-from-a-sorted-vector usage: load a dataset, build an Rmi, report
// its size.
func NewBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build an Rmi over a dataset and report its size",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rmilog.New(logLevel(cmd)).WithComponent("build")

			path, _ := cmd.Flags().GetString("dataset")
			if path == "" {
				return fmt.Errorf("--dataset is required")
			}

			keys, err := dataset.LoadBinaryUint64(path)
			if err != nil {
				return err
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			index, err := rmi.New(keys, cfg)
			if err != nil {
				return fmt.Errorf("building rmi: %w", err)
			}
			elapsed := time.Since(start)

			log.LogBuild(index.NKeys(), index.Layer2Size(), elapsed, index.SizeInBytes())

			stats := index.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "built rmi over %d keys in %s, size %s, %d/%d empty buckets\n",
				index.NKeys(), elapsed, humanize.Bytes(uint64(index.SizeInBytes())),
				stats.EmptyBuckets, stats.LayerTwoBuckets)

			return nil
		},
	}
}
