package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/BigDataAnalyticsGroup/rmi-go/internal/dataset"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/spf13/cobra"
)

// NewQueryCmd reproduces original_source/example.cpp's standalone
// build-then-search usage: load a dataset, build an Rmi, search one key,
// and finish the lookup with a bounded binary search over [lo, hi).
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <key>",
		Short: "Search one key and resolve it within the returned bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("dataset")
			if path == "" {
				return fmt.Errorf("--dataset is required")
			}

			key, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing key %q: %w", args[0], err)
			}

			keys, err := dataset.LoadBinaryUint64(path)
			if err != nil {
				return err
			}

			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			index, err := rmi.New(keys, cfg)
			if err != nil {
				return fmt.Errorf("building rmi: %w", err)
			}

			pred, lo, hi := index.Search(key)
			pos := sort.Search(hi-lo, func(i int) bool { return keys[lo+i] >= key })
			found := lo+pos < hi && keys[lo+pos] == key

			fmt.Fprintf(cmd.OutOrStdout(), "search(%d) -> pred=%d lo=%d hi=%d found=%v\n", key, pred, lo, hi, found)
			return nil
		},
	}
	return cmd
}
