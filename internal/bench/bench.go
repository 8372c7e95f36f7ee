// Package bench reproduces the single-index measurement loop of
// original_source/experiments/index_comparison.cpp's benchmark_rmi: build
// an Rmi, run a batch of lookups against it, and emit one CSV row per
// (configuration, repetition). Comparing against other index structures is
// the out-of-scope external harness (spec.md §1); this package benchmarks
// only the Rmi in this repository.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
)

// Row is one line of the §6 benchmark CSV schema.
type Row struct {
	DatasetName         string
	NKeys               int
	IndexName           string
	ConfigurationString string
	SizeInBytes         int64
	Rep                 int
	NSamples            int
	BuildNs             int64
	EvalNs              int64
	LookupNs            int64
	EvalChecksum        uint64
	LookupChecksum      uint64
}

var csvHeader = []string{
	"dataset_name", "n_keys", "index_name", "configuration_string",
	"size_in_bytes", "rep", "n_samples", "build_ns", "eval_ns", "lookup_ns",
	"eval_checksum", "lookup_checksum",
}

// WriteCSV writes rows in the §6 schema, header first.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.DatasetName,
			fmt.Sprint(r.NKeys),
			r.IndexName,
			r.ConfigurationString,
			fmt.Sprint(r.SizeInBytes),
			fmt.Sprint(r.Rep),
			fmt.Sprint(r.NSamples),
			fmt.Sprint(r.BuildNs),
			fmt.Sprint(r.EvalNs),
			fmt.Sprint(r.LookupNs),
			fmt.Sprint(r.EvalChecksum),
			fmt.Sprint(r.LookupChecksum),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Sweep builds and queries an Rmi once per layer2Size power-of-two in
// [shared.MinLayer2SizeExponent, shared.MaxLayer2SizeExponent], n_reps times
// each, reproducing index_comparison.cpp's benchmark_rmi sweep. The sweep
// stops at the first layer2Size larger than len(keys). samples is
// the fixed query batch used for both the eval pass (checksum over raw
// pred) and the lookup pass (checksum over the final bounded-search
// position, supplied by the caller via resolve since bench has no key
// array of its own to search).
func Sweep[K shared.Key](
	datasetName string,
	keys []K,
	baseCfg rmi.Config,
	nReps int,
	samples []K,
	resolve func(r *rmi.Rmi[K], key K, pred, lo, hi int) int,
) ([]Row, error) {
	var rows []Row

	for exp := shared.MinLayer2SizeExponent; exp <= shared.MaxLayer2SizeExponent; exp++ {
		layer2Size := 1 << exp
		if layer2Size > len(keys) && len(keys) > 0 {
			break
		}
		cfg := baseCfg
		cfg.Layer2Size = layer2Size

		for rep := 0; rep < nReps; rep++ {
			buildStart := time.Now()
			index, err := rmi.New(keys, cfg)
			if err != nil {
				return nil, fmt.Errorf("sweep build at layer2_size=%d rep=%d: %w", layer2Size, rep, err)
			}
			buildNs := time.Since(buildStart).Nanoseconds()

			var evalChecksum, lookupChecksum uint64

			evalStart := time.Now()
			for _, s := range samples {
				pred, _, _ := index.Search(s)
				evalChecksum += uint64(pred)
			}
			evalNs := time.Since(evalStart).Nanoseconds()

			lookupStart := time.Now()
			for _, s := range samples {
				pred, lo, hi := index.Search(s)
				lookupChecksum += uint64(resolve(index, s, pred, lo, hi))
			}
			lookupNs := time.Since(lookupStart).Nanoseconds()

			rows = append(rows, Row{
				DatasetName:         datasetName,
				NKeys:               len(keys),
				IndexName:           "rmi",
				ConfigurationString: fmt.Sprintf("%s_%s_%d_%s", cfg.Layer1Kind, cfg.Layer2Kind, layer2Size, cfg.BoundMode),
				SizeInBytes:         index.SizeInBytes(),
				Rep:                 rep,
				NSamples:            len(samples),
				BuildNs:             buildNs,
				EvalNs:              evalNs,
				LookupNs:            lookupNs,
				EvalChecksum:        evalChecksum,
				LookupChecksum:      lookupChecksum,
			})
		}
	}

	return rows, nil
}
