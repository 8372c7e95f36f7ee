package rmi

import (
	"github.com/BigDataAnalyticsGroup/rmi-go/bound"
	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/kelindar/bitmap"
)

// build runs the two-pass construction algorithm of spec.md §4.2: train
// layer 1, partition keys into L2 contiguous buckets in one monotonic pass
// (padding any bucket the pass skips over with a degenerate anchor model),
// train layer 2 per bucket, then accumulate error-bound residuals in a
// second pass. Ported from original_source/include/rmi/rmi.hpp's
// constructor, which alex_go/index/Index.go's Insert-driven construction
// has no direct analog for (ALEX builds incrementally; an Rmi builds once,
// whole, like alex_go's GetLeaf path does for a single lookup).
func build[K shared.Key](keys []K, cfg Config) (*Rmi[K], error) {
	n := len(keys)
	if cfg.Layer2Size < 1 {
		return nil, shared.ErrZeroLayer2Size
	}

	r := &Rmi[K]{
		n:          n,
		layer2Size: cfg.Layer2Size,
		boundMode:  cfg.BoundMode,
		layer2:     make([]submodel.Submodel[K], cfg.Layer2Size),
	}

	if n == 0 {
		l1, err := submodel.Fit[K](cfg.Layer1Kind, keys, 0, 0, 1.0)
		if err != nil {
			return nil, err
		}
		r.layer1 = l1
		anchor, err := submodel.Fit[K](cfg.Layer2Kind, keys, 0, 0, 1.0)
		if err != nil {
			return nil, err
		}
		for b := range r.layer2 {
			r.layer2[b] = anchor
		}
		builder, err := bound.NewBuilder(cfg.BoundMode, cfg.Layer2Size)
		if err != nil {
			return nil, err
		}
		r.bounds = builder.Build()
		return r, nil
	}

	compression := float64(cfg.Layer2Size) / float64(n)
	l1, err := submodel.Fit[K](cfg.Layer1Kind, keys, 0, n, compression)
	if err != nil {
		return nil, err
	}
	r.layer1 = l1

	empty := bitmap.Bitmap{}

	// Pass 1: monotonic bucket assignment and layer-2 training.
	bucketStart := 0
	currBucket := 0
	for i := 0; i < n; i++ {
		predBucket := clampBucket(r.layer1.Predict(keys[i]), cfg.Layer2Size)
		if predBucket > currBucket {
			model, err := submodel.Fit[K](cfg.Layer2Kind, keys, bucketStart, i-bucketStart, 1.0)
			if err != nil {
				return nil, err
			}
			r.layer2[currBucket] = model

			anchor, err := submodel.Fit[K](cfg.Layer2Kind, keys, i-1, 1, 1.0)
			if err != nil {
				return nil, err
			}
			for b := currBucket + 1; b < predBucket; b++ {
				r.layer2[b] = anchor
				empty.Set(uint32(b))
			}

			currBucket = predBucket
			bucketStart = i
		}
	}
	lastModel, err := submodel.Fit[K](cfg.Layer2Kind, keys, bucketStart, n-bucketStart, 1.0)
	if err != nil {
		return nil, err
	}
	r.layer2[currBucket] = lastModel

	tailAnchor, err := submodel.Fit[K](cfg.Layer2Kind, keys, n-1, 1, 1.0)
	if err != nil {
		return nil, err
	}
	for b := currBucket + 1; b < cfg.Layer2Size; b++ {
		r.layer2[b] = tailAnchor
		empty.Set(uint32(b))
	}
	r.emptyBuckets = empty

	// Pass 2: error-bound residual accumulation.
	builder, err := bound.NewBuilder(cfg.BoundMode, cfg.Layer2Size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		b := r.getBucket(keys[i])
		pred := clampPos(r.layer2[b].Predict(keys[i]), n)
		builder.Accumulate(b, pred, i)
	}
	r.bounds = builder.Build()

	return r, nil
}

func clampBucket(pred float64, layer2Size int) int {
	return shared.Clamp(int(pred), 0, layer2Size-1)
}

func clampPos(pred float64, n int) int {
	return shared.Clamp(int(pred), 0, n-1)
}
