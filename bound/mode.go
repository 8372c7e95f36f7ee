// Package bound implements the four selectable error-bound storage modes
// (plus NB, the trivial no-bound mode) that turn an Rmi's raw position
// prediction into a guaranteed-containment interval. The reference
// (original_source/include/rmi/rmi.hpp) picks one mode per compile-time
// #define; this port picks one per Rmi instance via a tagged Mode value,
// per spec.md §9's "tagged variant (sum type) selected at construction".
package bound

import "github.com/BigDataAnalyticsGroup/rmi-go/shared"

// Mode selects how residual error is stored and applied at query time.
type Mode int

const (
	// LIND (local, independent): per-bucket (lo, hi) pair.
	LIND Mode = iota
	// LABS (local, absolute): per-bucket symmetric error.
	LABS
	// GIND (global, independent): single index-wide (lo, hi) pair.
	GIND
	// GABS (global, absolute): single index-wide symmetric error.
	GABS
	// NB (none): no stored error; every query returns the full array.
	NB
)

func (m Mode) String() string {
	switch m {
	case LIND:
		return "LIND"
	case LABS:
		return "LABS"
	case GIND:
		return "GIND"
	case GABS:
		return "GABS"
	case NB:
		return "NB"
	default:
		return "unknown"
	}
}

// NewBuilder returns the residual accumulator for mode, sized for
// layer2Size buckets (ignored by the global and none modes).
func NewBuilder(mode Mode, layer2Size int) (Builder, error) {
	switch mode {
	case LIND:
		return newLocalIndependentBuilder(layer2Size), nil
	case LABS:
		return newLocalAbsoluteBuilder(layer2Size), nil
	case GIND:
		return newGlobalIndependentBuilder(), nil
	case GABS:
		return newGlobalAbsoluteBuilder(), nil
	case NB:
		return noneBuilder{}, nil
	default:
		return nil, shared.ErrUnknownBoundMode
	}
}
