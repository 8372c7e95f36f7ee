package shared

import "errors"

var ErrZeroLayer2Size = errors.New("layer2 size must be at least 1")
var ErrUnsortedKeys = errors.New("keys are not sorted non-decreasing")
var ErrUnknownSubmodelKind = errors.New("unknown submodel kind")
var ErrUnknownBoundMode = errors.New("unknown bound mode")
var ErrDatasetTooShort = errors.New("dataset file shorter than its declared key count")
