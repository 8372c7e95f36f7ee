package shared

// DefaultLayer2Size is used when a caller constructs an Rmi without an
// explicit layer2 size, chosen so that a million-key dataset gets roughly
// one bucket per thousand keys.
const DefaultLayer2Size = 1 << 10

// MinLayer2SizeExponent and MaxLayer2SizeExponent bound the sweep performed
// by internal/bench.Sweep, mirroring original_source/experiments/
// index_comparison.cpp's benchmark_rmi, which sweeps k from 8 to 24.
const MinLayer2SizeExponent = 8
const MaxLayer2SizeExponent = 24
