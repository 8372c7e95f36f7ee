// Package dataset loads and saves the sorted key sequences an Rmi is built
// over. None of this is part of the core (spec.md §1 scopes dataset I/O as
// an external collaborator); it exists so cmd/rmi-bench has something real
// to build against.
package dataset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
)

// LoadBinaryUint64 reads the §6 key-file format: a little-endian u64 count
// N, followed by N little-endian u64 keys. Ported directly from
// original_source/include/rmi/util/fn.hpp's load_data.
func LoadBinaryUint64(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %q: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("reading key count from %q: %w", path, err)
	}

	keys := make([]uint64, n)
	if err := binary.Read(r, binary.LittleEndian, keys); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, fmt.Errorf("reading %d keys from %q: %w", n, path, shared.ErrDatasetTooShort)
		}
		return nil, fmt.Errorf("reading keys from %q: %w", path, err)
	}

	return keys, nil
}

// SaveBinaryUint64 writes keys in the §6 key-file format.
func SaveBinaryUint64(path string, keys []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(keys))); err != nil {
		return fmt.Errorf("writing key count to %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, keys); err != nil {
		return fmt.Errorf("writing keys to %q: %w", path, err)
	}
	return w.Flush()
}
