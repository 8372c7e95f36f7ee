package dataset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
	"github.com/klauspost/compress/zstd"
)

// LoadZstdUint64 reads a zstd-compressed key file in the §6 format, the way
// hupe1980-vecgo compresses its own on-disk segment files with
// klauspost/compress.
func LoadZstdUint64(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening compressed dataset %q: %w", path, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening zstd stream for %q: %w", path, err)
	}
	defer dec.Close()

	r := bufio.NewReader(dec)

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

// SaveZstdUint64 writes keys as a zstd-compressed §6-format key file.
func SaveZstdUint64(path string, keys []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating compressed dataset %q: %w", path, err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("opening zstd stream for %q: %w", path, err)
	}
	defer enc.Close()

	w := bufio.NewWriter(enc)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(keys))); err != nil {
		return fmt.Errorf("writing key count to %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, keys); err != nil {
		return fmt.Errorf("writing keys to %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %q: %w", path, err)
	}
	return enc.Close()
}
