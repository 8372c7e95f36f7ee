package dataset

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads a sorted key sequence from a single-column table, the
// way MantraChen-neurodb and viant-sqlite-vec both read their vector/row
// data through the pure-Go modernc.org/sqlite driver rather than cgo
// sqlite3 bindings. query must select exactly one integer column; rows are
// sorted ascending after loading, since spec.md §3 requires the key
// sequence to already be non-decreasing when New is called.
func LoadSQLite(path, query string) ([]uint64, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite dataset %q: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying sqlite dataset %q: %w", path, err)
	}
	defer rows.Close()

	var keys []uint64
	for rows.Next() {
		var k uint64
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key from %q: %w", path, err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows from %q: %w", path, err)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}
