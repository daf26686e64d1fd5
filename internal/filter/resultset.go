package filter

import "github.com/jonathan/aprl-tools/internal/types"

// ResultSet is an insertion-ordered map of export rows keyed by aprlGuid.
// Putting an existing key replaces its row but keeps its original position.
type ResultSet struct {
	index map[string]int
	rows  []types.ExportRow
	keys  []string
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{index: map[string]int{}}
}

// Put stores row under guid and reports whether an earlier row was replaced.
func (r *ResultSet) Put(guid string, row types.ExportRow) bool {
	if i, ok := r.index[guid]; ok {
		r.rows[i] = row
		return true
	}
	r.index[guid] = len(r.rows)
	r.rows = append(r.rows, row)
	r.keys = append(r.keys, guid)
	return false
}

// Get returns the row stored under guid.
func (r *ResultSet) Get(guid string) (types.ExportRow, bool) {
	i, ok := r.index[guid]
	if !ok {
		return types.ExportRow{}, false
	}
	return r.rows[i], true
}

// Len returns the number of distinct keys.
func (r *ResultSet) Len() int {
	return len(r.rows)
}

// Keys returns the keys in insertion order.
func (r *ResultSet) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Rows returns the rows in insertion order.
func (r *ResultSet) Rows() []types.ExportRow {
	return append([]types.ExportRow(nil), r.rows...)
}
