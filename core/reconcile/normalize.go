package reconcile

import (
	"strings"
	"unicode"

	"catalog-sync/core/table"
)

// NormalizeKey returns the fuzzy-match form of a natural key: lowercase with
// every whitespace character removed, not merely trimmed. It is used only
// for set membership and equality; output rows keep the original string.
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToLower(key) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// keyIndex maps a table's keys for set comparison. originals maps normalized
// key to one original string (last seen wins on collision); rows maps an
// original key string to the indices of the rows carrying it, in table order.
type keyIndex struct {
	originals  map[string]string
	rows       map[string][]int
	collisions int
}

// buildKeyIndex indexes one table by its key column.
func buildKeyIndex(t *table.Table, keyColumn string) *keyIndex {
	idx := &keyIndex{
		originals: make(map[string]string, t.Len()),
		rows:      make(map[string][]int, t.Len()),
	}
	for i, row := range t.Rows {
		orig := table.String(row.Get(keyColumn))
		norm := NormalizeKey(orig)
		if prev, seen := idx.originals[norm]; seen && prev != orig {
			idx.collisions++
		}
		idx.originals[norm] = orig
		idx.rows[orig] = append(idx.rows[orig], i)
	}
	return idx
}

// firstRow returns the first row carrying the given original key.
// The caller guarantees the key exists in the index.
func (idx *keyIndex) firstRow(t *table.Table, original string) table.Row {
	return t.Rows[idx.rows[original][0]]
}
