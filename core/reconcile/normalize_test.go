package reconcile

import (
	"testing"

	"catalog-sync/core/table"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A100", "a100"},
		{"a 100", "a100"},
		{" A\t1 0 0 ", "a100"},
		{"12 x 14", "12x14"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in), "input %q", tt.in)
	}
}

func TestBuildKeyIndex_LastSeenWinsOnCollision(t *testing.T) {
	tbl := table.New("item_number")
	tbl.Append(table.Row{"item_number": "A 100"})
	tbl.Append(table.Row{"item_number": "a100"})

	idx := buildKeyIndex(tbl, "item_number")

	assert.Equal(t, 1, idx.collisions)
	assert.Equal(t, "a100", idx.originals["a100"])
}

func TestBuildKeyIndex_DuplicateOriginalsKeepRowOrder(t *testing.T) {
	tbl := table.New("item_number", "n")
	tbl.Append(table.Row{"item_number": "A100", "n": 1})
	tbl.Append(table.Row{"item_number": "A100", "n": 2})

	idx := buildKeyIndex(tbl, "item_number")

	assert.Zero(t, idx.collisions) // same original, not a collision
	assert.Equal(t, []int{0, 1}, idx.rows["A100"])
	assert.Equal(t, 1, idx.firstRow(tbl, "A100").Get("n"))
}
