package reconcile

import (
	"testing"

	"catalog-sync/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(rows ...table.Row) *table.Table {
	t := table.New("item_number", "price_1", "product")
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

var testSpec = Spec{
	KeyColumn:       "item_number",
	VolatileColumns: []string{"price_1", "product"},
}

// keys collects the normalized key set of a table.
func keys(t *table.Table) map[string]struct{} {
	set := make(map[string]struct{})
	for _, row := range t.Rows {
		set[NormalizeKey(table.String(row.Get("item_number")))] = struct{}{}
	}
	return set
}

func TestReconcile_AddsUpdatesDeletes(t *testing.T) {
	oldTable := snapshot(
		table.Row{"item_number": "A100", "price_1": 9.99, "product": "Mug"},
	)
	newTable := snapshot(
		table.Row{"item_number": "A100", "price_1": 12.50, "product": "Mug"},
		table.Row{"item_number": "B200", "price_1": 5.00, "product": "Pen"},
	)

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)

	require.Equal(t, 1, result.Adds.Len())
	assert.Equal(t, "B200", result.Adds.Rows[0].Get("item_number"))

	require.Equal(t, 1, result.Updates.Len())
	assert.Equal(t, "A100", result.Updates.Rows[0].Get("item_number"))
	// Updates carry the full new row, not a patch.
	assert.Equal(t, 12.50, result.Updates.Rows[0].Get("price_1"))

	assert.Zero(t, result.Deletes.Len())
	assert.Equal(t, Summary{Adds: 1, Updates: 1, Unchanged: 0, Deletes: 0}, result.Summary)
}

func TestReconcile_NullEqualsNull(t *testing.T) {
	oldTable := snapshot(table.Row{"item_number": "A100", "price_1": nil, "product": "Mug"})
	newTable := snapshot(table.Row{"item_number": "A100", "price_1": nil, "product": "Mug"})

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)

	assert.Zero(t, result.Updates.Len())
	assert.Equal(t, 1, result.Summary.Unchanged)
}

func TestReconcile_NullToValueIsAnUpdate(t *testing.T) {
	oldTable := snapshot(table.Row{"item_number": "A100", "price_1": nil, "product": "Mug"})
	newTable := snapshot(table.Row{"item_number": "A100", "price_1": 3.25, "product": "Mug"})

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updates.Len())
}

func TestReconcile_FuzzyKeyMatch(t *testing.T) {
	// "A 100" and "a100" normalize identically: common key, not add+delete.
	oldTable := snapshot(table.Row{"item_number": "A 100", "price_1": 1.0, "product": "Mug"})
	newTable := snapshot(table.Row{"item_number": "a100", "price_1": 1.0, "product": "Mug"})

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)

	assert.Zero(t, result.Adds.Len())
	assert.Zero(t, result.Deletes.Len())
	assert.Equal(t, 1, result.Summary.Unchanged)
}

func TestReconcile_PartitionLaw(t *testing.T) {
	oldTable := snapshot(
		table.Row{"item_number": "A1", "price_1": 1.0, "product": "a"},
		table.Row{"item_number": "B2", "price_1": 2.0, "product": "b"},
		table.Row{"item_number": "C3", "price_1": 3.0, "product": "c"},
	)
	newTable := snapshot(
		table.Row{"item_number": "B2", "price_1": 2.5, "product": "b"},
		table.Row{"item_number": "C3", "price_1": 3.0, "product": "c"},
		table.Row{"item_number": "D4", "price_1": 4.0, "product": "d"},
	)

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)

	addKeys := keys(result.Adds)
	updKeys := keys(result.Updates)
	delKeys := keys(result.Deletes)

	// Pairwise disjoint.
	for k := range addKeys {
		assert.NotContains(t, updKeys, k)
		assert.NotContains(t, delKeys, k)
	}
	for k := range updKeys {
		assert.NotContains(t, delKeys, k)
	}

	// Union of the three sets plus unchanged covers old ∪ new.
	union := make(map[string]struct{})
	for _, set := range []map[string]struct{}{addKeys, updKeys, delKeys} {
		for k := range set {
			union[k] = struct{}{}
		}
	}
	covered := len(union) + result.Summary.Unchanged
	all := keys(oldTable)
	for k := range keys(newTable) {
		all[k] = struct{}{}
	}
	assert.Equal(t, len(all), covered)
}

func TestReconcile_DuplicateKeysComparedByFirstRow(t *testing.T) {
	oldTable := snapshot(
		table.Row{"item_number": "A100", "price_1": 1.0, "product": "Mug"},
		table.Row{"item_number": "A100", "price_1": 99.0, "product": "Mug"},
	)
	newTable := snapshot(
		table.Row{"item_number": "A100", "price_1": 1.0, "product": "Mug"},
	)

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)

	// First old row matches the new row, so the key is unchanged even though
	// a later duplicate differs.
	assert.Zero(t, result.Updates.Len())
	assert.Equal(t, 1, result.Summary.Unchanged)
}

func TestReconcile_MissingKeyColumn(t *testing.T) {
	oldTable := table.New("not_the_key")
	oldTable.Append(table.Row{"not_the_key": "x"})
	newTable := snapshot()

	_, err := Reconcile(oldTable, newTable, testSpec, nil)
	assert.ErrorIs(t, err, ErrMissingKeyColumn)

	_, err = Reconcile(snapshot(), oldTable, testSpec, nil)
	assert.ErrorIs(t, err, ErrMissingKeyColumn)
}

func TestReconcile_EmptyTableRejected(t *testing.T) {
	_, err := Reconcile(&table.Table{}, snapshot(), testSpec, nil)
	assert.ErrorIs(t, err, table.ErrNoColumns)
}

func TestReconcile_SkipsVolatileColumnsAbsentFromEitherTable(t *testing.T) {
	// Old snapshots may predate newer canonical columns; those columns are
	// skipped rather than treated as changed.
	oldTable := table.New("item_number", "product")
	oldTable.Append(table.Row{"item_number": "A100", "product": "Mug"})
	newTable := snapshot(table.Row{"item_number": "A100", "price_1": 5.0, "product": "Mug"})

	result, err := Reconcile(oldTable, newTable, testSpec, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Updates.Len())
}
