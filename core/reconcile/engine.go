package reconcile

import (
	"errors"
	"fmt"

	"catalog-sync/core/table"

	"go.uber.org/zap"
)

// ErrMissingKeyColumn is returned when either snapshot does not carry the
// configured natural key column. This is the only structural failure; a
// malformed or duplicated key never aborts a run.
var ErrMissingKeyColumn = errors.New("key column not present in table")

// Reconcile diffs an old canonical snapshot against a new one.
// Both tables must share the spec's key column. The result's three tables
// inherit the new table's column order (deletes inherit the old table's,
// since those rows only exist there).
func Reconcile(oldTable, newTable *table.Table, spec Spec, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := oldTable.Validate(); err != nil {
		return nil, fmt.Errorf("old snapshot: %w", err)
	}
	if err := newTable.Validate(); err != nil {
		return nil, fmt.Errorf("new snapshot: %w", err)
	}
	if !oldTable.HasColumn(spec.KeyColumn) {
		return nil, fmt.Errorf("old snapshot: column %q: %w", spec.KeyColumn, ErrMissingKeyColumn)
	}
	if !newTable.HasColumn(spec.KeyColumn) {
		return nil, fmt.Errorf("new snapshot: column %q: %w", spec.KeyColumn, ErrMissingKeyColumn)
	}

	oldIdx := buildKeyIndex(oldTable, spec.KeyColumn)
	newIdx := buildKeyIndex(newTable, spec.KeyColumn)

	result := &Result{
		Adds:    table.New(newTable.Columns...),
		Updates: table.New(newTable.Columns...),
		Deletes: table.New(oldTable.Columns...),
	}
	result.Summary.KeyCollisions = oldIdx.collisions + newIdx.collisions
	if result.Summary.KeyCollisions > 0 {
		// Last-seen-wins is the documented policy; still worth surfacing.
		logger.Warn("Distinct keys collided after normalization",
			zap.Int("collisions", result.Summary.KeyCollisions),
		)
	}

	// Adds: normalized keys only in the new snapshot. All rows carrying the
	// winning original key are included, so duplicated source keys survive.
	for norm, orig := range newIdx.originals {
		if _, inOld := oldIdx.originals[norm]; inOld {
			continue
		}
		for _, i := range newIdx.rows[orig] {
			result.Adds.Append(newTable.Rows[i])
		}
		result.Summary.Adds++
	}

	// Deletes: normalized keys only in the old snapshot.
	for norm, orig := range oldIdx.originals {
		if _, inNew := newIdx.originals[norm]; inNew {
			continue
		}
		for _, i := range oldIdx.rows[orig] {
			result.Deletes.Append(oldTable.Rows[i])
		}
		result.Summary.Deletes++
	}

	// Updates: common keys whose volatile columns differ. The first matching
	// row on each side is compared when a key is duplicated, and the update
	// carries the full new row.
	for norm, newOrig := range newIdx.originals {
		oldOrig, inOld := oldIdx.originals[norm]
		if !inOld {
			continue
		}
		oldRow := oldIdx.firstRow(oldTable, oldOrig)
		newRow := newIdx.firstRow(newTable, newOrig)

		if volatileChanged(oldRow, newRow, oldTable, newTable, spec.VolatileColumns) {
			result.Updates.Append(newRow)
			result.Summary.Updates++
		} else {
			result.Summary.Unchanged++
		}
	}

	logger.Info("Reconciliation complete",
		zap.Int("adds", result.Summary.Adds),
		zap.Int("updates", result.Summary.Updates),
		zap.Int("deletes", result.Summary.Deletes),
		zap.Int("unchanged", result.Summary.Unchanged),
	)

	return result, nil
}

// volatileChanged reports whether any allowlisted column differs between the
// old and new row. Columns missing from either table are skipped; null on
// both sides counts as unchanged.
func volatileChanged(oldRow, newRow table.Row, oldTable, newTable *table.Table, columns []string) bool {
	for _, col := range columns {
		if !oldTable.HasColumn(col) || !newTable.HasColumn(col) {
			continue
		}
		if !table.Equal(oldRow.Get(col), newRow.Get(col)) {
			return true
		}
	}
	return false
}
