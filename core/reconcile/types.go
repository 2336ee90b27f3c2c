package reconcile

import "catalog-sync/core/table"

// Spec defines the configuration for one reconciliation run. Both tables
// must carry the key column; the volatile allowlist decides what counts as
// an update.
type Spec struct {
	// KeyColumn is the natural key column shared by both tables.
	KeyColumn string

	// VolatileColumns is the allowlist of columns compared for common keys.
	// Columns absent from either table are skipped, not treated as changed.
	VolatileColumns []string
}

// Result holds the three output tables of a reconciliation.
type Result struct {
	// Adds contains rows whose key exists only in the new table.
	Adds *table.Table

	// Updates contains the full new row for every common key whose volatile
	// columns differ from the old row.
	Updates *table.Table

	// Deletes contains rows whose key exists only in the old table.
	Deletes *table.Table

	// Summary provides aggregate counts.
	Summary Summary
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	// Adds counts keys present only in the new table.
	Adds int `json:"adds"`

	// Updates counts common keys with at least one volatile difference.
	Updates int `json:"updates"`

	// Deletes counts keys present only in the old table.
	Deletes int `json:"deletes"`

	// Unchanged counts common keys with no volatile difference.
	Unchanged int `json:"unchanged"`

	// KeyCollisions counts distinct original keys that normalized to an
	// already-seen normalized key, across both tables.
	KeyCollisions int `json:"key_collisions"`
}
