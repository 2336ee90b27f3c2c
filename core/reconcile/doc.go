// Package reconcile computes the stable add/update/delete diff between two
// canonical catalog snapshots.
//
// The engine builds normalized-key indices for both tables, partitions the
// union of keys into adds (new only), deletes (old only) and common keys,
// then compares a fixed allowlist of volatile columns for every common key.
// A row whose volatile columns all match is unchanged; any single difference
// marks the whole row updated, and the update carries the full new row, not
// a field-level patch.
//
// # Key normalization
//
// Keys are matched fuzzily: lowercase with all internal whitespace removed.
// Normalization is used only for set membership; output rows always carry
// the original key string. When two distinct originals normalize identically
// the later one wins the index slot, and the collision is logged.
//
// # Contract
//
//   - The normalized key sets of adds, deletes, updates and unchanged rows
//     are pairwise disjoint and their union is normKeys(old) ∪ normKeys(new).
//   - Row order within the three outputs is not guaranteed; only set
//     membership is contractual.
//   - Null equals null when comparing volatile columns.
package reconcile
