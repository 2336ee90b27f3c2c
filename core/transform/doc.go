// Package transform provides the generic catalog transformation engine.
//
// The engine turns a source table of arbitrary schema into a canonical table
// with a fixed, ordered column set. Each supplier feed format plugs in
// through the Dialect interface, which declares:
//
//   - the canonical column order (load-bearing for downstream consumers)
//   - a declarative column mapping with per-field policies
//   - static columns with constant values
//   - synthesizers: pure per-row functions deriving composite fields
//   - the natural key column and the volatile columns used by reconciliation
//
// # Policies
//
// Mapped columns apply one of four policies:
//
//   - passthrough: copy the value, null when the source column is absent
//   - zero-to-null: numeric copy where a literal 0 becomes null (monetary and
//     quantity fields use null to mean "not applicable", never zero)
//   - truncate: string copy hard-cut to a character limit
//   - item-number: display normalization of dimension separators
//
// Mappings are validated when the engine is built, so a dialect with a
// duplicate target or an unknown policy fails at startup rather than
// mid-transform.
//
// # Guarantees
//
// Transform never drops or invents rows: the output row count always equals
// the input row count. Malformed values degrade to null (or a policy-specific
// fallback) without failing the row. The only errors are structural: a nil or
// column-less input table.
package transform
