// Package replink implements the Replink dialect: pipe-delimited daily
// inventory feeds transformed to the canonical product schema.
//
// On top of a mostly passthrough column map the dialect adds:
//
//   - a bulleted feature list built from up to 18 optional feature slots,
//     merged into the product description; the list is an empty string (not
//     null) when no features exist, a long-standing asymmetry with the Sage
//     dialect that downstream consumers rely on
//   - the enable gate: available quantity is coerced to a number (0 when
//     non-numeric, never null) and the product is enabled iff it exceeds the
//     configured threshold
//   - price selection from one of five configurable tiers, falling back to
//     the distributor tier for unknown names
//
// The import date is stamped by the caller so the transform itself stays a
// pure function of its input.
package replink
