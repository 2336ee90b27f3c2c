// Package table provides the in-memory tabular dataset the engine operates on.
//
// A Table is an ordered set of named columns plus a sequence of rows. Rows are
// loosely typed: values arrive as strings from delimited files, as strings or
// numbers from spreadsheets, and as whatever a synthesizer produced. A nil
// value (or an absent key) means null, which the catalog schemas use to mean
// "not applicable" for monetary and quantity fields.
//
// # Null semantics
//
// Null is represented as an untyped nil. IsNull treats nil and NaN floats as
// null. Missing columns and explicit nulls are indistinguishable on read,
// which is exactly the contract the transformers rely on.
//
// # Coercion
//
// Float, Int and String convert loosely typed cell values the way the rest of
// the engine expects: numeric strings parse, true nulls stay null, and
// anything unparseable reports failure instead of panicking.
package table
