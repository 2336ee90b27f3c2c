package transform

import (
	"errors"
	"fmt"

	"catalog-sync/core/table"

	"go.uber.org/zap"
)

// Mapping and dialect validation errors, reported at engine construction.
var (
	ErrEmptyTarget     = errors.New("mapping target is empty")
	ErrDuplicateTarget = errors.New("duplicate mapping target")
	ErrUnknownTarget   = errors.New("mapping target not in canonical schema")
	ErrUnknownPolicy   = errors.New("unknown mapping policy")
)

// Synthesizer derives one composite canonical column from a full source row.
// Fn must be pure: same row in, same value out, no shared state.
type Synthesizer struct {
	Target string
	Fn     func(src table.Row) any
}

// Dialect describes one supplier feed format: its canonical schema and the
// rules that fill it. Implementations live under feature/ (sage, replink).
type Dialect interface {
	// Name returns the unique dialect name (e.g. "sage", "replink").
	Name() string

	// Columns returns the fixed, ordered canonical column set. Output tables
	// carry exactly these columns in exactly this order.
	Columns() []string

	// Key returns the natural key column of the canonical schema.
	Key() string

	// Mapping returns the declarative source-to-canonical column mapping.
	Mapping() []Entry

	// Statics returns canonical columns with constant values, applied to
	// every row before mapping.
	Statics() map[string]any

	// Synthesizers returns the composite-field derivation functions.
	Synthesizers() []Synthesizer

	// VolatileColumns returns the allowlist of columns the reconciliation
	// engine compares to decide whether a common-key row changed.
	VolatileColumns() []string
}

// Finalizer is an optional dialect capability: a post-mapping hook that runs
// once per row with both the canonical row under construction and the source
// row. Replink uses it for the enable gate and price-tier selection.
type Finalizer interface {
	FinalizeRow(out table.Row, src table.Row)
}

// Engine transforms source tables into a dialect's canonical schema.
// Build one per dialect with NewEngine and reuse it; Transform is stateless.
type Engine struct {
	dialect Dialect
	logger  *zap.Logger
}

// NewEngine validates the dialect's mapping table and returns a ready engine.
func NewEngine(d Dialect, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validateMapping(d.Mapping(), d.Columns()); err != nil {
		return nil, fmt.Errorf("dialect %s: %w", d.Name(), err)
	}
	return &Engine{dialect: d, logger: logger}, nil
}

// Dialect returns the dialect this engine was built for.
func (e *Engine) Dialect() Dialect {
	return e.dialect
}

// Transform converts a source table to the dialect's canonical schema.
// The output has one row per input row, always, in input order. Malformed
// values degrade per-policy; the only error is a structurally unusable input.
func (e *Engine) Transform(src *table.Table) (*table.Table, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("dialect %s: source table: %w", e.dialect.Name(), err)
	}

	e.logger.Info("Transforming rows",
		zap.String("dialect", e.dialect.Name()),
		zap.Int("rows", src.Len()),
	)

	columns := e.dialect.Columns()
	statics := e.dialect.Statics()
	mapping := e.dialect.Mapping()
	synths := e.dialect.Synthesizers()
	finalizer, hasFinalizer := e.dialect.(Finalizer)

	out := table.New(columns...)
	for _, srcRow := range src.Rows {
		row := make(table.Row, len(columns))

		for target, val := range statics {
			row[target] = val
		}
		for _, entry := range mapping {
			row[entry.Target] = applyPolicy(entry, srcRow.Get(entry.Source))
		}
		for _, s := range synths {
			row[s.Target] = s.Fn(srcRow)
		}
		if hasFinalizer {
			finalizer.FinalizeRow(row, srcRow)
		}

		// Every canonical column is present even when null.
		for _, c := range columns {
			if _, ok := row[c]; !ok {
				row[c] = nil
			}
		}

		out.Append(row)
	}

	e.logger.Info("Transform complete",
		zap.String("dialect", e.dialect.Name()),
		zap.Int("rows", out.Len()),
		zap.Int("columns", len(out.Columns)),
	)

	return out, nil
}
