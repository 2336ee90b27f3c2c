package replink

import (
	"time"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/table"
	"catalog-sync/core/transform"

	"go.uber.org/zap"
)

// Service exposes the Replink dialect's operations: transform a feed,
// reconcile two canonical snapshots, and split a canonical table by the
// enable gate.
type Service struct {
	cfg    Config
	logger *zap.Logger

	// now supplies the import date stamp; overridable in tests.
	now func() time.Time
}

// NewService creates a Replink service.
func NewService(cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger, now: time.Now}
}

// Transform converts a Replink feed to the canonical schema, stamping every
// row with the current import date.
func (s *Service) Transform(src *table.Table) (*table.Table, error) {
	dialect := NewDialect(s.cfg, s.now().Format("2006-01-02 15:04:05"))
	engine, err := transform.NewEngine(dialect, s.logger)
	if err != nil {
		return nil, err
	}
	return engine.Transform(src)
}

// Reconcile diffs an old canonical snapshot against a new one using the
// dialect's natural key and volatile-column allowlist.
func (s *Service) Reconcile(oldTable, newTable *table.Table) (*reconcile.Result, error) {
	dialect := NewDialect(s.cfg, "")
	return reconcile.Reconcile(oldTable, newTable, reconcile.Spec{
		KeyColumn:       dialect.Key(),
		VolatileColumns: dialect.VolatileColumns(),
	}, s.logger)
}

// SplitByStatus partitions a canonical table into enabled and disabled
// products. The flag is read loosely so reloaded snapshots, where workbook
// readers return "TRUE"/"FALSE" strings, split the same as fresh output.
// Rows without a readable flag count as disabled.
func (s *Service) SplitByStatus(t *table.Table) (enabled, disabled *table.Table) {
	enabled = table.New(t.Columns...)
	disabled = table.New(t.Columns...)
	for _, row := range t.Rows {
		if on, _ := table.Bool(row.Get("enabled")); on {
			enabled.Append(row)
		} else {
			disabled.Append(row)
		}
	}
	return enabled, disabled
}
