package sage

import (
	"catalog-sync/core/reconcile"
	"catalog-sync/core/table"
	"catalog-sync/core/transform"

	"go.uber.org/zap"
)

// Service exposes the Sage dialect's two operations: transform a supplier
// export to the canonical schema, and reconcile two canonical snapshots.
type Service struct {
	cfg    Config
	logger *zap.Logger
	engine *transform.Engine
}

// NewService builds the Sage engine and wraps it as a service.
func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	engine, err := transform.NewEngine(NewDialect(), logger)
	if err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, logger: logger, engine: engine}, nil
}

// Transform converts a Sage export to the canonical 42-column schema.
func (s *Service) Transform(src *table.Table) (*table.Table, error) {
	return s.engine.Transform(src)
}

// Reconcile diffs an old canonical snapshot against a new one using the
// dialect's natural key and volatile-column allowlist.
func (s *Service) Reconcile(oldTable, newTable *table.Table) (*reconcile.Result, error) {
	d := s.engine.Dialect()
	return reconcile.Reconcile(oldTable, newTable, reconcile.Spec{
		KeyColumn:       d.Key(),
		VolatileColumns: d.VolatileColumns(),
	}, s.logger)
}
