package audit

import (
	"context"

	"warehouse-counter/core/catalog"
	"warehouse-counter/feature/audit/checks"
	"warehouse-counter/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report is the combined audit result.
type Report struct {
	Products   int                   `json:"products"`
	Summary    catalog.Summary       `json:"summary"`
	Codes      checks.CodeReport     `json:"codes"`
	Quantities []checks.Finding      `json:"quantities"`
	Schema     *checks.SchemaReport  `json:"schema,omitempty"`
	Healthy    bool                  `json:"healthy"`
	Export     *inventory.ExportInfo `json:"export,omitempty"`
}

// Service runs catalog audits.
type Service struct {
	catalog  *catalog.Catalog
	db       *gorm.DB
	exporter *inventory.Exporter
	logger   *zap.Logger
}

// NewService creates a new audit service. db may be nil, in which case the
// schema check is skipped; exporter may be nil when exports are disabled.
func NewService(cat *catalog.Catalog, db *gorm.DB, exporter *inventory.Exporter, logger *zap.Logger) *Service {
	return &Service{catalog: cat, db: db, exporter: exporter, logger: logger}
}

// CheckCodes runs the code checks.
func (s *Service) CheckCodes() checks.CodeReport {
	return checks.CheckCodes(s.catalog.All())
}

// CheckQuantities runs the quantity invariant check.
func (s *Service) CheckQuantities() []checks.Finding {
	return checks.CheckQuantities(s.catalog.All())
}

// CheckSchema compares the products table with the model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// Run performs every check and, when export is set, writes the snapshot.
func (s *Service) Run(ctx context.Context, export bool) (*Report, error) {
	products := s.catalog.All()
	report := &Report{
		Products:   len(products),
		Summary:    s.catalog.Summary(),
		Codes:      checks.CheckCodes(products),
		Quantities: checks.CheckQuantities(products),
	}
	report.Healthy = report.Codes.Clean() && len(report.Quantities) == 0

	if s.db != nil {
		schema, err := checks.CheckSchema(s.db)
		if err != nil {
			return nil, err
		}
		report.Schema = schema
		report.Healthy = report.Healthy && schema.Matched
	}

	if !report.Healthy {
		s.logger.Warn("Audit found problems",
			zap.Int("duplicates", len(report.Codes.Duplicates)),
			zap.Int("malformed", len(report.Codes.Malformed)),
			zap.Int("quantities", len(report.Quantities)))
	}

	if export && s.exporter != nil {
		info, err := s.exporter.Export(ctx, s.catalog)
		if err != nil {
			return nil, err
		}
		report.Export = &info
	}
	return report, nil
}
