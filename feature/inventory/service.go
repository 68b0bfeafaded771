package inventory

import (
	"context"
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/codegen"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/matcher"
	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/session"
	"warehouse-counter/core/storage"
	"warehouse-counter/feature/inventory/importer"
	"warehouse-counter/feature/inventory/restock"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service handles catalog operations for the HTTP API and the CLI.
type Service struct {
	catalog  *catalog.Catalog
	store    catalog.Store
	counter  *session.Counter
	codes    *codegen.Generator
	planner  *restock.Planner
	exporter *Exporter
	client   storage.Client
	bucket   string
	invoices string
	logger   *zap.Logger
}

// NewService creates a new inventory service.
func NewService(cat *catalog.Catalog, store catalog.Store, client storage.Client, storageCfg storage.Config, restockCfg restock.Config, logger *zap.Logger) *Service {
	return &Service{
		catalog:  cat,
		store:    store,
		counter:  session.NewCounter(cat, store, reconcile.New(), logger),
		codes:    codegen.New(),
		planner:  restock.NewPlanner(cat, store, restockCfg, logger),
		exporter: NewExporter(client, storageCfg, logger),
		client:   client,
		bucket:   storageCfg.Bucket,
		invoices: restockCfg.Prefix,
		logger:   logger,
	}
}

// Catalog returns the catalog the service works on.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Filter narrows List.
type Filter struct {
	// State keeps only products in this reconciliation state.
	State catalog.State
	// Query keeps products whose code, alias or name contains it.
	Query string
}

// List returns the products matching f in catalog order.
func (s *Service) List(f Filter) []catalog.Product {
	all := s.catalog.All()
	if f.State == "" && f.Query == "" {
		return all
	}
	query := strings.ToUpper(strings.TrimSpace(f.Query))
	out := make([]catalog.Product, 0, len(all))
	for _, p := range all {
		if f.State != "" && p.State() != f.State {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToUpper(p.Code), query) &&
			!strings.Contains(strings.ToUpper(p.Alias), query) &&
			!strings.Contains(p.Name, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns a product by id.
func (s *Service) Get(id string) (catalog.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return catalog.Product{}, domainerr.New(domainerr.KindNotFound, "unknown product "+id)
	}
	return p, nil
}

// Lookup resolves a scanned code.
func (s *Service) Lookup(code string) (catalog.Product, error) {
	return s.catalog.LookupByCode(code)
}

// Match resolves a free-text reference.
func (s *Service) Match(ref matcher.Reference) (matcher.Candidate, bool) {
	return matcher.Match(s.catalog, ref)
}

// Delete removes a product. Removing an absent product succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return domainerr.Wrap(domainerr.KindPersistenceFailure, "failed to delete product "+id, err)
	}
	s.catalog.Remove(id)
	s.logger.Info("Product deleted", zap.String("id", id))
	return nil
}

// Count applies a count operation to a product.
func (s *Service) Count(ctx context.Context, id string, dir reconcile.Direction, amount decimal.Decimal) (reconcile.Change, catalog.Product, error) {
	return s.counter.Count(ctx, id, dir, amount)
}

// Reset clears a product's count.
func (s *Service) Reset(ctx context.Context, id string) (catalog.Product, error) {
	return s.counter.Reset(ctx, id)
}

// PreviewCode proposes the code a product would get, without reserving it.
func (s *Service) PreviewCode(in codegen.Input) (string, error) {
	return s.codes.Next(s.catalog, in)
}

// Summary returns the counting progress.
func (s *Service) Summary() catalog.Summary {
	return s.catalog.Summary()
}

// ImportResult reports an import.
type ImportResult struct {
	Created []catalog.Product `json:"created"`
	Skipped []importer.Issue  `json:"skipped"`
	Failed  []importer.Issue  `json:"failed"`
}

// Import creates a product per grid row. Rows whose code already exists are
// skipped; rows that cannot be parsed, coded or stored are reported and the
// rest still imported.
func (s *Service) Import(ctx context.Context, grid [][]any) (ImportResult, error) {
	rows, issues, err := importer.Parse(grid)
	if err != nil {
		return ImportResult{}, err
	}
	res := ImportResult{Created: []catalog.Product{}, Skipped: []importer.Issue{}, Failed: issues}
	if res.Failed == nil {
		res.Failed = []importer.Issue{}
	}

	batch := importer.NewBatch(s.catalog)
	for _, row := range rows {
		p := row.Product()

		if p.Code != "" {
			if _, taken := s.catalog.CodeOwner(p.Code, ""); taken || batch.Has(p.Code) {
				res.Skipped = append(res.Skipped, importer.Issue{Line: row.Line, Code: p.Code, Reason: "code already exists"})
				continue
			}
		} else {
			code, err := s.codes.Next(batch, codegen.Input{Category: p.Category, Branch: p.Branch, Name: p.Name})
			if err != nil {
				res.Failed = append(res.Failed, importer.Issue{Line: row.Line, Reason: err.Error()})
				continue
			}
			p.Code = code
		}

		id, err := s.store.Create(ctx, p)
		if err != nil {
			s.logger.Warn("Import row failed", zap.Int("line", row.Line), zap.String("code", p.Code), zap.Error(err))
			res.Failed = append(res.Failed, importer.Issue{Line: row.Line, Code: p.Code, Reason: err.Error()})
			continue
		}
		p.ID = id
		s.catalog.Upsert(p)
		batch.Add(p)
		res.Created = append(res.Created, p)
	}

	s.logger.Info("Import finished",
		zap.Int("created", len(res.Created)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("failed", len(res.Failed)))
	return res, nil
}

// RestockRequest selects the line items to restock from.
type RestockRequest struct {
	// Object is a line item file in the bucket.
	Object string `json:"object"`
	// Items are posted line items, used when Object is empty.
	Items []restock.LineItem `json:"items"`
	// DryRun plans without writing.
	DryRun bool `json:"dry_run"`
	// Confirm applies the plan.
	Confirm bool `json:"confirm"`
}

// RestockResponse is the plan and, when applied, its result.
type RestockResponse struct {
	Plan   restock.Plan   `json:"plan"`
	Result restock.Result `json:"result"`
}

// Restock plans line items against the catalog and applies the plan when
// confirmed.
func (s *Service) Restock(ctx context.Context, req RestockRequest) (RestockResponse, error) {
	var src restock.Source = restock.StaticSource(req.Items)
	if req.Object != "" {
		src = restock.NewBucketSource(s.client, s.bucket, s.invoices, req.Object)
	}

	plan, res, err := s.planner.PlanAndApply(ctx, src, restock.Options{DryRun: req.DryRun, Confirmed: req.Confirm})
	return RestockResponse{Plan: plan, Result: res}, err
}

// PlanRestock only plans.
func (s *Service) PlanRestock(ctx context.Context, src restock.Source) (restock.Plan, error) {
	items, err := src.LineItems(ctx)
	if err != nil {
		return restock.Plan{}, err
	}
	return s.planner.Plan(items), nil
}

// ApplyRestock applies a plan built by PlanRestock.
func (s *Service) ApplyRestock(ctx context.Context, plan restock.Plan, opts restock.Options) (restock.Result, error) {
	return s.planner.Apply(ctx, plan, opts)
}

// Export writes the catalog snapshot to the bucket.
func (s *Service) Export(ctx context.Context) (ExportInfo, error) {
	return s.exporter.Export(ctx, s.catalog)
}
