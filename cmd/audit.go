package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"warehouse-counter/feature/audit"
	"warehouse-counter/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	auditJSON   bool
	auditExport bool
)

// auditCmd checks the catalog for data problems.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the catalog for data problems",
	Long:  `Checks duplicate and malformed codes, count invariants and the products table schema. Outputs a summary by default or the full report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()
		l := rt.logger

		var exporter *inventory.Exporter
		if auditExport {
			exporter = inventory.NewExporter(rt.client, rt.cfg.Storage, l)
		}

		report, err := audit.NewService(rt.catalog, rt.db, exporter, l).Run(ctx, auditExport)
		if err != nil {
			return fmt.Errorf("audit failed: %w", err)
		}

		if auditJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		l.Info("Audit report",
			zap.Int("products", report.Products),
			zap.Int("not_counted", report.Summary.NotCounted),
			zap.Int("partial", report.Summary.Partial),
			zap.Int("complete", report.Summary.Complete),
			zap.Int("duplicate_codes", len(report.Codes.Duplicates)),
			zap.Int("malformed_codes", len(report.Codes.Malformed)),
			zap.Int("empty_codes", len(report.Codes.Empty)),
			zap.Int("quantity_violations", len(report.Quantities)),
			zap.Bool("healthy", report.Healthy),
		)
		for code, ids := range report.Codes.Duplicates {
			l.Warn("Duplicate code", zap.String("code", code), zap.Strings("products", ids))
		}
		for _, f := range report.Quantities {
			l.Warn("Quantity violation", zap.String("code", f.Code), zap.String("detail", f.Detail))
		}
		if report.Schema != nil && !report.Schema.Matched {
			l.Warn("Schema mismatch",
				zap.Strings("missing_columns", report.Schema.MissingColumns),
				zap.Strings("type_mismatches", report.Schema.TypeMismatches),
				zap.Strings("errors", report.Schema.Errors))
		}
		if report.Export != nil {
			l.Info("Catalog exported", zap.String("object", report.Export.Object))
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Print the full report as JSON")
	auditCmd.Flags().BoolVar(&auditExport, "export", false, "Also write a catalog snapshot to the bucket")
	RootCmd.AddCommand(auditCmd)
}
