package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"warehouse-counter/feature/inventory"
	"warehouse-counter/feature/inventory/restock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	restockObject string
	restockFile   string
	restockDryRun bool
	yesConfirm    bool
)

// restockCmd adds invoice line items to product totals.
var restockCmd = &cobra.Command{
	Use:   "restock",
	Short: "Add invoice line items to product totals",
	Long: `Matches invoice line items against the catalog and adds their
quantities to the matched products' totals.

Line items are a JSON array of {"name", "code", "quantity"} objects, or an
object with an "items" array, read from a bucket object or a local file.

Examples:
  # Plan only
  restock --file invoice.json --dry-run

  # Apply with interactive confirmation
  restock --object 2025/f-1042.json

  # Apply with auto-confirm (non-interactive)
  restock --object 2025/f-1042.json --yes`,
	RunE: runRestock,
}

func init() {
	restockCmd.Flags().StringVar(&restockObject, "object", "", "Line item object in the invoices prefix of the bucket")
	restockCmd.Flags().StringVar(&restockFile, "file", "", "Local line item file")
	restockCmd.Flags().BoolVar(&restockDryRun, "dry-run", false, "Plan only, never write")
	restockCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the update (non-interactive)")
	restockCmd.MarkFlagsMutuallyExclusive("object", "file")
	restockCmd.MarkFlagsOneRequired("object", "file")

	RootCmd.AddCommand(restockCmd)
}

func runRestock(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()
	l := rt.logger

	svc := inventory.NewService(rt.catalog, rt.store, rt.client, rt.cfg.Storage, rt.cfg.Restock, l)

	var src restock.Source
	if restockFile != "" {
		f, err := os.Open(restockFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", restockFile, err)
		}
		items, err := restock.ReadLineItems(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", restockFile, err)
		}
		src = restock.StaticSource(items)
	} else {
		src = restock.NewBucketSource(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Restock.Prefix, restockObject)
	}

	l.Info("Planning restock...")
	plan, err := svc.PlanRestock(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to plan restock: %w", err)
	}
	printRestockReport(l, plan)

	if restockDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No matched line items, nothing to apply.")
		return nil
	}

	if !confirmAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying restock...")
	res, err := svc.ApplyRestock(ctx, plan, restock.Options{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply restock: %w", err)
	}
	for _, f := range res.Failed {
		l.Error("Restock failed", zap.String("code", f.Action.Code), zap.String("error", f.Error))
	}
	l.Info("Restock applied", zap.Int("applied", len(res.Applied)), zap.Int("failed", len(res.Failed)))
	if len(res.Failed) > 0 {
		return fmt.Errorf("%d of %d products failed to update", len(res.Failed), len(plan.Actions))
	}
	return nil
}

// printRestockReport prints the plan using the logger.
func printRestockReport(l *zap.Logger, plan restock.Plan) {
	s := plan.Summary
	l.Info("Restock report",
		zap.Int("line_items", s.Items),
		zap.Int("matched", s.Matched),
		zap.Int("unresolved", s.Unresolved),
		zap.Int("products", s.Products),
		zap.String("quantity", s.Quantity.String()),
		zap.Any("by_match", s.ByKind),
	)

	for _, a := range plan.Actions {
		l.Info("Planned update",
			zap.String("code", a.Code),
			zap.String("name", a.Name),
			zap.String("match", string(a.Match)),
			zap.String("total_before", a.Before.String()),
			zap.String("total_after", a.After.String()),
		)
	}
	for _, u := range plan.Unresolved {
		l.Warn("Unresolved line item", zap.String("name", u.Item.Name), zap.String("code", u.Item.Code), zap.String("reason", u.Reason))
	}
}

// confirmAction prompts the user for confirmation or uses --yes flag.
func confirmAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to update product totals: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
