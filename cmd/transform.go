package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"catalog-sync/core/config"
	"catalog-sync/core/logger"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/sheet"
	"catalog-sync/core/table"
	"catalog-sync/feature/replink"
	"catalog-sync/feature/sage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the transform command
	oldSnapshot   string
	dialectName   string
	supplierCode  string
	priceTier     string
	enableThresh  float64
	userAccountID int
)

// transformCmd converts a supplier feed and optionally reconciles it
// against a previous canonical snapshot.
var transformCmd = &cobra.Command{
	Use:   "transform <input> <output.xlsx>",
	Short: "Transform a supplier feed to the canonical import schema",
	Long: `Transform a supplier feed (Excel or delimited text) to the canonical
import schema and write it as a workbook.

With --old, the output is additionally reconciled against a previous canonical
snapshot, producing ADDS/UPDATES/DELETES workbooks next to the output file.

Examples:
  # Sage export to canonical workbook
  catalog-sync transform supplier.xlsx output.xlsx

  # Transform and diff against the current database export
  catalog-sync transform new.xlsx output.xlsx --old current_db.xlsx

  # Replink feed with a custom price tier
  catalog-sync transform feed.txt output.xlsx --dialect replink --price-tier MSRP`,
	Args: cobra.ExactArgs(2),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringVar(&oldSnapshot, "old", "", "Previous canonical snapshot for reconciliation")
	transformCmd.Flags().StringVar(&dialectName, "dialect", "sage", "Feed dialect: sage or replink")
	transformCmd.Flags().StringVar(&supplierCode, "supplier", "", "Supplier code used to label outputs (sage)")
	transformCmd.Flags().StringVar(&priceTier, "price-tier", "", "Price tier to publish (replink): MSRP, MAP, UserPrice, JobberPrice, DistributorPrice")
	transformCmd.Flags().Float64Var(&enableThresh, "threshold", 0, "Enable gate quantity threshold (replink)")
	transformCmd.Flags().IntVar(&userAccountID, "user-id", 0, "User account ID to tag imported rows with (replink)")

	RootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logg.Sync()

	applyFlagOverrides(cfg, cmd)

	loader := sheet.NewLoader(logg)
	src, err := loader.Load(inputPath)
	if err != nil {
		return err
	}

	out, result, err := runDialect(cfg, logg, loader, src, outputPath)
	if err != nil {
		return err
	}

	if err := sheet.Write(out, outputPath); err != nil {
		return err
	}
	logg.Info("Saved canonical catalog",
		zap.String("path", outputPath),
		zap.Int("rows", out.Len()),
	)

	if result != nil {
		if err := writeDiffs(logg, outputPath, result); err != nil {
			return err
		}
	}
	return nil
}

// runDialect transforms the source per the selected dialect and, when --old
// was given, reconciles the result against the previous snapshot.
func runDialect(cfg *config.Config, logg *zap.Logger, loader *sheet.Loader, src *table.Table, outputPath string) (*table.Table, *reconcile.Result, error) {
	switch dialectName {
	case "sage":
		svc, err := sage.NewService(cfg.Sage, logg)
		if err != nil {
			return nil, nil, err
		}
		out, err := svc.Transform(src)
		if err != nil {
			return nil, nil, err
		}
		result, err := maybeReconcile(loader, out, svc.Reconcile)
		return out, result, err

	case "replink":
		svc := replink.NewService(cfg.Replink, logg)
		out, err := svc.Transform(src)
		if err != nil {
			return nil, nil, err
		}

		// The enabled/disabled split ships alongside the main output.
		enabled, disabled := svc.SplitByStatus(out)
		if err := sheet.Write(enabled, siblingPath(outputPath, "ENABLED")); err != nil {
			return nil, nil, err
		}
		if err := sheet.Write(disabled, siblingPath(outputPath, "DISABLED")); err != nil {
			return nil, nil, err
		}
		logg.Info("Split products by enable gate",
			zap.Int("enabled", enabled.Len()),
			zap.Int("disabled", disabled.Len()),
		)

		result, err := maybeReconcile(loader, out, svc.Reconcile)
		return out, result, err

	default:
		return nil, nil, fmt.Errorf("unknown dialect %q (want sage or replink)", dialectName)
	}
}

// maybeReconcile loads the --old snapshot and diffs the fresh output against
// it; no --old flag means no reconciliation.
func maybeReconcile(loader *sheet.Loader, out *table.Table, diff func(oldTable, newTable *table.Table) (*reconcile.Result, error)) (*reconcile.Result, error) {
	if oldSnapshot == "" {
		return nil, nil
	}
	oldTable, err := loader.Load(oldSnapshot)
	if err != nil {
		return nil, err
	}
	return diff(oldTable, out)
}

// writeDiffs saves the non-empty reconciliation outputs next to the main one.
func writeDiffs(logg *zap.Logger, outputPath string, result *reconcile.Result) error {
	diffs := []struct {
		suffix string
		table  *table.Table
	}{
		{"ADDS", result.Adds},
		{"UPDATES", result.Updates},
		{"DELETES", result.Deletes},
	}
	for _, d := range diffs {
		if d.table.Len() == 0 {
			continue
		}
		path := siblingPath(outputPath, d.suffix)
		if err := sheet.Write(d.table, path); err != nil {
			return err
		}
		logg.Info("Saved reconciliation output",
			zap.String("kind", d.suffix),
			zap.String("path", path),
			zap.Int("rows", d.table.Len()),
		)
	}
	return nil
}

// siblingPath derives "<stem>_<suffix>.xlsx" next to the output file.
func siblingPath(outputPath, suffix string) string {
	dir := filepath.Dir(outputPath)
	stem := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", stem, suffix))
}

// applyFlagOverrides lets CLI flags win over environment configuration.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	if supplierCode != "" {
		cfg.Sage.Supplier = supplierCode
	}
	if priceTier != "" {
		cfg.Replink.PriceTier = priceTier
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Replink.EnableThreshold = enableThresh
	}
	if userAccountID != 0 {
		cfg.Replink.UserAccountID = userAccountID
	}
}
