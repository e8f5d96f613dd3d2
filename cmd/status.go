package cmd

import (
	"snapshot-manager/feature/integrity"
	"snapshot-manager/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check dataset and source health",
	Long: `Probes the dataset store, verifies the stored dataset invariants
(unique (entity_key, date) pairs, canonical ordering), and checks the
raw snapshot source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, err := buildDeps()
		if err != nil {
			return err
		}
		logg := d.logger
		defer logg.Sync()

		svc := integrity.NewService(d.source, d.store, d.db, logg)

		logg.Info("Checking dataset store...")
		storeReport, err := svc.CheckStore(ctx)
		if err != nil {
			logg.Error("Store check failed", zap.Error(err))
		} else {
			switch storeReport.Status {
			case checks.StoreStatusOK:
				logg.Info("Dataset store is healthy.")
			case checks.StoreStatusNotBootstrapped:
				logg.Warn("Dataset store is not bootstrapped. Run bootstrap first.")
			default:
				logg.Warn("Dataset store is unavailable",
					zap.String("error", storeReport.Error),
					zap.Strings("missing_columns", storeReport.MissingColumns))
			}
		}

		if storeReport != nil && storeReport.Status == checks.StoreStatusOK {
			logg.Info("Checking dataset invariants...")
			dsReport, err := svc.CheckDataset(ctx)
			if err != nil {
				logg.Error("Dataset check failed", zap.Error(err))
			} else if dsReport.OK() {
				logg.Info("Dataset invariants hold.",
					zap.Int("records", dsReport.Records),
					zap.Int("entities", dsReport.Summary.Entities),
					zap.Int("dates", dsReport.Summary.Dates),
					zap.String("first_date", dsReport.Summary.FirstDate),
					zap.String("last_date", dsReport.Summary.LastDate))
			} else {
				logg.Warn("Dataset invariant violations found",
					zap.Strings("duplicates", dsReport.Duplicates),
					zap.Int("inversions", dsReport.Inversions))
			}
		}

		logg.Info("Checking snapshot source...")
		srcReport := svc.CheckSource(ctx)
		if srcReport.Status == "ok" {
			logg.Info("Snapshot source is reachable.", zap.Int("candidates", srcReport.Candidates))
		} else {
			logg.Warn("Snapshot source unavailable", zap.String("error", srcReport.Error))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
