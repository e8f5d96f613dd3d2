package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"snapshot-manager/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [snapshot]",
	Short: "Merge raw snapshots into the dataset",
	Long: `Discovers candidate snapshots matching the configured prefix and
merges them in lexicographic order. Only dates absent from the stored
dataset are folded in; a snapshot whose dates are all already stored is
skipped. With a snapshot name argument, only that file is merged.

Outputs metrics by default or a detailed JSON report with --json flag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		svc := ingest.NewService(d.source, d.store, d.logger)

		if dryRun {
			plan, err := svc.PlanAll(ctx)
			if err != nil {
				return err
			}

			fmt.Println("\n=== Ingestion Plan (dry run) ===")
			fmt.Printf("Stored Dates: %d\n", plan.StoredDates)
			for _, f := range plan.Files {
				fmt.Printf("  %s: %s (%d new, %d overlapping)\n",
					f.Name, f.Outcome, len(f.NewDates), f.OverlappingDates)
			}
			for _, f := range plan.Failed {
				fmt.Printf("  FAILED %s: %s\n", f.Name, f.Error)
			}
			return nil
		}

		var report *ingest.Report
		if len(args) == 1 {
			startTime := time.Now()
			report = &ingest.Report{Files: []ingest.FileResult{}, Failed: []ingest.FileError{}}
			report.Processed = 1

			result, err := svc.MergeFile(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to merge %s: %w", args[0], err)
			}
			report.Files = append(report.Files, *result)
			if result.Outcome == ingest.OutcomeMerged {
				report.Merged = 1
			} else {
				report.Overlapping = 1
			}
			report.ExecutionTime = time.Since(startTime).String()
		} else {
			report, err = svc.ProcessAll(ctx)
			if err != nil {
				return err
			}
		}

		if jsonOutput {
			filename := fmt.Sprintf("ingest_report_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			d.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		// Always display metrics
		fmt.Println("\n=== Ingestion Metrics ===")
		fmt.Printf("Processed: %d\n", report.Processed)
		fmt.Printf("Merged: %d\n", report.Merged)
		fmt.Printf("Overlapping: %d\n", report.Overlapping)
		fmt.Printf("Failed: %d\n", len(report.Failed))
		fmt.Printf("Execution Time: %s\n", report.ExecutionTime)

		for _, f := range report.Failed {
			fmt.Printf("  FAILED %s: %s\n", f.Name, f.Error)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().Bool("json", false, "Save detailed JSON report")
	ingestCmd.Flags().Bool("dry-run", false, "Preview the run without writing the dataset")
}
