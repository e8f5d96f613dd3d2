package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrapCmd represents the bootstrap command
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Initialize an empty dataset store",
	Long: `Creates the dataset schema for the configured store driver. Running
bootstrap against an existing store is a no-op; stored observations are
never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		if err := d.store.Bootstrap(cmd.Context()); err != nil {
			return err
		}

		d.logger.Info("Dataset store bootstrapped",
			zap.String("driver", d.cfg.Dataset.Driver),
			zap.String("path", d.cfg.Dataset.Path))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bootstrapCmd)
}
