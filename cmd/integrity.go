package cmd

import (
	"fmt"

	"ossdisk/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity [disk...]",
	Short: "Check that every disk has the required directories",
	Long: `Checks each disk (all configured disks when none is named) for the directories
listed in server.required_dirs. Use --fix to create the missing ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, disks, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		required := cfg.Server.Dirs()
		if len(required) == 0 {
			logg.Info("No required directories configured, nothing to check.")
			return nil
		}

		svc := integrity.NewService(disks, required, logg)
		names := args
		if len(names) == 0 {
			names = svc.Disks()
		}

		failed := 0
		for _, name := range names {
			l := logg.With(zap.String("disk", name))
			l.Info("Checking directory structure...")

			missing, err := svc.CheckStructure(cmd.Context(), name)
			if err != nil {
				l.Error("Structure check failed", zap.Error(err))
				failed++
				continue
			}
			if len(missing) == 0 {
				l.Info("Structure is intact.")
				continue
			}

			l.Warn("Missing directories detected", zap.Strings("missing", missing))
			if !fixFlag {
				l.Info("Run with --fix to create missing directories.")
				continue
			}
			if err := svc.FixStructure(cmd.Context(), name, missing); err != nil {
				l.Error("Failed to fix structure", zap.Error(err))
				failed++
				continue
			}
			l.Info("Structure fixed successfully.")
		}

		if failed > 0 {
			return fmt.Errorf("integrity check failed on %d disk(s)", failed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing directories")
}
