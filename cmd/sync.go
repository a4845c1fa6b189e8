package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ossdisk/core/filesystem"
	"ossdisk/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncDir    string
	syncPrune  bool
	syncDryRun bool
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync <from> <to>",
	Short: "Mirror the files of one disk onto another",
	Long: `Compares two configured disks and copies every file missing or differing on the
target. Use --prune to also delete target files the source does not have, and --dry-run
to print the plan without touching the target.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, disks, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		source, err := disks.Disk(args[0])
		if err != nil {
			return err
		}
		target, err := disks.Disk(args[1])
		if err != nil {
			return err
		}

		opts := reconcile.Options{Dir: syncDir, Prune: syncPrune, DryRun: syncDryRun}
		l := logg.With(zap.String("from", args[0]), zap.String("to", args[1]))
		return runSync(cmd.Context(), source, target, opts, cmd.OutOrStdout(), l)
	},
}

// runSync reconciles source onto target. In dry-run mode the planned actions are printed
// as JSON to out and nothing is applied.
func runSync(ctx context.Context, source, target *filesystem.Filesystem, opts reconcile.Options, out io.Writer, l *zap.Logger) error {
	l.Info("Reconciling disks...", zap.String("dir", opts.Dir))

	plan, err := reconcile.ReconcileWithPlan(ctx, source, target, opts)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}
	l.Info("Reconciliation complete",
		zap.Int("total", plan.Summary.Total),
		zap.Int("in_sync", plan.Summary.InSync),
		zap.Int("missing_target", plan.Summary.MissingTarget),
		zap.Int("extra_target", plan.Summary.ExtraTarget),
		zap.Int("mismatched", plan.Summary.Mismatched),
		zap.Int("actions", len(plan.Actions)),
	)

	if opts.DryRun {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan.Actions)
	}

	executed, err := reconcile.ApplyPlan(ctx, source, target, plan, opts)
	if err != nil {
		l.Error("Sync aborted", zap.Int("executed", executed), zap.Error(err))
		return err
	}
	l.Info("Sync finished", zap.Int("executed", executed))
	return nil
}

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&syncDir, "dir", "", "Only reconcile files below this directory")
	syncCmd.Flags().BoolVar(&syncPrune, "prune", false, "Delete target files absent from the source")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Print the planned actions without applying them")
}
