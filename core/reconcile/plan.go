package reconcile

import (
	"context"
	"fmt"

	"ossdisk/core/filesystem"
)

// Mirror is the part of a filesystem ApplyPlan needs on each side.
type Mirror interface {
	Read(ctx context.Context, path string) (*filesystem.Contents, error)
	Put(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error)
	Delete(ctx context.Context, path string) error
}

// ReconcileWithPlan compares both disks and returns the results with the planned
// actions. It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, source, target Lister, opts Options) (*Plan, error) {
	results, err := Reconcile(ctx, source, target, opts.Dir)
	if err != nil {
		return nil, err
	}

	summary, actions := buildPlanFromResults(results, opts)
	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

func buildPlanFromResults(results []Result, opts Options) (Summary, []Action) {
	summary := Summary{Total: len(results)}
	actions := make([]Action, 0)

	for _, r := range results {
		switch {
		case r.InSync():
			summary.InSync++
		case r.SourcePresent && !r.TargetPresent:
			summary.MissingTarget++
			actions = append(actions, Action{Type: ActionCopy, Path: r.Path, Reason: "missing on target"})
		case !r.SourcePresent && r.TargetPresent:
			summary.ExtraTarget++
			if opts.Prune {
				actions = append(actions, Action{Type: ActionDelete, Path: r.Path, Reason: "absent from source"})
			}
		default:
			summary.Mismatched++
			actions = append(actions, Action{Type: ActionUpdate, Path: r.Path, Reason: fmt.Sprint(r.Mismatch)})
		}
	}

	return summary, actions
}

// ApplyPlan executes the actions of a plan against the target disk, reading contents
// from the source. It stops at the first failure and returns the number of actions
// executed so far. Nothing is executed in dry-run mode.
func ApplyPlan(ctx context.Context, source, target Mirror, plan *Plan, opts Options) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionCopy, ActionUpdate:
			res, err := source.Read(ctx, action.Path)
			if err != nil {
				return executed, fmt.Errorf("failed to read %s from source: %w", action.Path, err)
			}
			if _, err := target.Put(ctx, action.Path, res.Contents, nil); err != nil {
				return executed, fmt.Errorf("failed to write %s to target: %w", action.Path, err)
			}
		case ActionDelete:
			if err := target.Delete(ctx, action.Path); err != nil {
				return executed, fmt.Errorf("failed to delete %s from target: %w", action.Path, err)
			}
		default:
			return executed, fmt.Errorf("unknown action type %q", action.Type)
		}
		executed++
	}

	return executed, nil
}
