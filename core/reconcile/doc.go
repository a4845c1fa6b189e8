// Package reconcile mirrors one disk onto another.
//
// The engine indexes the files below a directory on both disks concurrently, builds the
// union of their paths and reports, for each path, where it is present and how the two
// copies differ. A plan turns those results into copy, update and (optionally) delete
// actions on the target, and ApplyPlan executes them.
//
// # Usage Example
//
//	src, _ := disks.Disk("oss")
//	dst, _ := disks.Disk("backup")
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, src, dst, reconcile.Options{Prune: true})
//	executed, err := reconcile.ApplyPlan(ctx, src, dst, plan, reconcile.Options{Prune: true})
package reconcile
