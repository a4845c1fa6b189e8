package reconcile

import (
	"context"
	"fmt"
	"sort"

	"ossdisk/core/filesystem"

	"golang.org/x/sync/errgroup"
)

// Lister is the part of a filesystem the engine reads.
type Lister interface {
	ListContents(ctx context.Context, directory string, recursive bool) ([]filesystem.Metadata, error)
}

// Index maps logical paths to the descriptors of the files below a directory.
type Index map[string]filesystem.Metadata

// BuildIndex lists dir recursively and indexes its files. Directory entries are skipped
// since markers carry no content.
func BuildIndex(ctx context.Context, fs Lister, dir string) (Index, error) {
	list, err := fs.ListContents(ctx, dir, true)
	if err != nil {
		return nil, err
	}

	index := make(Index, len(list))
	for _, entry := range list {
		if entry.IsDir() {
			continue
		}
		index[entry.Path] = entry
	}
	return index, nil
}

// Reconcile compares the files of source and target below dir.
// Both indices are built concurrently.
func Reconcile(ctx context.Context, source, target Lister, dir string) ([]Result, error) {
	var srcIndex, dstIndex Index

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		idx, err := BuildIndex(gctx, source, dir)
		if err != nil {
			return fmt.Errorf("failed to index source: %w", err)
		}
		srcIndex = idx
		return nil
	})
	g.Go(func() error {
		idx, err := BuildIndex(gctx, target, dir)
		if err != nil {
			return fmt.Errorf("failed to index target: %w", err)
		}
		dstIndex = idx
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	union := buildUnion(srcIndex, dstIndex)
	results := make([]Result, 0, len(union))
	for path := range union {
		results = append(results, buildResult(path, srcIndex, dstIndex))
	}

	// Sort results by path for deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

// buildUnion creates the union of the paths of both indices.
func buildUnion(src, dst Index) map[string]struct{} {
	union := make(map[string]struct{}, len(src))
	for path := range src {
		union[path] = struct{}{}
	}
	for path := range dst {
		union[path] = struct{}{}
	}
	return union
}

// buildResult creates the Result of a single path.
func buildResult(path string, src, dst Index) Result {
	srcEntry, srcPresent := src[path]
	dstEntry, dstPresent := dst[path]

	result := Result{
		Path:          path,
		SourcePresent: srcPresent,
		TargetPresent: dstPresent,
		Mismatch:      []string{},
	}

	if srcPresent && dstPresent {
		result.Mismatch = compare(srcEntry, dstEntry)
	}
	return result
}

// compare lists the differences between two copies of an object. Listings carry sizes
// only, and timestamps differ on every copy, so size is the one field compared.
func compare(src, dst filesystem.Metadata) []string {
	var mismatch []string
	if src.Size != dst.Size {
		mismatch = append(mismatch, fmt.Sprintf("size: src=%d dst=%d", src.Size, dst.Size))
	}
	if mismatch == nil {
		return []string{}
	}
	return mismatch
}
