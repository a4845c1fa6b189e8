package checks

import (
	"context"
	"fmt"
	"strings"

	"ossdisk/core/filesystem"

	"go.uber.org/zap"
)

// Lister is the part of a filesystem the structure check reads.
type Lister interface {
	ListContents(ctx context.Context, directory string, recursive bool) ([]filesystem.Metadata, error)
}

// DirCreator is the part of a filesystem the structure fix writes.
type DirCreator interface {
	CreateDir(ctx context.Context, dirname string, cfg *filesystem.Config) (*filesystem.Metadata, error)
}

// CheckStructure returns the required directories that do not exist on the disk.
// A directory exists when its marker or any object below it is present.
func CheckStructure(ctx context.Context, fs Lister, required []string) ([]string, error) {
	var missing []string

	for _, dir := range required {
		dir = strings.Trim(dir, "/")
		if dir == "" {
			continue
		}

		list, err := fs.ListContents(ctx, dir, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		if len(list) == 0 {
			missing = append(missing, dir)
		}
	}

	return missing, nil
}

// FixStructure creates the missing directories.
func FixStructure(ctx context.Context, fs DirCreator, logger *zap.Logger, missing []string) error {
	for _, dir := range missing {
		if _, err := fs.CreateDir(ctx, dir, nil); err != nil {
			logger.Error("Failed to create directory", zap.String("dir", dir), zap.Error(err))
			return err
		}
		logger.Info("Created missing directory", zap.String("dir", dir))
	}
	return nil
}
