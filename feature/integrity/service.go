package integrity

import (
	"context"

	"ossdisk/core/disk"
	"ossdisk/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	disks    *disk.Manager
	required []string
	logger   *zap.Logger
}

// NewService creates a new integrity service. required lists the directories every disk
// must contain.
func NewService(disks *disk.Manager, required []string, logger *zap.Logger) *Service {
	return &Service{
		disks:    disks,
		required: required,
		logger:   logger,
	}
}

// Disks returns the names of the disks the service can check.
func (s *Service) Disks() []string {
	return s.disks.Names()
}

// CheckStructure returns the required directories missing on a disk.
func (s *Service) CheckStructure(ctx context.Context, diskName string) ([]string, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return checks.CheckStructure(ctx, fs, s.required)
}

// FixStructure creates the missing directories on a disk.
func (s *Service) FixStructure(ctx context.Context, diskName string, missing []string) error {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return err
	}
	return checks.FixStructure(ctx, fs, s.logger.With(zap.String("disk", diskName)), missing)
}
