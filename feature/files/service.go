package files

import (
	"context"
	"time"

	"ossdisk/core/disk"
	"ossdisk/core/filesystem"

	"go.uber.org/zap"
)

// Service runs filesystem operations against named disks.
type Service struct {
	disks  *disk.Manager
	logger *zap.Logger
}

// NewService creates a new files service.
func NewService(disks *disk.Manager, logger *zap.Logger) *Service {
	return &Service{disks: disks, logger: logger}
}

// WriteOptions carries the optional attributes of a write.
type WriteOptions struct {
	Mimetype   string
	Visibility filesystem.Visibility
}

func (o WriteOptions) config() *filesystem.Config {
	cfg := filesystem.NewConfig(nil)
	if o.Mimetype != "" {
		cfg.Set(filesystem.OptionMimetype, o.Mimetype)
	}
	if o.Visibility != "" {
		cfg.Set(filesystem.OptionVisibility, string(o.Visibility))
	}
	return cfg
}

// List lists a directory of a disk.
func (s *Service) List(ctx context.Context, diskName, dir string, recursive bool) ([]filesystem.Metadata, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.ListContents(ctx, dir, recursive)
}

// Read returns the contents of an object.
func (s *Service) Read(ctx context.Context, diskName, path string) (*filesystem.Contents, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.Read(ctx, path)
}

// Put writes an object, overwriting it when it exists.
func (s *Service) Put(ctx context.Context, diskName, path string, contents []byte, opts WriteOptions) (*filesystem.Metadata, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.Put(ctx, path, contents, opts.config())
}

// Delete removes an object.
func (s *Service) Delete(ctx context.Context, diskName, path string) error {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return err
	}
	return fs.Delete(ctx, path)
}

// Copy duplicates an object.
func (s *Service) Copy(ctx context.Context, diskName, from, to string) error {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return err
	}
	return fs.Copy(ctx, from, to)
}

// Rename moves an object.
func (s *Service) Rename(ctx context.Context, diskName, from, to string) error {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return err
	}
	return fs.Rename(ctx, from, to)
}

// Metadata returns the descriptor of an object.
func (s *Service) Metadata(ctx context.Context, diskName, path string) (*filesystem.Metadata, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.GetMetadata(ctx, path)
}

// Visibility returns the visibility of an object.
func (s *Service) Visibility(ctx context.Context, diskName, path string) (*filesystem.Metadata, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.GetVisibility(ctx, path)
}

// SetVisibility changes the visibility of an object.
func (s *Service) SetVisibility(ctx context.Context, diskName, path string, v filesystem.Visibility) (*filesystem.Metadata, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.SetVisibility(ctx, path, v)
}

// CreateDir creates a directory marker.
func (s *Service) CreateDir(ctx context.Context, diskName, dir string) (*filesystem.Metadata, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return nil, err
	}
	return fs.CreateDir(ctx, dir, nil)
}

// DeleteDir removes a directory and everything below it.
func (s *Service) DeleteDir(ctx context.Context, diskName, dir string) error {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return err
	}
	return fs.DeleteDir(ctx, dir)
}

// URL returns the public URL of an object, or a signed one when expires is positive.
func (s *Service) URL(ctx context.Context, diskName, path string, expires time.Duration) (string, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return "", err
	}
	if expires > 0 {
		return fs.FullURL(ctx, path, expires)
	}
	return fs.URL(ctx, path)
}

// TemporaryURL returns a signed URL of an object.
func (s *Service) TemporaryURL(ctx context.Context, diskName, path string, expires time.Duration) (string, error) {
	fs, err := s.disks.Disk(diskName)
	if err != nil {
		return "", err
	}
	return fs.TemporaryURL(ctx, path, expires)
}
