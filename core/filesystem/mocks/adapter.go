package mocks

import (
	"context"
	"time"

	"ossdisk/core/filesystem"

	"github.com/stretchr/testify/mock"
)

// Adapter is a mock implementation of filesystem.Adapter without optional capabilities.
type Adapter struct {
	mock.Mock
}

func metadata(args mock.Arguments) (*filesystem.Metadata, error) {
	if m, ok := args.Get(0).(*filesystem.Metadata); ok {
		return m, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Adapter) Write(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path, contents, cfg))
}

func (m *Adapter) Update(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path, contents, cfg))
}

func (m *Adapter) Rename(ctx context.Context, path, newpath string) error {
	return m.Called(ctx, path, newpath).Error(0)
}

func (m *Adapter) Copy(ctx context.Context, path, newpath string) error {
	return m.Called(ctx, path, newpath).Error(0)
}

func (m *Adapter) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *Adapter) DeleteDir(ctx context.Context, dirname string) error {
	return m.Called(ctx, dirname).Error(0)
}

func (m *Adapter) CreateDir(ctx context.Context, dirname string, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, dirname, cfg))
}

func (m *Adapter) SetVisibility(ctx context.Context, path string, visibility filesystem.Visibility) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path, visibility))
}

func (m *Adapter) Has(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *Adapter) Read(ctx context.Context, path string) (*filesystem.Contents, error) {
	args := m.Called(ctx, path)
	if c, ok := args.Get(0).(*filesystem.Contents); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Adapter) ListContents(ctx context.Context, directory string, recursive bool) ([]filesystem.Metadata, error) {
	args := m.Called(ctx, directory, recursive)
	if list, ok := args.Get(0).([]filesystem.Metadata); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Adapter) GetMetadata(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path))
}

func (m *Adapter) GetSize(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path))
}

func (m *Adapter) GetMimetype(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path))
}

func (m *Adapter) GetTimestamp(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path))
}

func (m *Adapter) GetVisibility(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path))
}

// CapableAdapter is a mock adapter that also implements every optional capability.
type CapableAdapter struct {
	Adapter
}

func (m *CapableAdapter) UploadFile(ctx context.Context, path, localFilePath string, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	return metadata(m.Called(ctx, path, localFilePath, cfg))
}

func (m *CapableAdapter) FullURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	args := m.Called(ctx, path, expires)
	return args.String(0), args.Error(1)
}

func (m *CapableAdapter) URL(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

func (m *CapableAdapter) TemporaryURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	args := m.Called(ctx, path, expires)
	return args.String(0), args.Error(1)
}
