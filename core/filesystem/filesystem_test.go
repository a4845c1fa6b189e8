package filesystem_test

import (
	"context"
	"testing"
	"time"

	"ossdisk/core/filesystem"
	"ossdisk/core/filesystem/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFilesystem_ExtensionsUnsupported(t *testing.T) {
	ctx := context.Background()
	fs := filesystem.New(new(mocks.Adapter), nil)

	_, err := fs.UploadFile(ctx, "a.txt", "/tmp/a.txt", nil)
	assert.ErrorIs(t, err, filesystem.ErrUnsupported)

	_, err = fs.FullURL(ctx, "a.txt", 0)
	assert.ErrorIs(t, err, filesystem.ErrUnsupported)

	_, err = fs.URL(ctx, "a.txt")
	assert.ErrorIs(t, err, filesystem.ErrUnsupported)

	_, err = fs.TemporaryURL(ctx, "a.txt", time.Minute)
	assert.ErrorIs(t, err, filesystem.ErrUnsupported)
}

func TestFilesystem_ExtensionsForwarded(t *testing.T) {
	ctx := context.Background()
	adapter := new(mocks.CapableAdapter)
	fsCfg := filesystem.NewConfig(map[string]any{filesystem.OptionVisibility: "public"})
	fs := filesystem.New(adapter, fsCfg)

	adapter.On("UploadFile", ctx, "a.txt", "/tmp/a.txt", mock.MatchedBy(func(cfg *filesystem.Config) bool {
		// The call config falls back to the filesystem config.
		return cfg.GetString(filesystem.OptionVisibility) == "public"
	})).Return(&filesystem.Metadata{Type: filesystem.TypeFile, Path: "a.txt"}, nil)
	adapter.On("FullURL", ctx, "a.txt", time.Duration(0)).Return("http://bucket.host/a.txt", nil)
	adapter.On("URL", ctx, "a.txt").Return("http://bucket.host/a.txt", nil)
	adapter.On("TemporaryURL", ctx, "a.txt", time.Minute).Return("http://signed", nil)

	meta, err := fs.UploadFile(ctx, "a.txt", "/tmp/a.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", meta.Path)

	u, err := fs.FullURL(ctx, "a.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://bucket.host/a.txt", u)

	u, err = fs.URL(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "http://bucket.host/a.txt", u)

	u, err = fs.TemporaryURL(ctx, "a.txt", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://signed", u)

	adapter.AssertExpectations(t)
}

func TestFilesystem_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("ExistingObjectIsUpdated", func(t *testing.T) {
		adapter := new(mocks.Adapter)
		fs := filesystem.New(adapter, nil)
		adapter.On("Has", ctx, "a.txt").Return(true, nil)
		adapter.On("Update", ctx, "a.txt", []byte("x"), mock.Anything).Return(&filesystem.Metadata{Path: "a.txt"}, nil)

		_, err := fs.Put(ctx, "a.txt", []byte("x"), nil)
		require.NoError(t, err)
		adapter.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingObjectIsWritten", func(t *testing.T) {
		adapter := new(mocks.Adapter)
		fs := filesystem.New(adapter, nil)
		adapter.On("Has", ctx, "a.txt").Return(false, nil)
		adapter.On("Write", ctx, "a.txt", []byte("x"), mock.Anything).Return(&filesystem.Metadata{Path: "a.txt"}, nil)

		_, err := fs.Put(ctx, "a.txt", []byte("x"), nil)
		require.NoError(t, err)
		adapter.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ExistenceCheckFails", func(t *testing.T) {
		adapter := new(mocks.Adapter)
		fs := filesystem.New(adapter, nil)
		adapter.On("Has", ctx, "a.txt").Return(false, filesystem.ErrOperationFailed)

		_, err := fs.Put(ctx, "a.txt", []byte("x"), nil)
		assert.ErrorIs(t, err, filesystem.ErrOperationFailed)
	})
}
