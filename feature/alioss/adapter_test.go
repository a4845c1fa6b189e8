package alioss

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"ossdisk/core/filesystem"
	"ossdisk/core/storage/mocks"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(client *mocks.Client, prefix string) *Adapter {
	return NewAdapter(client, Options{
		Bucket:   "assets",
		Prefix:   prefix,
		Endpoint: "oss-cn-hangzhou.aliyuncs.com",
	}, nil)
}

func i64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func TestAdapter_Write(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies prefix and guesses type", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "uploads")

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return str(req.Bucket) == "assets" &&
				str(req.Key) == "uploads/notes/a.json" &&
				str(req.ContentType) == "application/json" &&
				i64(req.ContentLength) == 9
		})).Return(&oss.PutObjectResult{}, nil).Once()

		meta, err := a.Write(ctx, "notes/a.json", []byte(`{"a":"b"}`), nil)
		require.NoError(t, err)
		assert.Equal(t, filesystem.TypeFile, meta.Type)
		assert.Equal(t, "notes/a.json", meta.Path)
		assert.Equal(t, "application/json", meta.Mimetype)
		client.AssertExpectations(t)
	})

	t.Run("Maps generic options", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")

		cfg := filesystem.NewConfig(map[string]any{
			filesystem.OptionMimetype:   "text/csv",
			filesystem.OptionSize:       "3",
			filesystem.OptionVisibility: "public",
		})
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return str(req.ContentType) == "text/csv" &&
				i64(req.ContentLength) == 3 &&
				req.Acl == oss.ObjectACLPublicRead
		})).Return(&oss.PutObjectResult{}, nil).Once()

		_, err := a.Write(ctx, "a.csv", []byte("a,b"), cfg)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Applies adapter defaults", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewAdapter(client, Options{
			Bucket: "assets",
			Defaults: map[string]string{
				OptionCacheControl:       "max-age=60",
				"x-oss-meta-owner":       "ops",
				OptionStorageClass:       "IA",
				OptionContentDisposition: "inline",
			},
		}, nil)

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return str(req.CacheControl) == "max-age=60" &&
				str(req.ContentDisposition) == "inline" &&
				req.StorageClass == oss.StorageClassIA &&
				req.Metadata["owner"] == "ops"
		})).Return(&oss.PutObjectResult{}, nil).Once()

		_, err := a.Write(ctx, "a.txt", []byte("a"), nil)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Caller mimetype overrides lowercase defaults", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewAdapter(client, Options{
			Bucket: "assets",
			Defaults: map[string]string{
				"content-type":     "application/x-default",
				"cache-control":    "max-age=60",
				"x-oss-meta-owner": "ops",
			},
		}, nil)
		assert.Equal(t, "application/x-default", a.options[OptionContentType])

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return str(req.ContentType) == "text/csv" &&
				str(req.CacheControl) == "max-age=60" &&
				req.Metadata["owner"] == "ops"
		})).Return(&oss.PutObjectResult{}, nil).Times(50)

		cfg := filesystem.NewConfig(map[string]any{filesystem.OptionMimetype: "text/csv"})
		for i := 0; i < 50; i++ {
			meta, err := a.Write(ctx, "a.csv", []byte("a,b"), cfg)
			require.NoError(t, err)
			assert.Equal(t, "text/csv", meta.Mimetype)
		}
		client.AssertExpectations(t)
	})

	t.Run("Lowercase default content type skips guessing", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewAdapter(client, Options{
			Bucket:   "assets",
			Defaults: map[string]string{"content-type": "application/x-default"},
		}, nil)

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return str(req.ContentType) == "application/x-default"
		})).Return(&oss.PutObjectResult{}, nil).Times(20)

		for i := 0; i < 20; i++ {
			_, err := a.Write(ctx, "a.txt", []byte("plain"), nil)
			require.NoError(t, err)
		}
		client.AssertExpectations(t)
	})

	t.Run("Vendor failure", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := a.Write(ctx, "a.txt", []byte("a"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, filesystem.ErrOperationFailed)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestAdapter_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Preserves existing ACL", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "p")

		client.On("GetObjectAcl", mock.Anything, mock.MatchedBy(func(req *oss.GetObjectAclRequest) bool {
			return str(req.Key) == "p/a.txt"
		})).Return(&oss.GetObjectAclResult{ACL: oss.Ptr("public-read")}, nil).Once()
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return str(req.Key) == "p/a.txt" && req.Acl == oss.ObjectACLPublicRead
		})).Return(&oss.PutObjectResult{}, nil).Once()

		cfg := filesystem.NewConfig(nil)
		_, err := a.Update(ctx, "a.txt", []byte("new"), cfg)
		require.NoError(t, err)
		assert.False(t, cfg.Has(filesystem.OptionACL))
		client.AssertExpectations(t)
	})

	t.Run("Explicit visibility skips ACL lookup", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return req.Acl == oss.ObjectACLPrivate
		})).Return(&oss.PutObjectResult{}, nil).Once()

		cfg := filesystem.NewConfig(map[string]any{filesystem.OptionVisibility: "private"})
		_, err := a.Update(ctx, "a.txt", []byte("new"), cfg)
		require.NoError(t, err)
		client.AssertNotCalled(t, "GetObjectAcl", mock.Anything, mock.Anything)
	})

	t.Run("Disk visibility skips ACL lookup", func(t *testing.T) {
		client := new(mocks.Client)
		fs := filesystem.New(newTestAdapter(client, ""), filesystem.NewConfig(map[string]any{
			filesystem.OptionVisibility: "public",
		}))

		client.On("IsObjectExist", mock.Anything, "assets", "a.txt").Return(true, nil).Once()
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
			return req.Acl == oss.ObjectACLPublicRead
		})).Return(&oss.PutObjectResult{}, nil).Once()

		_, err := fs.Put(ctx, "a.txt", []byte("new"), nil)
		require.NoError(t, err)
		client.AssertExpectations(t)
		client.AssertNotCalled(t, "GetObjectAcl", mock.Anything, mock.Anything)
	})

	t.Run("ACL lookup failure", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("GetObjectAcl", mock.Anything, mock.Anything).Return(nil, errors.New("denied")).Once()

		_, err := a.Update(ctx, "a.txt", []byte("new"), nil)
		assert.ErrorIs(t, err, filesystem.ErrOperationFailed)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})
}

func TestAdapter_CopyRename(t *testing.T) {
	ctx := context.Background()

	t.Run("Copy", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "p")
		client.On("CopyObject", mock.Anything, mock.MatchedBy(func(req *oss.CopyObjectRequest) bool {
			return str(req.SourceBucket) == "assets" &&
				str(req.SourceKey) == "p/a.txt" &&
				str(req.Key) == "p/b.txt"
		})).Return(&oss.CopyObjectResult{}, nil).Once()

		require.NoError(t, a.Copy(ctx, "a.txt", "b.txt"))
		client.AssertExpectations(t)
	})

	t.Run("Rename copies then deletes", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("CopyObject", mock.Anything, mock.Anything).Return(&oss.CopyObjectResult{}, nil).Once()
		client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(req *oss.DeleteObjectRequest) bool {
			return str(req.Key) == "a.txt"
		})).Return(&oss.DeleteObjectResult{}, nil).Once()

		require.NoError(t, a.Rename(ctx, "a.txt", "b.txt"))
		client.AssertExpectations(t)
	})

	t.Run("Rename stops when copy fails", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("CopyObject", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		err := a.Rename(ctx, "a.txt", "b.txt")
		assert.ErrorIs(t, err, filesystem.ErrOperationFailed)
		client.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})

	t.Run("Rename keeps the copy when delete fails", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("CopyObject", mock.Anything, mock.Anything).Return(&oss.CopyObjectResult{}, nil).Once()
		client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(req *oss.DeleteObjectRequest) bool {
			return str(req.Key) == "a.txt"
		})).Return(nil, errors.New("denied")).Once()

		err := a.Rename(ctx, "a.txt", "b.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, filesystem.ErrOperationFailed)
		assert.Contains(t, err.Error(), "denied")

		client.AssertExpectations(t)
		client.AssertNumberOfCalls(t, "CopyObject", 1)
		client.AssertNumberOfCalls(t, "DeleteObject", 1)
	})
}

func TestAdapter_CreateDir(t *testing.T) {
	client := new(mocks.Client)
	a := newTestAdapter(client, "p")

	client.On("PutObject", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectRequest) bool {
		return str(req.Key) == "p/docs/" && i64(req.ContentLength) == 0
	})).Return(&oss.PutObjectResult{}, nil).Once()

	meta, err := a.CreateDir(context.Background(), "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, filesystem.TypeDir, meta.Type)
	assert.Equal(t, "docs", meta.Path)
	client.AssertExpectations(t)
}

func TestAdapter_DeleteDir(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes everything in one request", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "p")

		client.On("ListObjects", mock.Anything, listPrefix("p/x/")).Return(&oss.ListObjectsResult{
			Contents:       []oss.ObjectProperties{{Key: oss.Ptr("p/x/1.txt"), Size: 1}},
			CommonPrefixes: []oss.CommonPrefix{{Prefix: oss.Ptr("p/x/sub/")}},
		}, nil).Once()
		client.On("ListObjects", mock.Anything, listPrefix("p/x/sub/")).Return(&oss.ListObjectsResult{
			Contents: []oss.ObjectProperties{{Key: oss.Ptr("p/x/sub/2.txt"), Size: 2}},
		}, nil).Once()
		client.On("DeleteMultipleObjects", mock.Anything, mock.MatchedBy(func(req *oss.DeleteMultipleObjectsRequest) bool {
			if str(req.Bucket) != "assets" || len(req.Objects) != 2 {
				return false
			}
			return str(req.Objects[0].Key) == "p/x/1.txt" && str(req.Objects[1].Key) == "p/x/sub/2.txt"
		})).Return(&oss.DeleteMultipleObjectsResult{}, nil).Once()

		require.NoError(t, a.DeleteDir(ctx, "x"))
		client.AssertNumberOfCalls(t, "DeleteMultipleObjects", 1)
		client.AssertExpectations(t)
	})

	t.Run("Empty directory issues no delete", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("ListObjects", mock.Anything, mock.Anything).Return(&oss.ListObjectsResult{}, nil).Once()

		require.NoError(t, a.DeleteDir(ctx, "d"))
		client.AssertNotCalled(t, "DeleteMultipleObjects", mock.Anything, mock.Anything)
	})

	t.Run("Batches large directories", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")

		contents := make([]oss.ObjectProperties, 0, maxDeleteKeys+5)
		for i := 0; i < maxDeleteKeys+5; i++ {
			contents = append(contents, oss.ObjectProperties{Key: oss.Ptr("d/" + strings.Repeat("x", i+1)), Size: 1})
		}
		client.On("ListObjects", mock.Anything, mock.Anything).Return(&oss.ListObjectsResult{Contents: contents}, nil).Once()
		client.On("DeleteMultipleObjects", mock.Anything, mock.Anything).Return(&oss.DeleteMultipleObjectsResult{}, nil)

		require.NoError(t, a.DeleteDir(ctx, "d"))
		client.AssertNumberOfCalls(t, "DeleteMultipleObjects", 2)
	})
}

func TestAdapter_Has(t *testing.T) {
	client := new(mocks.Client)
	a := newTestAdapter(client, "p")
	client.On("IsObjectExist", mock.Anything, "assets", "p/a.txt").Return(true, nil).Once()
	client.On("IsObjectExist", mock.Anything, "assets", "p/b.txt").Return(false, nil).Once()

	ok, err := a.Has(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Has(context.Background(), "b.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_Read(t *testing.T) {
	client := new(mocks.Client)
	a := newTestAdapter(client, "p")
	client.On("GetObject", mock.Anything, mock.MatchedBy(func(req *oss.GetObjectRequest) bool {
		return str(req.Key) == "p/a.txt"
	})).Return(&oss.GetObjectResult{Body: io.NopCloser(strings.NewReader("hello"))}, nil).Once()

	res, err := a.Read(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", res.Path)
	assert.Equal(t, []byte("hello"), res.Contents)
}

func TestAdapter_Metadata(t *testing.T) {
	ctx := context.Background()
	modified := time.Unix(1700000000, 0)

	client := new(mocks.Client)
	a := newTestAdapter(client, "p")
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(req *oss.HeadObjectRequest) bool {
		return str(req.Key) == "p/docs/a.txt"
	})).Return(&oss.HeadObjectResult{
		ContentLength: 5,
		ContentType:   oss.Ptr("text/plain"),
		LastModified:  &modified,
	}, nil)

	meta, err := a.GetMetadata(ctx, "docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "docs", meta.Dirname)
	assert.Equal(t, int64(5), meta.Size)
	assert.Equal(t, "text/plain", meta.Mimetype)
	assert.Equal(t, int64(1700000000), meta.Timestamp)

	size, err := a.GetSize(ctx, "docs/a.txt")
	require.NoError(t, err)
	mimetype, err := a.GetMimetype(ctx, "docs/a.txt")
	require.NoError(t, err)
	timestamp, err := a.GetTimestamp(ctx, "docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, meta, size)
	assert.Equal(t, meta, mimetype)
	assert.Equal(t, meta, timestamp)
}

func TestAdapter_Visibility(t *testing.T) {
	ctx := context.Background()

	t.Run("Set public", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("PutObjectAcl", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectAclRequest) bool {
			return req.Acl == oss.ObjectACLPublicRead
		})).Return(&oss.PutObjectAclResult{}, nil).Once()

		meta, err := a.SetVisibility(ctx, "a.txt", filesystem.VisibilityPublic)
		require.NoError(t, err)
		assert.Equal(t, filesystem.VisibilityPublic, meta.Visibility)
	})

	t.Run("Anything else is private", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("PutObjectAcl", mock.Anything, mock.MatchedBy(func(req *oss.PutObjectAclRequest) bool {
			return req.Acl == oss.ObjectACLPrivate
		})).Return(&oss.PutObjectAclResult{}, nil).Once()

		_, err := a.SetVisibility(ctx, "a.txt", filesystem.Visibility("weird"))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	tests := []struct {
		acl      string
		expected filesystem.Visibility
	}{
		{"public-read", filesystem.VisibilityPublic},
		{"public-read-write", filesystem.VisibilityPublic},
		{"private", filesystem.VisibilityPrivate},
		{"default", filesystem.VisibilityPrivate},
	}
	for _, tt := range tests {
		t.Run("Get "+tt.acl, func(t *testing.T) {
			client := new(mocks.Client)
			a := newTestAdapter(client, "")
			client.On("GetObjectAcl", mock.Anything, mock.Anything).Return(&oss.GetObjectAclResult{ACL: oss.Ptr(tt.acl)}, nil).Once()

			meta, err := a.GetVisibility(ctx, "a.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, meta.Visibility)
		})
	}
}
