package alioss

import (
	"context"
	"errors"
	"testing"
	"time"

	"ossdisk/core/filesystem"
	"ossdisk/core/storage/mocks"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listPrefix(prefix string) any {
	return mock.MatchedBy(func(req *oss.ListObjectsRequest) bool {
		return str(req.Prefix) == prefix && str(req.Delimiter) == "/"
	})
}

func countTypes(list []filesystem.Metadata) (files, dirs int) {
	for _, entry := range list {
		if entry.IsDir() {
			dirs++
		} else {
			files++
		}
	}
	return files, dirs
}

func TestListContents(t *testing.T) {
	ctx := context.Background()
	modified := time.Unix(1700000000, 0)

	t.Run("Recursive listing flattens sub-directories", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "p")

		client.On("ListObjects", mock.Anything, listPrefix("p/")).Return(&oss.ListObjectsResult{
			Contents:       []oss.ObjectProperties{{Key: oss.Ptr("p/a.txt"), Size: 3, LastModified: &modified}},
			CommonPrefixes: []oss.CommonPrefix{{Prefix: oss.Ptr("p/b/")}},
		}, nil).Once()
		client.On("ListObjects", mock.Anything, listPrefix("p/b/")).Return(&oss.ListObjectsResult{
			Contents: []oss.ObjectProperties{
				{Key: oss.Ptr("p/b/"), Size: 0, LastModified: &modified},
				{Key: oss.Ptr("p/b/c.txt"), Size: 4, LastModified: &modified},
			},
		}, nil).Once()

		list, err := a.ListContents(ctx, "", true)
		require.NoError(t, err)

		files, dirs := countTypes(list)
		assert.Equal(t, 2, files)
		assert.Equal(t, 1, dirs)

		paths := make([]string, 0, len(list))
		for _, entry := range list {
			paths = append(paths, entry.Path)
		}
		assert.ElementsMatch(t, []string{"a.txt", "b", "b/c.txt"}, paths)
		assert.Equal(t, int64(3), list[0].Size)
		assert.Equal(t, int64(1700000000), list[0].Timestamp)
		client.AssertExpectations(t)
	})

	t.Run("Shallow listing reports sub-directories", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")

		client.On("ListObjects", mock.Anything, listPrefix("docs/")).Return(&oss.ListObjectsResult{
			Contents:       []oss.ObjectProperties{{Key: oss.Ptr("docs/a.txt"), Size: 1}},
			CommonPrefixes: []oss.CommonPrefix{{Prefix: oss.Ptr("docs/img/")}},
		}, nil).Once()

		list, err := a.ListContents(ctx, "docs", false)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, filesystem.Metadata{Type: filesystem.TypeFile, Path: "docs/a.txt", Size: 1}, list[0])
		assert.Equal(t, filesystem.Metadata{Type: filesystem.TypeDir, Path: "docs/img"}, list[1])
	})

	t.Run("Root marker is skipped", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "p")

		client.On("ListObjects", mock.Anything, listPrefix("p/")).Return(&oss.ListObjectsResult{
			Contents: []oss.ObjectProperties{
				{Key: oss.Ptr("p/"), Size: 0},
				{Key: oss.Ptr("p/a.txt"), Size: 1},
			},
		}, nil).Once()

		list, err := a.ListContents(ctx, "/", false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "a.txt", list[0].Path)
	})

	t.Run("Empty listing", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("ListObjects", mock.Anything, mock.Anything).Return(&oss.ListObjectsResult{}, nil).Once()

		list, err := a.ListContents(ctx, "nothing", true)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Follows continuation markers", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")

		client.On("ListObjects", mock.Anything, mock.MatchedBy(func(req *oss.ListObjectsRequest) bool {
			return req.Marker == nil
		})).Return(&oss.ListObjectsResult{
			Contents:    []oss.ObjectProperties{{Key: oss.Ptr("d/a.txt"), Size: 1}},
			IsTruncated: true,
			NextMarker:  oss.Ptr("d/a.txt"),
		}, nil).Once()
		client.On("ListObjects", mock.Anything, mock.MatchedBy(func(req *oss.ListObjectsRequest) bool {
			return str(req.Marker) == "d/a.txt"
		})).Return(&oss.ListObjectsResult{
			Contents: []oss.ObjectProperties{{Key: oss.Ptr("d/b.txt"), Size: 1}},
		}, nil).Once()

		list, err := a.ListContents(ctx, "d", false)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "d/b.txt", list[1].Path)
		client.AssertExpectations(t)
	})

	t.Run("Vendor failure", func(t *testing.T) {
		client := new(mocks.Client)
		a := newTestAdapter(client, "")
		client.On("ListObjects", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

		_, err := a.ListContents(ctx, "d", true)
		assert.ErrorIs(t, err, filesystem.ErrOperationFailed)
	})
}
