package s3disk

import (
	"context"
	"strings"

	"ossdisk/core/filesystem"

	"github.com/minio/minio-go/v7"
)

// ListContents implements filesystem.Adapter.ListContents
//
// It lists one level at a time and expands sub-directories when recursive is
// set, so directory markers show up exactly as they do on OSS.
func (a *Adapter) ListContents(ctx context.Context, directory string, recursive bool) ([]filesystem.Metadata, error) {
	prefix := strings.TrimRight(a.prefixer.ApplyPathPrefix(directory), `\/`)
	if prefix != "" {
		prefix += "/"
	}
	isRoot := strings.Trim(directory, `\/`) == ""

	// Stops the listing goroutine of the client when returning early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make([]filesystem.Metadata, 0)
	var prefixes []string

	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, a.fail("listContents", prefix, obj.Err)
		}
		switch {
		case obj.Key == prefix && obj.Size == 0:
			// Marker object of the listed directory itself
			if isRoot {
				continue
			}
			result = append(result, filesystem.Metadata{
				Type:      filesystem.TypeDir,
				Path:      a.prefixer.RemovePathPrefix(strings.TrimSuffix(obj.Key, "/")),
				Timestamp: unix(obj.LastModified),
			})
		case obj.Key != prefix && strings.HasSuffix(obj.Key, "/"):
			prefixes = append(prefixes, obj.Key)
		default:
			result = append(result, filesystem.Metadata{
				Type:      filesystem.TypeFile,
				Path:      a.prefixer.RemovePathPrefix(obj.Key),
				Timestamp: unix(obj.LastModified),
				Size:      obj.Size,
			})
		}
	}

	for _, sub := range prefixes {
		if recursive {
			next, err := a.ListContents(ctx, a.prefixer.RemovePathPrefix(sub), true)
			if err != nil {
				return nil, err
			}
			result = append(result, next...)
			continue
		}
		result = append(result, filesystem.Metadata{
			Type: filesystem.TypeDir,
			Path: a.prefixer.RemovePathPrefix(strings.TrimSuffix(sub, "/")),
		})
	}

	return result, nil
}
