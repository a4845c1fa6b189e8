package alioss

import (
	"context"
	"strings"

	"ossdisk/core/filesystem"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

const (
	listDelimiter = "/"
	listMaxKeys   = 1000
)

// ListContents implements filesystem.Adapter.ListContents
//
// Objects of the requested level come first, followed by its sub-directories in the order
// OSS returns them. A recursive listing replaces every sub-directory entry with the
// expansion of that directory.
func (a *Adapter) ListContents(ctx context.Context, directory string, recursive bool) ([]filesystem.Metadata, error) {
	prefix := strings.TrimRight(a.prefixer.ApplyPathPrefix(directory), `\/`)
	if prefix != "" {
		prefix += listDelimiter
	}
	isRoot := strings.Trim(directory, `\/`) == ""

	result := make([]filesystem.Metadata, 0)
	var (
		prefixes []string
		marker   string
	)
	for {
		req := &oss.ListObjectsRequest{
			Bucket:    oss.Ptr(a.bucket),
			Prefix:    oss.Ptr(prefix),
			Delimiter: oss.Ptr(listDelimiter),
			MaxKeys:   listMaxKeys,
		}
		if marker != "" {
			req.Marker = oss.Ptr(marker)
		}

		res, err := a.client.ListObjects(ctx, req)
		if err != nil {
			return nil, a.fail("listContents", prefix, err)
		}

		for _, object := range res.Contents {
			key := str(object.Key)
			if object.Size == 0 && key == prefix {
				// Marker object of the listed directory itself
				if isRoot {
					continue
				}
				result = append(result, filesystem.Metadata{
					Type:      filesystem.TypeDir,
					Path:      a.prefixer.RemovePathPrefix(strings.TrimRight(key, listDelimiter)),
					Timestamp: unix(object.LastModified),
				})
				continue
			}
			result = append(result, filesystem.Metadata{
				Type:      filesystem.TypeFile,
				Path:      a.prefixer.RemovePathPrefix(key),
				Timestamp: unix(object.LastModified),
				Size:      object.Size,
			})
		}
		for _, cp := range res.CommonPrefixes {
			prefixes = append(prefixes, str(cp.Prefix))
		}

		next := str(res.NextMarker)
		if !res.IsTruncated || next == "" || next == marker {
			break
		}
		marker = next
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
			Type:      filesystem.TypeDir,
			Path:      a.prefixer.RemovePathPrefix(strings.TrimRight(sub, listDelimiter)),
			Timestamp: 0,
		})
	}

	return result, nil
}
