package s3disk

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"ossdisk/core/filesystem"
	"ossdisk/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	_ filesystem.Adapter               = (*Adapter)(nil)
	_ filesystem.FileUploader          = (*Adapter)(nil)
	_ filesystem.FullURLGenerator      = (*Adapter)(nil)
	_ filesystem.URLGenerator          = (*Adapter)(nil)
	_ filesystem.TemporaryURLGenerator = (*Adapter)(nil)
)

// Adapter implements filesystem.Adapter on an S3-compatible store.
type Adapter struct {
	client   storage.S3Client
	bucket   string
	prefixer filesystem.Prefixer
	defaults map[string]string
	logger   *zap.Logger
}

// NewAdapter creates a new S3 adapter. defaults are request headers applied to every write.
func NewAdapter(client storage.S3Client, bucket, prefix string, defaults map[string]string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		client:   client,
		bucket:   bucket,
		prefixer: filesystem.NewPrefixer(prefix),
		defaults: defaults,
		logger:   logger.With(zap.String("bucket", bucket)),
	}
}

func (a *Adapter) fail(op, key string, err error) error {
	a.logger.Debug("S3 request failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
	return filesystem.Errorf(filesystem.ErrOperationFailed, "%s %s: %v", op, key, err)
}

// putOptions builds the request options of a write from the defaults and cfg.
func (a *Adapter) putOptions(name string, contents []byte, cfg *filesystem.Config) minio.PutObjectOptions {
	var opts minio.PutObjectOptions
	for k, v := range a.defaults {
		switch strings.ToLower(k) {
		case "content-type":
			opts.ContentType = v
		case "cache-control":
			opts.CacheControl = v
		case "content-disposition":
			opts.ContentDisposition = v
		case "content-encoding":
			opts.ContentEncoding = v
		case "x-amz-storage-class":
			opts.StorageClass = v
		default:
			if meta, ok := strings.CutPrefix(strings.ToLower(k), "x-amz-meta-"); ok {
				if opts.UserMetadata == nil {
					opts.UserMetadata = make(map[string]string)
				}
				opts.UserMetadata[meta] = v
			}
		}
	}
	if mimetype := cfg.GetString(filesystem.OptionMimetype); mimetype != "" {
		opts.ContentType = mimetype
	}
	if opts.ContentType == "" {
		opts.ContentType = filesystem.GuessMimeType(name, contents)
	}
	return opts
}

// Write implements filesystem.Adapter.Write
func (a *Adapter) Write(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)
	opts := a.putOptions(path, contents, cfg)

	if _, err := a.client.PutObject(ctx, a.bucket, object, bytes.NewReader(contents), int64(len(contents)), opts); err != nil {
		return nil, a.fail("write", object, err)
	}

	return &filesystem.Metadata{
		Type:     filesystem.TypeFile,
		Path:     path,
		Mimetype: opts.ContentType,
	}, nil
}

// Update implements filesystem.Adapter.Update
//
// It overwrites the object. There is no ACL to carry over.
func (a *Adapter) Update(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	return a.Write(ctx, path, contents, cfg)
}

// Rename implements filesystem.Adapter.Rename
//
// The copy is kept when the delete of the source fails.
func (a *Adapter) Rename(ctx context.Context, path, newpath string) error {
	if err := a.Copy(ctx, path, newpath); err != nil {
		return err
	}
	return a.Delete(ctx, path)
}

// Copy implements filesystem.Adapter.Copy
func (a *Adapter) Copy(ctx context.Context, path, newpath string) error {
	object := a.prefixer.ApplyPathPrefix(path)

	_, err := a.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: a.bucket, Object: a.prefixer.ApplyPathPrefix(newpath)},
		minio.CopySrcOptions{Bucket: a.bucket, Object: object},
	)
	if err != nil {
		return a.fail("copy", object, err)
	}
	return nil
}

// Delete implements filesystem.Adapter.Delete
func (a *Adapter) Delete(ctx context.Context, path string) error {
	object := a.prefixer.ApplyPathPrefix(path)

	if err := a.client.RemoveObject(ctx, a.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return a.fail("delete", object, err)
	}
	return nil
}

// DeleteDir implements filesystem.Adapter.DeleteDir
func (a *Adapter) DeleteDir(ctx context.Context, dirname string) error {
	list, err := a.ListContents(ctx, dirname, true)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return nil
	}

	// The channel is filled up front so the client can drain it at its own pace
	objectsCh := make(chan minio.ObjectInfo, len(list))
	for _, entry := range list {
		key := a.prefixer.ApplyPathPrefix(entry.Path)
		if entry.IsDir() {
			key += "/"
		}
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var first error
	for rErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if first == nil && rErr.Err != nil {
			first = a.fail("deleteDir", rErr.ObjectName, rErr.Err)
		}
	}
	return first
}

// CreateDir implements filesystem.Adapter.CreateDir
func (a *Adapter) CreateDir(ctx context.Context, dirname string, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(dirname) + "/"

	_, err := a.client.PutObject(ctx, a.bucket, object, bytes.NewReader(nil), 0, minio.PutObjectOptions{
		ContentType: "application/x-directory",
	})
	if err != nil {
		return nil, a.fail("createDir", object, err)
	}
	return &filesystem.Metadata{Type: filesystem.TypeDir, Path: dirname}, nil
}

// SetVisibility implements filesystem.Adapter.SetVisibility. The client exposes no
// object ACLs, so it always fails with filesystem.ErrUnsupported.
func (a *Adapter) SetVisibility(ctx context.Context, path string, visibility filesystem.Visibility) (*filesystem.Metadata, error) {
	return nil, filesystem.Errorf(filesystem.ErrUnsupported, "setVisibility")
}

// GetVisibility implements filesystem.Adapter.GetVisibility. See SetVisibility.
func (a *Adapter) GetVisibility(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return nil, filesystem.Errorf(filesystem.ErrUnsupported, "getVisibility")
}

// Has implements filesystem.Adapter.Has
func (a *Adapter) Has(ctx context.Context, path string) (bool, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	_, err := a.client.StatObject(ctx, a.bucket, object, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, a.fail("has", object, err)
	}
	return true, nil
}

// Read implements filesystem.Adapter.Read
func (a *Adapter) Read(ctx context.Context, path string) (*filesystem.Contents, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	body, err := a.client.GetObject(ctx, a.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, a.fail("read", object, err)
	}
	defer body.Close()

	contents, err := io.ReadAll(body)
	if err != nil {
		return nil, a.fail("read", object, err)
	}
	return &filesystem.Contents{Path: path, Contents: contents}, nil
}

// GetMetadata implements filesystem.Adapter.GetMetadata
func (a *Adapter) GetMetadata(ctx context.Context, path string) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	info, err := a.client.StatObject(ctx, a.bucket, object, minio.StatObjectOptions{})
	if err != nil {
		return nil, a.fail("getMetadata", object, err)
	}

	return &filesystem.Metadata{
		Type:      filesystem.TypeFile,
		Dirname:   filesystem.Dirname(path),
		Path:      path,
		Timestamp: unix(info.LastModified),
		Mimetype:  info.ContentType,
		Size:      info.Size,
	}, nil
}

// GetSize implements filesystem.Adapter.GetSize
func (a *Adapter) GetSize(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return a.GetMetadata(ctx, path)
}

// GetMimetype implements filesystem.Adapter.GetMimetype
func (a *Adapter) GetMimetype(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return a.GetMetadata(ctx, path)
}

// GetTimestamp implements filesystem.Adapter.GetTimestamp
func (a *Adapter) GetTimestamp(ctx context.Context, path string) (*filesystem.Metadata, error) {
	return a.GetMetadata(ctx, path)
}

// UploadFile implements filesystem.FileUploader.UploadFile
func (a *Adapter) UploadFile(ctx context.Context, path, localFilePath string, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)
	opts := a.putOptions(path, nil, cfg)

	if _, err := a.client.FPutObject(ctx, a.bucket, object, localFilePath, opts); err != nil {
		return nil, a.fail("uploadFile", object, err)
	}
	return &filesystem.Metadata{
		Type:     filesystem.TypeFile,
		Path:     path,
		Mimetype: opts.ContentType,
	}, nil
}

// FullURL implements filesystem.FullURLGenerator.FullURL
//
// It returns a presigned URL for a positive expiry and the path-style object URL on
// the client endpoint otherwise.
func (a *Adapter) FullURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	if expires > 0 {
		u, err := a.client.PresignedGetObject(ctx, a.bucket, object, expires, nil)
		if err != nil {
			return "", a.fail("signUrl", object, err)
		}
		return u.String(), nil
	}

	endpoint := a.client.EndpointURL()
	if endpoint == nil {
		return "", filesystem.Errorf(filesystem.ErrOperationFailed, "getUrl %s: client has no endpoint", object)
	}
	u := url.URL{
		Scheme: endpoint.Scheme,
		Host:   endpoint.Host,
		Path:   "/" + a.bucket + "/" + object,
	}
	return u.String(), nil
}

// URL implements filesystem.URLGenerator.URL
func (a *Adapter) URL(ctx context.Context, path string) (string, error) {
	return a.FullURL(ctx, path, 0)
}

// TemporaryURL implements filesystem.TemporaryURLGenerator.TemporaryURL
func (a *Adapter) TemporaryURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	if expires <= 0 {
		return "", filesystem.Errorf(filesystem.ErrInvalidArgument, "temporary url expiry must be positive, got %s", expires)
	}
	return a.FullURL(ctx, path, expires)
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
