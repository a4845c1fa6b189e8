package alioss

import (
	"bytes"
	"context"
	"io"
	"time"

	"ossdisk/core/filesystem"
	"ossdisk/core/storage"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"go.uber.org/zap"
)

// Compile-time assertions for the contract and the extension capabilities
var (
	_ filesystem.Adapter               = (*Adapter)(nil)
	_ filesystem.FileUploader          = (*Adapter)(nil)
	_ filesystem.FullURLGenerator      = (*Adapter)(nil)
	_ filesystem.URLGenerator          = (*Adapter)(nil)
	_ filesystem.TemporaryURLGenerator = (*Adapter)(nil)
)

// Options configures an Adapter.
type Options struct {
	// Bucket is the bucket every object lives in.
	Bucket string
	// Prefix namespaces all logical paths inside the bucket.
	Prefix string
	// Defaults are OSS request options applied to every write.
	Defaults map[string]string
	// Endpoint is the host used for public URLs.
	Endpoint string
	// IsCname marks Endpoint as a custom domain bound to the bucket.
	IsCname bool
	// Scheme is the scheme used for public URLs, http when empty.
	Scheme string
}

// Adapter implements filesystem.Adapter on Aliyun OSS.
type Adapter struct {
	client   storage.Client
	bucket   string
	prefixer filesystem.Prefixer
	options  map[string]any
	endpoint string
	isCname  bool
	scheme   string
	logger   *zap.Logger
}

// NewAdapter creates a new OSS adapter.
func NewAdapter(client storage.Client, opts Options, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := canonicalOptions(opts.Defaults)
	scheme := opts.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return &Adapter{
		client:   client,
		bucket:   opts.Bucket,
		prefixer: filesystem.NewPrefixer(opts.Prefix),
		options:  defaults,
		endpoint: opts.Endpoint,
		isCname:  opts.IsCname,
		scheme:   scheme,
		logger:   logger.With(zap.String("bucket", opts.Bucket)),
	}
}

// Bucket returns the bucket name.
func (a *Adapter) Bucket() string {
	return a.bucket
}

// Prefixer returns the path translator of the adapter.
func (a *Adapter) Prefixer() filesystem.Prefixer {
	return a.prefixer
}

// fail logs the vendor error and collapses it into the single failure kind.
func (a *Adapter) fail(op, key string, err error) error {
	a.logger.Debug("OSS request failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
	return filesystem.Errorf(filesystem.ErrOperationFailed, "%s %s: %v", op, key, err)
}

// Write implements filesystem.Adapter.Write
func (a *Adapter) Write(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)
	options := a.optionsFromConfig(cfg)

	if _, ok := options[OptionContentLength]; !ok {
		options[OptionContentLength] = int64(len(contents))
	}
	if _, ok := options[OptionContentType]; !ok {
		options[OptionContentType] = filesystem.GuessMimeType(path, contents)
	}

	req := a.putRequest(object, options)
	req.Body = bytes.NewReader(contents)
	if _, err := a.client.PutObject(ctx, req); err != nil {
		return nil, a.fail("write", object, err)
	}

	return &filesystem.Metadata{
		Type:     filesystem.TypeFile,
		Path:     path,
		Mimetype: str(req.ContentType),
	}, nil
}

// Update implements filesystem.Adapter.Update
func (a *Adapter) Update(ctx context.Context, path string, contents []byte, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	if !cfg.Has(filesystem.OptionVisibility) && !cfg.Has(filesystem.OptionACL) {
		acl, err := a.objectACL(ctx, path)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			cfg = filesystem.NewConfig(nil)
		}
		cfg = cfg.With(filesystem.OptionACL, acl)
	}

	return a.Write(ctx, path, contents, cfg)
}

// Rename implements filesystem.Adapter.Rename
func (a *Adapter) Rename(ctx context.Context, path, newpath string) error {
	if err := a.Copy(ctx, path, newpath); err != nil {
		return err
	}
	return a.Delete(ctx, path)
}

// Copy implements filesystem.Adapter.Copy
func (a *Adapter) Copy(ctx context.Context, path, newpath string) error {
	object := a.prefixer.ApplyPathPrefix(path)
	newobject := a.prefixer.ApplyPathPrefix(newpath)

	_, err := a.client.CopyObject(ctx, &oss.CopyObjectRequest{
		Bucket:       oss.Ptr(a.bucket),
		Key:          oss.Ptr(newobject),
		SourceBucket: oss.Ptr(a.bucket),
		SourceKey:    oss.Ptr(object),
	})
	if err != nil {
		return a.fail("copy", object, err)
	}
	return nil
}

// Delete implements filesystem.Adapter.Delete
func (a *Adapter) Delete(ctx context.Context, path string) error {
	object := a.prefixer.ApplyPathPrefix(path)

	_, err := a.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(a.bucket),
		Key:    oss.Ptr(object),
	})
	if err != nil {
		return a.fail("delete", object, err)
	}
	return nil
}

// maxDeleteKeys is the OSS limit of keys per DeleteMultipleObjects request.
const maxDeleteKeys = 1000

// DeleteDir implements filesystem.Adapter.DeleteDir
func (a *Adapter) DeleteDir(ctx context.Context, dirname string) error {
	list, err := a.ListContents(ctx, dirname, true)
	if err != nil {
		return err
	}

	objects := make([]oss.DeleteObject, 0, len(list))
	for _, entry := range list {
		key := a.prefixer.ApplyPathPrefix(entry.Path)
		if entry.IsDir() {
			key += "/"
		}
		objects = append(objects, oss.DeleteObject{Key: oss.Ptr(key)})
	}

	for start := 0; start < len(objects); start += maxDeleteKeys {
		end := min(start+maxDeleteKeys, len(objects))
		_, err := a.client.DeleteMultipleObjects(ctx, &oss.DeleteMultipleObjectsRequest{
			Bucket:  oss.Ptr(a.bucket),
			Objects: objects[start:end],
			Quiet:   true,
		})
		if err != nil {
			return a.fail("deleteDir", a.prefixer.ApplyPathPrefix(dirname), err)
		}
	}
	return nil
}

// CreateDir implements filesystem.Adapter.CreateDir
func (a *Adapter) CreateDir(ctx context.Context, dirname string, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(dirname)
	options := a.optionsFromConfig(cfg)
	options[OptionContentLength] = int64(0)

	req := a.putRequest(object+"/", options)
	req.Body = bytes.NewReader(nil)
	if _, err := a.client.PutObject(ctx, req); err != nil {
		return nil, a.fail("createDir", object, err)
	}

	return &filesystem.Metadata{Type: filesystem.TypeDir, Path: dirname}, nil
}

// SetVisibility implements filesystem.Adapter.SetVisibility
func (a *Adapter) SetVisibility(ctx context.Context, path string, visibility filesystem.Visibility) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	_, err := a.client.PutObjectAcl(ctx, &oss.PutObjectAclRequest{
		Bucket: oss.Ptr(a.bucket),
		Key:    oss.Ptr(object),
		Acl:    visibilityToACL(visibility),
	})
	if err != nil {
		return nil, a.fail("setVisibility", object, err)
	}

	return &filesystem.Metadata{Path: path, Visibility: visibility}, nil
}

// Has implements filesystem.Adapter.Has
func (a *Adapter) Has(ctx context.Context, path string) (bool, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	exists, err := a.client.IsObjectExist(ctx, a.bucket, object)
	if err != nil {
		return false, a.fail("has", object, err)
	}
	return exists, nil
}

// Read implements filesystem.Adapter.Read
func (a *Adapter) Read(ctx context.Context, path string) (*filesystem.Contents, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	res, err := a.client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(a.bucket),
		Key:    oss.Ptr(object),
	})
	if err != nil {
		return nil, a.fail("read", object, err)
	}
	defer res.Body.Close()

	contents, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, a.fail("read", object, err)
	}

	return &filesystem.Contents{Path: path, Contents: contents}, nil
}

// GetMetadata implements filesystem.Adapter.GetMetadata
func (a *Adapter) GetMetadata(ctx context.Context, path string) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	res, err := a.client.HeadObject(ctx, &oss.HeadObjectRequest{
		Bucket: oss.Ptr(a.bucket),
		Key:    oss.Ptr(object),
	})
	if err != nil {
		return nil, a.fail("getMetadata", object, err)
	}

	return &filesystem.Metadata{
		Type:      filesystem.TypeFile,
		Dirname:   filesystem.Dirname(path),
		Path:      path,
		Timestamp: unix(res.LastModified),
		Mimetype:  str(res.ContentType),
		Size:      res.ContentLength,
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

// GetVisibility implements filesystem.Adapter.GetVisibility
func (a *Adapter) GetVisibility(ctx context.Context, path string) (*filesystem.Metadata, error) {
	acl, err := a.objectACL(ctx, path)
	if err != nil {
		return nil, err
	}
	return &filesystem.Metadata{Path: path, Visibility: aclToVisibility(acl)}, nil
}

// objectACL returns the raw ACL of an object.
func (a *Adapter) objectACL(ctx context.Context, path string) (string, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	res, err := a.client.GetObjectAcl(ctx, &oss.GetObjectAclRequest{
		Bucket: oss.Ptr(a.bucket),
		Key:    oss.Ptr(object),
	})
	if err != nil {
		return "", a.fail("getObjectAcl", object, err)
	}
	return str(res.ACL), nil
}

func unix(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.Unix()
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
