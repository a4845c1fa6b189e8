package alioss

import (
	"context"
	"net/url"
	"time"

	"ossdisk/core/filesystem"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

// UploadFile implements filesystem.FileUploader.UploadFile
//
// The SDK verifies the upload with CRC-64 unless the client was built with
// storage.WithDisableUploadCRC64Check.
func (a *Adapter) UploadFile(ctx context.Context, path, localFilePath string, cfg *filesystem.Config) (*filesystem.Metadata, error) {
	object := a.prefixer.ApplyPathPrefix(path)
	options := a.optionsFromConfig(cfg)

	if _, ok := options[OptionContentType]; !ok {
		options[OptionContentType] = filesystem.GuessMimeType(path, nil)
	}
	// The SDK derives the length from the file itself
	delete(options, OptionContentLength)

	req := a.putRequest(object, options)
	if _, err := a.client.PutObjectFromFile(ctx, req, localFilePath); err != nil {
		return nil, a.fail("uploadFile", object, err)
	}

	return &filesystem.Metadata{
		Type:     filesystem.TypeFile,
		Path:     path,
		Mimetype: str(req.ContentType),
	}, nil
}

// FullURL implements filesystem.FullURLGenerator.FullURL
//
// A positive expiry yields a signed GET URL. Otherwise the public URL of the object is
// built from the endpoint, prefixed with the bucket unless the endpoint is a CNAME.
func (a *Adapter) FullURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	object := a.prefixer.ApplyPathPrefix(path)

	if expires > 0 {
		res, err := a.client.Presign(ctx, &oss.GetObjectRequest{
			Bucket: oss.Ptr(a.bucket),
			Key:    oss.Ptr(object),
		}, oss.PresignExpires(expires))
		if err != nil {
			return "", a.fail("signUrl", object, err)
		}
		return res.URL, nil
	}

	u := url.URL{
		Scheme: a.scheme,
		Host:   a.hostname(),
		Path:   "/" + object,
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

func (a *Adapter) hostname() string {
	if a.isCname {
		return a.endpoint
	}
	return a.bucket + "." + a.endpoint
}
