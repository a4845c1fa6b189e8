package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// Client defines the OSS operations the disk adapter relies on.
// *oss.Client satisfies it directly.
type Client interface {
	// PutObject uploads an object.
	PutObject(ctx context.Context, request *oss.PutObjectRequest, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error)
	// PutObjectFromFile uploads a local file as an object.
	PutObjectFromFile(ctx context.Context, request *oss.PutObjectRequest, filePath string, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error)
	// GetObject downloads an object.
	GetObject(ctx context.Context, request *oss.GetObjectRequest, optFns ...func(*oss.Options)) (*oss.GetObjectResult, error)
	// CopyObject copies an object, possibly across buckets.
	CopyObject(ctx context.Context, request *oss.CopyObjectRequest, optFns ...func(*oss.Options)) (*oss.CopyObjectResult, error)
	// DeleteObject deletes an object.
	DeleteObject(ctx context.Context, request *oss.DeleteObjectRequest, optFns ...func(*oss.Options)) (*oss.DeleteObjectResult, error)
	// DeleteMultipleObjects deletes up to 1000 objects in one request.
	DeleteMultipleObjects(ctx context.Context, request *oss.DeleteMultipleObjectsRequest, optFns ...func(*oss.Options)) (*oss.DeleteMultipleObjectsResult, error)
	// ListObjects lists one page of objects and common prefixes.
	ListObjects(ctx context.Context, request *oss.ListObjectsRequest, optFns ...func(*oss.Options)) (*oss.ListObjectsResult, error)
	// HeadObject returns object metadata.
	HeadObject(ctx context.Context, request *oss.HeadObjectRequest, optFns ...func(*oss.Options)) (*oss.HeadObjectResult, error)
	// GetObjectAcl returns the ACL of an object.
	GetObjectAcl(ctx context.Context, request *oss.GetObjectAclRequest, optFns ...func(*oss.Options)) (*oss.GetObjectAclResult, error)
	// PutObjectAcl sets the ACL of an object.
	PutObjectAcl(ctx context.Context, request *oss.PutObjectAclRequest, optFns ...func(*oss.Options)) (*oss.PutObjectAclResult, error)
	// IsObjectExist checks if an object exists.
	IsObjectExist(ctx context.Context, bucket string, key string, optFns ...func(*oss.IsObjectExistOptions)) (bool, error)
	// Presign generates a signed URL for the given request.
	Presign(ctx context.Context, request any, optFns ...func(*oss.PresignOptions)) (*oss.PresignResult, error)
}

// Compile-time assertion that the SDK client implements Client
var _ Client = (*oss.Client)(nil)

// NewClient creates a new OSS client based on the configuration.
func NewClient(cfg Config, opts ...ClientOption) (Client, error) {
	if cfg.AccessID == "" || cfg.AccessKey == "" {
		return nil, errors.New("oss credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("oss bucket must be provided")
	}

	// The SDK expects the endpoint without scheme
	endpoint := cfg.Host()
	if endpoint == "" && cfg.Region == "" {
		return nil, errors.New("oss endpoint or region must be provided")
	}

	timeout := time.Duration(cfg.Timeout()) * time.Second

	ossCfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessID, cfg.AccessKey)).
		WithConnectTimeout(timeout).
		WithReadWriteTimeout(timeout).
		WithDisableSSL(!cfg.UseSSL)

	if endpoint != "" {
		ossCfg.WithEndpoint(endpoint)
	}
	if cfg.Region != "" {
		ossCfg.WithRegion(cfg.Region)
	} else {
		// Without a region V4 signing cannot derive its scope
		ossCfg.WithSignatureVersion(oss.SignatureVersionV1)
	}
	if cfg.IsCname {
		WithCName(endpoint)(ossCfg)
	}
	if cfg.InternalEndpoint {
		WithInternalEndpoint()(ossCfg)
	}
	if cfg.PathStyle {
		WithPathStyle()(ossCfg)
	}
	for _, opt := range opts {
		opt(ossCfg)
	}

	return oss.NewClient(ossCfg), nil
}
