// Package storage provides the vendor client seams the disk drivers are built on.
//
// It wraps the Aliyun OSS Go SDK (v2) for the oss driver and the MinIO Go client for the
// s3 driver. Each seam is an interface listing exactly the SDK calls a driver makes, which
// keeps the drivers testable against the testify mocks in core/storage/mocks.
//
// # Client Interfaces
//
//   - Client: OSS put/get/copy/delete/bulk-delete/list/head/ACL/exists/presign.
//     *oss.Client satisfies it directly.
//   - S3Client: the MinIO subset used by the s3 driver.
//
// # Configuration
//
// Config describes one disk: credentials, endpoint, region, bucket, optional path prefix,
// CNAME flag and default request options. It is read once at startup.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	res, err := client.HeadObject(ctx, &oss.HeadObjectRequest{Bucket: oss.Ptr("assets"), Key: oss.Ptr("a.txt")})
package storage
