// Package s3disk implements the filesystem contract on any S3-compatible store through
// minio-go.
//
// It lays objects out exactly like the OSS driver: logical paths are namespaced by the disk
// prefix, directories are zero-byte objects whose key ends in "/", and recursive listings
// are flattened the same way. S3 object ACLs are not modelled, so the visibility
// operations report filesystem.ErrUnsupported and Update behaves like Write.
package s3disk
