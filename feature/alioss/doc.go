// Package alioss implements the filesystem contract on top of Aliyun OSS.
//
// Every operation maps to one OSS SDK call (or a short fixed sequence of them) and
// reshapes the result into a filesystem.Metadata descriptor. Logical paths are rewritten
// under the disk prefix before reaching OSS and stripped again on the way back. Any SDK
// fault is reported as filesystem.ErrOperationFailed; nothing is retried.
//
// # Options
//
// Generic write options (mimetype, size, visibility, ACL) are translated to OSS request
// options and merged over the adapter's default options. Missing Content-Type and
// Content-Length are derived from the path and the payload.
//
// # Listings
//
// ListContents issues delimiter-bounded listings, one directory level at a time. Recursive
// listings expand every common prefix with a fresh listing and concatenate the results
// depth first.
//
// # Extensions
//
// Besides the contract the adapter implements filesystem.FileUploader,
// filesystem.FullURLGenerator, filesystem.URLGenerator and
// filesystem.TemporaryURLGenerator.
package alioss
