// Package filesystem defines the generic storage-backend contract that every disk driver
// implements, and the Filesystem facade host code talks to.
//
// # Contract
//
// The Adapter interface covers the object operations a disk must support: write, update,
// delete, copy, rename, directory creation and removal, existence checks, reads, listings,
// metadata and visibility. Every operation returns a fresh Metadata descriptor (or Contents
// for reads) on success and an error wrapping ErrOperationFailed on any backend fault.
//
// # Capabilities
//
// Some drivers expose extra operations (uploading a local file, public and signed URLs).
// They are modelled as small optional interfaces (FileUploader, FullURLGenerator,
// URLGenerator, TemporaryURLGenerator). The facade probes the adapter for them and returns
// ErrUnsupported when the backing driver does not implement one.
//
// # Usage
//
//	fs := filesystem.New(adapter, filesystem.NewConfig(nil))
//	meta, err := fs.Write(ctx, "avatars/1.png", data, filesystem.NewConfig(map[string]any{
//	    filesystem.OptionVisibility: filesystem.VisibilityPublic,
//	}))
//	url, err := fs.TemporaryURL(ctx, "avatars/1.png", 10*time.Minute)
package filesystem
