package filesystem

import (
	"context"
	"time"
)

// Adapter is the contract every storage backend implements.
type Adapter interface {
	// Write stores a new object.
	Write(ctx context.Context, path string, contents []byte, cfg *Config) (*Metadata, error)
	// Update overwrites an object, preserving its access level unless cfg sets one.
	Update(ctx context.Context, path string, contents []byte, cfg *Config) (*Metadata, error)
	// Rename moves an object. It is a copy followed by a delete.
	Rename(ctx context.Context, path, newpath string) error
	// Copy duplicates an object.
	Copy(ctx context.Context, path, newpath string) error
	// Delete removes an object.
	Delete(ctx context.Context, path string) error
	// DeleteDir removes a directory and everything below it.
	DeleteDir(ctx context.Context, dirname string) error
	// CreateDir creates a directory marker.
	CreateDir(ctx context.Context, dirname string, cfg *Config) (*Metadata, error)
	// SetVisibility changes the access level of an object.
	SetVisibility(ctx context.Context, path string, visibility Visibility) (*Metadata, error)
	// Has checks whether an object exists.
	Has(ctx context.Context, path string) (bool, error)
	// Read returns the full contents of an object.
	Read(ctx context.Context, path string) (*Contents, error)
	// ListContents lists a directory, flattening sub-directories when recursive is set.
	ListContents(ctx context.Context, directory string, recursive bool) ([]Metadata, error)
	// GetMetadata returns the full descriptor of an object.
	GetMetadata(ctx context.Context, path string) (*Metadata, error)
	// GetSize returns the full descriptor; callers read Size.
	GetSize(ctx context.Context, path string) (*Metadata, error)
	// GetMimetype returns the full descriptor; callers read Mimetype.
	GetMimetype(ctx context.Context, path string) (*Metadata, error)
	// GetTimestamp returns the full descriptor; callers read Timestamp.
	GetTimestamp(ctx context.Context, path string) (*Metadata, error)
	// GetVisibility returns the access level of an object.
	GetVisibility(ctx context.Context, path string) (*Metadata, error)
}

// FileUploader is implemented by adapters that can upload a local file directly.
type FileUploader interface {
	UploadFile(ctx context.Context, path, localFilePath string, cfg *Config) (*Metadata, error)
}

// FullURLGenerator is implemented by adapters that can build object URLs.
// A zero expiry yields the public URL, a positive one a signed URL.
type FullURLGenerator interface {
	FullURL(ctx context.Context, path string, expires time.Duration) (string, error)
}

// URLGenerator is implemented by adapters that expose a public URL for an object.
type URLGenerator interface {
	URL(ctx context.Context, path string) (string, error)
}

// TemporaryURLGenerator is implemented by adapters that can sign expiring URLs.
type TemporaryURLGenerator interface {
	TemporaryURL(ctx context.Context, path string, expires time.Duration) (string, error)
}
