package filesystem

import (
	"context"
	"time"
)

// Filesystem is the facade host code uses. It forwards the contract to its adapter and
// exposes the optional extension methods when the adapter supports them.
type Filesystem struct {
	adapter Adapter
	config  *Config
}

// New creates a Filesystem around adapter. cfg is the filesystem-level config used as a
// fallback by write-like operations; it may be nil.
func New(adapter Adapter, cfg *Config) *Filesystem {
	if cfg == nil {
		cfg = NewConfig(nil)
	}
	return &Filesystem{adapter: adapter, config: cfg}
}

// Adapter returns the backing adapter.
func (f *Filesystem) Adapter() Adapter {
	return f.adapter
}

// Config returns the filesystem-level config.
func (f *Filesystem) Config() *Config {
	return f.config
}

func (f *Filesystem) prepare(cfg *Config) *Config {
	if cfg == nil {
		cfg = NewConfig(nil)
	}
	return cfg.WithFallback(f.config)
}

// Write stores a new object.
func (f *Filesystem) Write(ctx context.Context, path string, contents []byte, cfg *Config) (*Metadata, error) {
	return f.adapter.Write(ctx, path, contents, f.prepare(cfg))
}

// Update overwrites an existing object.
func (f *Filesystem) Update(ctx context.Context, path string, contents []byte, cfg *Config) (*Metadata, error) {
	return f.adapter.Update(ctx, path, contents, f.prepare(cfg))
}

// Put updates the object when it exists and writes it otherwise.
func (f *Filesystem) Put(ctx context.Context, path string, contents []byte, cfg *Config) (*Metadata, error) {
	exists, err := f.adapter.Has(ctx, path)
	if err != nil {
		return nil, err
	}
	if exists {
		return f.Update(ctx, path, contents, cfg)
	}
	return f.Write(ctx, path, contents, cfg)
}

// Rename moves an object.
func (f *Filesystem) Rename(ctx context.Context, path, newpath string) error {
	return f.adapter.Rename(ctx, path, newpath)
}

// Copy duplicates an object.
func (f *Filesystem) Copy(ctx context.Context, path, newpath string) error {
	return f.adapter.Copy(ctx, path, newpath)
}

// Delete removes an object.
func (f *Filesystem) Delete(ctx context.Context, path string) error {
	return f.adapter.Delete(ctx, path)
}

// DeleteDir removes a directory recursively.
func (f *Filesystem) DeleteDir(ctx context.Context, dirname string) error {
	return f.adapter.DeleteDir(ctx, dirname)
}

// CreateDir creates a directory marker.
func (f *Filesystem) CreateDir(ctx context.Context, dirname string, cfg *Config) (*Metadata, error) {
	return f.adapter.CreateDir(ctx, dirname, f.prepare(cfg))
}

// SetVisibility changes the access level of an object.
func (f *Filesystem) SetVisibility(ctx context.Context, path string, visibility Visibility) (*Metadata, error) {
	return f.adapter.SetVisibility(ctx, path, visibility)
}

// Has checks whether an object exists.
func (f *Filesystem) Has(ctx context.Context, path string) (bool, error) {
	return f.adapter.Has(ctx, path)
}

// Read returns the contents of an object.
func (f *Filesystem) Read(ctx context.Context, path string) (*Contents, error) {
	return f.adapter.Read(ctx, path)
}

// ListContents lists a directory.
func (f *Filesystem) ListContents(ctx context.Context, directory string, recursive bool) ([]Metadata, error) {
	return f.adapter.ListContents(ctx, directory, recursive)
}

// GetMetadata returns the descriptor of an object.
func (f *Filesystem) GetMetadata(ctx context.Context, path string) (*Metadata, error) {
	return f.adapter.GetMetadata(ctx, path)
}

// GetSize returns the descriptor of an object.
func (f *Filesystem) GetSize(ctx context.Context, path string) (*Metadata, error) {
	return f.adapter.GetSize(ctx, path)
}

// GetMimetype returns the descriptor of an object.
func (f *Filesystem) GetMimetype(ctx context.Context, path string) (*Metadata, error) {
	return f.adapter.GetMimetype(ctx, path)
}

// GetTimestamp returns the descriptor of an object.
func (f *Filesystem) GetTimestamp(ctx context.Context, path string) (*Metadata, error) {
	return f.adapter.GetTimestamp(ctx, path)
}

// GetVisibility returns the access level of an object.
func (f *Filesystem) GetVisibility(ctx context.Context, path string) (*Metadata, error) {
	return f.adapter.GetVisibility(ctx, path)
}

// UploadFile uploads a local file when the adapter supports it.
func (f *Filesystem) UploadFile(ctx context.Context, path, localFilePath string, cfg *Config) (*Metadata, error) {
	u, ok := f.adapter.(FileUploader)
	if !ok {
		return nil, Errorf(ErrUnsupported, "uploadFile")
	}
	return u.UploadFile(ctx, path, localFilePath, f.prepare(cfg))
}

// FullURL returns the public URL of an object, or a signed one when expires is positive.
func (f *Filesystem) FullURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	g, ok := f.adapter.(FullURLGenerator)
	if !ok {
		return "", Errorf(ErrUnsupported, "fullUrl")
	}
	return g.FullURL(ctx, path, expires)
}

// URL returns the public URL of an object.
func (f *Filesystem) URL(ctx context.Context, path string) (string, error) {
	g, ok := f.adapter.(URLGenerator)
	if !ok {
		return "", Errorf(ErrUnsupported, "getUrl")
	}
	return g.URL(ctx, path)
}

// TemporaryURL returns a signed URL valid for expires.
func (f *Filesystem) TemporaryURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	g, ok := f.adapter.(TemporaryURLGenerator)
	if !ok {
		return "", Errorf(ErrUnsupported, "getTemporaryUrl")
	}
	return g.TemporaryURL(ctx, path, expires)
}
