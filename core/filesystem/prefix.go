package filesystem

import "strings"

// Prefixer rewrites logical paths to storage keys under a root prefix and back.
type Prefixer struct {
	prefix string
}

// NewPrefixer normalises prefix to end with a single "/". An empty prefix disables
// rewriting.
func NewPrefixer(prefix string) Prefixer {
	prefix = strings.TrimRight(prefix, `\/`)
	if prefix == "" {
		return Prefixer{}
	}
	return Prefixer{prefix: prefix + "/"}
}

// Prefix returns the normalised prefix.
func (p Prefixer) Prefix() string {
	return p.prefix
}

// ApplyPathPrefix turns a logical path into a storage key.
func (p Prefixer) ApplyPathPrefix(path string) string {
	return p.prefix + strings.TrimLeft(path, `\/`)
}

// RemovePathPrefix turns a storage key back into a logical path.
func (p Prefixer) RemovePathPrefix(key string) string {
	return strings.TrimPrefix(key, p.prefix)
}
