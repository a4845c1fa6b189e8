package filesystem

import "strings"

// EntryType distinguishes files from directories in a descriptor.
type EntryType string

const (
	TypeFile EntryType = "file"
	TypeDir  EntryType = "dir"
)

// Visibility is the generic access level of an object.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility validates a visibility name, ignoring case.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case VisibilityPublic, VisibilityPrivate:
		return v, nil
	default:
		return "", Errorf(ErrInvalidArgument, "unknown visibility %q", s)
	}
}

// Metadata is the generic object descriptor crossing the adapter boundary.
// Paths are always logical: the disk prefix is never visible here.
type Metadata struct {
	// Type is either file or dir.
	Type EntryType `json:"type,omitempty"`
	// Path is the logical path of the entry.
	Path string `json:"path"`
	// Dirname is the logical parent directory, empty at the root.
	Dirname string `json:"dirname,omitempty"`
	// Timestamp is the last modification time in Unix seconds. Directories derived from a
	// listing prefix report 0.
	Timestamp int64 `json:"timestamp"`
	// Size is the object size in bytes.
	Size int64 `json:"size,omitempty"`
	// Mimetype is the content type stored with the object.
	Mimetype string `json:"mimetype,omitempty"`
	// Visibility is set by the visibility operations only.
	Visibility Visibility `json:"visibility,omitempty"`
}

// IsDir reports whether the descriptor is a directory.
func (m Metadata) IsDir() bool {
	return m.Type == TypeDir
}

// Contents is the result of a read.
type Contents struct {
	Path     string `json:"path"`
	Contents []byte `json:"contents"`
}
