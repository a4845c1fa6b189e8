package filesystem

import (
	"mime"
	"path"

	"github.com/gabriel-vasile/mimetype"
)

const defaultMimeType = "text/plain"

// Sniffed types too generic to trust over the file extension.
var weakMimeTypes = map[string]bool{
	"text/plain":               true,
	"application/octet-stream": true,
	"application/x-empty":      true,
}

// GuessMimeType detects the content type of an object, sniffing contents first and
// falling back to the path extension, then to text/plain.
func GuessMimeType(name string, contents []byte) string {
	if len(contents) > 0 {
		detected := mimetype.Detect(contents)
		if base, _, err := mime.ParseMediaType(detected.String()); err == nil && !weakMimeTypes[base] {
			return detected.String()
		}
	}
	if ext := path.Ext(name); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return defaultMimeType
}

// Dirname returns the logical parent directory of name, empty at the root.
func Dirname(name string) string {
	dir := path.Dir(name)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
