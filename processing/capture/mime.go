package capture

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

// DeclaredMIME resolves the type from the extension first, then sniffs the
// content. It returns "" when neither gives a concrete type.
func DeclaredMIME(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
		return t
	}
	if len(data) == 0 {
		return ""
	}
	detected := mimetype.Detect(data)
	if detected.Is(octetStream) {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(detected.String()); err == nil {
		return mt
	}
	return detected.String()
}
