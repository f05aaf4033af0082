package storage

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
)

// textTypes are stored with an explicit UTF-8 charset.
var textTypes = map[string]bool{
	"text/html":        true,
	"text/css":         true,
	"text/plain":       true,
	"application/json": true,
}

// DetectContentType determines the MIME type of an object.
//
// Detection priority:
//  1. providedType, when non-empty
//  2. the key's extension
//  3. sniffing the first 512 bytes of data, when given
//  4. "application/octet-stream"
//
// Text types get "; charset=utf-8" unless a charset is already present.
func DetectContentType(providedType, key string, data io.Reader) string {
	if providedType != "" {
		return withCharset(providedType)
	}

	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(key))); ct != "" {
		return withCharset(ct)
	}

	if data != nil {
		buffer := make([]byte, 512)
		n, err := io.ReadFull(data, buffer)
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			return withCharset(http.DetectContentType(buffer[:n]))
		}
	}

	return "application/octet-stream"
}

// baseType strips parameters such as charset.
func baseType(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(strings.ToLower(base))
}

// IsHTML reports whether contentType is an HTML document.
func IsHTML(contentType string) bool {
	return baseType(contentType) == "text/html"
}

func withCharset(contentType string) string {
	if !textTypes[baseType(contentType)] || strings.Contains(strings.ToLower(contentType), "charset=") {
		return contentType
	}
	return baseType(contentType) + "; charset=utf-8"
}
