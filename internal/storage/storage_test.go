package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "pricing/standard/business/usd/index.html", PageKey("standard", "business", "usd"))
	assert.Equal(t, "pricing/classic/index.html", IndexKey("classic"))
	assert.Equal(t, "pricing/standard/manifest.json", ManifestKey("standard"))
	assert.Equal(t, "pricing/standard/static/css/pricing.css", AssetKey("standard", "css/pricing.css"))
	assert.Equal(t, "pricing/classic", VariantRoot("classic"))
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		key      string
		data     string
		want     string
	}{
		{"provided wins", "text/plain", "a.html", "", "text/plain; charset=utf-8"},
		{"provided charset kept", "text/html; charset=shift_jis", "a.html", "", "text/html; charset=shift_jis"},
		{"html extension", "", "pricing/index.html", "", "text/html; charset=utf-8"},
		{"css extension", "", "static/pricing.css", "", "text/css; charset=utf-8"},
		{"json extension", "", "manifest.json", "", "application/json; charset=utf-8"},
		{"uppercase extension", "", "INDEX.HTML", "", "text/html; charset=utf-8"},
		{"sniffed", "", "noext", "<!DOCTYPE html><html></html>", "text/html; charset=utf-8"},
		{"unknown", "", "noext", "", "application/octet-stream"},
		{"binary keeps no charset", "image/png", "a.png", "", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data *strings.Reader
			if tt.data != "" {
				data = strings.NewReader(tt.data)
			}
			var got string
			if data != nil {
				got = DetectContentType(tt.provided, tt.key, data)
			} else {
				got = DetectContentType(tt.provided, tt.key, nil)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("text/html"))
	assert.True(t, IsHTML("TEXT/HTML; charset=utf-8"))
	assert.False(t, IsHTML("text/css"))
}
