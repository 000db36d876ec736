// Package tablesource provides the places a critical-value table can be read
// from: the bundled table, a table computed on the fly, a local file, or an
// Azure blob.
package tablesource

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/statkit-dev/statkit/internal/cache"
	"github.com/statkit-dev/statkit/internal/critical"
)

// Location keywords accepted by Parse.
const (
	LocationEmbedded  = "embedded"
	LocationGenerated = "generated"
)

// Options tune the sources created by Parse.
type Options struct {
	// MaxDF is the number of rows a generated table holds.
	MaxDF int
	// Anonymous skips Azure credentials for blob locations.
	Anonymous bool
	// Cache keeps downloaded blob tables on disk. May be nil.
	Cache *cache.Cache
}

// Parse maps a configured location to a Source:
//
//	embedded                                    bundled two-tailed t table
//	generated                                   t table computed with gonum
//	azblob://<account>/<container>/<blob>       Azure blob
//	https://<account>.blob.core.windows.net/... Azure blob
//	anything else                               local file (.gz and .zst decompressed)
func Parse(location string, opts Options) (critical.Source, error) {
	switch strings.TrimSpace(location) {
	case "", LocationEmbedded:
		return Embedded{}, nil
	case LocationGenerated:
		return Generated{MaxDF: opts.MaxDF}, nil
	}
	if isBlobLocation(location) {
		return NewBlob(location, BlobOptions{Anonymous: opts.Anonymous, Cache: opts.Cache})
	}
	return File{Path: location}, nil
}

func isBlobLocation(location string) bool {
	if strings.HasPrefix(location, blobScheme) {
		return true
	}
	u, err := url.Parse(location)
	if err != nil || u.Scheme != "https" {
		return false
	}
	return strings.HasSuffix(u.Hostname(), blobHostSuffix)
}

// ResolveLocation joins a relative file location onto baseDir. Keywords, blob
// URLs and absolute paths are returned unchanged.
func ResolveLocation(location, baseDir string) string {
	switch strings.TrimSpace(location) {
	case "", LocationEmbedded, LocationGenerated:
		return location
	}
	if isBlobLocation(location) || filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(baseDir, location)
}
