// Package fingerprint computes a cheap content digest over a file's
// table-meta and chunkset header bytes and its column names, so a
// MetaHandle can cheaply assert "this is the same file I opened before"
// without reading any column body.
package fingerprint

import "github.com/cespare/xxhash/v2"

// Digest returns the xxHash64 of the concatenation of parts, computed
// incrementally so no intermediate buffer is allocated.
func Digest(parts ...[]byte) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.Write(p) // xxhash.Digest.Write never returns an error
	}

	return d.Sum64()
}
