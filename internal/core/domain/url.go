package domain

import (
	"net/url"
	"strings"
)

const (
	// CacheMarker is the path component that marks assets written by the toolkit's own nodes.
	CacheMarker = "mixo3d_cache"

	// AssetTypeInput marks assets uploaded to the host's input directory.
	AssetTypeInput = "input"
	// AssetTypeOutput marks assets produced by node execution.
	AssetTypeOutput = "output"
)

// MeshExtensions are the file extensions accepted as mesh assets.
var MeshExtensions = []string{".glb", ".gltf"}

// IsMeshPath reports whether path names a mesh asset. The check is case-insensitive.
func IsMeshPath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range MeshExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// AssetURL converts a file path from a widget into an asset server URL.
func AssetURL(base, path string) string {
	filename := lastSegment(path)
	if strings.Contains(path, CacheMarker) {
		return viewURL(base, filename, AssetTypeOutput, CacheMarker)
	}
	return viewURL(base, filename, AssetTypeInput, "")
}

// OutputURL converts an asset path reported by node execution into an asset server URL.
// Everything before the last segment is used as the subfolder.
func OutputURL(base, path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	var subfolder string
	if i := strings.LastIndex(path, "/"); i >= 0 {
		subfolder = path[:i]
	}
	return viewURL(base, lastSegment(path), AssetTypeOutput, subfolder)
}

func viewURL(base, filename, kind, subfolder string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(base, "/"))
	b.WriteString("/view?filename=")
	b.WriteString(escape(filename))
	b.WriteString("&type=")
	b.WriteString(kind)
	if subfolder != "" {
		b.WriteString("&subfolder=")
		b.WriteString(escape(subfolder))
	}
	return b.String()
}

// escape encodes a query value the way browsers encode URI components.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func lastSegment(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
