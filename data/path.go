package data

import (
	"path"
	"strings"
)

// NormalizePath collapses duplicate separators, resolves "." and ".."
// segments and strips any trailing slash. The result is always rooted with a
// leading slash; the container root normalizes to "/".
func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	p = path.Clean(p)
	if p == "." {
		return "/"
	}

	return p
}

// ToBlobKey converts an absolute path into the key form the flat store
// expects: no leading slash, empty string for the container root.
func ToBlobKey(p string) string {
	return strings.TrimPrefix(NormalizePath(p), "/")
}

// ToRelativePath removes the prefix from path and any leading slashes from
// the remainder. Returns "" when path equals the prefix.
func ToRelativePath(p, prefix string) string {
	if prefix == "" || prefix == "/" {
		return strings.TrimPrefix(p, "/")
	}

	if p == prefix {
		return ""
	}

	rel := strings.TrimPrefix(p, prefix)
	return strings.TrimPrefix(rel, "/")
}

// IsAncestorPath reports whether ancestor contains p, directly or through
// intermediate folders. Both paths must be normalized.
func IsAncestorPath(ancestor, p string) bool {
	if ancestor == "/" {
		return p != "/"
	}

	return strings.HasPrefix(p, ancestor+"/")
}

// LastSegment returns the final path segment of a key, preserving a trailing
// slash so virtual folder entries stay recognizable.
func LastSegment(key string) string {
	trimmed := strings.TrimSuffix(key, "/")

	segment := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		segment = trimmed[idx+1:]
	}

	if strings.HasSuffix(key, "/") {
		segment += "/"
	}

	return segment
}

// JoinPath appends a relative path below base, normalizing the result.
func JoinPath(base, rel string) string {
	if rel == "" {
		return NormalizePath(base)
	}

	return NormalizePath(base + "/" + rel)
}
