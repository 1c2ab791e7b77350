package data

import (
	"path"
	"strings"
)

// RootPath is the only directory every namespace contains.
const RootPath = "/"

// CleanPath returns the canonical absolute form of p.
// An empty path resolves to the root.
func CleanPath(p string) string {
	if p == "" {
		return RootPath
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return path.Clean(p)
}

// IsRoot reports whether p refers to the root directory.
func IsRoot(p string) bool {
	return CleanPath(p) == RootPath
}

// IsTopLevel reports whether p is a direct child of the root.
// The namespace is flat, so any other path can never exist.
func IsTopLevel(p string) bool {
	p = CleanPath(p)
	if p == RootPath {
		return false
	}

	return !strings.Contains(p[1:], "/")
}

// BaseName returns the final segment of p without the leading slash.
func BaseName(p string) string {
	p = CleanPath(p)
	if p == RootPath {
		return ""
	}

	return p[strings.LastIndex(p, "/")+1:]
}

// JoinRoot returns the absolute path for a root child named name.
func JoinRoot(name string) string {
	return CleanPath("/" + name)
}
