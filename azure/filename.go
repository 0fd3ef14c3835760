// Package azure is the provider core: it binds hierarchical file semantics
// onto one Azure blob container. FileSystem owns the container connection,
// FileObject carries the per-path lifecycle, type inference and the copy
// engine.
package azure

import (
	"fmt"

	"github.com/mwantia/azvfs/data"
)

const (
	// Scheme identifies this provider in uris.
	Scheme = "azb"
	// EndpointSuffix is the host suffix used when rendering uris.
	EndpointSuffix = "blob.core.windows.net"
)

// FileName is the parsed identity of one blob path:
//
//	azb://{account}.blob.core.windows.net/{container}/{path...}
//
// Values are immutable. The path is always slash-rooted with no trailing
// slash; the container root is "/" and is always a folder. Deriving a name
// with a different path or type produces a new value, never a mutation, so
// two objects can never alias each other's type through a shared name.
type FileName struct {
	scheme    string
	account   string
	container string
	path      string
	fileType  data.FileType
}

// NewFileName builds a name from its parts, normalizing the path. The root
// path is forced to folder type regardless of the declared type.
func NewFileName(scheme, account, container, path string, fileType data.FileType) *FileName {
	normalized := data.NormalizePath(path)
	if normalized == "/" {
		fileType = data.FileTypeFolder
	}

	return &FileName{
		scheme:    scheme,
		account:   account,
		container: container,
		path:      normalized,
		fileType:  fileType,
	}
}

func (n *FileName) Scheme() string {
	return n.scheme
}

func (n *FileName) Account() string {
	return n.account
}

func (n *FileName) Container() string {
	return n.container
}

// Path returns the absolute path below the container; "/" for the root.
func (n *FileName) Path() string {
	return n.path
}

// Type returns the type declared when the name was created.
func (n *FileName) Type() data.FileType {
	return n.fileType
}

func (n *FileName) IsRoot() bool {
	return n.path == "/"
}

// BlobKey returns the flat-store key form of the path: no leading slash,
// empty for the container root.
func (n *FileName) BlobKey() string {
	return data.ToBlobKey(n.path)
}

// CreateName derives a name within the same account and container.
func (n *FileName) CreateName(absPath string, fileType data.FileType) *FileName {
	return NewFileName(n.scheme, n.account, n.container, absPath, fileType)
}

// RootURI renders the container root without a trailing separator.
func (n *FileName) RootURI() string {
	return fmt.Sprintf("%s://%s.%s/%s", n.scheme, n.account, EndpointSuffix, n.container)
}

// URI renders the full uri. Folder names other than the root do not carry a
// trailing slash; the declared type, not the rendering, tracks folder
// intent.
func (n *FileName) URI() string {
	if n.IsRoot() {
		return n.RootURI() + "/"
	}

	return n.RootURI() + n.path
}

// RelativeName returns descendant's path relative to this name. The empty
// string means the names are equal.
func (n *FileName) RelativeName(descendant *FileName) (string, error) {
	if n.path != descendant.path && !data.IsAncestorPath(n.path, descendant.path) {
		return "", fmt.Errorf("azure: '%s' is not a descendant of '%s'", descendant.path, n.path)
	}

	return data.ToRelativePath(descendant.path, n.path), nil
}
