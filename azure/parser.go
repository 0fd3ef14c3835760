package azure

import (
	"strings"

	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/data/errors"
)

// ParseFileName parses a blob uri of the form
//
//	azb://{account}.{host}/{container}/{path...}
//
// into a FileName. Query and fragment are stripped, the path is normalized,
// the account is the authority up to its first dot. A uri ending in "/"
// declares a folder; anything else is declared a file until a remote probe
// says otherwise. At least an authority and a container segment must be
// present.
func ParseFileName(uri string) (*FileName, error) {
	raw := uri
	if idx := strings.IndexByte(raw, '#'); idx >= 0 {
		raw = raw[:idx]
	}
	if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		raw = raw[:idx]
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || scheme == "" {
		return nil, errors.MalformedURI(nil, uri)
	}

	segments := strings.Split(rest, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return nil, errors.MalformedURI(nil, uri)
	}

	authority := segments[0]
	dot := strings.IndexByte(authority, '.')
	if dot <= 0 {
		return nil, errors.MalformedURI(nil, uri)
	}
	account := authority[:dot]
	container := segments[1]

	path := data.NormalizePath(strings.Join(segments[2:], "/"))

	fileType := data.FileTypeFile
	if strings.HasSuffix(raw, "/") || path == "/" {
		fileType = data.FileTypeFolder
	}

	return NewFileName(scheme, account, container, path, fileType), nil
}
