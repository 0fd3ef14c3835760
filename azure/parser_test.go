package azure

import (
	"errors"
	"testing"

	"github.com/mwantia/azvfs/data"
	vfserrors "github.com/mwantia/azvfs/data/errors"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		account   string
		container string
		path      string
		fileType  data.FileType
	}{
		{
			name:      "plain file",
			uri:       "azb://example.blob.core.windows.net/documents/test-docs/test-file.txt",
			account:   "example",
			container: "documents",
			path:      "/test-docs/test-file.txt",
			fileType:  data.FileTypeFile,
		},
		{
			name:      "trailing slash declares a folder",
			uri:       "azb://example.blob.core.windows.net/documents/test-docs/",
			account:   "example",
			container: "documents",
			path:      "/test-docs",
			fileType:  data.FileTypeFolder,
		},
		{
			name:      "container root",
			uri:       "azb://example.blob.core.windows.net/documents",
			account:   "example",
			container: "documents",
			path:      "/",
			fileType:  data.FileTypeFolder,
		},
		{
			name:      "container root with slash",
			uri:       "azb://example.blob.core.windows.net/documents/",
			account:   "example",
			container: "documents",
			path:      "/",
			fileType:  data.FileTypeFolder,
		},
		{
			name:      "query and fragment are stripped",
			uri:       "azb://example.blob.core.windows.net/documents/file.txt?sig=abc#frag",
			account:   "example",
			container: "documents",
			path:      "/file.txt",
			fileType:  data.FileTypeFile,
		},
		{
			name:      "redundant separators collapse",
			uri:       "azb://example.blob.core.windows.net/documents//a//b.txt",
			account:   "example",
			container: "documents",
			path:      "/a/b.txt",
			fileType:  data.FileTypeFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseFileName(tt.uri)
			if err != nil {
				t.Fatalf("ParseFileName(%q) failed: %v", tt.uri, err)
			}

			if parsed.Account() != tt.account {
				t.Errorf("account = %q, want %q", parsed.Account(), tt.account)
			}
			if parsed.Container() != tt.container {
				t.Errorf("container = %q, want %q", parsed.Container(), tt.container)
			}
			if parsed.Path() != tt.path {
				t.Errorf("path = %q, want %q", parsed.Path(), tt.path)
			}
			if parsed.Type() != tt.fileType {
				t.Errorf("type = %v, want %v", parsed.Type(), tt.fileType)
			}
		})
	}
}

func TestParseFileNameMalformed(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"empty", ""},
		{"no scheme", "example.blob.core.windows.net/documents/file.txt"},
		{"missing authority", "azb:///documents/file.txt"},
		{"missing container", "azb://example.blob.core.windows.net"},
		{"empty container", "azb://example.blob.core.windows.net//file.txt"},
		{"authority without dot", "azb://example/documents/file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFileName(tt.uri); !errors.Is(err, vfserrors.ErrMalformedURI) {
				t.Errorf("ParseFileName(%q) = %v, want ErrMalformedURI", tt.uri, err)
			}
		})
	}
}
