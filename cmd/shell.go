package cmd

import (
	"strings"

	"github.com/mwantia/azvfs/azure"
	"github.com/mwantia/azvfs/data"
)

// Shell is the state commands run against: one attached filesystem and a
// current working folder inside it.
type Shell struct {
	FS *azure.FileSystem

	// Cwd is the absolute working folder path, "/" for the container root.
	Cwd string
}

func NewShell(fs *azure.FileSystem) *Shell {
	return &Shell{
		FS:  fs,
		Cwd: "/",
	}
}

// Resolve turns a command argument into a file object. Arguments without a
// leading slash are taken relative to the working folder; a trailing slash
// declares a folder.
func (s *Shell) Resolve(arg string) *azure.FileObject {
	p := arg
	if !strings.HasPrefix(p, "/") {
		p = data.JoinPath(s.Cwd, p)
	}

	fileType := data.FileTypeFile
	if strings.HasSuffix(arg, "/") || data.NormalizePath(p) == "/" {
		fileType = data.FileTypeFolder
	}

	name := s.FS.Root().CreateName(p, fileType)
	return s.FS.ResolveName(name)
}

// ResolveFolder is Resolve with the result declared as a folder, for
// commands that only make sense on folders.
func (s *Shell) ResolveFolder(arg string) *azure.FileObject {
	if !strings.HasSuffix(arg, "/") {
		arg += "/"
	}

	return s.Resolve(arg)
}
