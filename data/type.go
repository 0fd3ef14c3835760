package data

// FileType identifies what a path resolves to in the flat blob namespace.
type FileType int

const (
	// FileTypeImaginary means no remote object or prefix matches the path.
	FileTypeImaginary FileType = iota
	// FileTypeFile is a leaf object with readable content.
	FileTypeFile
	// FileTypeFolder is a prefix with child objects, or a name declared as a
	// folder by a trailing slash. Folders have no backing object of their own.
	FileTypeFolder
)

func (t FileType) String() string {
	switch t {
	case FileTypeFile:
		return "file"
	case FileTypeFolder:
		return "folder"
	default:
		return "imaginary"
	}
}

// HasContent reports whether objects of this type carry readable bytes.
func (t FileType) HasContent() bool {
	return t == FileTypeFile
}

// HasChildren reports whether objects of this type can enumerate children.
func (t FileType) HasChildren() bool {
	return t == FileTypeFolder
}
