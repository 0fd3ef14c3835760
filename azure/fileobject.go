package azure

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mwantia/azvfs"
	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/data/errors"
	"github.com/mwantia/azvfs/storage"
)

// attachState tracks where an object is in its lifecycle. The deleted state
// is deliberately distinct from a plain cached imaginary: an object this
// instance deleted is reported imaginary without a probe, while a cached
// imaginary from inference is re-verified because a placeholder name flips
// to real once content lands under it.
type attachState int

const (
	stateUnattached attachState = iota
	stateAttached
	stateAttachedDeleted
)

// typeProbeMaxResults bounds the listing behind type inference. One page is
// enough: the probe only needs to see whether anything matches the key or
// the key prefix.
const typeProbeMaxResults = 256

// FileObject binds one path to the store. Instances are cheap until
// attached; attach builds the blob handle locally without I/O. A single
// instance must not be used for overlapping operations.
type FileObject struct {
	fs   *FileSystem
	name *FileName

	state  attachState
	handle storage.Handle

	cachedType data.FileType
	typeKnown  bool
	properties *storage.Properties
}

func newFileObject(fs *FileSystem, name *FileName) *FileObject {
	return &FileObject{
		fs:   fs,
		name: name,
	}
}

// Name returns the identity this object is bound to.
func (f *FileObject) Name() azvfs.Name {
	return f.name
}

// FileName returns the concrete name, with account and container intact.
func (f *FileObject) FileName() *FileName {
	return f.name
}

// Attach binds the object to its blob handle. Attaching is idempotent and
// purely local.
func (f *FileObject) Attach() {
	if f.state != stateUnattached {
		return
	}

	f.handle = f.fs.container.Handle(f.name.BlobKey())
	f.state = stateAttached
	f.fs.log.Debug("attached '%s'", f.name.URI())
}

// Close detaches the object and drops every cached result. The object can
// be reused; the next operation re-attaches.
func (f *FileObject) Close() error {
	if f.state != stateUnattached {
		f.fs.log.Debug("detached '%s'", f.name.URI())
	}

	f.handle = nil
	f.state = stateUnattached
	f.invalidate()

	return nil
}

// Refresh drops cached state so the next operation resynchronizes with the
// store. The attachment itself survives.
func (f *FileObject) Refresh() error {
	f.invalidate()
	return nil
}

func (f *FileObject) invalidate() {
	f.cachedType = data.FileTypeImaginary
	f.typeKnown = false
	f.properties = nil
	if f.state == stateAttachedDeleted {
		f.state = stateAttached
	}
}

// Type infers what the path currently resolves to. A cached file or folder
// answer is trusted; a cached imaginary is probed again. A name declared as
// a folder at parse time is trusted without a probe, since folders have no
// backing object to verify against anyway.
func (f *FileObject) Type(ctx context.Context) (data.FileType, error) {
	f.Attach()

	if f.state == stateAttachedDeleted {
		return data.FileTypeImaginary, nil
	}

	if f.typeKnown && f.cachedType != data.FileTypeImaginary {
		return f.cachedType, nil
	}

	if f.name.Type() == data.FileTypeFolder {
		f.cachedType = data.FileTypeFolder
		f.typeKnown = true
		return f.cachedType, nil
	}

	inferred, err := f.inferType(ctx)
	if err != nil {
		return data.FileTypeImaginary, err
	}

	f.fs.log.Debug("inferred '%s' as %s", f.name.URI(), inferred)

	f.cachedType = inferred
	f.typeKnown = true

	return inferred, nil
}

// inferType resolves the path against one hierarchical listing page. An
// entry equal to the key plus the delimiter marks a folder, an entry equal
// to the key marks a file, anything else leaves the path imaginary. The
// folder verdict takes precedence: when a key exists both as a blob and as
// a prefix with children, the path is a folder regardless of which entry
// the listing yields first.
func (f *FileObject) inferType(ctx context.Context) (data.FileType, error) {
	key := f.name.BlobKey()

	entries, err := f.fs.container.ListHierarchy(ctx, key, typeProbeMaxResults)
	if err != nil {
		return data.FileTypeImaginary, err
	}

	leaf := false
	for _, entry := range entries {
		if entry.Name == key+"/" || (entry.Name == key && entry.IsPrefix) {
			return data.FileTypeFolder, nil
		}

		if entry.Name == key {
			leaf = true
		}
	}

	if leaf {
		return data.FileTypeFile, nil
	}

	return data.FileTypeImaginary, nil
}

// Exists reports whether the path resolves to a file or folder. An
// inference failure propagates instead of reading as absence.
func (f *FileObject) Exists(ctx context.Context) (bool, error) {
	t, err := f.Type(ctx)
	if err != nil {
		return false, err
	}

	return t != data.FileTypeImaginary, nil
}

func (f *FileObject) propertiesSnapshot(ctx context.Context) (*storage.Properties, error) {
	f.Attach()

	if f.properties != nil {
		return f.properties, nil
	}

	props, err := f.handle.Properties(ctx)
	if err != nil {
		return nil, err
	}

	f.properties = props
	return props, nil
}

// ContentSize returns the object's byte length.
func (f *FileObject) ContentSize(ctx context.Context) (int64, error) {
	props, err := f.propertiesSnapshot(ctx)
	if err != nil {
		return 0, err
	}

	return props.Size, nil
}

// ContentType returns the MIME type recorded on the blob.
func (f *FileObject) ContentType(ctx context.Context) (string, error) {
	props, err := f.propertiesSnapshot(ctx)
	if err != nil {
		return "", err
	}

	return props.ContentType, nil
}

// LastModified returns the remote modification time in epoch milliseconds,
// or 0 when no backing object exists. The store is probed directly so the
// answer reflects the remote side, not a cached type.
func (f *FileObject) LastModified(ctx context.Context) (int64, error) {
	f.Attach()

	exists, err := f.handle.Exists(ctx)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	props, err := f.handle.Properties(ctx)
	if err != nil {
		return 0, err
	}
	f.properties = props

	return props.LastModified.UnixMilli(), nil
}

// SetLastModified is accepted and discarded; blob modification times are
// set by the store on write.
func (f *FileObject) SetLastModified(ctx context.Context, epochMillis int64) error {
	return nil
}

// OpenRead opens the object content for sequential reading.
func (f *FileObject) OpenRead(ctx context.Context) (io.ReadCloser, error) {
	f.Attach()
	return f.handle.OpenRead(ctx)
}

// OpenWrite opens a full-overwrite writer. Append is refused; the store
// commits whole block lists, there is nothing to append to in place.
func (f *FileObject) OpenWrite(ctx context.Context, appendMode bool) (io.WriteCloser, error) {
	if appendMode {
		return nil, errors.ErrAppendUnsupported
	}

	f.Attach()

	writer, err := f.handle.OpenWrite(ctx, storage.WriteOptions{
		BlockSize:   int64(f.fs.config.DefaultBlockSizeMB) * mebibyte,
		Concurrency: uploadConcurrency,
	})
	if err != nil {
		return nil, err
	}

	return &invalidatingWriter{WriteCloser: writer, file: f}, nil
}

// invalidatingWriter drops the owning object's cached state once the upload
// commits, so a Type call after writing sees the new content.
type invalidatingWriter struct {
	io.WriteCloser
	file *FileObject
}

func (w *invalidatingWriter) Close() error {
	err := w.WriteCloser.Close()
	w.file.invalidate()

	return err
}

// ChildNames lists the names of the immediate children. Folder children
// carry a trailing slash.
func (f *FileObject) ChildNames(ctx context.Context) ([]string, error) {
	f.Attach()

	prefix := f.name.BlobKey()
	if prefix != "" {
		prefix += "/"
	}

	entries, err := f.fs.container.ListHierarchy(ctx, prefix, 0)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		// A zero-byte placeholder matching the folder key itself is not a
		// child.
		if entry.Name == prefix {
			continue
		}

		names = append(names, data.LastSegment(entry.Name))
	}

	return names, nil
}

// Children enumerates the immediate children as resolved objects.
func (f *FileObject) Children(ctx context.Context) ([]azvfs.FileObject, error) {
	t, err := f.Type(ctx)
	if err != nil {
		return nil, err
	}
	if t == data.FileTypeFile {
		return nil, fmt.Errorf("azure: '%s' is a file and has no children", f.name.URI())
	}

	names, err := f.ChildNames(ctx)
	if err != nil {
		return nil, err
	}

	children := make([]azvfs.FileObject, 0, len(names))
	for _, childName := range names {
		childType := data.FileTypeFile
		if strings.HasSuffix(childName, "/") {
			childType = data.FileTypeFolder
		}

		child := f.name.CreateName(data.JoinPath(f.name.Path(), strings.TrimSuffix(childName, "/")), childType)
		children = append(children, f.fs.ResolveName(child))
	}

	return children, nil
}

// CreateFolder succeeds without touching the store: folders have no backing
// object, existence is implied by descendants.
func (f *FileObject) CreateFolder(ctx context.Context) error {
	f.Attach()
	f.fs.log.Debug("create folder '%s' is a no-op, folders are virtual", f.name.URI())

	return nil
}

// Delete removes the backing object of a file. The cached type is forced to
// imaginary unconditionally, so this instance observes its own delete
// without a round trip. Deleting an imaginary or folder object removes
// nothing and still succeeds.
func (f *FileObject) Delete(ctx context.Context) error {
	t, err := f.Type(ctx)
	if err != nil {
		return err
	}

	if t == data.FileTypeFile {
		if err := f.handle.Delete(ctx); err != nil && !stderrors.Is(err, errors.ErrNotFound) {
			return err
		}
	}

	f.cachedType = data.FileTypeImaginary
	f.typeKnown = true
	f.properties = nil
	f.state = stateAttachedDeleted
	f.fs.log.Debug("deleted '%s'", f.name.URI())

	return nil
}

// DeleteAll deletes this object and every descendant, children before
// parents.
func (f *FileObject) DeleteAll(ctx context.Context) error {
	targets, err := azvfs.FindFiles(ctx, f, azvfs.SelectAll, true)
	if err != nil {
		return err
	}

	for _, target := range targets {
		if err := target.Delete(ctx); err != nil {
			return err
		}
	}

	return nil
}

// AccountIdentity reports the storage account this object lives in.
func (f *FileObject) AccountIdentity() (string, bool) {
	return f.fs.Account(), true
}

// SignedURL produces a read-scoped url for the object. A non-positive
// validity selects the configured default.
func (f *FileObject) SignedURL(validity time.Duration) (string, error) {
	f.Attach()

	if validity <= 0 {
		validity = time.Duration(f.fs.config.SignedURLValiditySeconds) * time.Second
	}

	return f.handle.SignedURL(validity)
}

// CommittedBlocks returns the object's committed block layout.
func (f *FileObject) CommittedBlocks(ctx context.Context) ([]storage.Block, error) {
	f.Attach()
	return f.handle.CommittedBlocks(ctx)
}
