package azure

import (
	"fmt"
	"sync"

	"github.com/tidwall/btree"

	"github.com/mwantia/azvfs"
	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/log"
	"github.com/mwantia/azvfs/storage"
)

// FileSystem owns one container connection and acts as the factory for file
// objects. The connection is shared read-only by every object; resolved
// objects are cached so repeated lookups of one path observe each other's
// cached state.
type FileSystem struct {
	mu sync.RWMutex

	container storage.Container
	config    azvfs.Config
	log       *log.Logger

	root    *FileName
	objects *btree.Map[string, *FileObject]
}

// NewFileSystem wires a filesystem onto an established container
// connection. Config options override the provider defaults.
func NewFileSystem(container storage.Container, opts ...azvfs.Option) (*FileSystem, error) {
	config := azvfs.DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	return &FileSystem{
		container: container,
		config:    config,
		log:       logger.Named("azure"),
		root:      NewFileName(Scheme, container.Account(), container.Name(), "/", data.FileTypeFolder),
		objects:   btree.NewMap[string, *FileObject](0),
	}, nil
}

// Capabilities advertises what this provider supports. Rename is absent on
// purpose: a flat-store rename is copy plus delete and must be issued as
// two operations. Append is likewise absent.
func (fs *FileSystem) Capabilities() *azvfs.Capabilities {
	return &azvfs.Capabilities{
		Capabilities: []azvfs.Capability{
			azvfs.CapabilityRead,
			azvfs.CapabilityWrite,
			azvfs.CapabilityRandomAccessRead,
			azvfs.CapabilityListChildren,
			azvfs.CapabilityCreateFolder,
			azvfs.CapabilityDelete,
			azvfs.CapabilityGetLastModified,
			azvfs.CapabilitySetLastModified,
			azvfs.CapabilityCopy,
			azvfs.CapabilitySignedURL,
		},
	}
}

// Account returns the storage account identity of the owned container.
func (fs *FileSystem) Account() string {
	return fs.container.Account()
}

// Root returns the name of the container root.
func (fs *FileSystem) Root() *FileName {
	return fs.root
}

// NewFileObject binds a fresh file object to this filesystem. Pure factory,
// no I/O, no caching.
func (fs *FileSystem) NewFileObject(name *FileName) *FileObject {
	return newFileObject(fs, name)
}

// Resolve parses the uri and returns the cached object for it. The uri must
// address this filesystem's account and container.
func (fs *FileSystem) Resolve(uri string) (*FileObject, error) {
	name, err := ParseFileName(uri)
	if err != nil {
		return nil, err
	}

	if name.Account() != fs.container.Account() || name.Container() != fs.container.Name() {
		return nil, fmt.Errorf("azure: uri '%s' does not address container '%s/%s'",
			uri, fs.container.Account(), fs.container.Name())
	}

	return fs.ResolveName(name), nil
}

// ResolveName returns the cached object for the name's path, creating and
// caching one when absent. The first name resolved for a path decides the
// cached instance; later callers share it.
func (fs *FileSystem) ResolveName(name *FileName) *FileObject {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if existing, ok := fs.objects.Get(name.Path()); ok {
		return existing
	}

	obj := newFileObject(fs, name)
	fs.objects.Set(name.Path(), obj)

	return obj
}

// Close detaches every cached object and clears the cache. The filesystem
// remains usable; objects re-attach lazily.
func (fs *FileSystem) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.objects.Scan(func(_ string, obj *FileObject) bool {
		_ = obj.Close()
		return true
	})
	fs.objects = btree.NewMap[string, *FileObject](0)

	return nil
}
