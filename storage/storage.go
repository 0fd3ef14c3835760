// Package storage defines the capability surface the virtual filesystem
// consumes from a blob store client. The provider never talks to the wire
// directly; it is handed a Container and derives per-blob Handles from it.
package storage

import (
	"context"
	"io"
	"time"
)

// Properties is a point-in-time snapshot of a blob's remote metadata.
type Properties struct {
	Size         int64
	LastModified time.Time
	ContentType  string
}

// ListEntry is one result of a hierarchical listing. IsPrefix marks entries
// that group child keys under the delimiter, i.e. virtual folders.
type ListEntry struct {
	Name     string
	IsPrefix bool
	Size     int64
}

// Block describes one committed block of a block blob, in commit order.
type Block struct {
	ID   string
	Size int64
}

// WriteOptions control the chunked block upload behind OpenWrite.
type WriteOptions struct {
	// BlockSize is the staged block size in bytes. Zero selects the
	// implementation default.
	BlockSize int64
	// Concurrency bounds parallel block staging. Zero selects the
	// implementation default.
	Concurrency int
}

// Container scopes blob operations to a single container of one storage
// account. Implementations must be safe for concurrent use; every call is
// independently parameterized by blob key.
type Container interface {
	// Name returns the container name.
	Name() string

	// Account returns the storage account identity owning this container.
	Account() string

	// Handle returns a handle for the given container-scoped key. Handle
	// creation is local and performs no I/O.
	Handle(key string) Handle

	// ListHierarchy lists entries sharing the prefix, grouped under the "/"
	// delimiter. At most maxResults entries are returned per call;
	// maxResults <= 0 means no limit.
	ListHierarchy(ctx context.Context, prefix string, maxResults int32) ([]ListEntry, error)
}

// Handle addresses one blob. Calls that touch the remote object return
// errors wrapping errors.ErrNotFound from data/errors when the blob does
// not exist.
type Handle interface {
	// Key returns the container-scoped key this handle addresses.
	Key() string

	// URL returns the unauthenticated url of the blob.
	URL() string

	// Exists probes the remote object directly, bypassing any caches.
	Exists(ctx context.Context) (bool, error)

	// Properties fetches the current remote metadata snapshot.
	Properties(ctx context.Context) (*Properties, error)

	// OpenRead opens the blob content for sequential reading.
	OpenRead(ctx context.Context) (io.ReadCloser, error)

	// OpenWrite opens a chunked writer that replaces the blob content when
	// closed. Nothing is visible remotely until Close commits the block list.
	OpenWrite(ctx context.Context, opts WriteOptions) (io.WriteCloser, error)

	// Delete removes the blob.
	Delete(ctx context.Context) error

	// CopyFromURL performs a synchronous server-side copy from a readable
	// (typically signed) source url.
	CopyFromURL(ctx context.Context, sourceURL string) error

	// BeginCopyFromURL starts an asynchronous server-side copy and polls at
	// the given interval until the store reports completion or failure.
	BeginCopyFromURL(ctx context.Context, sourceURL string, pollInterval time.Duration) error

	// CommittedBlocks returns the blob's committed block list in order.
	CommittedBlocks(ctx context.Context) ([]Block, error)

	// StageBlockFromURL stages one block into this blob by reference to a
	// byte range of the source url, without routing bytes through the caller.
	StageBlockFromURL(ctx context.Context, blockID, sourceURL string, offset, count int64) error

	// CommitBlockList atomically commits the ordered block list as the
	// blob's new content.
	CommitBlockList(ctx context.Context, blockIDs []string) error

	// SignedURL produces a read-scoped, HTTPS-only url valid for the given
	// duration. Signing is local and performs no I/O.
	SignedURL(validity time.Duration) (string, error)
}
