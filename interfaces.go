package azvfs

import (
	"context"
	"io"
	"time"

	"github.com/mwantia/azvfs/data"
	"github.com/mwantia/azvfs/storage"
)

// Name is the parsed hierarchical identity of a file object. Names are
// immutable; deriving a name with a different path or type always produces
// a new value.
type Name interface {
	// URI returns the full uri form of this name.
	URI() string

	// Path returns the absolute, slash-rooted path below the container.
	// The root path is "/".
	Path() string

	// Type returns the type declared at parse time, before any remote
	// probe. Only a declared folder (root or slash-terminated uri) is ever
	// trusted without a probe.
	Type() data.FileType
}

// FileObject is one addressable path in the backing store. Instances are
// not safe for concurrent mutation; the caller must not issue overlapping
// operations on the same instance.
type FileObject interface {
	// Name returns the identity this object is bound to.
	Name() Name

	// Type infers whether the path is a file, a folder or imaginary.
	// Results are cached; a cached imaginary result is re-verified on the
	// next call because placeholder names flip once content materializes.
	Type(ctx context.Context) (data.FileType, error)

	// Exists reports whether Type resolves to anything other than
	// imaginary. Inference failures propagate, never read as "absent".
	Exists(ctx context.Context) (bool, error)

	// ContentSize returns the object's byte length from its remote
	// properties snapshot.
	ContentSize(ctx context.Context) (int64, error)

	// LastModified returns the remote modification time in epoch
	// milliseconds, or 0 when the object does not exist. Existence is
	// probed directly rather than through the cached type.
	LastModified(ctx context.Context) (int64, error)

	// SetLastModified is accepted and ignored; the store does not support
	// client-set modification times.
	SetLastModified(ctx context.Context, epochMillis int64) error

	// Children enumerates the immediate children of a folder.
	Children(ctx context.Context) ([]FileObject, error)

	// OpenRead opens the object content for reading.
	OpenRead(ctx context.Context) (io.ReadCloser, error)

	// OpenWrite opens the object for a full overwrite. Requesting append
	// fails; the store only commits whole objects.
	OpenWrite(ctx context.Context, appendMode bool) (io.WriteCloser, error)

	// CreateFolder succeeds without creating anything: the store has no
	// directory objects, folder existence is implied by descendants.
	CreateFolder(ctx context.Context) error

	// Delete removes the backing object of a file. It always forces the
	// cached type to imaginary, so a delete is observable without a round
	// trip. Deleting an imaginary object is a no-op.
	Delete(ctx context.Context) error

	// DeleteAll deletes this object and every descendant.
	DeleteAll(ctx context.Context) error

	// CopyFrom copies the source tree selected by selector onto this
	// object as the destination root.
	CopyFrom(ctx context.Context, source FileObject, selector FileSelector) error

	// Refresh prepares the object for resynchronization with the store.
	Refresh() error

	// Close detaches the object from its remote handle and drops all
	// cached state. The object may be reused afterwards.
	Close() error
}

// ServerCopySource is the capability a copy source must expose for the
// destination to attempt a server-side copy instead of streaming bytes
// through the caller. Queried polymorphically; foreign objects simply do
// not implement it.
type ServerCopySource interface {
	// AccountIdentity returns the storage account the object belongs to.
	// The second result is false when no account identity applies.
	AccountIdentity() (string, bool)

	// SignedURL produces a read-scoped, HTTPS-only url for the object.
	SignedURL(validity time.Duration) (string, error)

	// CommittedBlocks returns the object's committed block layout.
	CommittedBlocks(ctx context.Context) ([]storage.Block, error)
}
