package errors

import "errors"

// Sentinel errors for the provider taxonomy. Constructors in this package
// wrap these with operation context, so callers can match with errors.Is
// while still seeing the underlying store failure in the chain.
var (
	// ErrMalformedURI marks an input uri that cannot be parsed into
	// account, container and path.
	ErrMalformedURI = errors.New("azvfs: malformed uri")

	// ErrNotFound marks an object that vanished between a check and its use.
	ErrNotFound = errors.New("azvfs: object not found")

	// ErrMissingSource marks a copy whose source does not exist.
	ErrMissingSource = errors.New("azvfs: copy source does not exist")

	// ErrSizeLimitExceeded marks an object too large for the store's
	// absolute block-count and block-size limits.
	ErrSizeLimitExceeded = errors.New("azvfs: object exceeds store size limit")

	// ErrUnsupportedCopySource marks a source with neither content nor
	// children; there is nothing meaningful to transfer.
	ErrUnsupportedCopySource = errors.New("azvfs: copy source has no content or children")

	// ErrCopyFailed wraps any I/O or store failure raised while copying.
	ErrCopyFailed = errors.New("azvfs: copy failed")

	// ErrAppendUnsupported is returned for append-mode writes; the store
	// only supports full-object overwrite.
	ErrAppendUnsupported = errors.New("azvfs: append is not supported")
)
