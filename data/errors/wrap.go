package errors

import "fmt"

func MalformedURI(err error, uri string) error {
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrMalformedURI, uri, err)
	}

	return fmt.Errorf("%w: '%s'", ErrMalformedURI, uri)
}

func NotFound(err error, name string) error {
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrNotFound, name, err)
	}

	return fmt.Errorf("%w: '%s'", ErrNotFound, name)
}

func MissingSource(uri string) error {
	return fmt.Errorf("%w: '%s'", ErrMissingSource, uri)
}

func SizeLimitExceeded(size, limit int64) error {
	return fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrSizeLimitExceeded, size, limit)
}

func UnsupportedCopySource(uri string) error {
	return fmt.Errorf("%w: '%s'", ErrUnsupportedCopySource, uri)
}

// CopyFailed carries both endpoint identities so a failed tree copy names
// the exact entry that aborted it.
func CopyFailed(err error, source, destination string) error {
	return fmt.Errorf("%w: '%s' to '%s': %w", ErrCopyFailed, source, destination, err)
}
