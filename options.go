package azvfs

import (
	"fmt"

	"github.com/mwantia/azvfs/log"
)

// Config carries the recognized provider settings. It is passed into the
// filesystem factory at construction instead of being read from process-wide
// state, so two filesystems can run with different policies side by side.
type Config struct {
	// DefaultBlockSizeMB is the staged block size used until an object
	// would exceed the store's maximum block count.
	DefaultBlockSizeMB int

	// ServerSideCopyThresholdMB is the object size above which a
	// same-account copy switches from a single copy-by-url call to
	// block-staging.
	ServerSideCopyThresholdMB int

	// SignedURLValiditySeconds bounds the lifetime of read-scoped signed
	// urls generated for server-side copies.
	SignedURLValiditySeconds int

	// Logger receives provider diagnostics. Nil selects a quiet default.
	Logger *log.Logger
}

// Option mutates a Config during filesystem construction.
type Option func(*Config) error

// DefaultConfig returns the provider defaults: 8 MB blocks, 256 MB
// server-side copy threshold, 24 hour signed-url validity.
func DefaultConfig() Config {
	return Config{
		DefaultBlockSizeMB:        8,
		ServerSideCopyThresholdMB: 256,
		SignedURLValiditySeconds:  24 * 60 * 60,
	}
}

func WithDefaultBlockSize(sizeMB int) Option {
	return func(cfg *Config) error {
		if sizeMB <= 0 {
			return fmt.Errorf("azvfs: block size must be positive, got %d", sizeMB)
		}

		cfg.DefaultBlockSizeMB = sizeMB
		return nil
	}
}

func WithServerSideCopyThreshold(sizeMB int) Option {
	return func(cfg *Config) error {
		if sizeMB < 0 {
			return fmt.Errorf("azvfs: copy threshold must not be negative, got %d", sizeMB)
		}

		cfg.ServerSideCopyThresholdMB = sizeMB
		return nil
	}
}

func WithSignedURLValidity(seconds int) Option {
	return func(cfg *Config) error {
		if seconds <= 0 {
			return fmt.Errorf("azvfs: signed url validity must be positive, got %d", seconds)
		}

		cfg.SignedURLValiditySeconds = seconds
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = logger
		return nil
	}
}
