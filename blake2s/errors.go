package blake2s

import "errors"

var (
	// ErrInvalidDigestLength is returned when the requested digest size is
	// zero or larger than Size.
	ErrInvalidDigestLength = errors.New("blake2s: invalid digest length")

	// ErrInvalidKey is returned when a key is required but empty, or when a
	// key is longer than KeySize.
	ErrInvalidKey = errors.New("blake2s: invalid key")

	// ErrInvalidArgument is returned for missing input/output buffers and
	// oversized salt or personalization strings.
	ErrInvalidArgument = errors.New("blake2s: invalid argument")

	// ErrNotInitialized is returned by Update and Final on a State that was
	// never successfully initialized.
	ErrNotInitialized = errors.New("blake2s: state not initialized")

	// ErrFinalized is returned by Update and Final on a State that has
	// already produced its digest.
	ErrFinalized = errors.New("blake2s: state already finalized")
)
