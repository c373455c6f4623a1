// Package blake2s implements the BLAKE2s secure hashing algorithm defined by
// RFC 7693, with support for keying, salting and personalization. BLAKE2s is
// optimized for 8- to 32-bit platforms and produces digests of any size
// between 1 and 32 bytes.
//
// The package exposes three layers. State is the low-level streaming state
// machine (Init or InitKey, then any number of Update calls, then exactly one
// Final). Digest wraps a State in the hash.Hash interface. Hash and Sum256 are
// one-shot helpers.
//
// A State keeps up to two blocks of input buffered so that the final block is
// only compressed once Final is called, and it never allocates.
package blake2s

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2s.
const (
	// The maximum length of the key, in bytes.
	KeySize = 32
	// The maximum number of bytes to produce.
	Size = 32
	// The hash size of BLAKE2s-128 in bytes.
	Size128 = 16
	// Size of the salt, in bytes
	SaltLength = 8
	// Size of the personalization string, in bytes
	SeparatorLength = 8
	// Number of G function rounds for BLAKE2s.
	RoundCount = 10
	// Size of a block in bytes
	BlockSize = 64

	// Serialized parameter block length.
	paramSize = 32
)
