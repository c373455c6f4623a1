// Package blake2 implements the BLAKE2s secure hashing algorithm with support
// for keying, salting and personalization. BLAKE2s is optimized for 8- to
// 32-bit platforms and produces digests of any size between 1 and 32 bytes.
//
// The implementation lives in the blake2s subpackage. It keeps at most two
// blocks of unprocessed input and never allocates on the hashing path, which
// makes it suitable for small targets as well as general use.
package blake2

//go:generate python3 gen_vectors.py testdata/blake2s-kat.json testdata/blake2s-extras.json
