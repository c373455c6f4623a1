package blake2s

import "fmt"

// Hash computes the BLAKE2s digest of in and writes it to out. The digest
// size is len(out), which must be between 1 and Size. An empty key selects
// unkeyed mode; otherwise the key must be at most KeySize bytes.
//
// out and in must be non-nil. An empty, non-nil in hashes the empty message.
func Hash(out, in, key []byte) error {
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrInvalidArgument)
	}
	if in == nil {
		return fmt.Errorf("%w: nil input", ErrInvalidArgument)
	}

	var s State
	var err error
	if len(key) > 0 {
		err = s.InitKey(len(out), key)
	} else {
		err = s.Init(len(out))
	}
	if err != nil {
		return err
	}

	s.update(in)
	return s.Final(out)
}

// Sum256 returns the unkeyed BLAKE2s-256 checksum of the data.
func Sum256(data []byte) [Size]byte {
	var s State
	var sum [Size]byte

	// A fixed, valid size cannot fail.
	_ = s.Init(Size)
	s.update(data)
	_ = s.Final(sum[:])
	return sum
}
