package blake2s

import (
	"fmt"
	"hash"
)

var _ hash.Hash = (*Digest)(nil)

// Digest implements hash.Hash on top of a State. Unlike State.Final, Sum does
// not end the hash: it finalizes a copy, so more data may be written after.
type Digest struct {
	s      State
	params parameterBlock

	// The key is retained so Reset can re-absorb it.
	key    [KeySize]byte
	keyLen int
}

// New256 returns a new Digest computing the BLAKE2s-256 checksum. A non-empty
// key turns the hash into a MAC. The key must be at most 32 bytes long.
func New256(key []byte) (*Digest, error) { return New(Size, key) }

// New128 returns a new Digest computing the BLAKE2s-128 checksum given a
// non-empty key. A 128-bit digest is too small to be used as a general
// purpose hash, so the key is not optional.
func New128(key []byte) (*Digest, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: a key is required for a 128-bit hash", ErrInvalidKey)
	}
	return New(Size128, key)
}

// New returns a new Digest producing size bytes of output, keyed when key is
// non-empty.
func New(size int, key []byte) (*Digest, error) {
	return NewConfig(&Config{Size: size, Key: key})
}

// NewConfig constructs a new Digest with the provided configuration.
func NewConfig(cfg *Config) (*Digest, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}
	p, err := newParameterBlock(cfg)
	if err != nil {
		return nil, err
	}

	d := &Digest{params: *p}
	d.keyLen = copy(d.key[:], cfg.Key)
	d.Reset()
	return d, nil
}

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (n int, err error) {
	d.s.update(p)
	return len(p), nil
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	// make copies of everything
	s := d.s

	var sum [Size]byte
	if err := s.Final(sum[:d.s.size]); err != nil {
		return b
	}
	return append(b, sum[:d.s.size]...)
}

// Reset resets the hash to its initial state, keyed with the original key.
func (d *Digest) Reset() {
	d.s.initFromParams(&d.params)
	if d.keyLen > 0 {
		d.s.absorbKey(d.key[:d.keyLen])
	}
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.s.size }

// BlockSize returns the hash's underlying block size. The Write method must be
// able to accept any amount of data, but it may operate more efficiently if
// all writes are a multiple of the block size.
func (d *Digest) BlockSize() int { return BlockSize }
