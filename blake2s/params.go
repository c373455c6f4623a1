package blake2s

import (
	"encoding/binary"
	"fmt"
)

// Config describes a BLAKE2s hash instance. Only Size is required; Key, Salt
// and Personal may be left empty.
type Config struct {
	// Digest size in bytes, 1 to Size.
	Size int
	// Optional MAC key, at most KeySize bytes.
	Key []byte
	// Optional salt, right-padded with zeros to SaltLength.
	Salt []byte
	// Optional personalization string, right-padded with zeros to
	// SeparatorLength.
	Personal []byte
}

// These are the user-visible parameters of a BLAKE2s hash instance. The
// parameter block is XOR'd with the IV at the beginning of the hash. Only
// sequential mode is supported, so the tree fields are always emitted at
// their defaults. They are nevertheless defined for clarity.
type parameterBlock struct {
	DigestSize      byte                  // 0
	KeyLength       byte                  // 1
	fanout          byte                  // 2
	depth           byte                  // 3
	leafLength      uint32                // 4-7
	nodeOffset      uint64                // 8-13, 48 bits
	nodeDepth       byte                  // 14
	innerLength     byte                  // 15
	Salt            [SaltLength]byte      // 16-23
	Personalization [SeparatorLength]byte // 24-31
}

// Packs a BLAKE2s parameter block into its 32-byte wire layout.
func (p *parameterBlock) Marshal() [paramSize]byte {
	var buf [paramSize]byte
	buf[0] = p.DigestSize
	buf[1] = p.KeyLength
	buf[2] = p.fanout
	buf[3] = p.depth
	binary.LittleEndian.PutUint32(buf[4:], p.leafLength)
	putU48LE(buf[8:14], p.nodeOffset)
	buf[14] = p.nodeDepth
	buf[15] = p.innerLength
	copy(buf[16:], p.Salt[:])
	copy(buf[24:], p.Personalization[:])
	return buf
}

// words returns the packed block as the eight little-endian words that are
// XOR'd into the IV.
func (p *parameterBlock) words() (w [8]uint32) {
	buf := p.Marshal()
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return w
}

func newParameterBlock(cfg *Config) (*parameterBlock, error) {
	if cfg.Size <= 0 || cfg.Size > Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigestLength, cfg.Size)
	}
	if len(cfg.Key) > KeySize {
		return nil, fmt.Errorf("%w: key too large (%d bytes)", ErrInvalidKey, len(cfg.Key))
	}
	if len(cfg.Salt) > SaltLength {
		return nil, fmt.Errorf("%w: salt too large", ErrInvalidArgument)
	}
	if len(cfg.Personal) > SeparatorLength {
		return nil, fmt.Errorf("%w: personalization string too large", ErrInvalidArgument)
	}

	p := &parameterBlock{
		DigestSize: byte(cfg.Size),
		KeyLength:  byte(len(cfg.Key)),
		fanout:     1, // sequential mode
		depth:      1, // sequential mode
	}
	// Short values are implicitly right-padded with zero.
	copy(p.Salt[:], cfg.Salt)
	copy(p.Personalization[:], cfg.Personal)
	return p, nil
}

func putU48LE(b []byte, v uint64) {
	_ = b[5]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
}
