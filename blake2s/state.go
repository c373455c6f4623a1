package blake2s

import (
	"encoding/binary"
	"fmt"
)

type status uint8

const (
	stateUninit status = iota
	stateReady
	stateDone
)

// State is the streaming BLAKE2s state machine. The zero value is not ready
// for use; call Init, InitKey or InitConfig first. After Final the State is
// spent and must be re-initialized before it can hash again.
//
// A State is not safe for concurrent use.
type State struct {
	h [8]uint32 // chaining value
	t [2]uint32 // byte counter, low word first
	f [2]uint32 // last block, last node

	// Up to two blocks are held back so the true last block is only
	// compressed by Final.
	buf    [2 * BlockSize]byte
	buflen int

	lastNode bool
	size     int
	status   status
}

// Init prepares s for unkeyed hashing with a digest of size bytes.
func (s *State) Init(size int) error {
	p, err := newParameterBlock(&Config{Size: size})
	if err != nil {
		return err
	}
	s.initFromParams(p)
	return nil
}

// InitKey prepares s for keyed hashing (MAC mode). The key must be between 1
// and KeySize bytes long.
func (s *State) InitKey(size int, key []byte) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	return s.InitConfig(&Config{Size: size, Key: key})
}

// InitConfig prepares s from a full configuration. An empty cfg.Key selects
// unkeyed mode.
func (s *State) InitConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}
	p, err := newParameterBlock(cfg)
	if err != nil {
		return err
	}
	s.initFromParams(p)
	if len(cfg.Key) > 0 {
		s.absorbKey(cfg.Key)
	}
	return nil
}

// After this function is called, the parameter block can be discarded.
func (s *State) initFromParams(p *parameterBlock) {
	*s = State{}
	w := p.words()
	for i := range s.h {
		s.h[i] = iv[i] ^ w[i]
	}
	s.size = int(p.DigestSize)
	s.status = stateReady
}

// absorbKey writes the key, zero-padded to a full block, as the first block
// of input. The staging block is burned before returning.
func (s *State) absorbKey(key []byte) {
	var block [BlockSize]byte
	defer burn(block[:])

	copy(block[:], key)
	s.update(block[:])
}

// Size returns the digest size s was initialized with.
func (s *State) Size() int { return s.size }

// Update adds more data to the running hash.
func (s *State) Update(in []byte) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.update(in)
	return nil
}

func (s *State) update(in []byte) {
	for len(in) > 0 {
		left := s.buflen
		fill := 2*BlockSize - left

		if len(in) <= fill {
			// Be lazy, the last bytes seen may turn out to be the final block.
			s.buflen += copy(s.buf[left:], in)
			return
		}

		copy(s.buf[left:], in[:fill])
		s.buflen += fill
		s.incrementCounter(BlockSize)
		s.compress(s.buf[:BlockSize])

		// Shift the second block down.
		copy(s.buf[:BlockSize], s.buf[BlockSize:])
		s.buflen -= BlockSize
		in = in[fill:]
	}
}

// Final pads and compresses the buffered input and writes the first len(out)
// bytes of the digest into out. len(out) should equal the configured size for
// the result to be meaningful; it may not exceed Size.
//
// Final is terminal: any later Update or Final returns ErrFinalized.
func (s *State) Final(out []byte) error {
	if err := s.ready(); err != nil {
		return err
	}
	if len(out) > Size {
		return fmt.Errorf("%w: output buffer of %d bytes", ErrInvalidDigestLength, len(out))
	}

	if s.buflen > BlockSize {
		s.incrementCounter(BlockSize)
		s.compress(s.buf[:BlockSize])
		s.buflen -= BlockSize
		copy(s.buf[:s.buflen], s.buf[BlockSize:BlockSize+s.buflen])
	}

	s.incrementCounter(uint32(s.buflen))
	s.setLastBlock()

	// Padding
	for i := s.buflen; i < len(s.buf); i++ {
		s.buf[i] = 0
	}
	s.compress(s.buf[:BlockSize])

	var sum [Size]byte
	for i, v := range s.h {
		binary.LittleEndian.PutUint32(sum[i*4:], v)
	}
	copy(out, sum[:])

	// The buffer may still hold the key block when the message was empty.
	burn(s.buf[:])
	s.buflen = 0
	s.status = stateDone
	return nil
}

func (s *State) ready() error {
	switch s.status {
	case stateReady:
		return nil
	case stateDone:
		return ErrFinalized
	default:
		return ErrNotInitialized
	}
}

// increment counter, preserving overflow into the high word
func (s *State) incrementCounter(inc uint32) {
	s.t[0] += inc
	if s.t[0] < inc {
		s.t[1]++
	}
}

func (s *State) setLastBlock() {
	if s.lastNode {
		s.f[1] = 0xFFFFFFFF
	}
	s.f[0] = 0xFFFFFFFF
}
