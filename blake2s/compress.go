package blake2s

import "encoding/binary"

// Initialization vector for BLAKE2s. These are the first 32 bits of the
// fractional parts of the square roots of the first eight primes, shared with
// SHA-256.
var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Message word schedule. Round r feeds the pair sigma[r][2i], sigma[r][2i+1]
// into the i-th G call.
var sigma = [RoundCount][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// compress mixes one 64-byte block into the chaining value. The counter and
// flags are read from the state but never modified here.
func (s *State) compress(block []byte) {
	_ = block[BlockSize-1]

	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	// Create the internal round state. Copy the current hash state to the top,
	// then the tweaked IVs to the bottom. Use local variables to avoid
	// indexing a working array inside the rounds.
	v0, v1, v2, v3 := s.h[0], s.h[1], s.h[2], s.h[3]
	v4, v5, v6, v7 := s.h[4], s.h[5], s.h[6], s.h[7]
	v8, v9, v10, v11 := iv[0], iv[1], iv[2], iv[3]
	v12 := iv[4] ^ s.t[0]
	v13 := iv[5] ^ s.t[1]
	v14 := iv[6] ^ s.f[0]
	v15 := iv[7] ^ s.f[1]

	for r := range sigma {
		p := &sigma[r]

		// Columns
		v0, v4, v8, v12 = g(v0, v4, v8, v12, m[p[0]], m[p[1]])
		v1, v5, v9, v13 = g(v1, v5, v9, v13, m[p[2]], m[p[3]])
		v2, v6, v10, v14 = g(v2, v6, v10, v14, m[p[4]], m[p[5]])
		v3, v7, v11, v15 = g(v3, v7, v11, v15, m[p[6]], m[p[7]])

		// Diagonals
		v0, v5, v10, v15 = g(v0, v5, v10, v15, m[p[8]], m[p[9]])
		v1, v6, v11, v12 = g(v1, v6, v11, v12, m[p[10]], m[p[11]])
		v2, v7, v8, v13 = g(v2, v7, v8, v13, m[p[12]], m[p[13]])
		v3, v4, v9, v14 = g(v3, v4, v9, v14, m[p[14]], m[p[15]])
	}

	s.h[0] ^= v0 ^ v8
	s.h[1] ^= v1 ^ v9
	s.h[2] ^= v2 ^ v10
	s.h[3] ^= v3 ^ v11
	s.h[4] ^= v4 ^ v12
	s.h[5] ^= v5 ^ v13
	s.h[6] ^= v6 ^ v14
	s.h[7] ^= v7 ^ v15
}

// The internal BLAKE2s round function.
func g(a, b, c, d, x, y uint32) (uint32, uint32, uint32, uint32) {
	a = a + b + x
	d = ((d ^ a) >> 16) | ((d ^ a) << (32 - 16))
	c = c + d
	b = ((b ^ c) >> 12) | ((b ^ c) << (32 - 12))
	a = a + b + y
	d = ((d ^ a) >> 8) | ((d ^ a) << (32 - 8))
	c = c + d
	b = ((b ^ c) >> 7) | ((b ^ c) << (32 - 7))

	return a, b, c, d
}
