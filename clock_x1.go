//go:build grain_x1

package grain

// The grain_x1 build clocks the cipher one bit at a time, matching the
// bit-serial definition of the cipher.

func next32(s *state) uint32 {
	var y uint32
	for i := 0; i < 32; i++ {
		y |= s.clock1(0, 0) << i
	}
	return y
}

func next16(s *state) uint16 {
	var y uint16
	for i := 0; i < 16; i++ {
		y |= uint16(s.clock1(0, 0)) << i
	}
	return y
}

func mix32(s *state) {
	for i := 0; i < 32; i++ {
		y, l, f := s.taps()
		s.lfsr.shift1(uint64(l^y) & 1)
		s.nfsr.shift1(uint64(f^y) & 1)
	}
}

func keyMix32(s *state, ka, kb uint32) {
	for i := 0; i < 32; i++ {
		y, l, f := s.taps()
		s.lfsr.shift1(uint64(l^y^(ka>>i)) & 1)
		s.nfsr.shift1(uint64(f^y^(kb>>i)) & 1)
	}
}
