//go:build grain_x8 && !grain_x1

package grain

// The grain_x8 build advances the cipher 8 clocks at a time.

func next32(s *state) uint32 {
	var y uint32
	for i := 0; i < 32; i += 8 {
		y |= uint32(s.clock8(0, 0)) << i
	}
	return y
}

func next16(s *state) uint16 {
	lo := s.clock8(0, 0)
	hi := s.clock8(0, 0)
	return uint16(hi)<<8 | uint16(lo)
}

func mix32(s *state) {
	for i := 0; i < 4; i++ {
		y, l, f := s.taps()
		s.lfsr.shift8(uint8(l ^ y))
		s.nfsr.shift8(uint8(f ^ y))
	}
}

func keyMix32(s *state, ka, kb uint32) {
	for i := 0; i < 32; i += 8 {
		y, l, f := s.taps()
		s.lfsr.shift8(uint8(l^y) ^ uint8(ka>>i))
		s.nfsr.shift8(uint8(f^y) ^ uint8(kb>>i))
	}
}
