//go:build !grain_x8 && !grain_x1

package grain

// The default build advances the cipher 32 clocks at a time. Byte tails
// use the 8-bit clock: a 32-wide clock cannot stop after 16 bits, and
// all widths produce identical pre-output.

func next32(s *state) uint32 {
	return s.clock32(0, 0)
}

func next16(s *state) uint16 {
	lo := s.clock8(0, 0)
	hi := s.clock8(0, 0)
	return uint16(hi)<<8 | uint16(lo)
}

// mix32 advances the cipher 32 clocks, folding each pre-output bit back
// into both feedback paths.
func mix32(s *state) {
	y, l, f := s.taps()
	s.lfsr.shift32(l ^ y)
	s.nfsr.shift32(f ^ y)
}

// keyMix32 advances the cipher 32 clocks, folding the pre-output and
// one key word into each feedback path.
func keyMix32(s *state, ka, kb uint32) {
	y, l, f := s.taps()
	s.lfsr.shift32(l ^ y ^ ka)
	s.nfsr.shift32(f ^ y ^ kb)
}
