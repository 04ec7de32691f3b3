package quip

// Mulberry32 is a small seeded generator. The sequence for a seed is
// bit-for-bit fixed; the constants and step order must not change.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 seeds a generator. Seeds wrap modulo 2^32.
func NewMulberry32(seed int64) *Mulberry32 {
	return &Mulberry32{state: uint32(seed)}
}

// Next advances the generator and returns a value in [0,1).
func (m *Mulberry32) Next() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}
