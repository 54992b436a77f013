package core

// PRNG is a PCG-style 64-bit linear congruential generator with a stream
// selector, ported from the original Rust `pcg.rs`. It is not
// cryptographic: given the same (state, inc) pair it reproduces the exact
// same sequence, which is the property the test suite and the scheduler's
// deterministic tile seeding both rely on.
type PRNG struct {
	state uint64
	inc   uint64
}

// NewPRNG creates a PRNG with the given initial state and stream selector.
func NewPRNG(state, inc uint64) *PRNG {
	return &PRNG{state: state, inc: inc}
}

// NewWorkerPRNG seeds a worker's stream so that disjoint worker ids never
// collide, per spec: inc = 1000*threadID.
func NewWorkerPRNG(seed uint64, threadID int) *PRNG {
	return NewPRNG(seed, uint64(1000*threadID))
}

// U32 advances the generator and returns 32 bits via XSH-RR output.
func (p *PRNG) U32() uint32 {
	oldState := p.state
	p.state = oldState*6364136223846793005 + (p.inc | 1)

	xorshifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// F32 returns a uniform float in [0, 1).
func (p *PRNG) F32() float32 {
	const scale = float32(1.0) / float32(1<<24) // 2^-24
	return float32(p.U32()>>8) * scale
}
