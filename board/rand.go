package board

// PseudoRand is a xorshift generator used to pick moves reproducibly in self-play.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator. A zero seed is replaced, xorshift never leaves zero.
func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a value in [0, n). n must be positive.
func (r *PseudoRand) Intn(n int) int {
	if n <= 0 {
		panic("board: invalid argument to Intn")
	}
	return int(r.Uint64() % uint64(n))
}

// PickMove returns a random element of mvs.
func (r *PseudoRand) PickMove(mvs []Move) (Move, bool) {
	if len(mvs) == 0 {
		return Move{}, false
	}
	return mvs[r.Intn(len(mvs))], true
}
