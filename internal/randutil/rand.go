package randutil

import "math/rand"

// New returns a *rand.Rand seeded from the provided value. The seed is passed
// through a splitmix finalizer so that nearby inputs (timestamps, worker
// indices) still produce unrelated sequences.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(uint64(seed)))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
