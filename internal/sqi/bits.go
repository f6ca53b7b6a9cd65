package sqi

// Mask64 returns a mask with the low n bits set (n in [0, 64]).
func Mask64(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
