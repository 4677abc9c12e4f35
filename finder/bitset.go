package finder

// bitset tracks cell membership for paths; sized to the grid's cell count so
// membership tests are O(1) no matter how long the path grows.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (i & 63)
}

func (b bitset) clear(i int) {
	b[i>>6] &^= 1 << (i & 63)
}

func (b bitset) has(i int) bool {
	return b[i>>6]&(1<<(i&63)) != 0
}
