package compiler

// deriveSeed mixes a base seed with a node index into an independent
// per-node stream, SplitMix64-style: good avalanche from a single
// 64-bit multiply/xor-shift pass, so consecutive node indices don't
// produce visibly correlated shuffles.
func deriveSeed(seed int64, nodeIndex int) int64 {
	x := uint64(seed) + uint64(nodeIndex)*0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)

	return int64(x)
}
