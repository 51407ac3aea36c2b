// Package bitmask provides a fixed-length, word-packed boolean vector.
//
// A Mask has a width fixed at construction time; it never resizes. Bits
// are stored 64 to a word, which keeps PopCount and Equal to a handful
// of machine words even for domains in the thousands.
//
// Construction:
//
//	NewZero(n)        — all bits 0
//	NewOnes(n)        — all bits 1
//	FromBools(bits)   — bit i = bits[i]
//
// Mutation is limited to Set/Clear on individual bits; there is no
// resize, no AND/OR/XOR-in-place beyond what callers build bit by bit
// (the compiler package ORs permission masks together one bit at a
// time while walking state collections).
package bitmask
