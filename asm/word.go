package asm

// Word is one emitted unit of the output image: either an immediate value or
// a reference to a symbol table slot, occupying SizeBits starting at
// OffsetBits in the final bit-packed image. OffsetBits values across a
// Word slice are strictly increasing and contiguous: each equals the sum
// of all prior SizeBits (spec §3.1).
type Word struct {
	SourceLine  int
	IsImmediate bool
	Immediate   uint64
	SymbolID    int
	OffsetBits  uint64
	SizeBits    uint64
}
