package asm

import (
	"io"

	"subleq/bitio"
	"subleq/symtab"
)

// Emit writes the resolved Word sequence to w as the MSB-first bit-packed
// image described in spec §4.6/§6.2. words must already have every symbol
// reference resolved (i.e. come from a successful Assemble call).
func Emit(words []Word, sym *symtab.Table, w io.Writer) error {
	bw := bitio.NewWriter(w)
	for _, word := range words {
		v := word.Immediate
		if !word.IsImmediate {
			v = uint64(sym.Addr(word.SymbolID))
		}
		if err := bw.WriteBits(v, uint(word.SizeBits)); err != nil {
			return err
		}
	}
	return bw.Close()
}

// Symbols exposes the Assembler's symbol table so callers can resolve Word
// symbol references after a successful Assemble.
func (a *Assembler) Symbols() *symtab.Table {
	return a.sym
}
