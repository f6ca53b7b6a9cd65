// Package asm implements the two-phase assembler for the subleq dialect: a
// line-oriented directive/macro parser that drives symtab and bitio to
// produce a densely bit-packed ROM image.
//
// Source layout, directives and the macro facility are documented in full in
// this module's SPEC_FULL.md; this package implements exactly that contract.
package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"

	"subleq/symtab"
)

// Assembler owns the mutable state of one assembly: the symbol table, the
// in-progress Word sequence, the macro store, and (while inside a MACRO
// body) the macro currently being defined. It is not safe for concurrent
// use; assembly is strictly sequential (spec §5).
type Assembler struct {
	sym    *symtab.Table
	words  []Word
	bits   uint64
	macros []*macro
	inDef  *macro
	substN int
	errs   ErrAsm
}

// NewAssembler returns an empty Assembler ready to process source lines.
func NewAssembler() *Assembler {
	return &Assembler{sym: symtab.New()}
}

// Assemble reads assembly source from r (name is accepted but not used;
// diagnostics carry line numbers only) and returns an Assembler holding the resolved Word sequence and symbol
// table, ready for Emit. On any fatal error, the returned error can be
// type-asserted to ErrAsm.
func Assemble(name string, r io.Reader) (*Assembler, error) {
	a := NewAssembler()
	if _, err := a.Assemble(r); err != nil {
		return nil, err
	}
	return a, nil
}

// Words returns the resolved Word sequence produced by a successful
// Assemble call.
func (a *Assembler) Words() []Word {
	return a.words
}

// Assemble runs the single pass described in spec §4.5 over r.
func (a *Assembler) Assemble(r io.Reader) ([]Word, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if a.abort() {
			break
		}
		line := strings.ToUpper(sc.Text())
		if a.inDef != nil {
			a.accumulateMacroLine(line, lineNo)
			continue
		}
		if err := a.parseLine(line, lineNo, nil); err != nil {
			a.error(lineNo, "%s", err)
		}
	}
	if err := sc.Err(); err != nil {
		a.error(lineNo, "read failed: %s", err)
	}
	if a.inDef != nil {
		a.error(lineNo, "MACRO %s without matching ENDM", a.inDef.Name)
	}

	a.checkUndefined()

	if len(a.errs) > 0 {
		return nil, a.errs
	}
	return a.words, nil
}

// checkUndefined walks every emitted Word and flags any symbol reference
// that never received an address (spec §4.5, last paragraph).
func (a *Assembler) checkUndefined() {
	unresolved := lo.Filter(a.words, func(w Word, _ int) bool {
		return !w.IsImmediate && !a.sym.Defined(w.SymbolID)
	})
	for _, w := range unresolved {
		a.error(w.SourceLine, "undefined symbol")
	}
}

// emit appends a Word at the current bit offset and advances it, maintaining
// the contiguous-offset invariant of spec §3.1.
func (a *Assembler) emit(w Word, sizeBits uint64) {
	w.OffsetBits = a.bits
	w.SizeBits = sizeBits
	a.words = append(a.words, w)
	a.bits += sizeBits
}

// CodeSizeBits returns the current size of the emitted image, in bits.
func (a *Assembler) CodeSizeBits() uint64 {
	return a.bits
}
