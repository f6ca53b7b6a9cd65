package asm

import (
	"strconv"

	"subleq/lex"
)

const localSep = "~"

// nextSubstIndex returns a fresh substitution index from a counter owned by
// the Assembler and increasing monotonically across the whole assembly, used to mangle a macro call's local labels (spec
// §4.4.2–§4.4.4).
func (a *Assembler) nextSubstIndex() int {
	a.substN++
	return a.substN
}

// expandCall binds a macro call's arguments and local labels into a fresh
// expansion and parses the macro body under it, recursing into nested macro
// calls as it goes (spec §4.4.4). Arguments are resolved against the
// *caller's* substitution context, since they are evaluated before entering
// the callee.
func (a *Assembler) expandCall(m *macro, args []lex.Token, lineNo int, caller *expansion) {
	if len(args) != len(m.Params) {
		a.error(lineNo, "macro %s: expected %d argument(s), got %d", m.Name, len(m.Params), len(args))
		return
	}

	k := a.nextSubstIndex()
	vars := make(map[string]Word, len(m.Params)+len(m.Locals))
	rename := make(map[string]string, len(m.Locals))

	for i, p := range m.Params {
		w, err := a.resolveOperand(args[i], caller)
		if err != nil {
			a.error(lineNo, "macro %s: argument %d: %s", m.Name, i+1, err)
			continue
		}
		vars[p] = w
	}
	for local := range m.Locals {
		mangled := local + localSep + strconv.Itoa(k)
		id, err := a.sym.LabelID(mangled)
		if err != nil {
			a.error(lineNo, "macro %s: %s", m.Name, err)
			continue
		}
		vars[local] = Word{SymbolID: id}
		rename[local] = mangled
	}

	callee := &expansion{vars: vars, rename: rename}
	for _, bl := range m.Body {
		if a.abort() {
			return
		}
		if err := a.parseLine(bl.Text, bl.Line, callee); err != nil {
			a.error(bl.Line, "%s", err)
		}
	}
}
