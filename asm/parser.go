package asm

import (
	"fmt"

	"subleq/lex"
	"subleq/symtab"
)

// parseLine parses one already case-folded source line, either at top level
// (exp == nil) or while substituting a macro call's arguments and local
// labels (exp != nil). It returns a non-nil error only for conditions that
// should abort this line but let assembly continue collecting further
// errors; emit/error reporting for everything recoverable happens via
// a.error so multiple problems in one line can be recorded where possible.
func (a *Assembler) parseLine(line string, lineNo int, exp *expansion) error {
	toks, err := lex.Scan(line, lineNo)
	if err != nil {
		return err
	}
	idx := 0
	if len(toks) > 0 && toks[0].Kind == lex.Label {
		name := exp.labelName(toks[0].Text)
		if err := a.sym.DefineLabel(name, int64(a.bits)); err != nil {
			a.error(lineNo, "%s", err)
		}
		idx = 1
	}
	if idx >= len(toks) {
		return nil
	}
	head := toks[idx]
	if head.Kind != lex.Ident {
		a.error(lineNo, "statement must start with a directive or macro call, found %q", head.Text)
		return nil
	}

	switch head.Text {
	case "SUBLEQ":
		a.parseSubleq(toks[idx+1:], lineNo, exp)
	case "DW":
		a.parseDW(toks[idx+1:], lineNo, exp)
	case "ORG":
		a.parseORG(toks[idx+1:], lineNo, exp)
	case "MACRO":
		a.parseMACRO(toks[idx+1:], lineNo)
	case "ENDM":
		a.error(lineNo, "ENDM without matching MACRO")
	default:
		a.parseCallOrError(head, toks[idx+1:], lineNo, exp)
	}
	return nil
}

// resolveOperand converts a single operand token into a Word: an immediate
// for an integer literal, or a symbol reference for an identifier (looked up
// first in the active substitution map, then in the global symbol table;
// spec §4.4.2).
func (a *Assembler) resolveOperand(tok lex.Token, exp *expansion) (Word, error) {
	switch tok.Kind {
	case lex.Int:
		return Word{IsImmediate: true, Immediate: tok.IntVal}, nil
	case lex.Ident:
		return a.resolveIdent(tok.Text, exp)
	default:
		return Word{}, fmt.Errorf("expected integer or identifier operand, got %q", tok.Text)
	}
}

func (a *Assembler) resolveIdent(name string, exp *expansion) (Word, error) {
	if w, ok := exp.lookup(name); ok {
		return w, nil
	}
	if kind, ok := a.sym.Resolve(name); ok {
		if _, isMacro := kind.(symtab.Macro); isMacro {
			return Word{}, fmt.Errorf("%q is a macro, not a value", name)
		}
	}
	id, err := a.sym.LabelID(name)
	if err != nil {
		return Word{}, err
	}
	return Word{SymbolID: id}, nil
}

// parseSubleq handles "SUBLEQ a, b, c": exactly three 26-bit operand words.
func (a *Assembler) parseSubleq(args []lex.Token, lineNo int, exp *expansion) {
	if len(args) < 3 {
		a.error(lineNo, "SUBLEQ: missing operand")
		return
	}
	if len(args) > 3 {
		a.error(lineNo, "SUBLEQ: unexpected trailing tokens")
		return
	}
	for _, t := range args {
		w, err := a.resolveOperand(t, exp)
		if err != nil {
			a.error(lineNo, "SUBLEQ: %s", err)
			continue
		}
		w.SourceLine = lineNo
		a.emit(w, 26)
	}
}

// parseDW handles "DW v1, v2, ...": one 52-bit data word per value, with
// string literals expanding to one word per byte.
func (a *Assembler) parseDW(args []lex.Token, lineNo int, exp *expansion) {
	if len(args) == 0 {
		a.error(lineNo, "DW: missing operand")
		return
	}
	for _, t := range args {
		if t.Kind == lex.String {
			for _, b := range []byte(t.Text) {
				a.emit(Word{IsImmediate: true, Immediate: uint64(b), SourceLine: lineNo}, 52)
			}
			continue
		}
		w, err := a.resolveOperand(t, exp)
		if err != nil {
			a.error(lineNo, "DW: %s", err)
			continue
		}
		w.SourceLine = lineNo
		a.emit(w, 52)
	}
}

// parseORG handles "ORG address": pad with zero-valued 52-bit words (or one
// final shorter word) until CodeSizeBits() == address.
func (a *Assembler) parseORG(args []lex.Token, lineNo int, exp *expansion) {
	if len(args) == 0 {
		a.error(lineNo, "ORG: missing operand")
		return
	}
	if len(args) > 1 {
		a.error(lineNo, "ORG: unexpected trailing tokens")
		return
	}
	w, err := a.resolveOperand(args[0], exp)
	if err != nil {
		a.error(lineNo, "ORG: %s", err)
		return
	}
	var target uint64
	if w.IsImmediate {
		target = w.Immediate
	} else {
		if !a.sym.Defined(w.SymbolID) {
			a.error(lineNo, "ORG: address must be a known value at this point")
			return
		}
		target = uint64(a.sym.Addr(w.SymbolID))
	}
	if target < a.bits {
		a.error(lineNo, "ORG address %d is below current size %d", target, a.bits)
		return
	}
	remaining := target - a.bits
	for remaining >= 52 {
		a.emit(Word{IsImmediate: true, SourceLine: lineNo}, 52)
		remaining -= 52
	}
	if remaining > 0 {
		a.emit(Word{IsImmediate: true, SourceLine: lineNo}, remaining)
	}
}

// parseMACRO handles "MACRO name p1 p2 ...", registering the macro and
// entering macro-definition mode for subsequent lines.
func (a *Assembler) parseMACRO(args []lex.Token, lineNo int) {
	if len(args) == 0 || args[0].Kind != lex.Ident {
		a.error(lineNo, "MACRO: expected macro name")
		return
	}
	name := args[0].Text
	if _, err := a.sym.DefineMacro(name); err != nil {
		a.error(lineNo, "MACRO: %s", err)
		return
	}
	seen := make(map[string]bool, len(args)-1)
	params := make([]string, 0, len(args)-1)
	for _, t := range args[1:] {
		if t.Kind != lex.Ident {
			a.error(lineNo, "MACRO: invalid parameter %q", t.Text)
			continue
		}
		if seen[t.Text] {
			a.error(lineNo, "MACRO: duplicate parameter %q", t.Text)
			continue
		}
		seen[t.Text] = true
		params = append(params, t.Text)
	}
	m := &macro{Name: name, Params: params, Locals: make(map[string]struct{})}
	a.macros = append(a.macros, m)
	a.inDef = m
}

// accumulateMacroLine stores one raw source line into the macro currently
// being defined, per spec §4.4.1.
func (a *Assembler) accumulateMacroLine(line string, lineNo int) {
	toks, err := lex.Scan(line, lineNo)
	if err != nil {
		a.error(lineNo, "%s", err)
		return
	}
	if len(toks) > 0 && toks[0].Kind == lex.Ident && toks[0].Text == "ENDM" {
		if len(toks) > 1 {
			a.error(lineNo, "ENDM: unexpected trailing tokens")
		}
		a.inDef = nil
		return
	}
	for _, t := range toks {
		if t.Kind == lex.Ident && t.Text == "MACRO" {
			a.error(lineNo, "nested MACRO definition forbidden")
		}
	}
	if len(toks) > 0 && toks[0].Kind == lex.Label {
		a.inDef.Locals[toks[0].Text] = struct{}{}
	}
	a.inDef.Body = append(a.inDef.Body, bodyLine{Text: line, Line: lineNo})
}

// parseCallOrError resolves a leading identifier that is neither a
// directive keyword nor already handled as a label: it must name a macro,
// per spec §4.4.5.
func (a *Assembler) parseCallOrError(head lex.Token, args []lex.Token, lineNo int, exp *expansion) {
	kind, ok := a.sym.Resolve(head.Text)
	if !ok {
		a.error(lineNo, "undefined macro call %q", head.Text)
		return
	}
	m, isMacro := kind.(symtab.Macro)
	if !isMacro {
		a.error(lineNo, "undefined macro call %q", head.Text)
		return
	}
	a.expandCall(a.macros[m.Index], args, lineNo, exp)
}
