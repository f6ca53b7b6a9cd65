package asm

// bodyLine is one raw source line captured verbatim while a macro body is
// being accumulated, along with its original line number for diagnostics.
type bodyLine struct {
	Text string
	Line int
}

// macro is a stored macro definition: its parameter names in call order, its
// body lines in source order, and the set of local label names discovered
// while scanning the body (spec §3.3).
type macro struct {
	Name   string
	Params []string
	Body   []bodyLine
	Locals map[string]struct{}
}

// expansion carries the per-call-site substitution state down into the
// recursive line parser. vars binds parameter and (mangled) local
// identifiers to the Word they resolve to; rename maps a local label's bare
// name to its mangled global name so label *definitions* inside the body
// pick up the same identity as references to it (spec §4.4.2).
type expansion struct {
	vars   map[string]Word
	rename map[string]string
}

func (e *expansion) lookup(name string) (Word, bool) {
	if e == nil {
		return Word{}, false
	}
	w, ok := e.vars[name]
	return w, ok
}

func (e *expansion) labelName(name string) string {
	if e == nil {
		return name
	}
	if mangled, ok := e.rename[name]; ok {
		return mangled
	}
	return name
}
