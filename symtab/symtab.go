// Package symtab implements the assembler's symbol table: a single
// namespace shared by labels and macros, keyed by case-folded identifier.
//
// A symbol id is either non-negative, naming a label's slot in the address
// table, or negative, encoding a macro index as id = -1 - macroIndex.
// Resolve turns that compressed sum back into a proper variant (a Label or a
// Macro value behind the Kind interface) for callers instead of making them
// inspect the sign of an int everywhere.
package symtab

import "fmt"

// Undefined is the sentinel address for a label that has been referenced but
// not yet defined.
const Undefined = -1

// Label is the Kind of a symbol bound to an address slot.
type Label struct {
	ID int
}

// Macro is the Kind of a symbol bound to a macro definition.
type Macro struct {
	Index int
}

// Kind distinguishes what a resolved symbol id refers to.
type Kind interface {
	isKind()
}

func (Label) isKind() {}
func (Macro) isKind() {}

// Table owns the identifier namespace, the label address slots, and the
// macro index space for one assembly.
type Table struct {
	ids    map[string]int // identifier -> symbol id (label >= 0, macro < 0)
	addrs  []int64        // label id -> bit address, Undefined if not yet set
	macros int            // number of registered macros
}

// New returns an empty Table.
func New() *Table {
	return &Table{ids: make(map[string]int)}
}

// Resolve looks up name and reports its symbol Kind, if defined.
func (t *Table) Resolve(name string) (Kind, bool) {
	id, ok := t.ids[name]
	if !ok {
		return nil, false
	}
	if id < 0 {
		return Macro{Index: -1 - id}, true
	}
	return Label{ID: id}, true
}

// LabelID returns the symbol id for name, creating a fresh label slot with
// the Undefined sentinel if name has not been seen before. It fails if name
// already names a macro.
func (t *Table) LabelID(name string) (id int, err error) {
	if existing, ok := t.ids[name]; ok {
		if existing < 0 {
			return 0, fmt.Errorf("%q is already defined as a macro", name)
		}
		return existing, nil
	}
	id = len(t.addrs)
	t.addrs = append(t.addrs, Undefined)
	t.ids[name] = id
	return id, nil
}

// DefineLabel sets the address of the label name to addr. It creates the
// label's slot if this is the first mention of name. It is a fatal error to
// redefine a label that already carries a resolved address.
func (t *Table) DefineLabel(name string, addr int64) error {
	id, err := t.LabelID(name)
	if err != nil {
		return err
	}
	if t.addrs[id] != Undefined {
		return fmt.Errorf("label %q redefined (previously defined at bit offset %d)", name, t.addrs[id])
	}
	t.addrs[id] = addr
	return nil
}

// DefineMacro registers name as a macro and returns its symbol id
// (always negative). It fails if name collides with any existing label or
// macro.
func (t *Table) DefineMacro(name string) (id int, err error) {
	if existing, ok := t.ids[name]; ok {
		if existing < 0 {
			return 0, fmt.Errorf("macro %q already defined", name)
		}
		return 0, fmt.Errorf("%q is already defined as a label", name)
	}
	idx := t.macros
	t.macros++
	id = -1 - idx
	t.ids[name] = id
	return id, nil
}

// Addr returns the bit address bound to label id, or Undefined.
func (t *Table) Addr(id int) int64 {
	return t.addrs[id]
}

// Defined reports whether the label id carries a resolved address.
func (t *Table) Defined(id int) bool {
	return t.addrs[id] != Undefined
}
