package symtab_test

import (
	"testing"

	"subleq/symtab"
)

func TestLabelIDCreatesUndefinedSlot(t *testing.T) {
	tbl := symtab.New()
	id, err := tbl.LabelID("LOOP")
	if err != nil {
		t.Fatalf("LabelID: %v", err)
	}
	if tbl.Defined(id) {
		t.Fatal("freshly created label must not be Defined")
	}
	if tbl.Addr(id) != symtab.Undefined {
		t.Fatalf("Addr = %d, want Undefined", tbl.Addr(id))
	}
}

func TestLabelIDIsStableAcrossCalls(t *testing.T) {
	tbl := symtab.New()
	id1, _ := tbl.LabelID("LOOP")
	id2, _ := tbl.LabelID("LOOP")
	if id1 != id2 {
		t.Fatalf("LabelID returned different ids for the same name: %d != %d", id1, id2)
	}
}

func TestDefineLabelThenResolve(t *testing.T) {
	tbl := symtab.New()
	if err := tbl.DefineLabel("LOOP", 104); err != nil {
		t.Fatalf("DefineLabel: %v", err)
	}
	kind, ok := tbl.Resolve("LOOP")
	if !ok {
		t.Fatal("Resolve: not found")
	}
	lbl, isLabel := kind.(symtab.Label)
	if !isLabel {
		t.Fatalf("Resolve returned %T, want symtab.Label", kind)
	}
	if !tbl.Defined(lbl.ID) || tbl.Addr(lbl.ID) != 104 {
		t.Fatalf("Addr = %d, want 104", tbl.Addr(lbl.ID))
	}
}

func TestDefineLabelRedefinitionIsFatal(t *testing.T) {
	tbl := symtab.New()
	if err := tbl.DefineLabel("LOOP", 0); err != nil {
		t.Fatalf("DefineLabel: %v", err)
	}
	if err := tbl.DefineLabel("LOOP", 52); err == nil {
		t.Fatal("expected redefinition error, got nil")
	}
}

func TestDefineMacroThenResolve(t *testing.T) {
	tbl := symtab.New()
	if _, err := tbl.DefineMacro("INC"); err != nil {
		t.Fatalf("DefineMacro: %v", err)
	}
	kind, ok := tbl.Resolve("INC")
	if !ok {
		t.Fatal("Resolve: not found")
	}
	if _, isMacro := kind.(symtab.Macro); !isMacro {
		t.Fatalf("Resolve returned %T, want symtab.Macro", kind)
	}
}

func TestMacroAndLabelNamesShareOneNamespace(t *testing.T) {
	tbl := symtab.New()
	if _, err := tbl.DefineMacro("INC"); err != nil {
		t.Fatalf("DefineMacro: %v", err)
	}
	if err := tbl.DefineLabel("INC", 0); err == nil {
		t.Fatal("expected collision error defining a label over an existing macro name")
	}
	if _, err := tbl.LabelID("INC"); err == nil {
		t.Fatal("expected error requesting a LabelID for a macro name")
	}
}

func TestMacroRedefinitionIsFatal(t *testing.T) {
	tbl := symtab.New()
	if _, err := tbl.DefineMacro("INC"); err != nil {
		t.Fatalf("DefineMacro: %v", err)
	}
	if _, err := tbl.DefineMacro("INC"); err == nil {
		t.Fatal("expected redefinition error, got nil")
	}
}

func TestResolveUnknownName(t *testing.T) {
	tbl := symtab.New()
	if _, ok := tbl.Resolve("NOPE"); ok {
		t.Fatal("Resolve found a name that was never defined")
	}
}
