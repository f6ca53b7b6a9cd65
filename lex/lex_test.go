package lex_test

import (
	"testing"

	"subleq/lex"
)

func TestScanLabelIdentIntString(t *testing.T) {
	toks, err := lex.Scan(`LOOP: SUBLEQ A, 1, "HI"`, 1)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []lex.Kind{lex.Label, lex.Ident, lex.Ident, lex.Int, lex.String}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[0].Text != "LOOP" {
		t.Fatalf("label text = %q, want LOOP", toks[0].Text)
	}
	if toks[4].Text != "HI" {
		t.Fatalf("string text = %q, want HI", toks[4].Text)
	}
}

func TestScanStripsCommentToEndOfLine(t *testing.T) {
	toks, err := lex.Scan("DW 1 ; this is a comment, DW 2", 1)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
}

func TestScanNegativeInteger(t *testing.T) {
	toks, err := lex.Scan("DW -1", 1)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if toks[1].Kind != lex.Int {
		t.Fatalf("kind = %v, want Int", toks[1].Kind)
	}
	if toks[1].IntVal != ^uint64(0) {
		t.Fatalf("IntVal = %d, want two's-complement -1", toks[1].IntVal)
	}
}

func TestScanIntegerOverflowRejected(t *testing.T) {
	_, err := lex.Scan("DW 99999999999999999999999", 1)
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}
}

func TestScanUnterminatedStringRejected(t *testing.T) {
	_, err := lex.Scan(`DW "unterminated`, 1)
	if err == nil {
		t.Fatal("expected unterminated string error, got nil")
	}
}

func TestScanInvalidToken(t *testing.T) {
	_, err := lex.Scan("DW @", 1)
	if err == nil {
		t.Fatal("expected invalid token error, got nil")
	}
}

func TestScanEmptyLine(t *testing.T) {
	toks, err := lex.Scan("", 1)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("got %d tokens, want 0", len(toks))
	}
}
