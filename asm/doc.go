// Package asm assembles subleq source into a bit-packed ROM image.
//
// Source is line-oriented and case-insensitive (folded to upper-case before
// any parsing). Each line is an optional label, followed by an optional
// directive or macro call, followed by an optional ";" comment:
//
//	SUBLEQ a, b, c     three 26-bit operand words
//	DW v1, v2, ...     one 52-bit data word per value; strings expand per byte
//	ORG address        pad with zero words until the image reaches address bits
//	MACRO name p1 p2   begin a macro definition
//	ENDM               end a macro definition
//
// Operands are integer literals (decimal, optionally signed) or identifiers;
// no arithmetic is supported.
//
// Labels:
//
//	foo:    SUBLEQ foo, foo, foo
//
// defines foo at the bit offset of the SUBLEQ that follows it on the same
// line. Forward references are fine; every referenced label must resolve by
// the end of the file.
//
// Macros:
//
//	MACRO MOV dst src
//	    SUBLEQ dst, dst, end
//	    SUBLEQ src, dst, end
//	end:
//	ENDM
//
//	MOV X Y
//
// Each call site gets its own copy of any label local to the macro body
// (here, end), mangled with a per-call-site suffix so that two calls to MOV
// never collide. Macro bodies may call other macros; recursion is bounded
// only by the host's stack.
package asm
