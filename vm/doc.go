// Package vm implements the subleq interpreter: bit-addressed memory, the
// Read52/ReadRamBits/Write52/Xor52 primitives, the single-step SUBLEQ
// fetch-execute semantics, and a read-only bridge onto two framebuffer
// regions of memory. See this module's SPEC_FULL.md for the full contract.
//
// The interpreter core has no error paths: decode never fails and every
// address is masked to the addressable range before use (spec §7). The
// only way to stop a running Instance is to stop calling Step — there is no
// halt opcode.
package vm
