package vm_test

import (
	"bytes"
	"testing"

	"subleq/vm"
)

func TestLoadROMPacksLSBFirstWithinCell(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xFF}
	mem, err := vm.LoadROM(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	var want uint64
	for i, b := range data[:8] {
		want |= uint64(b) << uint(i*8)
	}
	if mem[0] != want {
		t.Fatalf("cell 0 = %#x, want %#x", mem[0], want)
	}
	if mem[1] != 0xFF {
		t.Fatalf("cell 1 = %#x, want 0xff", mem[1])
	}
}

func TestLoadROMPadsToMinCells(t *testing.T) {
	mem, err := vm.LoadROM(bytes.NewReader([]byte{0x01}), 10)
	if err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	if len(mem) != 10 {
		t.Fatalf("len(mem) = %d, want 10", len(mem))
	}
}
