package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadROM reads a bit-packed ROM image from r and returns a Memory slice of
// at least minCells cells. Byte i of the stream occupies bits [8i, 8i+8) of
// the memory image, shifted into cell i div 8 at bit position (i mod 8)*8 —
// LSB-first within the cell, the mirror image of the assembler's MSB-first
// byte packing (spec §6.3).
func LoadROM(r io.Reader, minCells int) (Memory, error) {
	br := bufio.NewReader(r)
	var bytes []byte
	buf := make([]byte, 4096)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			bytes = append(bytes, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "rom read failed")
		}
	}
	cells := (len(bytes) + 7) / 8
	if cells < minCells {
		cells = minCells
	}
	mem := make(Memory, cells)
	for i, b := range bytes {
		mem[i/8] |= uint64(b) << uint((i%8)*8)
	}
	return mem, nil
}

// LoadROMFile opens fileName and loads it as a ROM image via LoadROM.
func LoadROMFile(fileName string, minCells int) (Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return LoadROM(f, minCells)
}
