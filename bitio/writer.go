// Package bitio implements the MSB-first bit packer used by the assembler to
// emit its output image. Bits are buffered up to one byte at a time and
// flushed as soon as a full byte is available; the first bit written
// occupies bit 7 of byte 0, the second bit 6, and so on.
package bitio

import (
	"io"

	"subleq/internal/sqi"
)

// Writer packs successive bit fields MSB-first within each output byte.
type Writer struct {
	w     *sqi.ErrWriter
	cur   byte
	nbits uint
	n     int64 // total bits written, for diagnostics
}

// NewWriter returns a Writer that flushes complete bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: sqi.NewErrWriter(w)}
}

// WriteBits writes the low `width` bits of v, most-significant bit first,
// truncating v to width bits. width must be in [0, 64].
func (bw *Writer) WriteBits(v uint64, width uint) error {
	if bw.w.Err != nil {
		return bw.w.Err
	}
	for i := int(width) - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		bw.cur = bw.cur<<1 | bit
		bw.nbits++
		bw.n++
		if bw.nbits == 8 {
			if _, err := bw.w.Write([]byte{bw.cur}); err != nil {
				return err
			}
			bw.cur, bw.nbits = 0, 0
		}
	}
	return nil
}

// BitsWritten returns the total number of bits written so far, complete or not.
func (bw *Writer) BitsWritten() int64 {
	return bw.n
}

// Close flushes any partial final byte, zero-padding its low-order bits, and
// returns the first write error encountered, if any.
func (bw *Writer) Close() error {
	if bw.w.Err != nil {
		return bw.w.Err
	}
	if bw.nbits > 0 {
		bw.cur <<= 8 - bw.nbits
		if _, err := bw.w.Write([]byte{bw.cur}); err != nil {
			return err
		}
		bw.nbits = 0
	}
	return nil
}
