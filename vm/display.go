package vm

import "strconv"

// DefaultScreenWidth and DefaultScreenHeight match g_screen_size in the
// reference host (spec §4.9).
const (
	DefaultScreenWidth  = 936
	DefaultScreenHeight = 936
)

// ScreenSizeCells returns the number of 64-bit cells one screen of the given
// dimensions occupies.
func ScreenSizeCells(width, height int) int {
	bits := width * height
	return (bits + 63) / 64
}

// Framebuffer is a read-only view of a rectangular region of memory,
// interpreted as a 1-bit-per-pixel raster, row-major, LSB-first within each
// cell: bit 0 of the region's first cell is the top-left pixel (spec §4.9).
// The display bridge never writes to mem.
func Framebuffer(mem Memory, baseCell, width, height int) []bool {
	pixels := make([]bool, width*height)
	for p := range pixels {
		cell := baseCell + p/64
		bit := uint(p % 64)
		pixels[p] = mem[cell]>>bit&1 != 0
	}
	return pixels
}

// PBM renders a Framebuffer's pixels as a portable-bitmap (P4) image, the
// one concrete consumer this module gives the read-only display contract
// without pulling in a GUI/windowing toolkit (SPEC_FULL.md §6.5). A set bit
// is drawn black (PBM "1").
func PBM(pixels []bool, width, height int) []byte {
	header := []byte("P4\n" + strconv.Itoa(width) + " " + strconv.Itoa(height) + "\n")
	rowBytes := (width + 7) / 8
	out := make([]byte, len(header)+rowBytes*height)
	copy(out, header)
	o := len(header)
	for y := 0; y < height; y++ {
		for xb := 0; xb < rowBytes; xb++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				x := xb*8 + bit
				if x >= width {
					continue
				}
				if pixels[y*width+x] {
					b |= 1 << uint(7-bit)
				}
			}
			out[o] = b
			o++
		}
	}
	return out
}
