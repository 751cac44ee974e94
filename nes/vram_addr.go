package nes

// vramAddr is a loopy register: the PPU's internal 15-bit VRAM address,
// packed as fine Y / nametable select / coarse Y / coarse X. The PPU keeps
// two of these (v, the current address, and t, the "temporary" address
// staged by writes to PPUSCROLL/PPUADDR) plus a separate fine-X scroll and
// a write-toggle latch shared by both registers.
//
// Layout: yyy NN YYYYY XXXXX
type vramAddr uint16

const (
	loopyCoarseX   vramAddr = 0b11111
	loopyCoarseY            = 0b11111 << 5
	loopyNametable          = 0b11 << 10
	loopyFineY              = 0b111 << 12
)

func (r vramAddr) value() uint16 { return uint16(r) }

func (r *vramAddr) setCoarseX(val byte) {
	*r = (*r &^ loopyCoarseX) | (vramAddr(val) & 0b11111)
}

func (r *vramAddr) setCoarseY(val byte) {
	*r = (*r &^ loopyCoarseY) | ((vramAddr(val) & 0b11111) << 5)
}

func (r *vramAddr) setNametable(val byte) {
	*r = (*r &^ loopyNametable) | ((vramAddr(val) & 0b11) << 10)
}

func (r *vramAddr) setFineY(val byte) {
	*r = (*r &^ loopyFineY) | ((vramAddr(val) & 0b111) << 12)
}
