package nes

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// Ppu implements just enough of the 2C02's register and addressing surface
// to act as a faithful bus target: the CPU-visible $2000-$2007 registers,
// internal scroll/address latching, and the nametable/palette RAM a mapper's
// CHR data is composited against. It does not render scanlines; Clock only
// advances the dot/scanline counters and raises the one-shot NMI latch at
// the start of vertical blank.
type Ppu struct {
	Cart *Cartridge

	nameTable  [2][1024]byte
	paletteRAM [32]byte
	oam        [256]byte

	ctrl   byte
	mask   byte
	status byte

	oamAddr byte

	vramAddr   vramAddr // "v": current VRAM address
	tempAddr   vramAddr // "t": staged by PPUSCROLL/PPUADDR writes
	fineX      byte
	addrLatch  bool // write-toggle shared by PPUSCROLL and PPUADDR
	dataBuffer byte // PPUDATA read is buffered one byte behind

	scanline int
	cycle    int

	FrameComplete bool
	nmiRequested  bool
}

// NewPpu constructs a Ppu in its power-on state.
func NewPpu() *Ppu {
	p := &Ppu{scanline: -1}
	return p
}

// ConnectCartridge attaches the cartridge whose CHR data backs the pattern
// tables and, depending on mirroring mode, the nametable routing.
func (p *Ppu) ConnectCartridge(c *Cartridge) {
	p.Cart = c
}

// Reset returns the PPU to its power-on state.
func (p *Ppu) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.vramAddr = 0
	p.tempAddr = 0
	p.fineX = 0
	p.addrLatch = false
	p.dataBuffer = 0
	p.scanline = -1
	p.cycle = 0
	p.FrameComplete = false
	p.nmiRequested = false
}

// CpuRead services a CPU-side register read through the $2000-$2007 mirror.
// readOnly suppresses the read side effects of PPUSTATUS and PPUDATA, for
// debug peeks that must not disturb emulation state.
func (p *Ppu) CpuRead(reg uint16, readOnly bool) byte {
	switch reg {
	case 0x0002: // PPUSTATUS
		data := (p.status & 0xE0) | (p.dataBuffer & 0x1F)
		if !readOnly {
			setFlag(&p.status, statusVBlank, false)
			p.addrLatch = false
		}
		return data
	case 0x0004: // OAMDATA
		return p.oam[p.oamAddr]
	case 0x0007: // PPUDATA
		data := p.dataBuffer
		if !readOnly {
			p.dataBuffer = p.ppuRead(p.vramAddr.value())
		}
		if p.vramAddr.value() >= 0x3F00 {
			data = p.dataBuffer
		}
		if !readOnly {
			p.advanceVramAddr()
		}
		return data
	default:
		return 0
	}
}

// CpuWrite services a CPU-side register write through the $2000-$2007
// mirror.
func (p *Ppu) CpuWrite(reg uint16, data byte) {
	switch reg {
	case 0x0000: // PPUCTRL
		p.ctrl = data
		p.tempAddr.setNametable(data & 0x03)
	case 0x0001: // PPUMASK
		p.mask = data
	case 0x0003: // OAMADDR
		p.oamAddr = data
	case 0x0004: // OAMDATA
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case 0x0005: // PPUSCROLL
		if !p.addrLatch {
			p.fineX = data & 0x07
			p.tempAddr.setCoarseX(data >> 3)
		} else {
			p.tempAddr.setFineY(data & 0x07)
			p.tempAddr.setCoarseY(data >> 3)
		}
		p.addrLatch = !p.addrLatch
	case 0x0006: // PPUADDR
		if !p.addrLatch {
			p.tempAddr = (p.tempAddr & 0x00FF) | (vramAddr(data&0x3F) << 8)
		} else {
			p.tempAddr = (p.tempAddr &^ 0x00FF) | vramAddr(data)
			p.vramAddr = p.tempAddr
		}
		p.addrLatch = !p.addrLatch
	case 0x0007: // PPUDATA
		p.ppuWrite(p.vramAddr.value(), data)
		p.advanceVramAddr()
	}
}

func (p *Ppu) advanceVramAddr() {
	if isFlagSet(p.ctrl, ctrlVramInc) {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
}

// ppuRead services an internal PPU-bus read: pattern tables from the
// cartridge, nametables (mirrored per cartridge mirroring mode), and
// palette RAM.
func (p *Ppu) ppuRead(addr uint16) byte {
	addr &= 0x3FFF

	if addr <= 0x1FFF {
		if data, ok := p.Cart.PpuRead(addr); ok {
			return data
		}
		return 0
	}
	if addr <= 0x3EFF {
		return p.nameTable[p.nameTableIndex(addr)][addr&0x03FF]
	}
	return p.paletteRAM[p.paletteIndex(addr)]
}

func (p *Ppu) ppuWrite(addr uint16, data byte) {
	addr &= 0x3FFF

	if addr <= 0x1FFF {
		p.Cart.PpuWrite(addr, data)
		return
	}
	if addr <= 0x3EFF {
		p.nameTable[p.nameTableIndex(addr)][addr&0x03FF] = data
		return
	}
	p.paletteRAM[p.paletteIndex(addr)] = data
}

func (p *Ppu) nameTableIndex(addr uint16) int {
	table := (addr / 0x0400) % 4
	switch p.Cart.Mirror {
	case MirrorVertical:
		return int(table % 2)
	case MirrorOneScreenLo:
		return 0
	case MirrorOneScreenHi:
		return 1
	default: // MirrorHorizontal
		return int(table / 2)
	}
}

func (p *Ppu) paletteIndex(addr uint16) uint16 {
	idx := addr & 0x001F
	switch idx {
	case 0x10, 0x14, 0x18, 0x1C:
		idx -= 0x10
	}
	return idx
}

// Clock advances the PPU by one pixel dot, raising the NMI latch at the
// start of vertical blank and marking the frame complete at its end.
// Background/sprite compositing is out of scope; only the timing and
// register side effects a game's code can observe are modeled.
func (p *Ppu) Clock() {
	if p.scanline == -1 && p.cycle == 1 {
		setFlag(&p.status, statusVBlank, false)
	}
	if p.scanline == 241 && p.cycle == 1 {
		setFlag(&p.status, statusVBlank, true)
		if isFlagSet(p.ctrl, ctrlNmi) {
			p.nmiRequested = true
		}
	}

	p.cycle++
	if p.cycle >= 341 {
		p.cycle = 0
		p.scanline++
		if p.scanline >= 261 {
			p.scanline = -1
			p.FrameComplete = true
		}
	}
}

// nesPalette is the 2C02's fixed 64-entry RGB lookup table.
var nesPalette = [64]color.RGBA{
	{84, 84, 84, 255}, {0, 30, 116, 255}, {8, 16, 144, 255}, {48, 0, 136, 255},
	{68, 0, 100, 255}, {92, 0, 48, 255}, {84, 4, 0, 255}, {60, 24, 0, 255},
	{32, 42, 0, 255}, {8, 58, 0, 255}, {0, 64, 0, 255}, {0, 60, 0, 255},
	{0, 50, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	{152, 150, 152, 255}, {8, 76, 196, 255}, {48, 50, 236, 255}, {92, 30, 228, 255},
	{136, 20, 176, 255}, {160, 20, 100, 255}, {152, 34, 32, 255}, {120, 60, 0, 255},
	{84, 90, 0, 255}, {40, 114, 0, 255}, {8, 124, 0, 255}, {0, 118, 40, 255},
	{0, 102, 120, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	{236, 238, 236, 255}, {76, 154, 236, 255}, {120, 124, 236, 255}, {176, 98, 236, 255},
	{228, 84, 236, 255}, {236, 88, 180, 255}, {236, 106, 100, 255}, {212, 136, 32, 255},
	{160, 170, 0, 255}, {116, 196, 0, 255}, {76, 208, 32, 255}, {56, 204, 108, 255},
	{56, 180, 204, 255}, {60, 60, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	{236, 238, 236, 255}, {168, 204, 236, 255}, {188, 188, 236, 255}, {212, 178, 236, 255},
	{236, 174, 236, 255}, {236, 174, 212, 255}, {236, 180, 176, 255}, {228, 196, 144, 255},
	{204, 210, 120, 255}, {180, 222, 120, 255}, {168, 226, 144, 255}, {152, 226, 180, 255},
	{160, 214, 228, 255}, {160, 162, 160, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

// Palette returns a copy of the 32-byte palette RAM, for debug tooling.
func (p *Ppu) Palette() [32]byte { return p.paletteRAM }

// NameTable returns a copy of the requested physical nametable, for debug
// tooling.
func (p *Ppu) NameTable(index int) [1024]byte { return p.nameTable[index&1] }

// PatternTable renders one of the cartridge's two 128x128 pattern tables
// using the four colors of the given background palette index, for use by a
// debug frontend. index selects pattern table 0 or 1; palette selects one
// of the 8 four-color palettes in palette RAM.
func (p *Ppu) PatternTable(index int, palette byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))

	// Tile grid drawn first so tile pixels below always win.
	for i := 0; i < 128; i += 8 {
		for j := 0; j < 128; j++ {
			img.Set(i, j, colornames.Dimgray)
			img.Set(j, i, colornames.Dimgray)
		}
	}

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := uint16(tileY*256 + tileX*16)

			for row := 0; row < 8; row++ {
				lo := p.ppuRead(uint16(index)*0x1000 + offset + uint16(row))
				hi := p.ppuRead(uint16(index)*0x1000 + offset + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					pixel := (lo & 0x01) + (hi&0x01)*2
					lo >>= 1
					hi >>= 1

					c := p.colorFromPalette(palette, pixel)
					x := tileX*8 + (7 - col)
					y := tileY*8 + row
					img.Set(x, y, c)
				}
			}
		}
	}
	return img
}

func (p *Ppu) colorFromPalette(palette, pixel byte) color.RGBA {
	addr := uint16(0x3F00) + uint16(palette)*4 + uint16(pixel)
	entry := p.ppuRead(addr) & 0x3F
	return nesPalette[entry]
}
