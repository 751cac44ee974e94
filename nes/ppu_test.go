package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPpuStatusReadClearsVblankAndLatch(t *testing.T) {
	p := NewPpu()
	setFlag(&p.status, statusVBlank, true)
	p.addrLatch = true

	data := p.CpuRead(0x0002, false)

	assert.True(t, isFlagSet(data, statusVBlank))
	assert.False(t, isFlagSet(p.status, statusVBlank))
	assert.False(t, p.addrLatch)
}

func TestPpuStatusReadOnlyLeavesStateUntouched(t *testing.T) {
	p := NewPpu()
	setFlag(&p.status, statusVBlank, true)
	p.addrLatch = true

	p.CpuRead(0x0002, true)

	assert.True(t, isFlagSet(p.status, statusVBlank))
	assert.True(t, p.addrLatch)
}

func TestPpuAddrWriteTwoByteLatch(t *testing.T) {
	p := NewPpu()

	p.CpuWrite(0x0006, 0x21) // high byte
	p.CpuWrite(0x0006, 0x08) // low byte

	assert.Equal(t, uint16(0x2108), p.vramAddr.value())
	assert.False(t, p.addrLatch)
}

func TestPpuDataReadIsBufferedOneByteBehind(t *testing.T) {
	p := NewPpu()
	cart := newTestCartridge(0x8000, nil)
	p.ConnectCartridge(cart)

	cart.PpuWrite(0x0000, 0x11)
	cart.PpuWrite(0x0001, 0x22)

	p.vramAddr = 0x0000
	first := p.CpuRead(0x0007, false) // returns stale buffer (0x00), then buffers $0000
	assert.Equal(t, byte(0x00), first)

	second := p.CpuRead(0x0007, false) // returns the buffered $0000 value, then buffers $0001
	assert.Equal(t, byte(0x11), second)
}

func TestPpuDataWriteIncrementsVramAddr(t *testing.T) {
	p := NewPpu()
	cart := newTestCartridge(0x8000, nil)
	p.ConnectCartridge(cart)

	p.vramAddr = 0x0005
	p.CpuWrite(0x0007, 0x42)

	assert.Equal(t, uint16(0x0006), p.vramAddr.value())
}

func TestPpuDataWriteIncrementsBy32InVerticalMode(t *testing.T) {
	p := NewPpu()
	cart := newTestCartridge(0x8000, nil)
	p.ConnectCartridge(cart)

	p.ctrl = byte(ctrlVramInc)
	p.vramAddr = 0x0005
	p.CpuWrite(0x0007, 0x42)

	assert.Equal(t, uint16(0x0025), p.vramAddr.value())
}

func TestPpuOamDataWriteAutoIncrementsAddr(t *testing.T) {
	p := NewPpu()
	p.CpuWrite(0x0003, 0x10) // OAMADDR
	p.CpuWrite(0x0004, 0x99) // OAMDATA

	assert.Equal(t, byte(0x99), p.oam[0x10])
	assert.Equal(t, byte(0x11), p.oamAddr)
}

func TestPpuNametableMirroringHorizontal(t *testing.T) {
	p := NewPpu()
	p.Cart = newTestCartridge(0x8000, nil) // default horizontal mirroring

	assert.Equal(t, 0, p.nameTableIndex(0x2000))
	assert.Equal(t, 0, p.nameTableIndex(0x2400))
	assert.Equal(t, 1, p.nameTableIndex(0x2800))
	assert.Equal(t, 1, p.nameTableIndex(0x2C00))
}

func TestPpuRaisesNmiAtVblankStart(t *testing.T) {
	p := NewPpu()
	p.ctrl = byte(ctrlNmi)
	p.scanline = 241
	p.cycle = 1

	p.Clock()

	assert.True(t, p.nmiRequested)
	assert.True(t, isFlagSet(p.status, statusVBlank))
}
