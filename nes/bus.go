package nes

// Bus wires the CPU, PPU, and cartridge together behind a single 16-bit CPU
// address space. It owns the console's 2KB of work RAM and, on every Clock,
// polls and clears the one-shot NMI latch the PPU raises at the start of
// vertical blank.
type Bus struct {
	Cpu  *Cpu6502
	Ppu  *Ppu
	Cart *Cartridge

	cpuRam [2048]byte

	ClockCount uint64
}

// NewBus constructs a Bus with a fresh CPU and PPU already attached.
func NewBus() *Bus {
	b := &Bus{
		Cpu: NewCpu6502(),
		Ppu: NewPpu(),
	}
	b.Cpu.ConnectBus(b)
	return b
}

// InsertCartridge attaches a cartridge to both the CPU and PPU address
// windows. Replaces whatever cartridge was previously inserted.
func (b *Bus) InsertCartridge(cart *Cartridge) {
	b.Cart = cart
	b.Ppu.ConnectCartridge(cart)
}

// Reset returns the CPU, PPU, and clock count to power-on state.
func (b *Bus) Reset() {
	b.Cpu.Reset()
	b.Ppu.Reset()
	b.ClockCount = 0
}

// CpuRead services a CPU-initiated read. readOnly suppresses the read side
// effects of the PPU's status and data registers, for use by the
// disassembler and debug peeks. It is not passed on to the cartridge.
func (b *Bus) CpuRead(addr uint16, readOnly bool) byte {
	switch {
	case addr <= 0x1FFF:
		return b.cpuRam[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.Ppu.CpuRead(addr&0x0007, readOnly)
	case addr >= 0x4020 && b.Cart != nil:
		if data, ok := b.Cart.CpuRead(addr); ok {
			return data
		}
	}
	return 0x00
}

// CpuWrite services a CPU-initiated write.
func (b *Bus) CpuWrite(addr uint16, data byte) {
	switch {
	case addr <= 0x1FFF:
		b.cpuRam[addr&0x07FF] = data
	case addr <= 0x3FFF:
		b.Ppu.CpuWrite(addr&0x0007, data)
	case addr >= 0x4020 && b.Cart != nil:
		b.Cart.CpuWrite(addr, data)
	}
}

// Clock advances the system by one PPU dot. The CPU runs three times slower
// than the PPU, so it only ticks on every third call.
func (b *Bus) Clock() {
	b.Ppu.Clock()

	if b.ClockCount%3 == 0 {
		b.Cpu.Clock()
	}

	if b.Ppu.nmiRequested {
		b.Ppu.nmiRequested = false
		b.Cpu.NMI()
	}

	b.ClockCount++
}
