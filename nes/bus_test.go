package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamMirroring(t *testing.T) {
	bus := NewBus()

	bus.CpuWrite(0x0000, 0x42)

	assert.Equal(t, byte(0x42), bus.CpuRead(0x0800, false))
	assert.Equal(t, byte(0x42), bus.CpuRead(0x1000, false))
	assert.Equal(t, byte(0x42), bus.CpuRead(0x1800, false))
}

func TestPpuRegisterMirroring(t *testing.T) {
	bus := NewBus()

	bus.CpuWrite(0x2000, 0x80) // PPUCTRL, mirror base
	bus.CpuWrite(0x2008, 0x00) // same register, first mirror

	assert.Equal(t, byte(0x00), bus.Ppu.ctrl)
}

func TestOpenBusReadsReturnZero(t *testing.T) {
	bus := NewBus()

	assert.Equal(t, byte(0x00), bus.CpuRead(0x4010, false))
}

func TestClockRunsCpuOnceEveryThreeCalls(t *testing.T) {
	bus := NewBus()
	bus.Reset()

	startCycle := bus.Ppu.cycle
	startCpuCycles := bus.Cpu.CycleCount

	bus.Clock() // ClockCount 0: CPU ticks
	assert.Equal(t, (startCycle+1)%341, bus.Ppu.cycle)
	assert.Equal(t, startCpuCycles+1, bus.Cpu.CycleCount)

	bus.Clock() // ClockCount 1: PPU-only dot
	assert.Equal(t, (startCycle+2)%341, bus.Ppu.cycle)
	assert.Equal(t, startCpuCycles+1, bus.Cpu.CycleCount)

	bus.Clock() // ClockCount 2: PPU-only dot
	assert.Equal(t, (startCycle+3)%341, bus.Ppu.cycle)
	assert.Equal(t, startCpuCycles+1, bus.Cpu.CycleCount)

	bus.Clock() // ClockCount 3: CPU ticks again
	assert.Equal(t, (startCycle+4)%341, bus.Ppu.cycle)
	assert.Equal(t, startCpuCycles+2, bus.Cpu.CycleCount)
}

func TestResetClearsClockCount(t *testing.T) {
	bus := NewBus()
	bus.Clock()
	bus.Clock()
	assert.NotZero(t, bus.ClockCount)

	bus.Reset()
	assert.Zero(t, bus.ClockCount)
}
