package nes

// Cpu6502 is the NES variant of the MOS 6502: the same instruction set and
// addressing modes as the original, minus decimal-mode arithmetic.
type Cpu6502 struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of the next free stack location
	A      byte   // Accumulator
	X      byte   // X index register
	Y      byte   // Y index register
	Status byte   // Processor status flags

	bus *Bus

	// Transient decode state, overwritten at each instruction boundary.
	Opcode        byte   // Opcode byte of the instruction currently executing
	Fetched       byte   // Operand byte fetched by the addressing mode (or implied A)
	AddrAbs       uint16 // Effective address computed by the addressing mode
	AddrRel       uint16 // Sign-extended relative branch offset
	Temp          uint16 // Scratch 16-bit ALU temporary
	isImpliedAddr bool   // True when the current addressing mode is implied/accumulator

	Cycles     byte   // Cycles remaining before the next fetch
	CycleCount uint64 // Total cycles executed since construction

	instLookup [256]Instruction // 256-entry opcode dispatch table, built once
}

const stackBase uint16 = 0x0100

// SF6502 names one bit of the processor status register.
type SF6502 byte

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // Interrupt disable
	StatusFlagD                    // Decimal mode (unused on the NES ALU)
	StatusFlagB                    // Break command
	StatusFlagU                    // Unused, always 1 in-register
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

const (
	resetVectAddr uint16 = 0xFFFC
	irqVectAddr   uint16 = 0xFFFE
	nmiVectAddr   uint16 = 0xFFFA
)

// NewCpu6502 constructs a CPU with its opcode table populated. The table is
// never mutated after this call returns.
func NewCpu6502() *Cpu6502 {
	cpu := &Cpu6502{
		Sp:     0xFD,
		Status: byte(StatusFlagU),
	}
	cpu.instLookup = buildOpcodeTable(cpu)
	return cpu
}

// ConnectBus attaches the CPU to its memory bus. Called once at Bus
// construction time.
func (cpu *Cpu6502) ConnectBus(b *Bus) { cpu.bus = b }

func (cpu *Cpu6502) read(addr uint16) byte {
	return cpu.bus.CpuRead(addr, false)
}

func (cpu *Cpu6502) write(addr uint16, data byte) {
	cpu.bus.CpuWrite(addr, data)
}

func (cpu *Cpu6502) readWord(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// fetch reads the operand byte addressed by the current instruction's
// addressing mode, unless that mode is implied (in which case Fetched
// already holds the accumulator).
func (cpu *Cpu6502) fetch() byte {
	if !cpu.isImpliedAddr {
		cpu.Fetched = cpu.read(cpu.AddrAbs)
	}
	return cpu.Fetched
}

func (cpu *Cpu6502) stackPush(data byte) {
	cpu.write(stackBase|uint16(cpu.Sp), data)
	cpu.Sp--
}

func (cpu *Cpu6502) stackPop() byte {
	cpu.Sp++
	return cpu.read(stackBase | uint16(cpu.Sp))
}

func (cpu *Cpu6502) getFlag(f SF6502) byte {
	if cpu.Status&byte(f) != 0 {
		return 1
	}
	return 0
}

func (cpu *Cpu6502) setFlag(f SF6502, set bool) {
	if set {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

// Reset forces the CPU into its documented power-on/reset state and loads PC
// from the reset vector. Idempotent: calling it twice in a row leaves the
// same state as calling it once.
func (cpu *Cpu6502) Reset() {
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.Sp = 0xFD
	cpu.Status = byte(StatusFlagU)

	cpu.Pc = cpu.readWord(resetVectAddr)

	cpu.AddrRel = 0
	cpu.AddrAbs = 0
	cpu.Fetched = 0

	cpu.Cycles = 8
}

// IRQ requests a maskable interrupt. No-op while the interrupt-disable flag
// is set.
func (cpu *Cpu6502) IRQ() {
	if cpu.getFlag(StatusFlagI) != 0 {
		return
	}
	cpu.serviceInterrupt(irqVectAddr, false)
	cpu.Cycles = 7
}

// NMI requests a non-maskable interrupt. Always serviced, regardless of the
// interrupt-disable flag.
func (cpu *Cpu6502) NMI() {
	cpu.serviceInterrupt(nmiVectAddr, false)
	cpu.Cycles = 8
}

// serviceInterrupt pushes the return address and status, then vectors PC
// through vectorAddr. High byte of PC is pushed before the low byte, per
// the documented 6502 stack-frame layout.
func (cpu *Cpu6502) serviceInterrupt(vectorAddr uint16, brk bool) {
	cpu.stackPush(byte(cpu.Pc >> 8))
	cpu.stackPush(byte(cpu.Pc))

	status := cpu.Status
	status |= byte(StatusFlagU)
	if brk {
		status |= byte(StatusFlagB)
	} else {
		status &^= byte(StatusFlagB)
	}
	cpu.stackPush(status)

	cpu.setFlag(StatusFlagI, true)
	cpu.Pc = cpu.readWord(vectorAddr)
}

// Complete reports whether the current instruction has finished executing
// and the next Clock() call will begin a new fetch/decode cycle.
func (cpu *Cpu6502) Complete() bool {
	return cpu.Cycles == 0
}

// Clock advances the CPU by exactly one cycle. On the first cycle of an
// instruction it fetches, decodes, and fully executes the instruction's side
// effects; the returned cycle budget is then counted down on later calls.
func (cpu *Cpu6502) Clock() {
	if cpu.Cycles == 0 {
		cpu.Opcode = cpu.read(cpu.Pc)
		cpu.Pc++

		inst := cpu.instLookup[cpu.Opcode]
		cpu.Cycles = inst.Cycles

		cpu.isImpliedAddr = false
		modePenalty := inst.AddrMode()
		opPenalty := inst.Execute()

		cpu.Cycles += modePenalty & opPenalty
	}

	cpu.CycleCount++
	cpu.Cycles--
}
