package nes

// buildInesImage assembles a minimal mapper-0 iNES image around the given
// PRG and CHR bank contents, for tests that need a real Cartridge rather
// than poking Bus's work RAM directly (the CPU's interrupt vectors and
// $8000-$FFFF window live in cartridge space, not RAM).
func buildInesImage(prgBanks, chrBanks byte, prg, chr []byte) []byte {
	header := make([]byte, inesHeaderSize)
	copy(header[0:4], inesMagic[:])
	header[4] = prgBanks
	header[5] = chrBanks

	image := make([]byte, 0, len(header)+len(prg)+len(chr))
	image = append(image, header...)
	image = append(image, prg...)
	image = append(image, chr...)
	return image
}

// newTestCartridge builds a single-16KB-bank NROM cartridge whose reset
// vector points at org, with program copied in starting at that address.
func newTestCartridge(org uint16, program []byte) *Cartridge {
	prg := make([]byte, prgBankSize)
	copy(prg[org&0x3FFF:], program)
	prg[0x3FFC] = byte(org)
	prg[0x3FFD] = byte(org >> 8)

	cart, err := NewCartridge(buildInesImage(1, 0, prg, nil))
	if err != nil {
		panic(err)
	}
	return cart
}

// newTestCartridgeWithVectors is newTestCartridge plus explicit IRQ/BRK and
// NMI vectors, for tests that exercise interrupt dispatch rather than plain
// instruction execution.
func newTestCartridgeWithVectors(org, irqVector, nmiVector uint16, program []byte) *Cartridge {
	prg := make([]byte, prgBankSize)
	copy(prg[org&0x3FFF:], program)
	prg[0x3FFC] = byte(org)
	prg[0x3FFD] = byte(org >> 8)
	prg[0x3FFA] = byte(nmiVector)
	prg[0x3FFB] = byte(nmiVector >> 8)
	prg[0x3FFE] = byte(irqVector)
	prg[0x3FFF] = byte(irqVector >> 8)

	cart, err := NewCartridge(buildInesImage(1, 0, prg, nil))
	if err != nil {
		panic(err)
	}
	return cart
}

// loadProgram inserts a cartridge built by newTestCartridge into bus and
// resets the CPU so Pc == org, with the reset pipeline's cycle burn-down
// already consumed for deterministic single-stepping in tests.
func loadProgram(bus *Bus, org uint16, program []byte) {
	bus.InsertCartridge(newTestCartridge(org, program))
	bus.Cpu.Reset()
	bus.Cpu.Cycles = 0
}
