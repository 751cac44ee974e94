package nes

// Mapper translates CPU and PPU addresses into offsets within a cartridge's
// PRG and CHR banks. Each method returns the mapped offset and whether this
// mapper claims the address at all; a false result means the caller should
// fall through to open-bus behavior.
type Mapper interface {
	CpuMapRead(addr uint16) (mapped uint16, ok bool)
	CpuMapWrite(addr uint16) (mapped uint16, ok bool)
	PpuMapRead(addr uint16) (mapped uint16, ok bool)
	PpuMapWrite(addr uint16) (mapped uint16, ok bool)
}

// newMapper constructs the Mapper for the given iNES mapper id, or returns
// ErrUnsupportedMapper if none is implemented.
func newMapper(id byte, prgBanks, chrBanks byte) (Mapper, error) {
	switch id {
	case 0:
		return newMapper000(prgBanks, chrBanks), nil
	default:
		return nil, ErrUnsupportedMapper
	}
}
