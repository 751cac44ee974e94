package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartridgeRejectsBadMagic(t *testing.T) {
	image := make([]byte, 32)
	copy(image, []byte("XXXX"))

	_, err := NewCartridge(image)

	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestNewCartridgeRejectsTruncatedImage(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1A, 0x01, 0x00, 0x00, 0x00}
	header = append(header, make([]byte, 8)...) // pad to 16-byte header
	image := append(header, make([]byte, 100)...)

	_, err := NewCartridge(image)

	assert.ErrorIs(t, err, ErrTruncatedImage)
}

func TestNewCartridgeRejectsUnsupportedMapper(t *testing.T) {
	prg := make([]byte, prgBankSize)
	flags7 := byte(0x10) // mapper id 0x10: high nibble 1 from flags7 | low nibble 0 from flags6
	image := buildInesImage(1, 0, prg, nil)
	image[7] = flags7

	_, err := NewCartridge(image)

	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func TestNewCartridgeParsesHeaderFields(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	chr := make([]byte, chrBankSize)
	image := buildInesImage(2, 1, prg, chr)
	image[6] = 0x01 // vertical mirroring

	cart, err := NewCartridge(image)

	assert.NoError(t, err)
	assert.True(t, cart.ImageValid())
	assert.EqualValues(t, 2, cart.PrgBankCount())
	assert.EqualValues(t, 1, cart.ChrBankCount())
	assert.Equal(t, MirrorVertical, cart.Mirror)
}

func TestNewCartridgeSkipsTrainer(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0xEA // a marker byte at the start of PRG
	image := buildInesImage(1, 0, prg, nil)
	image[6] = 0x04 // trainer present

	withTrainer := append(append([]byte{}, image[:inesHeaderSize]...), make([]byte, inesTrainerSize)...)
	withTrainer = append(withTrainer, image[inesHeaderSize:]...)

	cart, err := NewCartridge(withTrainer)

	assert.NoError(t, err)
	data, ok := cart.CpuRead(0x8000)
	assert.True(t, ok)
	assert.Equal(t, byte(0xEA), data)
}

func TestCartridgeChrRamIsWritable(t *testing.T) {
	prg := make([]byte, prgBankSize)
	cart, err := NewCartridge(buildInesImage(1, 0, prg, nil)) // chrBanks == 0 -> CHR RAM
	assert.NoError(t, err)

	ok := cart.PpuWrite(0x0010, 0x99)
	assert.True(t, ok)

	data, ok := cart.PpuRead(0x0010)
	assert.True(t, ok)
	assert.Equal(t, byte(0x99), data)
}
