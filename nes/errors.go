package nes

import "github.com/pkg/errors"

// Sentinel errors returned by cartridge construction. Callers should compare
// against these with errors.Is rather than inspecting error text.
var (
	ErrInvalidImage      = errors.New("nes: not a valid iNES image")
	ErrTruncatedImage    = errors.New("nes: iNES image shorter than its header declares")
	ErrUnsupportedMapper = errors.New("nes: unsupported mapper id")
)
