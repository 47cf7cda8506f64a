package sim

import "errors"

var (
	ErrPCOutOfBounds    = errors.New("Program counter out of bounds")
	ErrUnsupportedOpcode = errors.New("Unsupported opcode")
)
