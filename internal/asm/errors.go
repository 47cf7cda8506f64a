package asm

import "errors"

// Sentinel errors whose Error() text is the diagnostic printed verbatim by
// the command-line entry points before they exit 1.
var (
	ErrInvalidLabel      = errors.New("Invalid label")
	ErrDuplicateLabel    = errors.New("Duplicate label")
	ErrUnsupportedOpcode = errors.New("Unsupported opcode")
	ErrInvalidRegisters  = errors.New("Invalid registers")
	ErrOffsetOutOfRange  = errors.New("Offset out of range")
	ErrUndefinedLabel    = errors.New("Undefined label")
	ErrFillOverflow      = errors.New(".fill overflow")
	ErrLineTooLong       = errors.New("line too long")
)
