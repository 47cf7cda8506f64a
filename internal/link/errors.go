package link

import "errors"

var (
	ErrDuplicateGlobal  = errors.New("Duplicate global definition")
	ErrReservedStack    = errors.New("Stack is reserved and cannot be defined")
	ErrUnresolvedGlobal = errors.New("Undefined global reference")
)
