package asm

import "fmt"

// Disassemble decodes one instruction word into the assembler's own
// mnemonic syntax. It shares opcodeTable with encode.go so the two
// directions never drift.
func Disassemble(word int32) string {
	opcode := (word >> 22) & 0x7
	regA := (word >> 19) & 0x7
	regB := (word >> 16) & 0x7
	field := int32(int16(word & 0xFFFF))

	op, ok := lookupOpcodeByValue(opcode)
	if !ok {
		return fmt.Sprintf("(unknown opcode %d)", opcode)
	}

	switch op.kind {
	case KindR:
		regDest := word & 0x7
		return fmt.Sprintf("%s %d %d %d", op.name, regA, regB, regDest)
	case KindI:
		return fmt.Sprintf("%s %d %d %d", op.name, regA, regB, field)
	case KindJ:
		return fmt.Sprintf("%s %d %d", op.name, regA, regB)
	default:
		return op.name
	}
}
