package asm

// OpcodeKind is the instruction-encoding shape assigned to each mnemonic.
type OpcodeKind int

const (
	KindR OpcodeKind = iota
	KindI
	KindJ
	KindO
)

type opcodeInfo struct {
	name   string
	opcode int32
	kind   OpcodeKind
}

// opcodeTable lists every mnemonic in opcode-number order.
var opcodeTable = []opcodeInfo{
	{"add", 0, KindR},
	{"nor", 1, KindR},
	{"lw", 2, KindI},
	{"sw", 3, KindI},
	{"beq", 4, KindI},
	{"jalr", 5, KindJ},
	{"halt", 6, KindO},
	{"noop", 7, KindO},
}

func lookupOpcode(name string) (opcodeInfo, bool) {
	for _, op := range opcodeTable {
		if op.name == name {
			return op, true
		}
	}
	return opcodeInfo{}, false
}

func lookupOpcodeByValue(value int32) (opcodeInfo, bool) {
	for _, op := range opcodeTable {
		if op.opcode == value {
			return op, true
		}
	}
	return opcodeInfo{}, false
}

const maxLabelLength = 6

// statement is one parsed assembly line: [label] opcode [arg0] [arg1] [arg2].
type statement struct {
	label  string
	opcode string
	args   [3]string
}

func isValidLabel(label string) bool {
	if len(label) == 0 || len(label) > maxLabelLength {
		return false
	}
	if !isLetter(label[0]) {
		return false
	}
	for i := 1; i < len(label); i++ {
		c := label[i]
		if !isLetter(c) && !isDigit(c) {
			return false
		}
	}
	return true
}

func isGlobalLabel(label string) bool {
	return len(label) > 0 && label[0] >= 'A' && label[0] <= 'Z'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isValidRegister(s string) (int32, bool) {
	n, ok := parseInt(s)
	if !ok || n < 0 || n > 7 {
		return 0, false
	}
	return int32(n), true
}
