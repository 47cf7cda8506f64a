// Package objfile implements the LC-2K relocatable object-record and flat
// executable text formats shared by the assembler (writer) and the linker
// (reader, and writer of the executable).
package objfile

// SymbolType is the third field of a symbol-table entry: text-defined,
// data-defined, or referenced-but-undefined in this object.
type SymbolType byte

const (
	SymText      SymbolType = 'T'
	SymData      SymbolType = 'D'
	SymUndefined SymbolType = 'U'
)

func (t SymbolType) String() string {
	return string(rune(t))
}

// Symbol is one entry in an object's symbol table.
type Symbol struct {
	Name   string
	Type   SymbolType
	Offset int
}

// Reloc is one entry in an object's relocation table. Opcode is either an
// instruction mnemonic (lw, sw, beq — pointing into text) or ".fill"
// (pointing into data).
type Reloc struct {
	Offset int
	Opcode string
	Label  string
}

// Record is a complete assembled object: text words, data words, the
// symbol table and the relocation table, in emission order.
type Record struct {
	Text    []int32
	Data    []int32
	Symbols []Symbol
	Relocs  []Reloc
}

// TextSize and DataSize mirror the object header fields; they are derived,
// not stored, so callers never have to keep them in sync with Text/Data.
func (r *Record) TextSize() int { return len(r.Text) }
func (r *Record) DataSize() int { return len(r.Data) }
