package asm

import "lc2k/internal/objfile"

// builder accumulates a Record across pass 2, tracking section-relative
// lengths and the set of U symbols already emitted for this object.
type builder struct {
	labels    map[string]int
	relocSeen map[string]bool
	rec       *objfile.Record
}

func newBuilder(labels map[string]int) *builder {
	return &builder{
		labels:    labels,
		relocSeen: make(map[string]bool),
		rec:       &objfile.Record{},
	}
}

func (b *builder) addUSymbolOnce(label string) {
	if b.relocSeen[label] {
		return
	}
	b.relocSeen[label] = true
	b.rec.Symbols = append(b.rec.Symbols, objfile.Symbol{Name: label, Type: objfile.SymUndefined, Offset: 0})
}

func (b *builder) emitInstruction(lineNumber int, st statement) error {
	op, ok := lookupOpcode(st.opcode)
	if !ok {
		return ErrUnsupportedOpcode
	}

	var word int32
	var err error
	switch op.kind {
	case KindR:
		word, err = b.encodeR(op, st)
	case KindI:
		word, err = b.encodeI(op, st, lineNumber)
	case KindJ:
		word, err = b.encodeJ(op, st)
	case KindO:
		word = op.opcode << 22
	}
	if err != nil {
		return err
	}

	if st.label != "" && isGlobalLabel(st.label) {
		b.rec.Symbols = append(b.rec.Symbols, objfile.Symbol{Name: st.label, Type: objfile.SymText, Offset: len(b.rec.Text)})
	}
	b.rec.Text = append(b.rec.Text, word)
	return nil
}

func (b *builder) encodeR(op opcodeInfo, st statement) (int32, error) {
	regA, ok1 := isValidRegister(st.args[0])
	regB, ok2 := isValidRegister(st.args[1])
	regDest, ok3 := isValidRegister(st.args[2])
	if !ok1 || !ok2 || !ok3 {
		return 0, ErrInvalidRegisters
	}
	return op.opcode<<22 | regA<<19 | regB<<16 | regDest, nil
}

func (b *builder) encodeJ(op opcodeInfo, st statement) (int32, error) {
	regA, ok1 := isValidRegister(st.args[0])
	regB, ok2 := isValidRegister(st.args[1])
	if !ok1 || !ok2 {
		return 0, ErrInvalidRegisters
	}
	return op.opcode<<22 | regA<<19 | regB<<16, nil
}

func (b *builder) encodeI(op opcodeInfo, st statement, lineNumber int) (int32, error) {
	regA, ok1 := isValidRegister(st.args[0])
	regB, ok2 := isValidRegister(st.args[1])
	if !ok1 || !ok2 {
		return 0, ErrInvalidRegisters
	}

	arg2 := st.args[2]
	var field int32

	switch {
	case isNumericOperand(arg2):
		v, _ := parseInt(arg2)
		if v < -(1<<15) || v > (1<<15)-1 {
			return 0, ErrOffsetOutOfRange
		}
		field = int32(v) & 0xFFFF

	default:
		target, local := b.labels[arg2]
		if local {
			if op.name == "beq" {
				offset := target - (lineNumber + 1)
				if offset < -(1<<15) || offset > (1<<15)-1 {
					return 0, ErrOffsetOutOfRange
				}
				field = int32(offset) & 0xFFFF
			} else {
				field = int32(target) & 0xFFFF
				b.rec.Relocs = append(b.rec.Relocs, objfile.Reloc{Offset: len(b.rec.Text), Opcode: op.name, Label: arg2})
			}
		} else {
			if !isGlobalLabel(arg2) {
				return 0, ErrInvalidLabel
			}
			if op.name == "beq" {
				return 0, ErrUndefinedLabel
			}
			field = 0
			b.addUSymbolOnce(arg2)
			b.rec.Relocs = append(b.rec.Relocs, objfile.Reloc{Offset: len(b.rec.Text), Opcode: op.name, Label: arg2})
		}
	}

	return op.opcode<<22 | regA<<19 | regB<<16 | field, nil
}

func (b *builder) emitFill(st statement) error {
	arg0 := st.args[0]

	if isNumericOperand(arg0) {
		v, _ := parseInt(arg0)
		if st.label != "" && isGlobalLabel(st.label) {
			b.rec.Symbols = append(b.rec.Symbols, objfile.Symbol{Name: st.label, Type: objfile.SymData, Offset: len(b.rec.Data)})
		}
		b.rec.Data = append(b.rec.Data, int32(v))
		return nil
	}

	target, local := b.labels[arg0]
	if !local && !isGlobalLabel(arg0) {
		return ErrInvalidLabel
	}
	if st.label != "" && isGlobalLabel(st.label) {
		b.rec.Symbols = append(b.rec.Symbols, objfile.Symbol{Name: st.label, Type: objfile.SymData, Offset: len(b.rec.Data)})
	}

	b.rec.Relocs = append(b.rec.Relocs, objfile.Reloc{Offset: len(b.rec.Data), Opcode: ".fill", Label: arg0})
	if local {
		b.rec.Data = append(b.rec.Data, int32(target))
	} else {
		b.addUSymbolOnce(arg0)
		b.rec.Data = append(b.rec.Data, 0)
	}
	return nil
}
