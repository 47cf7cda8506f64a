package sim

// step fetches, decodes and executes one instruction, returning true once
// halt has run.
func (s *Simulator) step() (bool, error) {
	word := s.cache.Load(s.PC)
	s.PC++
	if s.PC >= numMemory {
		return false, ErrPCOutOfBounds
	}

	opcode := (word >> 22) & 0x7
	regA := (word >> 19) & 0x7
	regB := (word >> 16) & 0x7
	regDest := word & 0x7
	offset := signExtend16(word)

	switch opcode {
	case opAdd:
		s.Reg[regDest] = s.Reg[regA] + s.Reg[regB]
	case opNor:
		s.Reg[regDest] = ^(s.Reg[regA] | s.Reg[regB])
	case opLw:
		s.Reg[regB] = s.cache.Load(int(s.Reg[regA] + offset))
	case opSw:
		s.cache.Store(int(s.Reg[regA]+offset), s.Reg[regB])
	case opBeq:
		if s.Reg[regA] == s.Reg[regB] {
			s.PC += int(offset)
		}
	case opJalr:
		// The return address is the already-incremented PC, captured
		// before PC is overwritten so regA == regB still works.
		returnAddr := int32(s.PC)
		s.PC = int(s.Reg[regA])
		s.Reg[regB] = returnAddr
	case opHalt:
		return true, nil
	case opNoop:
		// no effect
	default:
		return false, ErrUnsupportedOpcode
	}
	return false, nil
}

// signExtend16 sign-extends the low 16 bits of word to a 32-bit offset.
func signExtend16(word int32) int32 {
	return int32(int16(word & 0xFFFF))
}
