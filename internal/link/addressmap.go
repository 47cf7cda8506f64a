package link

import "lc2k/internal/objfile"

// addressMap is the precomputed layout of a link set: each object's text
// and data start offsets in the final image, plus the combined text size D.
type addressMap struct {
	textStart []int
	dataStart []int
	textSize  []int
	dataSize  []int
	d         int // combined text size across all objects
	totalData int
}

func computeAddressMap(objs []*objfile.Record) *addressMap {
	am := &addressMap{
		textStart: make([]int, len(objs)),
		dataStart: make([]int, len(objs)),
		textSize:  make([]int, len(objs)),
		dataSize:  make([]int, len(objs)),
	}
	for i, obj := range objs {
		am.textSize[i] = obj.TextSize()
		am.dataSize[i] = obj.DataSize()
	}
	offset := 0
	for i := range objs {
		am.textStart[i] = offset
		offset += am.textSize[i]
	}
	am.d = offset
	for i := range objs {
		am.dataStart[i] = offset
		offset += am.dataSize[i]
	}
	am.totalData = offset - am.d
	return am
}

// definer locates the unique object that defines label as a global T/D
// symbol, if any.
type definer struct {
	objIndex int
	sym      objfile.Symbol
}

func buildGlobalDefiners(objs []*objfile.Record) (map[string]definer, error) {
	defs := make(map[string]definer)
	for i, obj := range objs {
		for _, sym := range obj.Symbols {
			if sym.Type == objfile.SymUndefined {
				continue
			}
			if _, dup := defs[sym.Name]; dup {
				return nil, ErrDuplicateGlobal
			}
			if sym.Name == "Stack" {
				return nil, ErrReservedStack
			}
			defs[sym.Name] = definer{objIndex: i, sym: sym}
		}
	}
	return defs, nil
}

func isUndefinedInObject(obj *objfile.Record, label string) bool {
	for _, sym := range obj.Symbols {
		if sym.Name == label && sym.Type == objfile.SymUndefined {
			return true
		}
	}
	return false
}
