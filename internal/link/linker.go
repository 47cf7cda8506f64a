// Package link implements the LC-2K linker: merging N relocatable object
// records into one flat executable image.
package link

import (
	"fmt"
	"log/slog"

	"lc2k/internal/objfile"
)

// Link merges objs, in input order, into a flat executable image. logger
// may be nil; when non-nil it receives debug-level phase-boundary events,
// never diagnostic or trace output.
func Link(objs []*objfile.Record, logger *slog.Logger) ([]int32, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	defs, err := buildGlobalDefiners(objs)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved global symbol table", "count", len(defs))

	am := computeAddressMap(objs)
	logger.Debug("computed address map", "textSize", am.d, "dataSize", am.totalData)

	image := make([]int32, am.d+am.totalData)
	for i, obj := range objs {
		copy(image[am.textStart[i]:], obj.Text)
		copy(image[am.dataStart[i]:], obj.Data)
	}

	for i, obj := range objs {
		for _, rel := range obj.Relocs {
			if err := applyRelocation(image, am, defs, i, obj, rel); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("relocation pass complete", "imageWords", len(image))

	return image, nil
}

func applyRelocation(image []int32, am *addressMap, defs map[string]definer, objIndex int, obj *objfile.Record, rel objfile.Reloc) error {
	if rel.Opcode == ".fill" {
		return applyFillRelocation(image, am, defs, objIndex, obj, rel)
	}
	return applyTextRelocation(image, am, defs, objIndex, obj, rel)
}

// resolveGlobal finds the final image address of a global label undefined
// in the referencing object, falling back to the Stack sentinel when
// nothing defines it.
func resolveGlobal(am *addressMap, defs map[string]definer, label string) (int, error) {
	if d, ok := defs[label]; ok {
		if d.sym.Type == objfile.SymText {
			return am.textStart[d.objIndex] + d.sym.Offset, nil
		}
		return am.dataStart[d.objIndex] + d.sym.Offset, nil
	}
	if label == "Stack" {
		return am.d + am.totalData, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnresolvedGlobal, label)
}

// splitLocal computes the image address for a line number recorded by the
// assembler against object i, splitting between that object's text and
// data regions.
func splitLocal(am *addressMap, objIndex, lineNumber int) int {
	ti := am.textSize[objIndex]
	if lineNumber >= ti {
		return (lineNumber - ti) + am.d + sumBefore(am.dataSize, objIndex)
	}
	return lineNumber + am.textStart[objIndex]
}

func sumBefore(sizes []int, idx int) int {
	total := 0
	for i := 0; i < idx; i++ {
		total += sizes[i]
	}
	return total
}

func applyTextRelocation(image []int32, am *addressMap, defs map[string]definer, objIndex int, obj *objfile.Record, rel objfile.Reloc) error {
	idx := am.textStart[objIndex] + rel.Offset
	word := image[idx]
	highBits := word &^ 0xFFFF

	var field int
	if isUndefinedInObject(obj, rel.Label) {
		resolved, err := resolveGlobal(am, defs, rel.Label)
		if err != nil {
			return err
		}
		field = resolved & 0xFFFF
	} else {
		lineNumber := int(word & 0xFFFF)
		field = splitLocal(am, objIndex, lineNumber) & 0xFFFF
	}

	image[idx] = highBits | int32(field)
	return nil
}

func applyFillRelocation(image []int32, am *addressMap, defs map[string]definer, objIndex int, obj *objfile.Record, rel objfile.Reloc) error {
	idx := am.dataStart[objIndex] + rel.Offset

	if isUndefinedInObject(obj, rel.Label) {
		resolved, err := resolveGlobal(am, defs, rel.Label)
		if err != nil {
			return err
		}
		// Masked to 16 bits to match the text-relative patch width.
		image[idx] = int32(resolved & 0xFFFF)
		return nil
	}

	lineNumber := int(image[idx])
	image[idx] = int32(splitLocal(am, objIndex, lineNumber))
	return nil
}
