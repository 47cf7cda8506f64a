package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadRecord parses the text object-record format: a header line
// `<tSize> <dSize> <sSize> <rSize>`, tSize text words, dSize data words,
// sSize symbol entries, then rSize relocation entries, one field-set per
// line.
func ReadRecord(r io.Reader) (*Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nextLine := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("objfile: missing header line")
	}
	var tSize, dSize, sSize, rSize int
	if _, err := fmt.Sscanf(header, "%d %d %d %d", &tSize, &dSize, &sSize, &rSize); err != nil {
		return nil, fmt.Errorf("objfile: malformed header %q: %w", header, err)
	}

	rec := &Record{
		Text:    make([]int32, 0, tSize),
		Data:    make([]int32, 0, dSize),
		Symbols: make([]Symbol, 0, sSize),
		Relocs:  make([]Reloc, 0, rSize),
	}

	for i := 0; i < tSize; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("objfile: truncated text section at entry %d", i)
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("objfile: malformed text word %q: %w", line, err)
		}
		rec.Text = append(rec.Text, int32(v))
	}

	for i := 0; i < dSize; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("objfile: truncated data section at entry %d", i)
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("objfile: malformed data word %q: %w", line, err)
		}
		rec.Data = append(rec.Data, int32(v))
	}

	for i := 0; i < sSize; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("objfile: truncated symbol table at entry %d", i)
		}
		var name, typ string
		var off int
		if _, err := fmt.Sscanf(line, "%s %s %d", &name, &typ, &off); err != nil {
			return nil, fmt.Errorf("objfile: malformed symbol entry %q: %w", line, err)
		}
		if len(typ) != 1 {
			return nil, fmt.Errorf("objfile: malformed symbol type %q", typ)
		}
		rec.Symbols = append(rec.Symbols, Symbol{Name: name, Type: SymbolType(typ[0]), Offset: off})
	}

	for i := 0; i < rSize; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("objfile: truncated relocation table at entry %d", i)
		}
		var off int
		var opcode, label string
		if _, err := fmt.Sscanf(line, "%d %s %s", &off, &opcode, &label); err != nil {
			return nil, fmt.Errorf("objfile: malformed relocation entry %q: %w", line, err)
		}
		rec.Relocs = append(rec.Relocs, Reloc{Offset: off, Opcode: opcode, Label: label})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	return rec, nil
}

// ReadImage parses the flat executable format: one integer per line, no
// header, text words followed by data words.
func ReadImage(r io.Reader) ([]int32, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var words []int32
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("objfile: malformed executable word %q: %w", line, err)
		}
		words = append(words, int32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	return words, nil
}
