package objfile

import (
	"bufio"
	"fmt"
	"io"
)

// WriteRecord emits rec in the text object-record format described by
// ReadRecord, preserving emission order in the text, data, symbol and
// relocation sections.
func WriteRecord(w io.Writer, rec *Record) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", rec.TextSize(), rec.DataSize(), len(rec.Symbols), len(rec.Relocs)); err != nil {
		return fmt.Errorf("objfile: write header: %w", err)
	}
	for _, word := range rec.Text {
		if _, err := fmt.Fprintf(bw, "%d\n", word); err != nil {
			return fmt.Errorf("objfile: write text word: %w", err)
		}
	}
	for _, word := range rec.Data {
		if _, err := fmt.Fprintf(bw, "%d\n", word); err != nil {
			return fmt.Errorf("objfile: write data word: %w", err)
		}
	}
	for _, sym := range rec.Symbols {
		if _, err := fmt.Fprintf(bw, "%s %c %d\n", sym.Name, byte(sym.Type), sym.Offset); err != nil {
			return fmt.Errorf("objfile: write symbol entry: %w", err)
		}
	}
	for _, rel := range rec.Relocs {
		if _, err := fmt.Fprintf(bw, "%d %s %s\n", rel.Offset, rel.Opcode, rel.Label); err != nil {
			return fmt.Errorf("objfile: write relocation entry: %w", err)
		}
	}
	return bw.Flush()
}

// WriteImage emits words in the flat executable format: one integer per
// line, no header.
func WriteImage(w io.Writer, words []int32) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintf(bw, "%d\n", word); err != nil {
			return fmt.Errorf("objfile: write image word: %w", err)
		}
	}
	return bw.Flush()
}
