package asm

import (
	"fmt"
	"io"
	"os"

	"lc2k/internal/objfile"
)

// Assemble reads LC-2K assembly from inPath, two-pass assembles it, and
// writes the resulting object record to outPath.
func Assemble(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("asm: open %s: %w", inPath, err)
	}
	defer in.Close()

	rec, err := AssembleReader(in)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("asm: create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := objfile.WriteRecord(out, rec); err != nil {
		return fmt.Errorf("asm: write object: %w", err)
	}
	return nil
}

// AssembleReader runs both passes over r and returns the resulting object
// record. Exposed separately from Assemble so tests can assemble an
// in-memory program without touching the filesystem.
func AssembleReader(r io.Reader) (*objfile.Record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	labels, err := pass1(lines)
	if err != nil {
		return nil, err
	}

	b := newBuilder(labels)
	for lineNumber, line := range lines {
		st := parseStatement(line)
		if st.opcode == ".fill" {
			if err := b.emitFill(st); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.emitInstruction(lineNumber, st); err != nil {
			return nil, err
		}
	}
	return b.rec, nil
}
