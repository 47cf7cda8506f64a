package sim

import (
	"fmt"
	"io"
	"os"

	"lc2k/internal/objfile"
)

// RunFile loads the executable at exePath and runs it to completion,
// writing the cache action trace to trace.
func RunFile(exePath string, blockSize, numSets, blocksPerSet int, trace io.Writer) error {
	f, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("sim: open %s: %w", exePath, err)
	}
	image, err := objfile.ReadImage(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("sim: read %s: %w", exePath, err)
	}

	s, err := New(image, blockSize, numSets, blocksPerSet, trace)
	if err != nil {
		return err
	}
	return s.Run()
}
