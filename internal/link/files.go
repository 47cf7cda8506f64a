package link

import (
	"fmt"
	"log/slog"
	"os"

	"lc2k/internal/objfile"
)

// LinkFiles reads each object file in objPaths, links them, and writes the
// resulting executable image to outPath.
func LinkFiles(objPaths []string, outPath string, logger *slog.Logger) error {
	objs := make([]*objfile.Record, 0, len(objPaths))
	for _, path := range objPaths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("link: open %s: %w", path, err)
		}
		rec, err := objfile.ReadRecord(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("link: read %s: %w", path, err)
		}
		objs = append(objs, rec)
	}

	image, err := Link(objs, logger)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("link: create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := objfile.WriteImage(out, image); err != nil {
		return fmt.Errorf("link: write executable: %w", err)
	}
	return nil
}
