package mapcal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Replaceable for testing error paths.
var (
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
)

// writeAtomic streams src to path via a temp file in the same directory
// and a rename, so a failed conversion never leaves a truncated header.
func writeAtomic(path string, src io.WriterTo, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := osCreateTemp(dir, ".mc2bsbh-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	_, writeErr := src.WriteTo(tmp)
	closeErr := tmp.Close()
	if writeErr != nil {
		return fmt.Errorf("write: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close: %w", closeErr)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := osRename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	success = true
	return nil
}
