package repositories

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbodonnell/pocketpet/pkg/log"
)

// testHookBeforeRename runs between syncing the temp file and renaming it.
// Tests use it to simulate a crash in the critical window.
var testHookBeforeRename func(tempPath string) error

// RenameError wraps a rename failure with the temp file that could not be moved.
type RenameError struct {
	Err      error
	tempPath string
}

func (e RenameError) Error() string    { return e.Err.Error() }
func (e RenameError) TempPath() string { return e.tempPath }
func (e RenameError) Unwrap() error    { return e.Err }

// atomicWriteFile writes data to a temp file in the target directory,
// syncs it and renames it over filename. Readers see either the old
// or the new content, never a partial write.
func atomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	var success bool
	defer func() {
		if success {
			return
		}
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			log.Warn("Failed to remove temp file %s: %v", tempPath, err)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %q: %w", tempPath, err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if testHookBeforeRename != nil {
		if err := testHookBeforeRename(tempPath); err != nil {
			return err
		}
	}

	if err := os.Rename(tempPath, filename); err != nil {
		return RenameError{Err: err, tempPath: tempPath}
	}
	success = true

	syncDir(dir)
	return nil
}

// syncDir makes the rename durable. Not every filesystem supports it.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		log.Trace("Directory sync not supported for %s: %v", dir, err)
	}
}
