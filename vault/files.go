package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// errDirSync means the file is in place but its directory entry may not
// have reached the disk yet.
var errDirSync = errors.New("sync parent directory")

// createFile writes data to a temp file next to path and hard-links it into
// place. The link fails with os.ErrExist when path is already present, so an
// existing file is never replaced and readers never see a partial write.
func createFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".pwvault-*")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Link(tmp.Name(), path); err != nil {
		return err
	}

	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", errDirSync, err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("%w: %w", errDirSync, err)
	}
	return nil
}
