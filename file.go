// Atomic plugin output.
//
// A plugin is written to a temporary file beside the target, synced if
// asked, then renamed over the target. If the process dies part way the old
// file is intact and at worst a stale .tmp remains, which the next write
// replaces.
package tes3

import (
	"fmt"
	"os"
)

// WriteFile stores data as dir/name. Access is confined to dir.
func WriteFile(dir, name string, data []byte, sync bool) error {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return err
	}
	defer root.Close()

	tmpName := name + ".tmp"
	tmp, err := root.Create(tmpName)
	if err != nil {
		return fmt.Errorf("write file: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		root.Remove(tmpName)
		return fmt.Errorf("write file: %w", err)
	}
	if sync {
		if err := tmp.Sync(); err != nil {
			tmp.Close()
			root.Remove(tmpName)
			return fmt.Errorf("write file: sync: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		root.Remove(tmpName)
		return fmt.Errorf("write file: close temp: %w", err)
	}
	if err := root.Rename(tmpName, name); err != nil {
		return fmt.Errorf("write file: rename: %w", err)
	}
	return nil
}
