package skills

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFunc persists the rewritten content of a document.
type WriteFunc func(path string, data []byte) error

// WriteAtomic replaces path with data through a temporary file and rename,
// keeping the permissions of the existing file. A symlinked path is resolved
// first so the link survives and its target receives the content.
func WriteAtomic(path string, data []byte) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	path = resolved

	pending, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// No-op once the file has been committed.
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
