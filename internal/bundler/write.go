package bundler

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write persists the bundle text under dir/filename, creating the destination
// directory if it does not exist yet (an already existing directory is not an
// error). It returns the path of the written artifact.
func Write(bundle, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(bundle), 0o644); err != nil {
		return "", fmt.Errorf("writing bundle %s: %w", path, err)
	}
	return path, nil
}
