package path

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks up from startDir until a directory containing targetName
// is found and returns that directory. isDir selects whether targetName
// must be a directory or a regular file. Used to locate the project root
// (.env, migrations) regardless of the working directory tests run from.
func FindRoot(startDir, targetName string, isDir bool) (string, error) {
	dir := startDir
	for {
		info, err := os.Stat(filepath.Join(dir, targetName))
		if err == nil && info.IsDir() == isDir {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find %s starting from %s", targetName, startDir)
		}
		dir = parent
	}
}
