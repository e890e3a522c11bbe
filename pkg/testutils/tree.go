package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// 🌲 WriteTree creates files under dir from relative path -> content.
// Parent directories are created as needed.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		err := os.MkdirAll(filepath.Dir(path), 0o755)
		require.NoError(t, err, "creating parent directory for %s", rel)
		err = os.WriteFile(path, []byte(content), 0o644)
		require.NoError(t, err, "writing %s", rel)
	}
}

// 📖 ReadTree reads every regular file under dir into relative path -> content.
func ReadTree(t *testing.T, dir string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[rel] = string(content)
		return nil
	})
	require.NoError(t, err, "walking %s", dir)
	return files
}
