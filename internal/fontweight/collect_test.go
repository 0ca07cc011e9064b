package fontweight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"a.ttf", "b.OTF", "notes.txt", "sub/c.ttc", "sub/deep/d.woff"} {
		full := filepath.Join(root, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, nil, 0644))
	}
	exts := []string{".ttf", ".otf", ".ttc", ".woff", ".woff2"}

	files, missing := Collect([]string{root}, false, exts)
	assert.Empty(t, missing)
	assert.Equal(t, []string{
		filepath.Join(root, "a.ttf"),
		filepath.Join(root, "b.OTF"),
	}, files)

	files, _ = Collect([]string{root}, true, exts)
	assert.Len(t, files, 4)

	files, missing = Collect([]string{filepath.Join(root, "a.ttf"), filepath.Join(root, "a.ttf"), filepath.Join(root, "nope")}, false, exts)
	assert.Equal(t, []string{filepath.Join(root, "a.ttf")}, files)
	assert.Equal(t, []string{filepath.Join(root, "nope")}, missing)
}
