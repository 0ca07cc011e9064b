package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
)

func TestLines(t *testing.T) {
	entries := subtitle.ParseLRC("[00:01.00]la la\n[00:02.00]la la\n[00:03.00]verse\n[00:04.00]la la\n").Entries

	assert.Equal(t, []string{"la la", "verse", "la la"}, Lines(entries))
}

func TestWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "song.docx")
	entries := subtitle.ParseLRC("[00:01.00]first\n[00:02.00]second\n").Entries

	require.NoError(t, New().Write("song", entries, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteEmpty(t *testing.T) {
	err := New().Write("empty", nil, filepath.Join(t.TempDir(), "x.docx"))
	assert.Error(t, err)
}
