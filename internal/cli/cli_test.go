package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/lyricflow/internal/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const sampleLRC = "[ti:Song]\n[00:01.00]first\n[00:04.50]second\n"

func streams() (Streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Streams{Stdout: &out, Stderr: &errOut}, &out, &errOut
}

// noConfig returns an empty config file, so every setting takes its default.
func noConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRunConvert_SingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "song.lrc")
	writeFile(t, src, sampleLRC)

	s, out, _ := streams()
	code := RunConvert(context.Background(), "lrc2srt", converter.LRCToSRT, []string{"-config", noConfig(t), src}, s)
	require.Equal(t, ExitOK, code, out.String())

	got, err := os.ReadFile(filepath.Join(dir, "song.srt"))
	require.NoError(t, err)
	assert.Equal(t, "1\n00:00:01,000 --> 00:00:04,500\nfirst\n\n2\n00:00:04,500 --> 00:00:07,500\nsecond\n", string(got))
}

func TestRunConvert_DirectoryDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lrc"), sampleLRC)
	writeFile(t, filepath.Join(dir, "album", "b.LRC"), sampleLRC)

	s, out, _ := streams()
	code := RunConvert(context.Background(), "lrc2srt", converter.LRCToSRT, []string{"-config", noConfig(t), dir}, s)
	require.Equal(t, ExitOK, code, out.String())

	assert.FileExists(t, filepath.Join(dir, "输出_SRT文件", "a.srt"))
	assert.FileExists(t, filepath.Join(dir, "输出_SRT文件", "album", "b.srt"))
}

func TestRunConvert_Flat(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(dir, "album", "b.lrc"), sampleLRC)

	s, _, _ := streams()
	code := RunConvert(context.Background(), "lrc2srt", converter.LRCToSRT, []string{"-config", noConfig(t), "-flat", dir, out}, s)
	require.Equal(t, ExitOK, code)
	assert.FileExists(t, filepath.Join(out, "b.srt"))
}

func TestRunConvert_ZeroArgsUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "clip.srt"), "1\n00:00:01,000 --> 00:00:02,000\nhello\n")
	chdir(t, dir)

	s, _, _ := streams()
	code := RunConvert(context.Background(), "srt2lrc", converter.SRTToLRC, []string{"-config", noConfig(t)}, s)
	require.Equal(t, ExitOK, code)

	got, err := os.ReadFile(filepath.Join(dir, "输出_LRC文件", "clip.lrc"))
	require.NoError(t, err)
	assert.Equal(t, "[00:01.00]hello", string(got))
}

func TestRunConvert_Failures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.lrc"), sampleLRC)
	writeFile(t, filepath.Join(dir, "empty.lrc"), "[ar:nobody]\n")
	emptyDir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{filepath.Join(dir, "nope.lrc")}},
		{"one bad file in batch", []string{dir}},
		{"no files found", []string{emptyDir}},
		{"too many args", []string{"a", "b", "c"}},
		{"unknown flag", []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := streams()
			args := append([]string{"-config", noConfig(t)}, tt.args...)
			assert.Equal(t, ExitFailure, RunConvert(context.Background(), "lrc2srt", converter.LRCToSRT, args, s))
		})
	}
}

func TestRunConvert_MissingExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lrc"), sampleLRC)

	s, _, errOut := streams()
	code := RunConvert(context.Background(), "lrc2srt", converter.LRCToSRT,
		[]string{"-config", filepath.Join(t.TempDir(), "absent.yaml"), dir}, s)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut.String(), "Failed to load config")
	assert.NoDirExists(t, filepath.Join(dir, "输出_SRT文件"))
}

func TestRunConvert_CancelledStopsBatch(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(dir, "a.lrc"), sampleLRC)
	writeFile(t, filepath.Join(dir, "b.lrc"), sampleLRC)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _, _ := streams()
	code := RunConvert(ctx, "lrc2srt", converter.LRCToSRT, []string{"-config", noConfig(t), dir, out}, s)
	assert.Equal(t, ExitFailure, code)
	assert.NoFileExists(t, filepath.Join(out, "a.srt"))
	assert.NoFileExists(t, filepath.Join(out, "b.srt"))
}

func TestRunConvert_WatchUntilCancelled(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(dir, "first.lrc"), sampleLRC)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, _, _ := streams()
	done := make(chan int, 1)
	go func() {
		done <- RunConvert(ctx, "lrc2srt", converter.LRCToSRT, []string{"-config", noConfig(t), "-watch", dir, out}, s)
	}()

	// The watcher starts after the initial batch, so rewrite the new file now
	// and then, leaving it quiet long enough to settle in between.
	later := filepath.Join(dir, "later.lrc")
	var lastWrite time.Time
	require.Eventually(t, func() bool {
		if _, err := os.Stat(filepath.Join(out, "later.srt")); err == nil {
			return true
		}
		if time.Since(lastWrite) > 2*time.Second {
			_ = os.WriteFile(later, []byte(sampleLRC), 0644)
			lastWrite = time.Now()
		}
		return false
	}, 15*time.Second, 100*time.Millisecond)
	assert.FileExists(t, filepath.Join(out, "first.srt"))

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch mode did not stop after cancellation")
	}
}

func TestRunConvert_Help(t *testing.T) {
	s, _, errOut := streams()
	assert.Equal(t, ExitOK, RunConvert(context.Background(), "lrc2srt", converter.LRCToSRT, []string{"-h"}, s))
	assert.Contains(t, errOut.String(), "Usage: lrc2srt")
}

func TestRunLRCFix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.lrc")
	writeFile(t, path, "[00:01.00]寻农\n[00:02.00]，\n")

	rules := filepath.Join(t.TempDir(), "rules.yaml")
	writeFile(t, rules, "- from: \"，\"\n  to: \"\"\n- from: 寻农\n  to: 寻龙\n")

	s, out, _ := streams()
	code := RunLRCFix(context.Background(), []string{"-config", noConfig(t), "-nolog", "-rules", rules, dir}, s)
	require.Equal(t, ExitOK, code)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[00:01.00]寻龙\n", string(got))
	assert.Contains(t, out.String(), "modified: 1 files")
}

func TestRunLRCFix_MissingRoot(t *testing.T) {
	s, _, _ := streams()
	code := RunLRCFix(context.Background(), []string{"-config", noConfig(t), "-nolog", filepath.Join(t.TempDir(), "nope")}, s)
	assert.Equal(t, ExitFailure, code)
}

func TestRunFontWeight_Inspect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Go-Regular.ttf"), string(goregular.TTF))
	writeFile(t, filepath.Join(dir, "web.woff"), "wOFF0000")

	s, out, _ := streams()
	code := RunFontWeight(context.Background(), []string{"-config", noConfig(t), dir}, s)
	require.Equal(t, ExitOK, code, out.String())
	assert.Contains(t, out.String(), "Go-Regular.ttf: Go Regular (weight: Regular, 400)")
	assert.Contains(t, out.String(), "Skipping")
}

func TestRunFontWeight_Extract(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "weights")
	writeFile(t, filepath.Join(dir, "Go.ttf"), string(goregular.TTF))

	s, out, _ := streams()
	code := RunFontWeight(context.Background(), []string{"-config", noConfig(t), "-e", "-o", outDir, dir}, s)
	require.Equal(t, ExitOK, code, out.String())
	assert.FileExists(t, filepath.Join(outDir, "Go_Regular.ttf"))
}

func TestRunFontWeight_NoFonts(t *testing.T) {
	s, _, _ := streams()
	assert.Equal(t, ExitFailure, RunFontWeight(context.Background(), []string{"-config", noConfig(t), t.TempDir()}, s))
	assert.Equal(t, ExitFailure, RunFontWeight(context.Background(), []string{"-config", noConfig(t)}, s))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
