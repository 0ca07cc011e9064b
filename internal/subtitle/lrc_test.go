package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLRC(t *testing.T) {
	input := "[ti:Song]\n[ar:Someone]\n\n[00:01.00] first line \n[00:05.50]second\nnot a timestamp\n[00:07.00]   \n[00:61.00]bad seconds\n"

	res := ParseLRC(input)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "first line", res.Entries[0].Text)
	assert.Equal(t, int64(1000), res.Entries[0].Start.Millis())
	assert.Equal(t, 4, res.Entries[0].Line)
	assert.Nil(t, res.Entries[0].End)
	assert.Equal(t, "second", res.Entries[1].Text)

	assert.Equal(t, []string{"[ti:Song]", "[ar:Someone]"}, res.Headers)

	require.Len(t, res.Warnings, 2)
	assert.Equal(t, 6, res.Warnings[0].Line)
	assert.ErrorIs(t, res.Warnings[0].Err, ErrUnrecognizedLine)
	assert.Equal(t, 8, res.Warnings[1].Line)
}

func TestParseLRC_CRLF(t *testing.T) {
	res := ParseLRC("[00:01.00]a\r\n[00:02.00]b\r\n")
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "a", res.Entries[0].Text)
	assert.Equal(t, "b", res.Entries[1].Text)
}

func TestParseLRC_KeepsFileOrder(t *testing.T) {
	res := ParseLRC("[00:09.00]late\n[00:01.00]early\n")
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "late", res.Entries[0].Text)
	assert.Equal(t, "early", res.Entries[1].Text)
}

func TestRenderLRC(t *testing.T) {
	res := ParseSRT("1\n00:03:45,670 --> 00:03:47,000\nhello\n\n2\n01:00:00,019 --> 01:00:01,000\nworld\n")
	require.Len(t, res.Entries, 2)

	got := RenderLRC(res.Entries)
	assert.Equal(t, "[03:45.67]hello\n[60:00.01]world", got)

	withHeader := RenderLRC(res.Entries, "[la:en]")
	assert.Equal(t, "[la:en]\n[03:45.67]hello\n[60:00.01]world", withHeader)
}
