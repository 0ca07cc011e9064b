package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	e := New()
	if _, err := e.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := e.Execute(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecute_StderrInError(t *testing.T) {
	e := New()
	if _, err := e.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	_, err := e.Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLookPath_Missing(t *testing.T) {
	_, err := New().LookPath("definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}
