package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInput_LocalPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte("create istack1 stack\n"), 0o644))

	r, err := NewOpener().OpenInput(context.Background(), path)
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "create istack1 stack\n", string(data))
}

func TestOpenInput_FileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte("pop snoname"), 0o644))

	r, err := NewOpener().OpenInput(context.Background(), "file://"+path)
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "pop snoname", string(data))
}

func TestOpenInput_Missing(t *testing.T) {
	_, err := NewOpener().OpenInput(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewOpener().OpenInput(context.Background(), "")
	assert.Error(t, err)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("mem://localhost/in.txt"))
	assert.True(t, IsURL("file:///tmp/in.txt"))
	assert.False(t, IsURL("/tmp/in.txt"))
	assert.False(t, IsURL("in.txt"))
}

func TestCreateOutput(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		w, err := CreateOutput(path, nil)
		require.NoError(t, err)
		_, err = io.WriteString(w, "Value popped: 7\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Value popped: 7\n", string(data))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := CreateOutput(filepath.Join(t.TempDir(), "no", "such", "out.txt"), nil)
		assert.Error(t, err)
	})

	t.Run("dash writes to stdout", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := CreateOutput(Stdout, &buf)
		require.NoError(t, err)
		_, err = io.WriteString(w, "hello")
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.Equal(t, "hello", buf.String())
	})
}
