package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/fastapi-gen/internal/templates"
)

func TestWriterCreatesDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "backend")

	path, err := w.Write(&GeneratedDocument{Kind: templates.KindModel, Path: "models/post.py", Content: "class Post: ...\n"})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("backend", "models", "post.py"), path)

	isDir, err := afero.IsDir(fs, filepath.Join("backend", "models"))
	require.NoError(t, err)
	assert.True(t, isDir)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "class Post: ...\n", string(content))
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("api", "post.py"), []byte("old contents that are longer"), 0644))
	w := NewWriter(fs, "")

	path, err := w.Write(&GeneratedDocument{Path: "api/post.py", Content: "new"})

	require.NoError(t, err)
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestWriterPropagatesFilesystemErrors(t *testing.T) {
	w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), ".")

	_, err := w.Write(&GeneratedDocument{Path: "crud/post.py", Content: "x"})

	assert.Error(t, err)
}
