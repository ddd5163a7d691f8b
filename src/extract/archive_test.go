package extract

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveMirrorsTree(t *testing.T) {
	root := t.TempDir()
	tree, _ := BuildTree([]FileSpec{
		mustSpec(t, "index.html", "<h1>hi</h1>\n"),
		mustSpec(t, "css/style.css", "body {}\n"),
		mustSpec(t, "js/app.js", "console.log(1)\n"),
	})
	_, err := Materialize(tree, root, false)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "proj.zip")
	res, err := Archive(tree, root, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, res.Path)
	assert.Equal(t, tree.Paths(), res.Entries)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 3)

	byName := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		byName[f.Name] = string(data)
	}
	assert.Equal(t, "body {}\n", byName["css/style.css"])
	assert.Equal(t, "console.log(1)\n", byName["js/app.js"])
}

func TestArchiveEmptyTreeFails(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "empty.zip")
	_, err := Archive(NewProjectTree(), t.TempDir(), dest)
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestArchiveFallsBackToSpecContent(t *testing.T) {
	// Entry never materialized; the archive still carries it.
	tree, _ := BuildTree([]FileSpec{mustSpec(t, "ghost.txt", "from memory\n")})
	dest := filepath.Join(t.TempDir(), "ghost.zip")

	res, err := Archive(tree, t.TempDir(), dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost.txt"}, res.Entries)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "from memory\n", string(data))
}
