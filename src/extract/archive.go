package extract

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ArchiveResult reports the created zip and its entry names, which mirror the
// tree's relative paths.
type ArchiveResult struct {
	Path    string
	Entries []string
}

// ErrEmptyTree is returned when archiving is requested for a tree with no
// files.
var ErrEmptyTree = errors.New("no files to archive")

// Archive zips the tree's files into archivePath. Content is read back from
// the materialized root so the archive reflects what is actually on disk;
// entries that never made it to disk fall back to the in-memory spec so the
// entry list always matches the tree. Archive names use forward slashes
// regardless of platform.
func Archive(tree *ProjectTree, root, archivePath string) (res *ArchiveResult, err error) {
	if tree.Len() == 0 {
		return nil, ErrEmptyTree
	}
	f, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close archive: %w", cerr)
		}
	}()

	zw := zip.NewWriter(f)
	res = &ArchiveResult{Path: archivePath}
	for _, p := range tree.order {
		data, rerr := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if rerr != nil {
			data = []byte(tree.files[p].Content)
		}
		w, werr := zw.Create(p)
		if werr != nil {
			zw.Close()
			return nil, fmt.Errorf("archive entry %s: %w", p, werr)
		}
		if _, werr := w.Write(data); werr != nil {
			zw.Close()
			return nil, fmt.Errorf("archive entry %s: %w", p, werr)
		}
		res.Entries = append(res.Entries, p)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return res, nil
}
