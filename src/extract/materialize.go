package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EntryStatus is the per-file outcome of a materialization pass.
type EntryStatus int

const (
	StatusWritten EntryStatus = iota
	StatusSkipped
	StatusFailed
)

func (s EntryStatus) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Reasons attached to skipped and failed entries.
const (
	ReasonAlreadyExists = "already-exists"
	ReasonPathEscape    = "path-escape"
	ReasonWriteFailure  = "write-failure"
)

// EntryResult is the outcome for a single tree entry.
type EntryResult struct {
	Path   string
	Status EntryStatus
	Reason string
	Err    error
}

// MaterializationResult reports every entry of the tree, in tree order.
type MaterializationResult struct {
	Root    string
	Entries []EntryResult
}

func (r *MaterializationResult) count(s EntryStatus) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == s {
			n++
		}
	}
	return n
}

func (r *MaterializationResult) Written() int { return r.count(StatusWritten) }
func (r *MaterializationResult) Skipped() int { return r.count(StatusSkipped) }
func (r *MaterializationResult) Failed() int  { return r.count(StatusFailed) }

// ErrBadRoot is returned when the project root cannot be created or is not a
// directory. It is the only fatal condition: per-entry failures are recorded
// in the result and never abort the pass.
var ErrBadRoot = errors.New("unusable project root")

// Materialize writes every tree entry under root, creating root and any
// intermediate directories as needed. Existing files are skipped unless
// overwrite is set. Each destination is re-resolved against the root before
// writing; an entry that would land outside is failed with a path-escape
// reason regardless of what upstream validation allowed through.
func Materialize(tree *ProjectTree, root string, overwrite bool) (*MaterializationResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRoot, err)
	}
	if st, err := os.Stat(absRoot); err == nil && !st.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBadRoot, absRoot)
	}
	if err := os.MkdirAll(absRoot, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRoot, err)
	}

	res := &MaterializationResult{Root: absRoot}
	for _, p := range tree.order {
		fs := tree.files[p]
		dest := filepath.Join(absRoot, filepath.FromSlash(p))
		if !within(absRoot, dest) {
			res.Entries = append(res.Entries, EntryResult{
				Path: p, Status: StatusFailed, Reason: ReasonPathEscape,
				Err: fmt.Errorf("%w: %s", ErrUnsafePath, p),
			})
			continue
		}
		if _, err := os.Stat(dest); err == nil && !overwrite {
			res.Entries = append(res.Entries, EntryResult{Path: p, Status: StatusSkipped, Reason: ReasonAlreadyExists})
			continue
		}
		if err := writeEntry(dest, []byte(fs.Content)); err != nil {
			res.Entries = append(res.Entries, EntryResult{
				Path: p, Status: StatusFailed, Reason: ReasonWriteFailure, Err: err,
			})
			continue
		}
		res.Entries = append(res.Entries, EntryResult{Path: p, Status: StatusWritten})
	}
	return res, nil
}

// within reports whether dest resolves to root or a descendant of it.
func within(root, dest string) bool {
	rel, err := filepath.Rel(root, dest)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// writeEntry writes the full content through an explicitly closed handle so a
// close error on a full disk surfaces instead of vanishing.
func writeEntry(dest string, data []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
