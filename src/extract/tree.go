package extract

import (
	"fmt"
	"path"
	"strings"
)

// ProjectTree is an ordered path-to-spec mapping. Insertion order is
// preserved so materialization and archiving walk files in the order they
// appeared in the response.
type ProjectTree struct {
	order []string
	files map[string]FileSpec
}

func NewProjectTree() *ProjectTree {
	return &ProjectTree{files: make(map[string]FileSpec)}
}

func (t *ProjectTree) Len() int { return len(t.order) }

// Paths returns the file paths in insertion order.
func (t *ProjectTree) Paths() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *ProjectTree) Get(p string) (FileSpec, bool) {
	fs, ok := t.files[p]
	return fs, ok
}

func (t *ProjectTree) put(fs FileSpec) {
	if _, ok := t.files[fs.Path]; !ok {
		t.order = append(t.order, fs.Path)
	}
	t.files[fs.Path] = fs
}

// Duplicate records a spec that was dropped because an earlier spec already
// claimed the same path with identical content.
type Duplicate struct {
	Path  string
	Index int
}

// BuildTree assembles specs into a collision-free tree. A repeated path with
// identical content is dropped as a duplicate; a repeated path with different
// content is kept under the first free numbered variant of the name
// (script.js, script_2.js, script_3.js, ...).
func BuildTree(specs []FileSpec) (*ProjectTree, []Duplicate) {
	t := NewProjectTree()
	var dups []Duplicate
	for i, fs := range specs {
		existing, taken := t.files[fs.Path]
		if !taken {
			t.put(fs)
			continue
		}
		if existing.Content == fs.Content {
			dups = append(dups, Duplicate{Path: fs.Path, Index: i})
			continue
		}
		fs.Path = t.nextFreePath(fs.Path)
		t.put(fs)
	}
	return t, dups
}

func (t *ProjectTree) nextFreePath(p string) string {
	for n := 2; ; n++ {
		alt := numberedPath(p, n)
		if _, taken := t.files[alt]; !taken {
			return alt
		}
	}
}

// numberedPath inserts _n before the extension: "a/b/script.js" becomes
// "a/b/script_2.js"; extensionless names get a plain suffix.
func numberedPath(p string, n int) string {
	ext := path.Ext(p)
	base := strings.TrimSuffix(p, ext)
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}
