// Package extract turns free-form AI responses into project trees on disk.
//
// The pipeline is strictly linear: raw text is scanned into ordered prose and
// code segments, each code segment is resolved to a relative file path, the
// resolved files are assembled into a collision-free tree, the tree is written
// under a root directory, and the result can optionally be zipped. Every stage
// reports its outcome as a value; nothing in this package prints.
package extract

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Kind classifies a scanned segment.
type Kind int

const (
	KindProse Kind = iota
	KindCode
)

func (k Kind) String() string {
	if k == KindCode {
		return "code"
	}
	return "prose"
}

// Segment is one contiguous prose or code region of the scanned response.
// Order is the position in the original text and the only ordering the
// pipeline ever respects.
type Segment struct {
	Kind  Kind
	Text  string
	Order int

	// Lang is the fence's language annotation, lowercased, if any.
	Lang string
	// PathHint is a filename token carried on the fence line itself,
	// e.g. the "app.js" in "```js app.js".
	PathHint string
	// Unterminated marks a code fence that was never closed.
	Unterminated bool
}

// WarningCode identifies a recoverable scan condition.
type WarningCode string

const (
	WarnUnterminatedFence WarningCode = "unterminated-fence"
)

// Warning is a non-fatal condition surfaced alongside the scan output.
type Warning struct {
	Code    WarningCode
	Order   int
	Message string
}

// ErrUnsafePath is returned when a candidate path would resolve outside the
// project root.
var ErrUnsafePath = errors.New("unsafe relative path")

// FileSpec is a resolved (path, content, language) triple ready for placement
// in a tree. Path is always normalized: forward slashes, relative, and free of
// "." and ".." components.
type FileSpec struct {
	Path    string
	Content string
	Lang    string
}

// NewFileSpec validates and normalizes the relative path before constructing
// the spec. Unsafe paths are rejected here so nothing downstream has to trust
// its input, though the materializer re-checks against the resolved root.
func NewFileSpec(relPath, content, lang string) (FileSpec, error) {
	p, err := normalizeRelPath(relPath)
	if err != nil {
		return FileSpec{}, err
	}
	return FileSpec{Path: p, Content: content, Lang: lang}, nil
}

func normalizeRelPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, "`\"'")
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, ":") {
		return "", fmt.Errorf("%w: %q is not relative", ErrUnsafePath, p)
	}
	clean := path.Clean(p)
	if clean == "" || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q escapes the project root", ErrUnsafePath, p)
	}
	return clean, nil
}
