package src

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ChangeTracker remembers project file contents between prompts so overwrites
// can be reported as unified diffs instead of opaque "saved" lines.
type ChangeTracker struct {
	mu   sync.Mutex
	prev map[string][]byte
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{prev: make(map[string][]byte)}
}

// Snapshot returns the last recorded content of root/rel, reading it from
// disk on first sight.
func (t *ChangeTracker) Snapshot(root, rel string) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	rel = filepath.ToSlash(rel)
	if b, ok := t.prev[rel]; ok {
		return append([]byte(nil), b...)
	}
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if data, err := os.ReadFile(abs); err == nil {
		t.prev[rel] = append([]byte(nil), data...)
		return data
	}
	t.prev[rel] = nil
	return nil
}

// Record saves the content just written so the next prompt diffs against it.
func (t *ChangeTracker) Record(rel string, data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rel = filepath.ToSlash(rel)
	if data == nil {
		delete(t.prev, rel)
		return
	}
	t.prev[rel] = append([]byte(nil), data...)
}

// diffLine is a single line of a unified diff.
type diffLine struct {
	tag byte // ' ' same, '+' add, '-' del
	txt string
}

// Diff renders a git-style unified diff between two file versions, with
// 3-line context hunks. Identical content yields "".
func (t *ChangeTracker) Diff(rel string, oldB, newB []byte) string {
	if bytes.Equal(oldB, newB) {
		return ""
	}
	seq := diffLines(splitDiffInput(oldB), splitDiffInput(newB))

	var out strings.Builder
	fmt.Fprintf(&out, "diff --git a/%s b/%s\n", rel, rel)
	fmt.Fprintf(&out, "index %s..%s 100644\n", shortSHA(oldB), shortSHA(newB))
	fmt.Fprintf(&out, "--- a/%s\n", rel)
	fmt.Fprintf(&out, "+++ b/%s\n", rel)
	writeHunks(&out, seq)
	return out.String()
}

func splitDiffInput(b []byte) []string {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return lines
}

// diffLines computes an LCS-based edit script between two line slices.
func diffLines(oldLines, newLines []string) []diffLine {
	n, m := len(oldLines), len(newLines)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case oldLines[i] == newLines[j]:
				lcs[i][j] = lcs[i+1][j+1] + 1
			case lcs[i+1][j] >= lcs[i][j+1]:
				lcs[i][j] = lcs[i+1][j]
			default:
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var seq []diffLine
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			seq = append(seq, diffLine{' ', oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			seq = append(seq, diffLine{'-', oldLines[i]})
			i++
		default:
			seq = append(seq, diffLine{'+', newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		seq = append(seq, diffLine{'-', oldLines[i]})
	}
	for ; j < m; j++ {
		seq = append(seq, diffLine{'+', newLines[j]})
	}
	return seq
}

const diffContext = 3

func writeHunks(out *strings.Builder, seq []diffLine) {
	var hunk []diffLine
	var startOld int
	countOld, countNew := 0, 0

	flush := func() {
		if len(hunk) == 0 {
			return
		}
		fmt.Fprintf(out, "@@ -%d,%d +%d,%d @@\n", startOld+1, countOld, startOld+1, countNew)
		for _, e := range hunk {
			out.WriteByte(e.tag)
			out.WriteString(e.txt)
			out.WriteByte('\n')
		}
		hunk = hunk[:0]
	}

	inHunk := false
	for idx, e := range seq {
		if e.tag != ' ' {
			if !inHunk {
				inHunk = true
				startOld = maxInt(0, idx-diffContext)
				hunk = append(hunk, seq[startOld:idx]...)
				countOld, countNew = 0, 0
			}
			hunk = append(hunk, e)
			if e.tag != '+' {
				countOld++
			}
			if e.tag != '-' {
				countNew++
			}
			continue
		}
		if inHunk {
			hunk = append(hunk, e)
			countOld++
			countNew++

			end := minInt(len(seq), idx+diffContext+1)
			if !hasChangeAhead(seq[idx+1 : end]) {
				flush()
				inHunk = false
			}
		}
	}
	if inHunk {
		flush()
	}
}

func hasChangeAhead(next []diffLine) bool {
	for _, e := range next {
		if e.tag != ' ' {
			return true
		}
	}
	return false
}

// shortSHA gives a git-like short index label for diff headers.
func shortSHA(b []byte) string {
	h := sha1.Sum(b)
	return fmt.Sprintf("%x", h[:3])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
