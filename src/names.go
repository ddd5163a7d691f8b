package src

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

var unsafeNameRe = regexp.MustCompile(`[^\w\-]`)

// SanitizeProjectName folds a requested name onto filesystem-safe characters.
// An empty or fully-unsafe name falls back to a timestamped default.
func SanitizeProjectName(name string) string {
	name = strings.TrimSpace(name)
	name = unsafeNameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return defaultProjectName()
	}
	return name
}

func defaultProjectName() string {
	return "ai_project_" + time.Now().Format("20060102_150405")
}

// ProjectDir picks a directory for a new project under base. When the
// preferred name is taken, a timestamp suffix keeps earlier projects intact.
func ProjectDir(base, name string) string {
	name = SanitizeProjectName(name)
	dir := filepath.Join(base, name)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return dir
	}
	return filepath.Join(base, fmt.Sprintf("%s_%s", name, time.Now().Format("150405")))
}

// RenderFileTree draws the created files as an ASCII tree, directories first.
func RenderFileTree(paths []string) string {
	type node struct {
		name     string
		children map[string]*node
		file     bool
	}
	root := &node{children: map[string]*node{}}

	for _, p := range paths {
		parts := strings.Split(filepath.ToSlash(p), "/")
		cur := root
		for i, part := range parts {
			if _, ok := cur.children[part]; !ok {
				cur.children[part] = &node{name: part, children: map[string]*node{}}
			}
			cur = cur.children[part]
			if i == len(parts)-1 {
				cur.file = true
			}
		}
	}

	var lines []string
	var walk func(prefix string, n *node)
	walk = func(prefix string, n *node) {
		keys := make([]string, 0, len(n.children))
		for k := range n.children {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, b := n.children[keys[i]], n.children[keys[j]]
			if a.file != b.file {
				return !a.file
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			child := n.children[k]
			line := prefix + "└─ " + child.name
			if !child.file {
				line += "/"
			}
			lines = append(lines, line)
			if len(child.children) > 0 {
				walk(prefix+"  ", child)
			}
		}
	}
	walk("", root)
	return strings.Join(lines, "\n")
}
