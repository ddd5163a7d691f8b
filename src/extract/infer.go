package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Inferencer resolves a code segment to a relative file path. Rules run in a
// fixed order and the first one that produces a safe path wins:
//
//  1. a path comment on the first line of the block ("// path: x", "# file.py",
//     "<!-- index.html -->")
//  2. a filename token on the fence line itself ("```js app.js")
//  3. an explicit marker in the prose immediately before the fence
//     ("File: setup.py", "Save as: run.sh", a bare "server.js:" line)
//  4. the canonical default name for the declared or sniffed language
//  5. file.txt
//
// Hints that fail path validation are discarded and resolution falls through
// to the next rule, so hostile hints degrade to a safe default instead of
// aborting the block.
type Inferencer struct {
	exts     map[string]string
	defaults map[string]string
}

// Option configures an Inferencer.
type Option func(*Inferencer)

// WithExtensions replaces the language-to-extension table.
func WithExtensions(table map[string]string) Option {
	return func(inf *Inferencer) { inf.exts = table }
}

// WithDefaultNames replaces the language-to-default-filename table.
func WithDefaultNames(table map[string]string) Option {
	return func(inf *Inferencer) { inf.defaults = table }
}

func NewInferencer(opts ...Option) *Inferencer {
	inf := &Inferencer{
		exts:     DefaultExtensions(),
		defaults: DefaultNames(),
	}
	for _, o := range opts {
		o(inf)
	}
	return inf
}

// DefaultExtensions maps canonical language names to file extensions.
func DefaultExtensions() map[string]string {
	return map[string]string{
		"python":     ".py",
		"javascript": ".js",
		"typescript": ".ts",
		"html":       ".html",
		"css":        ".css",
		"go":         ".go",
		"rust":       ".rs",
		"java":       ".java",
		"c":          ".c",
		"cpp":        ".cpp",
		"ruby":       ".rb",
		"php":        ".php",
		"shell":      ".sh",
		"sql":        ".sql",
		"json":       ".json",
		"yaml":       ".yml",
		"toml":       ".toml",
		"xml":        ".xml",
		"markdown":   ".md",
		"text":       ".txt",
	}
}

// DefaultNames maps canonical language names to the filename used when no
// hint is present anywhere around the fence.
func DefaultNames() map[string]string {
	return map[string]string{
		"html":       "index.html",
		"css":        "style.css",
		"javascript": "script.js",
		"typescript": "script.ts",
		"python":     "main.py",
		"go":         "main.go",
		"rust":       "main.rs",
		"java":       "Main.java",
		"c":          "main.c",
		"cpp":        "main.cpp",
		"ruby":       "main.rb",
		"php":        "index.php",
		"shell":      "run.sh",
		"sql":        "schema.sql",
		"json":       "data.json",
		"yaml":       "config.yml",
		"toml":       "config.toml",
		"xml":        "data.xml",
		"markdown":   "README.md",
		"dockerfile": "Dockerfile",
	}
}

var langAliases = map[string]string{
	"js":        "javascript",
	"jsx":       "javascript",
	"node":      "javascript",
	"ts":        "typescript",
	"tsx":       "typescript",
	"py":        "python",
	"python3":   "python",
	"golang":    "go",
	"rb":        "ruby",
	"c++":       "cpp",
	"cc":        "cpp",
	"htm":       "html",
	"sh":        "shell",
	"bash":      "shell",
	"zsh":       "shell",
	"yml":       "yaml",
	"md":        "markdown",
	"plaintext": "text",
	"plain":     "text",
	"txt":       "text",
}

// CanonicalLang folds fence-annotation aliases onto canonical language names.
func CanonicalLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if c, ok := langAliases[lang]; ok {
		return c
	}
	return lang
}

var (
	// "// path: src/app.js", "# file: run.sh", "<!-- path: index.html -->"
	pathCommentRe = regexp.MustCompile(`(?i)^\s*(?://|#|--|;|<!--)?\s*(?:@path|path:|file:|filename:)\s*([^\s>]+)`)
	// "// app.js", "# main.py", "<!-- index.html -->"
	nameCommentRe = regexp.MustCompile(`^\s*(?://|#|<!--)\s*([^\s>]+\.[A-Za-z0-9]{1,8})\s*(?:-->)?\s*$`)
	// "File: setup.py", "Save as: run.sh", "Create: src/app.js"
	proseMarkerRe = regexp.MustCompile(`(?i)\b(?:file|filename|path|save as|create)\s*:\s*` + "`?" + `([^\s` + "`" + `]+\.[A-Za-z0-9]{1,8})` + "`?")
	// a bare "server.js:" line introducing the next block
	proseNameRe = regexp.MustCompile(`(?m)^\s*` + "`?" + `([^\s:` + "`" + `]+\.[A-Za-z0-9]{1,8})` + "`?" + `\s*:?\s*$`)
	// a backticked filename anywhere in the prose, e.g. "put this in `config.yml`:"
	proseTickRe = regexp.MustCompile("`([^`\\s]+\\.[A-Za-z0-9]{1,8})`")
)

// proseLookback bounds how far back in the preceding prose hints are honored.
const proseLookback = 240

// Infer resolves one code segment to a FileSpec. preceding is the prose
// segment immediately before the fence, or "" when the fence follows another
// fence or starts the response.
func (inf *Inferencer) Infer(seg Segment, preceding string) FileSpec {
	content := strings.TrimSpace(seg.Text)
	lang := CanonicalLang(seg.Lang)

	if hint, rest, ok := commentHint(content); ok {
		if p, err := normalizeRelPath(hint); err == nil {
			return FileSpec{Path: p, Content: body(rest), Lang: langForPath(p, lang)}
		}
	}
	if seg.PathHint != "" {
		if p, err := normalizeRelPath(seg.PathHint); err == nil {
			return FileSpec{Path: p, Content: body(content), Lang: langForPath(p, lang)}
		}
	}
	if hint := proseHint(preceding); hint != "" {
		if p, err := normalizeRelPath(hint); err == nil {
			return FileSpec{Path: p, Content: body(content), Lang: langForPath(p, lang)}
		}
	}

	if lang == "" {
		lang = SniffLang(content)
	}
	name := inf.defaults[lang]
	if name == "" {
		if ext := inf.exts[lang]; ext != "" {
			name = "file" + ext
		} else {
			name = "file.txt"
			lang = "text"
		}
	}
	return FileSpec{Path: name, Content: body(content), Lang: lang}
}

// commentHint checks the first line of the block for a path comment and, when
// found, returns the hint plus the block with that line stripped.
func commentHint(content string) (hint, rest string, ok bool) {
	first, tail, found := strings.Cut(content, "\n")
	if !found {
		tail = ""
	}
	if m := pathCommentRe.FindStringSubmatch(first); m != nil {
		return m[1], tail, true
	}
	if m := nameCommentRe.FindStringSubmatch(first); m != nil {
		return m[1], tail, true
	}
	return "", "", false
}

// proseHint scans the tail of the preceding prose for an explicit filename.
// The match closest to the fence wins.
func proseHint(preceding string) string {
	if preceding == "" {
		return ""
	}
	if len(preceding) > proseLookback {
		preceding = preceding[len(preceding)-proseLookback:]
	}
	best, bestAt := "", -1
	for _, re := range []*regexp.Regexp{proseMarkerRe, proseNameRe, proseTickRe} {
		for _, idx := range re.FindAllStringSubmatchIndex(preceding, -1) {
			if idx[0] > bestAt {
				bestAt = idx[0]
				best = preceding[idx[2]:idx[3]]
			}
		}
	}
	return best
}

func body(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	return content + "\n"
}

var extLangs = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".html": "html",
	".htm":  "html",
	".css":  "css",
	".go":   "go",
	".rs":   "rust",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".rb":   "ruby",
	".php":  "php",
	".sh":   "shell",
	".sql":  "sql",
	".json": "json",
	".yml":  "yaml",
	".yaml": "yaml",
	".toml": "toml",
	".xml":  "xml",
	".md":   "markdown",
	".txt":  "text",
}

// langForPath prefers the declared fence language and otherwise derives one
// from the resolved extension.
func langForPath(p, declared string) string {
	if declared != "" {
		return declared
	}
	if dot := strings.LastIndex(p, "."); dot >= 0 {
		if l, ok := extLangs[strings.ToLower(p[dot:])]; ok {
			return l
		}
	}
	return ""
}

// SniffLang guesses the language of an unannotated block from its content.
// Checks run in order of decreasing distinctiveness.
func SniffLang(content string) string {
	trimmed := strings.TrimSpace(content)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html"):
		return "html"
	case strings.HasPrefix(trimmed, "#!"):
		first, _, _ := strings.Cut(trimmed, "\n")
		if strings.Contains(first, "python") {
			return "python"
		}
		return "shell"
	case strings.HasPrefix(trimmed, "package ") && strings.Contains(trimmed, "func "):
		return "go"
	case pythonSniffRe.MatchString(trimmed):
		return "python"
	case jsSniffRe.MatchString(trimmed):
		return "javascript"
	case (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) && json.Valid([]byte(trimmed)):
		return "json"
	case cssSniffRe.MatchString(trimmed):
		return "css"
	case strings.HasPrefix(trimmed, "# "):
		return "markdown"
	}
	return ""
}

var (
	pythonSniffRe = regexp.MustCompile(`(?m)^(?:import\s+\w|from\s+\S+\s+import\s|def\s+\w+\s*\(|class\s+\w+[:(])`)
	jsSniffRe     = regexp.MustCompile(`(?m)^(?:const|let|var|function)\s+\w|=>\s*{|console\.log\(`)
	cssSniffRe    = regexp.MustCompile(`(?m)^\s*[.#]?[\w-]+(?:\s*[,>]\s*[.#]?[\w-]+)*\s*{\s*$`)
)
