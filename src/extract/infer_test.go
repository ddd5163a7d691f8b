package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func infer(t *testing.T, raw, preceding string) FileSpec {
	t.Helper()
	segs, _ := Scan(raw)
	require.Len(t, segs, 1)
	require.Equal(t, KindCode, segs[0].Kind)
	return NewInferencer().Infer(segs[0], preceding)
}

func TestInferPathComment(t *testing.T) {
	fs := infer(t, "```js\n// path: src/app.js\nconsole.log(1)\n```", "")
	assert.Equal(t, "src/app.js", fs.Path)
	assert.Equal(t, "console.log(1)\n", fs.Content)
	assert.Equal(t, "javascript", fs.Lang)
}

func TestInferHashFileComment(t *testing.T) {
	fs := infer(t, "```python\n# main.py\nprint(1)\n```", "")
	assert.Equal(t, "main.py", fs.Path)
	assert.Equal(t, "print(1)\n", fs.Content)
}

func TestInferHTMLComment(t *testing.T) {
	fs := infer(t, "```html\n<!-- index.html -->\n<h1>hi</h1>\n```", "")
	assert.Equal(t, "index.html", fs.Path)
	assert.Equal(t, "<h1>hi</h1>\n", fs.Content)
}

func TestInferFenceToken(t *testing.T) {
	fs := infer(t, "```js app.js\nconsole.log(1)\n```", "")
	assert.Equal(t, "app.js", fs.Path)
}

func TestInferProseMarkers(t *testing.T) {
	cases := []struct {
		prose, want string
	}{
		{"Save this as File: setup.py", "setup.py"},
		{"Save as: run.sh", "run.sh"},
		{"Create: src/util.js and paste:", "src/util.js"},
		{"server.js:", "server.js"},
		{"Here it is, `config.yml`:", "config.yml"},
	}
	for _, tc := range cases {
		fs := infer(t, "```\nsome content\n```", tc.prose)
		assert.Equal(t, tc.want, fs.Path, "prose %q", tc.prose)
	}
}

func TestInferProseClosestMatchWins(t *testing.T) {
	prose := "First File: old.py was wrong. Use File: new.py instead."
	fs := infer(t, "```python\nprint(1)\n```", prose)
	assert.Equal(t, "new.py", fs.Path)
}

func TestInferCanonicalDefaults(t *testing.T) {
	cases := []struct {
		lang, want string
	}{
		{"html", "index.html"},
		{"css", "style.css"},
		{"javascript", "script.js"},
		{"js", "script.js"},
		{"python", "main.py"},
		{"go", "main.go"},
		{"bash", "run.sh"},
	}
	for _, tc := range cases {
		fs := infer(t, "```"+tc.lang+"\nx\n```", "")
		assert.Equal(t, tc.want, fs.Path, "lang %q", tc.lang)
	}
}

func TestInferUnknownLangFallsBackToTxt(t *testing.T) {
	fs := infer(t, "```brainfuck\n+++\n```", "")
	assert.Equal(t, "file.txt", fs.Path)
	assert.Equal(t, "text", fs.Lang)
}

func TestInferSniffsUnannotatedBlocks(t *testing.T) {
	cases := []struct {
		body, want string
	}{
		{"<!DOCTYPE html>\n<html></html>", "index.html"},
		{"def greet():\n    pass", "main.py"},
		{"#!/bin/sh\nls", "run.sh"},
		{"const x = 1", "script.js"},
		{"{\"a\": 1}", "data.json"},
	}
	for _, tc := range cases {
		fs := infer(t, "```\n"+tc.body+"\n```", "")
		assert.Equal(t, tc.want, fs.Path, "body %q", tc.body)
	}
}

func TestInferDiscardsEscapingHint(t *testing.T) {
	fs := infer(t, "```python\n# path: ../../etc/passwd\nprint(1)\n```", "")
	assert.Equal(t, "main.py", fs.Path)
	assert.NotContains(t, fs.Path, "..")
}

func TestInferDiscardsAbsoluteHint(t *testing.T) {
	fs := infer(t, "```js /etc/cron.d/job\nconsole.log(1)\n```", "")
	assert.Equal(t, "script.js", fs.Path)
}

func TestInferCustomExtensionTable(t *testing.T) {
	inf := NewInferencer(WithExtensions(map[string]string{"kappa": ".kp"}), WithDefaultNames(map[string]string{}))
	segs, _ := Scan("```kappa\nx\n```")
	fs := inf.Infer(segs[0], "")
	assert.Equal(t, "file.kp", fs.Path)
}

func TestNewFileSpecRejectsTraversal(t *testing.T) {
	for _, p := range []string{"", ".", "..", "../../etc/passwd", "/etc/passwd", "a/../../b", "C:\\temp\\x"} {
		_, err := NewFileSpec(p, "x", "")
		assert.ErrorIs(t, err, ErrUnsafePath, "path %q", p)
	}
}

func TestNewFileSpecNormalizes(t *testing.T) {
	fs, err := NewFileSpec("./src\\deep/../app.js", "x", "")
	require.NoError(t, err)
	assert.Equal(t, "src/app.js", fs.Path)
}
