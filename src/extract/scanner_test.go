package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanProseOnly(t *testing.T) {
	segs, warns := Scan("Just an explanation.\nNo code here.")
	require.Len(t, segs, 1)
	assert.Equal(t, KindProse, segs[0].Kind)
	assert.Empty(t, warns)
}

func TestScanSingleFence(t *testing.T) {
	raw := "Here is the file:\n```python\nprint('hi')\n```\nDone."
	segs, warns := Scan(raw)
	require.Len(t, segs, 3)
	assert.Empty(t, warns)

	assert.Equal(t, KindProse, segs[0].Kind)
	assert.Equal(t, KindCode, segs[1].Kind)
	assert.Equal(t, "python", segs[1].Lang)
	assert.Equal(t, "print('hi')", segs[1].Text)
	assert.Equal(t, KindProse, segs[2].Kind)

	for i, seg := range segs {
		assert.Equal(t, i, seg.Order)
	}
}

func TestScanFenceFilenameToken(t *testing.T) {
	segs, _ := Scan("```js app.js\nconsole.log(1)\n```")
	require.Len(t, segs, 1)
	assert.Equal(t, "js", segs[0].Lang)
	assert.Equal(t, "app.js", segs[0].PathHint)
}

func TestScanLoneFilenameInfoString(t *testing.T) {
	segs, _ := Scan("```main.py\nprint(1)\n```")
	require.Len(t, segs, 1)
	assert.Empty(t, segs[0].Lang)
	assert.Equal(t, "main.py", segs[0].PathHint)
}

func TestScanUnterminatedFence(t *testing.T) {
	raw := "intro\n```go\npackage main\n\nfunc main() {}"
	segs, warns := Scan(raw)
	require.Len(t, segs, 2)
	require.Len(t, warns, 1)

	code := segs[1]
	assert.True(t, code.Unterminated)
	assert.Equal(t, "go", code.Lang)
	assert.Equal(t, "package main\n\nfunc main() {}", code.Text)
	assert.Equal(t, WarnUnterminatedFence, warns[0].Code)
	assert.Equal(t, code.Order, warns[0].Order)
}

func TestScanUnterminatedFenceDropsFilenameToken(t *testing.T) {
	segs, warns := Scan("```python app.py\nprint(1)")
	require.Len(t, segs, 1)
	require.Len(t, warns, 1)
	assert.True(t, segs[0].Unterminated)
	assert.Equal(t, "python", segs[0].Lang)
	assert.Empty(t, segs[0].PathHint)
}

func TestScanAdjacentFences(t *testing.T) {
	raw := "```html\n<p>a</p>\n```\n```css\np {}\n```"
	segs, warns := Scan(raw)
	require.Len(t, segs, 2)
	assert.Empty(t, warns)
	assert.Equal(t, "html", segs[0].Lang)
	assert.Equal(t, "css", segs[1].Lang)
}

func TestScanIndentedCloseIsHonored(t *testing.T) {
	segs, warns := Scan("```\nbody\n   ```  \ntail prose")
	require.Len(t, segs, 2)
	assert.Empty(t, warns)
	assert.Equal(t, "body", segs[0].Text)
	assert.Equal(t, KindProse, segs[1].Kind)
}
