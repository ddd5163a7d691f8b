package provider

import "strings"

// fileContract is appended to prompts that should come back as extractable
// code fences. It pins the output shape the extraction pipeline understands:
// one fence per file, language annotated, filename declared next to the
// fence.
const fileContract = `

When you provide code, follow these rules:
1. Put each file in its own fenced code block with a language annotation.
2. State the filename right before each block, e.g. "File: src/app.js".
3. Provide complete, runnable files rather than fragments.
4. Use relative paths only.`

// EnrichForFiles appends the file-output contract to a prompt.
func EnrichForFiles(prompt string) string {
	return strings.TrimRight(prompt, "\n") + fileContract
}

var fileKeywords = []string{
	"create file", "create files", "create a file", "create the file",
	"make file", "make files", "make a file",
	"write file", "write files", "write a file", "write the file",
	"generate file", "generate files", "generate a file",
	"save file", "save files", "save to file",
	"build a project", "create a project", "create project",
	"scaffold",
}

// WantsFiles reports whether a chat prompt is asking for files on disk, which
// switches the chat loop into extract-and-materialize mode.
func WantsFiles(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, kw := range fileKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
