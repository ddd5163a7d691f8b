package src

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

// loadDirs lists the directory picker entries for path: a confirm row, a
// parent row, then visible subdirectories.
func loadDirs(path string) []list.Item {
	if path == "" {
		path, _ = os.Getwd()
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return []list.Item{dirItem{name: "(error reading dir)", path: path}}
	}

	items := []list.Item{
		dirItem{name: fmt.Sprintf("✅ Create projects here (%s)", filepath.Base(path)), path: path},
	}
	if path != "/" {
		items = append(items, dirItem{name: "⬆️ ../", path: filepath.Dir(path)})
	}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		items = append(items, dirItem{name: "📁 " + e.Name() + "/", path: filepath.Join(path, e.Name())})
	}
	return items
}
