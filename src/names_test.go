package src

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeProjectName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"my project!", "my_project"},
		{"todo-app", "todo-app"},
		{"  spaced  ", "spaced"},
		{"a/b\\c", "a_b_c"},
	}
	for _, tc := range cases {
		if got := SanitizeProjectName(tc.in); got != tc.want {
			t.Errorf("SanitizeProjectName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeEmptyNameUsesTimestamp(t *testing.T) {
	got := SanitizeProjectName("!!!")
	if !strings.HasPrefix(got, "ai_project_") {
		t.Errorf("expected timestamped fallback, got %q", got)
	}
}

func TestProjectDirAvoidsExisting(t *testing.T) {
	base := t.TempDir()
	taken := filepath.Join(base, "todo-app")
	if err := os.MkdirAll(taken, 0o755); err != nil {
		t.Fatal(err)
	}

	dir := ProjectDir(base, "todo-app")
	if dir == taken {
		t.Errorf("expected a fresh directory, got the existing one")
	}
	if !strings.HasPrefix(filepath.Base(dir), "todo-app_") {
		t.Errorf("expected suffixed name, got %q", dir)
	}
}

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree([]string{"index.html", "css/style.css", "js/app.js"})

	for _, want := range []string{"css/", "js/", "index.html", "style.css", "app.js"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
	// Directories sort before loose files.
	if strings.Index(out, "css/") > strings.Index(out, "index.html") {
		t.Errorf("expected directories first:\n%s", out)
	}
}
