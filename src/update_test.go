package src

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/codeloom-ai/codeloom/src/config"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	return NewModel(context.Background(), config.NewStore(t.TempDir()), t.TempDir(), nil)
}

func TestGenerateMsgCountsProjects(t *testing.T) {
	m := newTestModel(t)

	m.Update(generateMsg{text: "plain answer\n"})
	if got := m.uiState().ProjectCount; got != 0 {
		t.Errorf("ProjectCount after plain answer = %d, want 0", got)
	}

	m.Update(generateMsg{text: "wove a project\n", projectMade: true})
	m.Update(generateMsg{text: "and another\n", projectMade: true})
	if got := m.uiState().ProjectCount; got != 2 {
		t.Errorf("ProjectCount = %d, want 2", got)
	}
	if !strings.Contains(m.output, "wove a project") {
		t.Errorf("transcript missing generated text: %q", m.output)
	}
}

func TestGenerateMsgErrorDoesNotCount(t *testing.T) {
	m := newTestModel(t)
	m.isThinking = true

	m.Update(generateMsg{err: errors.New("boom")})
	if m.isThinking {
		t.Error("still thinking after an error result")
	}
	if got := m.uiState().ProjectCount; got != 0 {
		t.Errorf("ProjectCount = %d, want 0", got)
	}
	if !strings.Contains(m.output, "boom") {
		t.Errorf("transcript missing the error: %q", m.output)
	}
}
