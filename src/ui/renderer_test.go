package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

func chatState() State {
	vp := viewport.New(80, 20)
	ta := textarea.New()
	ta.SetWidth(80)

	return State{
		Mode:       ModeChat,
		WorkingDir: "/tmp/projects",
		Provider:   "OpenAI",
		Model:      "gpt-4o",
		Viewport:   vp,
		TextArea:   ta,
		Spinner:    spinner.New(),
	}
}

func TestRenderHeaderContainsName(t *testing.T) {
	styles := NewStyles()
	state := State{
		Mode:       ModeDir,
		WorkingDir: "/tmp",
		DirList:    list.New([]list.Item{}, list.NewDefaultDelegate(), 80, 20),
	}

	output := Render(state, styles)
	if !strings.Contains(output, "codeloom") {
		t.Errorf("expected header to contain the app name")
	}
}

func TestRenderChatShowsProviderAndModel(t *testing.T) {
	output := Render(chatState(), NewStyles())
	if !strings.Contains(output, "OpenAI") || !strings.Contains(output, "gpt-4o") {
		t.Errorf("expected chat status to show provider and model, got:\n%s", output)
	}
	if !strings.Contains(output, "/tmp/projects") {
		t.Errorf("expected chat view to show the output directory")
	}
}

func TestRenderFooterContainsQuit(t *testing.T) {
	output := Render(chatState(), NewStyles())
	if !strings.Contains(output, "ctrl+c") {
		t.Errorf("expected footer to mention ctrl+c")
	}
}

func TestRenderThinkingOnlyWhenThinking(t *testing.T) {
	s := chatState()
	output := Render(s, NewStyles())
	if strings.Contains(output, "generating") {
		t.Errorf("thinking line rendered while idle")
	}

	s.IsThinking = true
	s.ThinkingText = "generating"
	output = Render(s, NewStyles())
	if !strings.Contains(output, "generating") {
		t.Errorf("expected thinking line while generating")
	}
}

func TestRenderKeyPrompt(t *testing.T) {
	ta := textarea.New()
	ta.SetWidth(60)
	s := State{Mode: ModeKey, Provider: "Anthropic", TextArea: ta}

	output := Render(s, NewStyles())
	if !strings.Contains(output, "Anthropic") {
		t.Errorf("expected key prompt to name the provider")
	}
}
