package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// Mode represents the current UI screen.
type Mode int

const (
	ModeDir Mode = iota
	ModeProvider
	ModeModel
	ModeKey
	ModeChat
)

// State carries everything the renderer needs for one frame, decoupling it
// from the application model.
type State struct {
	Mode         Mode
	WorkingDir   string
	Provider     string
	Model        string
	ProjectCount int
	IsThinking   bool
	ThinkingText string

	// Bubble Tea models
	DirList  list.Model
	List     list.Model
	TextArea textarea.Model
	Viewport viewport.Model
	Spinner  spinner.Model
}
