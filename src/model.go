package src

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/codeloom-ai/codeloom/src/config"
	"github.com/codeloom-ai/codeloom/src/extract"
	"github.com/codeloom-ai/codeloom/src/provider"
	"github.com/codeloom-ai/codeloom/src/ui"
)

type providerItem struct {
	p          provider.Provider
	configured bool
}

func (i providerItem) Title() string { return i.p.Title() }
func (i providerItem) Description() string {
	if i.configured {
		return "key configured"
	}
	return "needs an API key"
}
func (i providerItem) FilterValue() string { return i.p.Title() }

type modelItem string

func (i modelItem) Title() string       { return string(i) }
func (i modelItem) Description() string { return "" }
func (i modelItem) FilterValue() string { return string(i) }

type dirItem struct {
	name string
	path string
}

func (d dirItem) Title() string       { return d.name }
func (d dirItem) Description() string { return d.path }
func (d dirItem) FilterValue() string { return d.name }

type generateMsg struct {
	text        string
	err         error
	projectMade bool
}

type model struct {
	ctx     context.Context
	store   *config.Store
	engine  *extract.Engine
	tracker *ChangeTracker
	log     *zap.Logger

	working  string
	mode     ui.Mode
	prevMode ui.Mode

	providerSel provider.Provider
	modelName   string
	client      provider.Client

	projectCount int
	isThinking   bool
	thinking     string
	output       string
	width        int
	height       int

	list     list.Model
	dirlist  list.Model
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	style    ui.Styles

	Program *tea.Program
}

// NewModel assembles the TUI. startDir is where project directories get
// created; the session opens on the provider picker.
func NewModel(ctx context.Context, store *config.Store, startDir string, log *zap.Logger) *model {
	if log == nil {
		log = zap.NewNop()
	}
	st := ui.NewStyles()

	dirList := list.New(loadDirs(startDir), list.NewDefaultDelegate(), 0, 0)
	dirList.Title = "Choose Output Directory"
	dirList.SetShowHelp(false)
	dirList.SetShowStatusBar(false)
	dirList.SetFilteringEnabled(false)

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Providers"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ta := textarea.New()
	ta.Placeholder = "Describe the project you want built..."
	ta.Focus()
	ta.SetHeight(3)

	vp := viewport.New(0, 0)
	vp.SetContent("Welcome to codeloom! Pick a provider, then describe a project to weave it onto disk.")

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = st.Thinking

	m := &model{
		ctx:      ctx,
		store:    store,
		engine:   extract.NewEngine(extract.WithLogger(log)),
		tracker:  NewChangeTracker(),
		log:      log,
		working:  startDir,
		mode:     ui.ModeProvider,
		list:     l,
		dirlist:  dirList,
		textarea: ta,
		viewport: vp,
		spinner:  s,
		style:    st,
	}
	m.list.SetItems(m.providerItems())
	return m
}

func (m *model) providerItems() []list.Item {
	var items []list.Item
	for _, p := range provider.All() {
		_, ok := m.store.Key(p)
		items = append(items, providerItem{p: p, configured: ok})
	}
	return items
}

func modelItems(p provider.Provider) []list.Item {
	var items []list.Item
	for _, id := range provider.Models(p) {
		items = append(items, modelItem(id))
	}
	return items
}

// renderOutput pushes the accumulated transcript into the viewport.
func (m *model) renderOutput(gotoBottom bool) {
	m.viewport.SetContent(m.output)
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

func (m *model) Init() tea.Cmd { return nil }
