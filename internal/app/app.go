// Package app is the inkwell terminal program: a session controller, the
// editor surface it drives and a status line.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/inkwell/clipboard"
	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/internal/config"
	"github.com/iw2rmb/inkwell/session"
)

const statusHeight = 1

var quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Options struct {
	Config *config.Config
	Logger *zap.Logger

	// Nil selects ConfigLoader(Config).
	Loader session.Loader

	// Nil selects an in-process clipboard.
	Clipboard editor.Clipboard
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg  *config.Config
	log  *zap.Logger
	clip editor.Clipboard

	session *session.Controller
	loader  session.Loader
	spinner spinner.Model

	editor  editor.Model
	mounted bool

	width, height int
}

func New(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Loader == nil {
		opts.Loader = ConfigLoader(opts.Config)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clipboard.Memory{}
	}

	return Model{
		cfg:  opts.Config,
		log:  opts.Logger.Named("app"),
		clip: opts.Clipboard,
		session: session.New(session.Config{
			Interval:      opts.Config.Session.Debounce,
			MaxImageBytes: opts.Config.Session.MaxImageBytes,
			Logger:        opts.Logger,
		}),
		loader:  opts.Loader,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Session exposes the controller, mainly for tests and shutdown.
func (m Model) Session() *session.Controller { return m.session }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.session.Load(m.loader))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			m.session.Close()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.mounted {
			m.editor = m.editor.SetSize(m.width, m.editorHeight())
		}
		return m, nil
	case spinner.TickMsg:
		if m.mounted {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	cmds := []tea.Cmd{m.session.Update(msg)}
	if !m.mounted && m.session.Status() == session.StatusReady {
		m.mount()
	}
	if m.mounted {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// mount creates the editor from the loaded document and hands its Ref to
// the session.
func (m *Model) mount() {
	doc, _ := m.session.Document()
	sess := m.session

	m.editor = editor.New(editor.Config{
		Text:         doc,
		ShowLineNums: m.cfg.Editor.LineNumbers,
		TabWidth:     m.cfg.Editor.TabWidth,
		Style:        editor.DefaultStyle(),
		Clipboard:    m.clip,
		OnChange: func(ev editor.ChangeEvent) tea.Cmd {
			return sess.OnDocumentChanged(ev.Text)
		},
		OnPaste: sess.OnImagePasted,
	}).SetSize(m.width, m.editorHeight())

	sess.Attach(m.editor.Ref())
	m.mounted = true
	m.log.Debug("editor mounted", zap.Int("lines", m.editor.Buffer().LineCount()))
}

func (m Model) editorHeight() int {
	return max(m.height-statusHeight, 0)
}

func (m Model) View() string {
	if err := m.session.Err(); err != nil && !m.mounted {
		return errorStyle.Render(fmt.Sprintf("failed to load document: %v", err)) + "\n"
	}
	if !m.mounted {
		return m.spinner.View() + " Loading document..."
	}
	return m.editor.View() + "\n" + statusStyle.Render(m.statusLine())
}

func (m Model) statusLine() string {
	return fmt.Sprintf("Content Size: %s MB (%s)", m.session.SizeInMB(), m.session.SizeHuman())
}
