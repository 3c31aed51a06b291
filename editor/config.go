package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/clipboard"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	Style        Style

	// Zero value selects DefaultKeyMap.
	KeyMap KeyMap

	// Zero selects 4.
	TabWidth int

	ReadOnly bool

	// Backs the copy, cut and paste keys. Nil disables them.
	Clipboard Clipboard

	// Called after every effective text mutation, including inserts made
	// through the Ref.
	OnChange func(ChangeEvent) tea.Cmd

	// Called for every paste, whether it arrived as a bracketed terminal
	// paste or through the paste key.
	OnPaste func(clipboard.Event) tea.Cmd
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	return c
}
