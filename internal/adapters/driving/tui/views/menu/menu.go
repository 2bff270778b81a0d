// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Item is one menu entry. Selecting it switches to View, or quits when
// Quit is set.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// View is the start screen: a short status line and the menu entries.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool

	mode         domain.GenerationMode
	collaborator bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Generate Mind Map", Description: "Type a prompt and browse the map", View: messages.ViewMindMap},
			{Label: "Settings", Description: "Generation mode and LLM provider", View: messages.ViewSettings},
			{Label: "Help", Description: "Key bindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case keymap.Matches(k, v.keymap.Select):
			return v, v.choose(v.items[v.selected])
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) choose(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Promptmap"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Prompt to Mind Map"))
	b.WriteString("\n\n")

	if status := v.statusLine(); status != "" {
		b.WriteString(status)
		b.WriteString("\n\n")
	}

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(item.Label))
			if item.Description != "" {
				b.WriteString("  " + v.styles.Muted.Render(item.Description))
			}
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// statusLine shows the active mode and whether an LLM will be used.
// Empty until SetStatus has been called.
func (v *View) statusLine() string {
	if v.mode == "" {
		return ""
	}
	llm := v.styles.Success.Render("LLM connected")
	if !v.collaborator {
		llm = v.styles.Warning.Render("local only")
		if !v.mode.RequiresLLM() {
			llm = v.styles.Muted.Render("local")
		}
	}
	return fmt.Sprintf("%s %s  %s", v.styles.Muted.Render("Mode:"), v.styles.Normal.Render(v.mode.String()), llm)
}

// SetStatus records the generation mode and whether a collaborator is
// configured.
func (v *View) SetStatus(mode domain.GenerationMode, collaborator bool) {
	v.mode = mode
	v.collaborator = collaborator
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu entries.
func (v *View) Items() []Item {
	return v.items
}
