// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateGenerating State = "generating"
	StateError      State = "error"
	StateHelp       State = "help"
	StateMap        State = "map"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	mode      domain.GenerationMode
	nodeCount int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	var text string
	switch s.state {
	case StateGenerating:
		text = s.styles.Muted.Render("Generating...")
	case StateError:
		if s.message != "" {
			text = s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		} else {
			text = s.styles.Error.Render("Error")
		}
	case StateHelp:
		text = s.styles.Normal.Render("Help")
	case StateMap:
		text = s.styles.Normal.Render(fmt.Sprintf("%d nodes", s.nodeCount))
	default:
		text = s.styles.Muted.Render("Ready")
	}

	if s.mode != "" {
		text = s.styles.Subtitle.Render("["+s.mode.String()+"]") + " " + text
	}
	return text
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateMap {
		bindings = s.keymap.MapHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetMode sets the generation mode shown on the left.
func (s *Bar) SetMode(mode domain.GenerationMode) {
	s.mode = mode
}

// Mode returns the displayed generation mode.
func (s *Bar) Mode() domain.GenerationMode {
	return s.mode
}

// SetNodeCount sets the node count of the displayed map.
func (s *Bar) SetNodeCount(count int) {
	s.nodeCount = count
}

// NodeCount returns the current node count.
func (s *Bar) NodeCount() int {
	return s.nodeCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the ready state. The mode is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.nodeCount = 0
}
