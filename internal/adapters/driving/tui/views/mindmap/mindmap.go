// Package mindmap provides the prompt entry and mind map browsing view for the TUI.
package mindmap

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/components/tree"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// View is the prompt input plus the outline of the last generated map.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PromptInput
	tree      *tree.Tree
	statusbar *status.Bar
	spinner   spinner.Model

	service driving.MindMapService
	ctx     context.Context

	mode       domain.GenerationMode
	data       *domain.MindMapData
	width      int
	height     int
	ready      bool
	err        error
	generating bool
	focusInput bool // true = typing a prompt, false = browsing the map
}

// NewView creates a new mind map view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.MindMapService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewPromptInput(s),
		tree:       tree.New(s),
		statusbar:  status.NewBar(s, km),
		spinner:    sp,
		service:    service,
		ctx:        context.Background(),
		mode:       domain.GenerationModeStructured,
		width:      80,
		height:     24,
		focusInput: true,
	}
	v.syncMode()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the mind map view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !v.generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.MindMapGenerated:
		v.handleGenerated(msg)
		return v, nil

	case messages.SettingsSaved:
		if msg.Err == nil && msg.Mode.IsValid() {
			v.SetMode(msg.Mode)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.generating = false
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Ignore everything else until the running generation reports back.
	if v.generating {
		return v, nil
	}

	if msg.Type == tea.KeyTab {
		v.CycleMode()
		return v, nil
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			prompt := v.input.Value()
			if prompt == "" {
				return v, nil
			}
			return v, v.startGeneration(prompt)
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if keymap.Matches(msg.String(), v.keymap.NewPrompt) {
		v.focusInput = true
		v.input.SetValue("")
		v.statusbar.SetState(status.StateReady)
		return v, v.input.Focus()
	}

	v.tree, _ = v.tree.Update(msg)
	return v, nil
}

func (v *View) startGeneration(prompt string) tea.Cmd {
	v.generating = true
	v.err = nil
	v.input.Blur()
	v.statusbar.SetState(status.StateGenerating)
	v.statusbar.SetMessage("")

	ctx, svc, mode := v.ctx, v.service, v.mode
	generate := func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoMindMapService}
		}
		data, err := svc.Generate(ctx, prompt, mode)
		return messages.MindMapGenerated{Prompt: prompt, Mode: mode, Data: data, Err: err}
	}
	return tea.Batch(v.spinner.Tick, generate)
}

func (v *View) handleGenerated(msg messages.MindMapGenerated) {
	v.generating = false
	if msg.Err != nil {
		v.err = msg.Err
		v.focusInput = true
		v.input.Focus()
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.data = msg.Data
	v.tree.SetData(msg.Data)
	v.focusInput = false
	v.statusbar.SetState(status.StateMap)
	v.statusbar.SetNodeCount(v.tree.Count())
}

// View renders the mind map view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Promptmap"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.generating {
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Building mind map..."))
	} else {
		sections = append(sections, v.tree.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// CycleMode switches to the next generation mode.
func (v *View) CycleMode() {
	modes := domain.AllGenerationModes()
	next := modes[0]
	for i, m := range modes {
		if m == v.mode {
			next = modes[(i+1)%len(modes)]
			break
		}
	}
	v.SetMode(next)
}

// SetMode sets the mode used for the next generation.
func (v *View) SetMode(mode domain.GenerationMode) {
	v.mode = mode
	v.syncMode()
}

func (v *View) syncMode() {
	v.statusbar.SetMode(v.mode)
	v.input.SetLabel("Prompt [" + v.mode.String() + "]")
}

// Mode returns the mode used for the next generation.
func (v *View) Mode() domain.GenerationMode {
	return v.mode
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.tree.SetDimensions(width, height-10) // header, input and status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Prompt returns the current prompt text.
func (v *View) Prompt() string {
	return v.input.Value()
}

// SetPrompt sets the prompt text.
func (v *View) SetPrompt(prompt string) {
	v.input.SetValue(prompt)
}

// Data returns the last generated map.
func (v *View) Data() *domain.MindMapData {
	return v.data
}

// Generating reports whether a generation is in flight.
func (v *View) Generating() bool {
	return v.generating
}

// InputFocused returns whether the prompt input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to an empty prompt.
func (v *View) Reset() {
	v.focusInput = true
	v.generating = false
	v.input.Focus()
	v.input.SetValue("")
	v.tree.SetData(nil)
	v.data = nil
	v.err = nil
	v.statusbar.Clear()
}
