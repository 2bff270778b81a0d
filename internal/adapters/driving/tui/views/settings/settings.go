// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// ErrNoSettingsService is reported when the view has no settings service.
var ErrNoSettingsService = errors.New("settings service not available")

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionGenerationMode
	SectionLLM
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyTab   = "tab"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	section      Section
	selected     int // selection within current section
	focusedField int // 1 when the provider field input has focus

	// providerInput holds the API key, or the base URL for providers
	// that need an endpoint instead.
	providerInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	pi := textinput.New()
	pi.CharLimit = 256

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		providerInput:   pi,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.Reset()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.Reset()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionGenerationMode:
		return v.handleModeKeys(msg)
	case SectionLLM:
		return v.handleLLMKeys(msg)
	}
	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	const maxItems = 2

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < maxItems-1 {
			v.selected++
		}
	case keyEnter:
		switch v.selected {
		case 0:
			v.section = SectionGenerationMode
			v.selected = v.modeIndex()
		case 1:
			v.section = SectionLLM
			v.selected = v.providerIndex()
		}
	}
	return v, nil
}

func (v *View) handleModeKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	modes := domain.AllGenerationModes()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(modes)-1 {
			v.selected++
		}
	case keyEnter:
		return v, v.setGenerationMode(modes[v.selected])
	}
	return v, nil
}

// needsInput reports whether a provider needs a value typed in before saving.
func needsInput(p domain.AIProvider) bool {
	return p.RequiresAPIKey() || p == domain.AIProviderContentAPI
}

//nolint:gocognit // TUI input handling
func (v *View) handleLLMKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	providers := domain.AllLLMProviders()
	provider := providers[v.selected]

	if v.focusedField == 1 {
		switch msg.String() {
		case keyTab, "shift+tab":
			v.focusedField = 0
			v.providerInput.Blur()
			return v, nil
		case keyEnter:
			return v, v.setLLMProvider(provider, v.providerInput.Value())
		default:
			var cmd tea.Cmd
			v.providerInput, cmd = v.providerInput.Update(msg)
			return v, cmd
		}
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(providers)-1 {
			v.selected++
		}
	case keyTab:
		if needsInput(provider) {
			return v, v.focusInput(provider)
		}
	case keyEnter:
		if needsInput(provider) {
			return v, v.focusInput(provider)
		}
		return v, v.setLLMProvider(provider, "")
	}
	return v, nil
}

func (v *View) focusInput(p domain.AIProvider) tea.Cmd {
	v.focusedField = 1
	if p.RequiresAPIKey() {
		v.providerInput.Placeholder = "Enter API key"
		v.providerInput.EchoMode = textinput.EchoPassword
	} else {
		v.providerInput.Placeholder = "Enter base URL"
		v.providerInput.EchoMode = textinput.EchoNormal
	}
	return v.providerInput.Focus()
}

func (v *View) setGenerationMode(mode domain.GenerationMode) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Mode: mode, Err: svc.SetGenerationMode(mode)}
	}
}

func (v *View) setLLMProvider(provider domain.AIProvider, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		var baseURL, apiKey string
		if provider.RequiresAPIKey() {
			apiKey = value
		} else {
			baseURL = value
		}
		return messages.SettingsSaved{Err: svc.SetLLMProvider(provider, "", baseURL, apiKey)}
	}
}

func (v *View) modeIndex() int {
	if v.settings == nil {
		return 0
	}
	for i, m := range domain.AllGenerationModes() {
		if m == v.settings.Generation.Mode {
			return i
		}
	}
	return 0
}

func (v *View) providerIndex() int {
	if v.settings == nil {
		return 0
	}
	for i, p := range domain.AllLLMProviders() {
		if p == v.settings.LLM.Provider {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionGenerationMode:
		b.WriteString(v.renderModeSelect())
	case SectionLLM:
		b.WriteString(v.renderLLMSelect())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	llmValue := "Not Set"
	if v.settings.LLM.Provider != "" {
		llmValue = fmt.Sprintf("%s (%s)", v.settings.LLM.Provider.Description(), v.settings.LLM.Model)
	}

	llmStatus := v.styles.Warning.Render("[not configured]")
	if v.settings.LLM.IsConfigured() {
		llmStatus = v.styles.Success.Render("[configured]")
	}

	items := []struct {
		label  string
		value  string
		status string
	}{
		{label: "Generation Mode", value: v.settings.Generation.Mode.Description()},
		{label: "LLM Provider", value: llmValue, status: llmStatus},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if item.status != "" {
			line += " " + item.status
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
	}

	return b.String()
}

func (v *View) renderModeSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select Generation Mode"))
	b.WriteString("\n\n")

	for i, mode := range domain.AllGenerationModes() {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		current := ""
		if mode == v.settings.Generation.Mode {
			current = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, mode.Description(), current)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")

		if mode.RequiresLLM() {
			b.WriteString(v.styles.Muted.Render("    Uses: LLM (runs locally when none is configured)"))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) renderLLMSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select LLM Provider"))
	b.WriteString("\n\n")

	providers := domain.AllLLMProviders()
	defaults := domain.DefaultLLMModels()
	for i, provider := range providers {
		active := i == v.selected && v.focusedField == 0
		indicator := "  "
		if active {
			indicator = "> "
		}

		current := ""
		if provider == v.settings.LLM.Provider {
			current = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, provider.Description(), current)
		if active {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")

		if model, ok := defaults[provider]; ok {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("    Model: %s", model)))
			b.WriteString("\n")
		}
	}

	if p := providers[v.selected]; needsInput(p) {
		label := "Base URL:"
		if p.RequiresAPIKey() {
			label = "API Key:"
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(label))
		b.WriteString("\n")
		b.WriteString(v.providerInput.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionGenerationMode:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionLLM:
		if v.focusedField == 1 {
			return v.styles.Help.Render("[tab] back to list  [enter] save  [esc] back")
		}
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Reset returns the view to the overview.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.focusedField = 0
	v.providerInput.SetValue("")
	v.providerInput.Blur()
}
