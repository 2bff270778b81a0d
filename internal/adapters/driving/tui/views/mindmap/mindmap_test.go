package mindmap

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptmap/internal/core/domain"
	"github.com/custodia-labs/promptmap/internal/core/ports/driving"
)

// mockMindMapService implements driving.MindMapService for testing.
type mockMindMapService struct {
	data     *domain.MindMapData
	err      error
	lastMode domain.GenerationMode
}

func (m *mockMindMapService) Generate(_ context.Context, _ string, mode domain.GenerationMode) (*domain.MindMapData, error) {
	m.lastMode = mode
	return m.data, m.err
}

func (m *mockMindMapService) Analyze(context.Context, string, domain.GenerationMode) (*domain.Analysis, error) {
	return &domain.Analysis{}, nil
}

func (m *mockMindMapService) Classify(string) (*domain.Classification, error) {
	return &domain.Classification{}, nil
}

func (m *mockMindMapService) GenerateContent(context.Context, driving.ContentRequest) (string, error) {
	return "", nil
}

func (m *mockMindMapService) HasCollaborator() bool { return false }

func testMap() *domain.MindMapData {
	return &domain.MindMapData{
		Nodes: []domain.MindMapNode{
			{ID: domain.MainNodeID, Data: domain.NodeData{Label: "Bread", IsMain: true, Kind: domain.NodeKindMain}},
			{ID: "topic-0", Data: domain.NodeData{Label: "Steps", Kind: domain.NodeKindTopic}},
			{ID: "topic-1", Data: domain.NodeData{Label: "Requirements", Kind: domain.NodeKindTopic}},
		},
		Edges: []domain.MindMapEdge{
			{ID: "edge-main-0", Source: domain.MainNodeID, Target: "topic-0", Label: "requires"},
			{ID: "edge-main-1", Source: domain.MainNodeID, Target: "topic-1", Label: "needs"},
		},
	}
}

// runCmd executes cmd and returns every message it yields, flattening batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findGenerated(t *testing.T, msgs []tea.Msg) messages.MindMapGenerated {
	t.Helper()
	for _, m := range msgs {
		if g, ok := m.(messages.MindMapGenerated); ok {
			return g
		}
	}
	t.Fatalf("no MindMapGenerated in %v", msgs)
	return messages.MindMapGenerated{}
}

func typePrompt(v *View, prompt string) {
	for _, r := range prompt {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newReadyView(svc driving.MindMapService) *View {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), svc)
	v.SetDimensions(100, 40)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, domain.GenerationModeStructured, v.Mode())
	assert.NotNil(t, v.Init())
	assert.Contains(t, v.View(), "Initialising")
}

func TestView_WithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), struct{}{}, "x")
	v := NewView(nil, nil, nil).WithContext(ctx)

	assert.Equal(t, ctx, v.ctx)
}

func TestView_Update_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil)

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.width)
}

func TestView_TypingAndGenerate(t *testing.T) {
	svc := &mockMindMapService{data: testMap()}
	v := newReadyView(svc)

	typePrompt(v, "bake bread")
	assert.Equal(t, "bake bread", v.Prompt())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, v.Generating())
	assert.Contains(t, v.View(), "Building mind map")

	generated := findGenerated(t, runCmd(cmd))
	assert.Equal(t, "bake bread", generated.Prompt)
	assert.Equal(t, domain.GenerationModeStructured, svc.lastMode)

	v.Update(generated)

	assert.False(t, v.Generating())
	assert.False(t, v.InputFocused())
	assert.Equal(t, testMap(), v.Data())
	view := v.View()
	assert.Contains(t, view, "Bread")
	assert.Contains(t, view, "Requirements")
	assert.Contains(t, view, "3 nodes")
}

func TestView_Generate_EmptyPromptIgnored(t *testing.T) {
	v := newReadyView(&mockMindMapService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, v.Generating())
}

func TestView_Generate_Error(t *testing.T) {
	v := newReadyView(&mockMindMapService{err: domain.ErrEmptyInput})
	v.SetPrompt("x")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(findGenerated(t, runCmd(cmd)))

	require.ErrorIs(t, v.Err(), domain.ErrEmptyInput)
	assert.True(t, v.InputFocused())
	assert.Contains(t, v.View(), "Error")
}

func TestView_Generate_NoService(t *testing.T) {
	v := newReadyView(nil)
	v.SetPrompt("x")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range runCmd(cmd) {
		if e, ok := msg.(messages.ErrorOccurred); ok {
			v.Update(e)
		}
	}

	require.ErrorIs(t, v.Err(), ErrNoMindMapService)
	assert.False(t, v.Generating())
}

func TestView_KeysIgnoredWhileGenerating(t *testing.T) {
	v := newReadyView(&mockMindMapService{data: testMap()})
	v.SetPrompt("x")
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	v.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, domain.GenerationModeStructured, v.Mode())
}

func TestView_SpinnerTick(t *testing.T) {
	v := newReadyView(&mockMindMapService{})

	_, cmd := v.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestView_CycleMode(t *testing.T) {
	v := newReadyView(nil)

	var seen []domain.GenerationMode
	for range domain.AllGenerationModes() {
		v.Update(tea.KeyMsg{Type: tea.KeyTab})
		seen = append(seen, v.Mode())
	}

	assert.Equal(t, []domain.GenerationMode{
		domain.GenerationModeAssisted,
		domain.GenerationModeLocal,
		domain.GenerationModeSimple,
		domain.GenerationModeStructured,
	}, seen)
	assert.Contains(t, v.View(), "[structured]")
}

func TestView_SettingsSavedUpdatesMode(t *testing.T) {
	v := newReadyView(nil)

	v.Update(messages.SettingsSaved{Mode: domain.GenerationModeSimple})
	assert.Equal(t, domain.GenerationModeSimple, v.Mode())

	v.Update(messages.SettingsSaved{Mode: domain.GenerationModeLocal, Err: errors.New("disk full")})
	assert.Equal(t, domain.GenerationModeSimple, v.Mode())
}

func TestView_MapNavigationAndNewPrompt(t *testing.T) {
	v := newReadyView(&mockMindMapService{})
	v.Update(messages.MindMapGenerated{Prompt: "x", Data: testMap()})
	require.False(t, v.InputFocused())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, v.tree.Selected())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.True(t, v.InputFocused())
	assert.Equal(t, "", v.Prompt())
}

func TestView_EscBackToMenu(t *testing.T) {
	v := newReadyView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_ErrorOccurred(t *testing.T) {
	v := newReadyView(nil)

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "boom")
}

func TestView_Reset(t *testing.T) {
	v := newReadyView(nil)
	v.Update(messages.MindMapGenerated{Prompt: "x", Data: testMap()})

	v.Reset()

	assert.True(t, v.InputFocused())
	assert.Nil(t, v.Data())
	assert.NoError(t, v.Err())
	assert.Contains(t, v.View(), "No mind map")
}
