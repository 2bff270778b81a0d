// Package tree renders a mind map as an indented, navigable outline.
package tree

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/promptmap/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Row is one node of the outline.
type Row struct {
	ID       string
	Label    string
	Details  string
	Relation string
	Kind     domain.NodeKind
	Depth    int
}

// Flatten walks the map depth first from the main node. Nodes not
// reachable from the main node are skipped, and each node is visited once.
func Flatten(data *domain.MindMapData) []Row {
	if data == nil {
		return nil
	}
	root, ok := data.Node(domain.MainNodeID)
	if !ok {
		return nil
	}

	children := make(map[string][]domain.MindMapEdge)
	for _, e := range data.Edges {
		children[e.Source] = append(children[e.Source], e)
	}

	seen := map[string]bool{root.ID: true}
	rows := []Row{{ID: root.ID, Label: root.Data.Label, Details: root.Data.Details, Kind: root.Data.Kind}}

	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		for _, e := range children[id] {
			if seen[e.Target] {
				continue
			}
			n, ok := data.Node(e.Target)
			if !ok {
				continue
			}
			seen[e.Target] = true
			rows = append(rows, Row{
				ID:       n.ID,
				Label:    n.Data.Label,
				Details:  n.Data.Details,
				Relation: e.Label,
				Kind:     n.Data.Kind,
				Depth:    depth,
			})
			walk(n.ID, depth+1)
		}
	}
	walk(root.ID, 1)
	return rows
}

// Render returns the whole outline as styled text, one node per line.
func Render(data *domain.MindMapData, s *styles.Styles, showDetails bool) string {
	if s == nil {
		s = styles.DefaultStyles()
	}
	rows := Flatten(data)
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, renderRow(r, s, showDetails, false))
	}
	return strings.Join(lines, "\n")
}

func renderRow(r Row, s *styles.Styles, showDetails, selected bool) string {
	indent := strings.Repeat("  ", r.Depth)

	label := r.Label
	if selected {
		label = s.Selected.Render(label)
	} else {
		label = s.Node(r.Kind).Render(label)
	}

	line := indent
	if r.Depth > 0 {
		line += "└─ "
		if r.Relation != "" {
			line += s.Relation.Render(r.Relation) + " "
		}
	}
	line += label

	if showDetails && r.Details != "" {
		line += "\n" + indent + "   " + s.Muted.Render(r.Details)
	}
	return line
}

// Tree is a scrollable, selectable outline of a mind map.
type Tree struct {
	rows        []Row
	selected    int
	showDetails bool
	styles      *styles.Styles
	width       int
	height      int
}

// New creates an empty tree component.
func New(s *styles.Styles) *Tree {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Tree{styles: s, width: 80, height: 20}
}

// Init initialises the tree.
func (t *Tree) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (t *Tree) Update(msg tea.Msg) (*Tree, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			t.MoveUp()
		case "down", "j":
			t.MoveDown()
		case "d":
			t.showDetails = !t.showDetails
		}
	}
	return t, nil
}

// View renders the visible window of the outline.
func (t *Tree) View() string {
	if len(t.rows) == 0 {
		return t.styles.Muted.Render("No mind map")
	}

	visible := t.height
	if t.showDetails {
		visible /= 2
	}
	if visible < 1 {
		visible = 1
	}

	start := 0
	if t.selected >= visible {
		start = t.selected - visible + 1
	}
	end := start + visible
	if end > len(t.rows) {
		end = len(t.rows)
	}

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(t.rows[i], t.styles, t.showDetails, i == t.selected))
	}
	if end < len(t.rows) {
		lines = append(lines, t.styles.Muted.Render(fmt.Sprintf("  … %d more", len(t.rows)-end)))
	}
	return strings.Join(lines, "\n")
}

// SetData replaces the displayed map and resets the selection.
func (t *Tree) SetData(data *domain.MindMapData) {
	t.rows = Flatten(data)
	t.selected = 0
}

// Rows returns the flattened outline.
func (t *Tree) Rows() []Row {
	return t.rows
}

// Selected returns the index of the selected row.
func (t *Tree) Selected() int {
	return t.selected
}

// SelectedRow returns the selected row, or nil if the tree is empty.
func (t *Tree) SelectedRow() *Row {
	if len(t.rows) == 0 {
		return nil
	}
	return &t.rows[t.selected]
}

// MoveUp moves selection up.
func (t *Tree) MoveUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// MoveDown moves selection down.
func (t *Tree) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
	}
}

// ShowDetails reports whether detail text is rendered.
func (t *Tree) ShowDetails() bool {
	return t.showDetails
}

// SetShowDetails toggles detail text.
func (t *Tree) SetShowDetails(show bool) {
	t.showDetails = show
}

// SetDimensions sets the component dimensions.
func (t *Tree) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Count returns the number of rows.
func (t *Tree) Count() int {
	return len(t.rows)
}

// IsEmpty returns whether the tree has no rows.
func (t *Tree) IsEmpty() bool {
	return len(t.rows) == 0
}
