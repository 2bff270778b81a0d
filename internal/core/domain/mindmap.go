package domain

// NodeKind is the styling variant of a rendered node.
type NodeKind string

// Available node kinds.
const (
	NodeKindMain       NodeKind = "main"
	NodeKindTopic      NodeKind = "topic"
	NodeKindSubtopic   NodeKind = "subtopic"
	NodeKindDetail     NodeKind = "detail"
	NodeKindFormula    NodeKind = "formula"
	NodeKindDefinition NodeKind = "definition"
)

// Renderer-facing tags shared by every node and edge.
const (
	// NodeRenderType is the node type tag understood by the graph canvas.
	NodeRenderType = "custom"

	// EdgeRenderType is the edge type tag understood by the graph canvas.
	EdgeRenderType = "custom"

	// MarkerArrowClosed is the arrow-marker styling tag for edges.
	MarkerArrowClosed = "arrowclosed"

	// MainNodeID is the id of the root node in every graph.
	MainNodeID = "main"
)

// Position is a 2D canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData holds the renderable content of a node.
type NodeData struct {
	Label   string   `json:"label"`
	Details string   `json:"details,omitempty"`
	IsMain  bool     `json:"isMain,omitempty"`
	Kind    NodeKind `json:"type"`
}

// MindMapNode is one vertex of the mind map graph.
type MindMapNode struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Data     NodeData `json:"data"`
	Position Position `json:"position"`
}

// Marker is the edge arrow styling.
type Marker struct {
	Type string `json:"type"`
}

// MindMapEdge is one labelled parent -> child relation.
type MindMapEdge struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	MarkerEnd Marker `json:"markerEnd"`
}

// MindMapData is the complete graph handed to renderers.
type MindMapData struct {
	Nodes []MindMapNode `json:"nodes"`
	Edges []MindMapEdge `json:"edges"`
}

// Node returns the node with the given id.
func (m *MindMapData) Node(id string) (*MindMapNode, bool) {
	for i := range m.Nodes {
		if m.Nodes[i].ID == id {
			return &m.Nodes[i], true
		}
	}
	return nil, false
}

// Children returns the ids of direct children of the given node,
// in edge order.
func (m *MindMapData) Children(id string) []string {
	var out []string
	for _, e := range m.Edges {
		if e.Source == id {
			out = append(out, e.Target)
		}
	}
	return out
}
