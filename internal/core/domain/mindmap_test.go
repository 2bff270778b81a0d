package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMap() MindMapData {
	return MindMapData{
		Nodes: []MindMapNode{
			{ID: MainNodeID, Type: NodeRenderType, Data: NodeData{Label: "Root", IsMain: true, Kind: NodeKindMain}},
			{ID: "topic-0", Type: NodeRenderType, Data: NodeData{Label: "A", Kind: NodeKindTopic}},
			{ID: "topic-1", Type: NodeRenderType, Data: NodeData{Label: "B", Kind: NodeKindTopic}},
		},
		Edges: []MindMapEdge{
			{ID: "edge-main-0", Source: MainNodeID, Target: "topic-0", Label: "includes"},
			{ID: "edge-main-1", Source: MainNodeID, Target: "topic-1", Label: "includes"},
		},
	}
}

func TestMindMapData_Node(t *testing.T) {
	m := sampleMap()

	n, ok := m.Node("topic-1")
	require.True(t, ok)
	assert.Equal(t, "B", n.Data.Label)

	_, ok = m.Node("missing")
	assert.False(t, ok)
}

func TestMindMapData_NodeReturnsPointerIntoSlice(t *testing.T) {
	m := sampleMap()

	n, ok := m.Node("topic-0")
	require.True(t, ok)
	n.Position = Position{X: 10, Y: 20}

	assert.Equal(t, 10.0, m.Nodes[1].Position.X)
}

func TestMindMapData_Children(t *testing.T) {
	m := sampleMap()

	assert.Equal(t, []string{"topic-0", "topic-1"}, m.Children(MainNodeID))
	assert.Empty(t, m.Children("topic-0"))
}

func TestMindMapNode_JSONShape(t *testing.T) {
	node := MindMapNode{
		ID:       MainNodeID,
		Type:     NodeRenderType,
		Data:     NodeData{Label: "Root", IsMain: true, Kind: NodeKindMain},
		Position: Position{X: 1, Y: 2},
	}

	data, err := json.Marshal(node)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":"main","type":"custom","data":{"label":"Root","isMain":true,"type":"main"},"position":{"x":1,"y":2}}`,
		string(data))
}

func TestAnalysis_CountNodes(t *testing.T) {
	a := Analysis{
		MainConcept: "Root",
		Topics: []Topic{
			{Name: "A", Subtopics: []Subtopic{
				{Name: "A1", Children: []Detail{{Name: "x"}, {Name: "y"}}},
				{Name: "A2"},
			}},
			{Name: "B"},
		},
	}

	// main + 2 topics + 2 subtopics + 2 details
	assert.Equal(t, 7, a.CountNodes())
}
