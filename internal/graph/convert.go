package graph

import (
	"fmt"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Relations used when a tree node carries none.
const (
	DefaultTopicRelation = "related to"
	DefaultChildRelation = "includes"
)

// ToGraph converts a into nodes and edges. Ids follow the tree position:
// "main", "topic-i", "subtopic-i-j" and "detail-i-j-k", with edges
// "edge-main-i", "edge-subtopic-i-j" and "edge-detail-i-j-k". All
// positions are left at the origin; call Layout to place them.
func ToGraph(a *domain.Analysis) *domain.MindMapData {
	data := &domain.MindMapData{
		Nodes: make([]domain.MindMapNode, 0, a.CountNodes()),
		Edges: make([]domain.MindMapEdge, 0, a.CountNodes()-1),
	}

	mainDetails := a.Description
	if mainDetails == "" {
		mainDetails = fmt.Sprintf("This mind map explores %s in detail, showing key concepts and relationships.", a.MainConcept)
	}
	data.Nodes = append(data.Nodes, node(domain.MainNodeID, a.MainConcept, mainDetails, domain.NodeKindMain))
	data.Nodes[0].Data.IsMain = true

	for i, t := range a.Topics {
		topicID := fmt.Sprintf("topic-%d", i)
		details := t.Details
		if details == "" {
			details = fmt.Sprintf("Key aspects of %s related to %s.", t.Name, a.MainConcept)
		}
		data.Nodes = append(data.Nodes, node(topicID, t.Name, details, domain.NodeKindTopic))
		data.Edges = append(data.Edges, edge(fmt.Sprintf("edge-main-%d", i), domain.MainNodeID, topicID,
			relation(t.Relation, DefaultTopicRelation)))

		for j, s := range t.Subtopics {
			subID := fmt.Sprintf("subtopic-%d-%d", i, j)
			details := s.Details
			if details == "" {
				details = fmt.Sprintf("%s is a key aspect of %s.", s.Name, t.Name)
			}
			kind := s.Kind
			if kind == "" {
				kind = domain.NodeKindSubtopic
			}
			data.Nodes = append(data.Nodes, node(subID, s.Name, details, kind))
			data.Edges = append(data.Edges, edge(fmt.Sprintf("edge-subtopic-%d-%d", i, j), topicID, subID,
				relation(s.Relation, DefaultChildRelation)))

			for k, d := range s.Children {
				detailID := fmt.Sprintf("detail-%d-%d-%d", i, j, k)
				rel := relation(d.Relation, DefaultChildRelation)
				details := d.Details
				if details == "" {
					details = fmt.Sprintf("%s - %s %s.", d.Name, rel, s.Name)
				}
				data.Nodes = append(data.Nodes, node(detailID, d.Name, details, domain.NodeKindDetail))
				data.Edges = append(data.Edges, edge(fmt.Sprintf("edge-detail-%d-%d-%d", i, j, k), subID, detailID, rel))
			}
		}
	}
	return data
}

func node(id, label, details string, kind domain.NodeKind) domain.MindMapNode {
	return domain.MindMapNode{
		ID:   id,
		Type: domain.NodeRenderType,
		Data: domain.NodeData{Label: label, Details: details, Kind: kind},
	}
}

func edge(id, source, target, label string) domain.MindMapEdge {
	return domain.MindMapEdge{
		ID:        id,
		Source:    source,
		Target:    target,
		Label:     label,
		Type:      domain.EdgeRenderType,
		MarkerEnd: domain.Marker{Type: domain.MarkerArrowClosed},
	}
}

func relation(r, fallback string) string {
	if r == "" {
		return fallback
	}
	return r
}
