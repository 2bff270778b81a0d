package graph

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

const (
	simpleRadius   = 200.0
	simpleMaxWords = 10
)

// Simple builds the keyword-circle map: the prompt in the middle and up to
// ten distinct words longer than three letters around it.
func Simple(prompt string) *domain.MindMapData {
	fields := strings.Fields(prompt)
	labelWords := fields
	if len(labelWords) > 3 {
		labelWords = labelWords[:3]
	}

	main := node(domain.MainNodeID, strings.Join(labelWords, " ")+"...", prompt, domain.NodeKindMain)
	main.Data.IsMain = true
	data := &domain.MindMapData{Nodes: []domain.MindMapNode{main}, Edges: []domain.MindMapEdge{}}

	seen := make(map[string]struct{})
	var words []string
	for _, w := range fields {
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
		if len(words) == simpleMaxWords {
			break
		}
	}

	for i, w := range words {
		angle := float64(i) / float64(len(words)) * 2 * math.Pi
		id := fmt.Sprintf("node-%d", i)
		n := node(id, w, "Related to "+prompt, domain.NodeKindTopic)
		n.Position = domain.Position{X: simpleRadius * math.Cos(angle), Y: simpleRadius * math.Sin(angle)}
		data.Nodes = append(data.Nodes, n)
		data.Edges = append(data.Edges, edge(fmt.Sprintf("edge-%d", i), domain.MainNodeID, id, DefaultTopicRelation))
	}
	return data
}
