package graph

import (
	"fmt"
	"math"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

// Ring geometry.
const (
	minTopicRadius = 250.0
	baseRadius     = 150.0
	radiusPerTopic = 20.0
	subtopicRing   = 180.0
	detailRing     = 150.0
	subtopicSpread = 0.8
	compactSpread  = 0.4
	detailSpread   = 0.4
)

// LayoutOptions configures Layout and Build.
type LayoutOptions struct {
	// MinDistance is the relaxation threshold. Zero skips relaxation.
	MinDistance float64
}

// DefaultLayoutOptions returns the standard layout settings.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{MinDistance: domain.DefaultMinDistance}
}

// TopicRadius is the radius of the first ring for n topics.
func TopicRadius(n int) float64 {
	return math.Max(minTopicRadius, baseRadius+radiusPerTopic*float64(n))
}

// fanAngle spreads index i of n siblings symmetrically around center.
// divisor keeps a single child on the center line.
func fanAngle(center float64, i, n int, spread, divisor float64) float64 {
	return center + (float64(i)-float64(n-1)/2)*spread/math.Max(1, divisor)
}

// Layout positions every node of data, which must have been produced by
// ToGraph(a). Topics sit evenly on the first ring. Subtopics fan out
// ±0.8 rad around their topic, or ±0.4 rad for trees built from a
// collaborator outline, and details fan ±0.4 rad around their subtopic.
func Layout(a *domain.Analysis, data *domain.MindMapData) {
	index := make(map[string]int, len(data.Nodes))
	for i, n := range data.Nodes {
		index[n.ID] = i
	}
	place := func(id string, radius, angle float64) {
		if i, ok := index[id]; ok {
			data.Nodes[i].Position = domain.Position{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		}
	}
	place(domain.MainNodeID, 0, 0)

	n := len(a.Topics)
	r := TopicRadius(n)
	for i, t := range a.Topics {
		angle := float64(i) / float64(n) * 2 * math.Pi
		place(fmt.Sprintf("topic-%d", i), r, angle)

		m := len(t.Subtopics)
		divisor := float64(m - 1)
		spread := subtopicSpread
		if a.Origin == domain.OriginStructured {
			divisor, spread = float64(m), compactSpread
		}
		for j, s := range t.Subtopics {
			subAngle := fanAngle(angle, j, m, spread, divisor)
			place(fmt.Sprintf("subtopic-%d-%d", i, j), r+subtopicRing, subAngle)

			c := len(s.Children)
			for k := range s.Children {
				place(fmt.Sprintf("detail-%d-%d-%d", i, j, k), r+subtopicRing+detailRing,
					fanAngle(subAngle, k, c, detailSpread, float64(c-1)))
			}
		}
	}
}

// Build converts, lays out and relaxes a in one step.
func Build(a *domain.Analysis, opts LayoutOptions) *domain.MindMapData {
	data := ToGraph(a)
	Layout(a, data)
	if opts.MinDistance > 0 {
		Relax(data.Nodes, opts.MinDistance)
	}
	return data
}
