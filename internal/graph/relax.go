package graph

import (
	"math"

	"github.com/custodia-labs/promptmap/internal/core/domain"
)

const (
	relaxIterations = 20
	repulsionForce  = 0.5
	maxRadius       = 800.0
)

// Relax pushes apart nodes closer than minDistance. Each node's move is
// applied immediately, so later nodes in the same pass see the updated
// position. Nodes are then clamped to maxRadius from the origin. The main
// node never moves.
func Relax(nodes []domain.MindMapNode, minDistance float64) {
	for iter := 0; iter < relaxIterations; iter++ {
		for i := range nodes {
			a := &nodes[i]
			if a.ID == domain.MainNodeID {
				continue
			}

			var dx, dy float64
			for j := range nodes {
				if i == j {
					continue
				}
				deltaX := a.Position.X - nodes[j].Position.X
				deltaY := a.Position.Y - nodes[j].Position.Y
				distance := math.Hypot(deltaX, deltaY)
				if distance > 0 && distance < minDistance {
					force := repulsionForce * (minDistance - distance) / distance
					dx += deltaX * force
					dy += deltaY * force
				}
			}
			a.Position.X += dx
			a.Position.Y += dy

			if math.Hypot(a.Position.X, a.Position.Y) > maxRadius {
				angle := math.Atan2(a.Position.Y, a.Position.X)
				a.Position.X = maxRadius * math.Cos(angle)
				a.Position.Y = maxRadius * math.Sin(angle)
			}
		}
	}
}
