package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/components"
)

type gridEntry struct {
	e   ecs.Entity
	pos components.Position
}

// SpatialGrid buckets entities into square cells for radius queries.
// Positions outside the covered area land in the nearest edge cell.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]gridEntry
}

// NewSpatialGrid creates a grid covering width x height.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]gridEntry, cols*rows)
	for i := range cells {
		cells[i] = make([]gridEntry, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entities from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity at pos.
func (g *SpatialGrid) Insert(e ecs.Entity, pos components.Position) {
	idx := g.row(pos.Y)*g.cols + g.col(pos.X)
	g.cells[idx] = append(g.cells[idx], gridEntry{e: e, pos: pos})
}

// QueryRadiusInto appends every entity strictly closer than radius to
// center and returns the extended slice.
func (g *SpatialGrid) QueryRadiusInto(dst []ecs.Entity, center components.Position, radius float64) []ecs.Entity {
	c0, c1 := g.col(center.X-radius), g.col(center.X+radius)
	r0, r1 := g.row(center.Y-radius), g.row(center.Y+radius)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, entry := range g.cells[row*g.cols+col] {
				if Distance(center, entry.pos) < radius {
					dst = append(dst, entry.e)
				}
			}
		}
	}
	return dst
}

func (g *SpatialGrid) col(x float64) int {
	return clampCell(x/g.cellSize, g.cols)
}

func (g *SpatialGrid) row(y float64) int {
	return clampCell(y/g.cellSize, g.rows)
}

func clampCell(v float64, n int) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}
	return int(v)
}
