package gridfile

import (
	"strings"

	"github.com/pdrpinto/gridpath/grid"
)

// Render draws g over its bounds, one line per row. Path cells are drawn as
// '*', and start and goal are drawn on top as 'S' and 'G'. Without a path
// the output parses back to the same walkability.
func Render(g grid.Grid, path []grid.Position, start, goal grid.Position) string {
	bounds := g.Bounds()
	if bounds.Empty() {
		return ""
	}
	onPath := make(map[grid.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var b strings.Builder
	b.Grow((bounds.Width() + 1) * bounds.Height())
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			pos := grid.Pos(x, y)
			_, walked := onPath[pos]
			switch {
			case pos == start:
				b.WriteByte('S')
			case pos == goal:
				b.WriteByte('G')
			case walked:
				b.WriteByte('*')
			case g.IsWalkable(pos):
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
