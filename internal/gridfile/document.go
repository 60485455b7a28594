// Package gridfile loads grid maps from YAML documents and renders grids back
// to text.
//
// A document lists rows of cells drawn with these characters:
//
//	.  walkable
//	#  blocked
//	S  walkable start
//	G  walkable goal
//
// Sparse documents may also list walkable cells explicitly. Obstacles are
// world-space rectangles rasterised onto the grid at cell_size units per cell.
package gridfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath/grid"
	"github.com/pdrpinto/gridpath/internal/scene"
)

const (
	KindDense  = "dense"
	KindSparse = "sparse"
)

type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

func (p Point) Position() grid.Position { return grid.Pos(p.X, p.Y) }

type MovementSettings struct {
	Diagonal bool   `yaml:"diagonal" json:"diagonal,omitempty" jsonschema:"description=Allow diagonal steps"`
	Corners  string `yaml:"corners" json:"corners,omitempty" jsonschema:"enum=no-cut,enum=cut,enum=always,description=Corner cutting policy for diagonal steps"`
}

// Document is the on-disk shape of a map.
type Document struct {
	Name      string           `yaml:"name" json:"name,omitempty" jsonschema:"title=Map name"`
	Kind      string           `yaml:"kind" json:"kind,omitempty" jsonschema:"enum=dense,enum=sparse,description=Grid storage; defaults to dense when rows are given"`
	Origin    Point            `yaml:"origin" json:"origin,omitempty" jsonschema:"description=Coordinates of the first character of the first row"`
	Rows      []string         `yaml:"rows" json:"rows,omitempty" jsonschema:"description=One string per row using . # S G"`
	Cells     []Point          `yaml:"cells" json:"cells,omitempty" jsonschema:"description=Extra walkable cells for sparse maps"`
	Start     *Point           `yaml:"start" json:"start,omitempty" jsonschema:"description=Start cell; overrides an S marker"`
	Goal      *Point           `yaml:"goal" json:"goal,omitempty" jsonschema:"description=Goal cell; overrides a G marker"`
	CellSize  float64          `yaml:"cell_size" json:"cell_size,omitempty" jsonschema:"minimum=0,description=World units per cell for obstacles; defaults to 1"`
	Obstacles []scene.Obstacle `yaml:"obstacles" json:"obstacles,omitempty" jsonschema:"description=World-space rectangles that block every cell they overlap"`
	Movement  MovementSettings     `yaml:"movement" json:"movement,omitempty"`
}

// Map is a built document ready to search.
type Map struct {
	Name     string
	Grid     grid.Grid
	Start    grid.Position
	Goal     grid.Position
	HasStart bool
	HasGoal  bool
	Movement grid.Movement
}

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("gridfile: empty document")
		}
		return nil, fmt.Errorf("gridfile: unmarshal: %w", err)
	}
	return &doc, nil
}

// Load reads the map document at path and builds it.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: load %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build constructs the grid described by d.
func (d *Document) Build() (*Map, error) {
	kind := d.Kind
	if kind == "" {
		kind = KindDense
		if len(d.Rows) == 0 && len(d.Cells) > 0 {
			kind = KindSparse
		}
	}

	corners, err := grid.ParseCornerPolicy(d.Movement.Corners)
	if err != nil {
		return nil, fmt.Errorf("gridfile: movement: %w", err)
	}
	m := &Map{
		Name:     d.Name,
		Movement: grid.Movement{AllowDiagonal: d.Movement.Diagonal, Corners: corners},
	}

	switch kind {
	case KindDense:
		if len(d.Cells) > 0 {
			return nil, errors.New("gridfile: cells are only valid in sparse maps")
		}
		m.Grid = d.buildDense()
	case KindSparse:
		m.Grid = d.buildSparse()
	default:
		return nil, fmt.Errorf("gridfile: unknown kind %q", d.Kind)
	}
	if err := d.markRows(m); err != nil {
		return nil, err
	}

	if len(d.Obstacles) > 0 {
		if err := d.rasterize(m.Grid); err != nil {
			return nil, err
		}
	}

	if d.Start != nil {
		m.Start, m.HasStart = d.Start.Position(), true
	}
	if d.Goal != nil {
		m.Goal, m.HasGoal = d.Goal.Position(), true
	}
	return m, nil
}

func (d *Document) rowsWidth() int {
	width := 0
	for _, row := range d.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func (d *Document) buildDense() *grid.Dense {
	width, height := d.rowsWidth(), len(d.Rows)
	g := grid.NewDenseRect(grid.Rect{
		MinX: d.Origin.X,
		MinY: d.Origin.Y,
		MaxX: d.Origin.X + width - 1,
		MaxY: d.Origin.Y + height - 1,
	})
	// Padding beyond a short row is blocked; markRows opens what is drawn.
	g.Reset(false)
	return g
}

func (d *Document) buildSparse() *grid.Sparse {
	g := grid.NewSparse()
	for _, c := range d.Cells {
		g.SetWalkable(c.Position(), true)
	}
	return g
}

// markRows applies the row characters to m.Grid and records S and G markers.
func (d *Document) markRows(m *Map) error {
	for y, row := range d.Rows {
		for x, ch := range []byte(row) {
			pos := grid.Pos(d.Origin.X+x, d.Origin.Y+y)
			switch ch {
			case '.':
				m.Grid.SetWalkable(pos, true)
			case '#':
				m.Grid.SetWalkable(pos, false)
			case 'S':
				if m.HasStart {
					return fmt.Errorf("gridfile: second start marker at %s", pos)
				}
				m.Grid.SetWalkable(pos, true)
				m.Start, m.HasStart = pos, true
			case 'G':
				if m.HasGoal {
					return fmt.Errorf("gridfile: second goal marker at %s", pos)
				}
				m.Grid.SetWalkable(pos, true)
				m.Goal, m.HasGoal = pos, true
			default:
				return fmt.Errorf("gridfile: row %d: unexpected %q at column %d", y, ch, x)
			}
		}
	}
	return nil
}

func (d *Document) rasterize(g grid.Grid) error {
	cellSize := d.CellSize
	if cellSize == 0 {
		cellSize = 1
	}
	sc, err := scene.New(cellSize)
	if err != nil {
		return fmt.Errorf("gridfile: %w", err)
	}
	for i, o := range d.Obstacles {
		if err := sc.Add(o); err != nil {
			return fmt.Errorf("gridfile: obstacle %d: %w", i, err)
		}
	}
	sc.Rasterize(g)
	return nil
}
