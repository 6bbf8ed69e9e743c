package window

import (
	"fmt"
	"sort"
)

// MaxRadius is the largest event window radius.
const MaxRadius = 4

// Point is a site coordinate. Window methods take points relative to the center;
// Space methods take absolute points. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y} }

// Scale returns p scaled by n.
func (p Point) Scale(n int) Point { return Point{X: p.X * n, Y: p.Y * n} }

// Manhattan returns |x|+|y|.
func (p Point) Manhattan() int { return abs(p.X) + abs(p.Y) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Table enumerates every offset within Manhattan distance Radius of the origin,
// ring by ring. Index 0 is always the origin.
type Table struct {
	radius int
	points []Point
	index  map[Point]int
	rings  []int
}

var tables = buildTables()

func buildTables() [MaxRadius + 1]*Table {
	var out [MaxRadius + 1]*Table
	for r := 0; r <= MaxRadius; r++ {
		out[r] = newTable(r)
	}
	return out
}

func newTable(r int) *Table {
	t := &Table{radius: r, index: make(map[Point]int)}
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			p := Point{X: x, Y: y}
			if p.Manhattan() <= r {
				t.points = append(t.points, p)
			}
		}
	}
	sort.SliceStable(t.points, func(i, j int) bool {
		return t.points[i].Manhattan() < t.points[j].Manhattan()
	})
	t.rings = make([]int, r+2)
	for i, p := range t.points {
		t.index[p] = i
		t.rings[p.Manhattan()+1] = i + 1
	}
	return t
}

// MDist returns the table for radius r. It panics when r is outside 0..MaxRadius.
func MDist(r int) *Table {
	if r < 0 || r > MaxRadius {
		panic(fmt.Sprintf("window: radius %d outside 0..%d", r, MaxRadius))
	}
	return tables[r]
}

// Radius returns the table radius.
func (t *Table) Radius() int { return t.radius }

// Len returns the number of sites in the table.
func (t *Table) Len() int { return len(t.points) }

// Contains reports whether p lies within the table radius.
func (t *Table) Contains(p Point) bool { return p.Manhattan() <= t.radius }

// Index returns the position of p in the table.
func (t *Table) Index(p Point) (int, bool) {
	i, ok := t.index[p]
	return i, ok
}

// Point returns the offset stored at index i.
func (t *Table) Point(i int) Point { return t.points[i] }

// Points returns all offsets, nearest first. The slice must not be modified.
func (t *Table) Points() []Point { return t.points }

// Ring returns the offsets at exactly distance d.
func (t *Table) Ring(d int) []Point {
	if d < 0 || d > t.radius {
		return nil
	}
	return t.points[t.rings[d]:t.rings[d+1]]
}
