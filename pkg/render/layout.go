package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mandelsoft/zykov/pkg/graph"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Layout maps vertex names to positions.
type Layout map[string]Point

type LayoutFunc func(g *graph.Graph) Layout

// Circular places the vertices in sorted order on the unit circle,
// vertex i at angle i*2π/n.
func Circular(g *graph.Graph) Layout {
	l := Layout{}
	n := g.Order()
	if n == 0 {
		return l
	}
	step := 2 * math.Pi / float64(n)
	for i, v := range g.Vertices() {
		theta := float64(i) * step
		l[v] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return l
}

const (
	forceIterations = 100
	forceSeed       = 1
)

// ForceDirected computes a Fruchterman-Reingold layout. The random
// start positions use a fixed seed, so the layout for a graph is
// always the same. The result is scaled to [-1,1]x[-1,1].
func ForceDirected(g *graph.Graph) Layout {
	vertices := g.Vertices()
	n := len(vertices)
	l := Layout{}
	switch n {
	case 0:
		return l
	case 1:
		l[vertices[0]] = Point{}
		return l
	}

	r := rand.New(rand.NewSource(forceSeed))
	pos := make([]Point, n)
	index := map[string]int{}
	for i, v := range vertices {
		index[v] = i
		pos[i] = Point{X: r.Float64()*2 - 1, Y: r.Float64()*2 - 1}
	}

	k := math.Sqrt(4.0 / float64(n))
	temp := 0.1
	cool := temp / float64(forceIterations+1)
	edges := g.Edges()

	for it := 0; it < forceIterations; it++ {
		disp := make([]Point, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dx, dy, d := delta(pos[i], pos[j])
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
			}
		}
		for _, e := range edges {
			a, b := index[e.A], index[e.B]
			dx, dy, d := delta(pos[a], pos[b])
			f := d * d / k
			disp[a].X -= dx / d * f
			disp[a].Y -= dy / d * f
			disp[b].X += dx / d * f
			disp[b].Y += dy / d * f
		}
		for i := range pos {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d > 0 {
				s := math.Min(d, temp) / d
				pos[i].X += disp[i].X * s
				pos[i].Y += disp[i].Y * s
			}
		}
		temp -= cool
	}

	return normalize(vertices, pos)
}

func delta(a, b Point) (float64, float64, float64) {
	dx, dy := a.X-b.X, a.Y-b.Y
	d := math.Hypot(dx, dy)
	if d < 1e-9 {
		d = 1e-9
	}
	return dx, dy, d
}

func normalize(vertices []string, pos []Point) Layout {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	scale := math.Max(maxX-minX, maxY-minY) / 2
	if scale == 0 {
		scale = 1
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2

	l := Layout{}
	for i, v := range vertices {
		l[v] = Point{X: (pos[i].X - cx) / scale, Y: (pos[i].Y - cy) / scale}
	}
	return l
}

// LayoutFor returns the layout function for the given name.
func LayoutFor(name string) (LayoutFunc, error) {
	switch name {
	case "", "circular":
		return Circular, nil
	case "force":
		return ForceDirected, nil
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}
