// Package routing implements the landmark routing engine: graph construction
// from landmark records, A* search, path augmentation, nearby lookup and
// road-geometry enrichment.
//
// A Graph is built fresh for each request from the current landmark set and
// is never mutated after BuildGraph returns.
package routing

import (
	"cmp"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/geo"
	"slices"
)

var (
	// ErrUnknownNode is returned when a landmark name is not part of the graph.
	ErrUnknownNode = errors.New("routing: unknown landmark")

	// ErrNoPathFound is returned when the search exhausts the reachable
	// component without reaching the goal.
	ErrNoPathFound = errors.New("routing: no path found")
)

const (
	defaultNeighborCount    = 3
	defaultNeighborRadiusKm = 5.0

	// Distinct landmarks sharing coordinates still need a positive weight.
	minEdgeWeightKm = 0.001
)

// Node is a graph vertex: one landmark and its weighted road neighbors (km).
type Node struct {
	Name      string
	Location  domain.Coordinates
	Neighbors map[string]float64
}

// Graph is a symmetric weighted adjacency graph keyed by landmark name.
type Graph struct {
	nodes   map[string]*Node
	skipped []string
}

type buildConfig struct {
	topology         Topology
	neighborCount    int
	neighborRadiusKm float64
}

// BuildOption customizes BuildGraph.
type BuildOption func(*buildConfig)

// WithTopology replaces the curated base topology.
func WithTopology(t Topology) BuildOption {
	return func(c *buildConfig) { c.topology = t }
}

// WithNeighborCount sets how many nearest landmarks the augmentation pass
// may connect to each node. Zero disables augmentation.
func WithNeighborCount(k int) BuildOption {
	return func(c *buildConfig) {
		if k >= 0 {
			c.neighborCount = k
		}
	}
}

// WithNeighborRadiusKm caps the straight-line length of augmented edges.
func WithNeighborRadiusKm(km float64) BuildOption {
	return func(c *buildConfig) {
		if km > 0 {
			c.neighborRadiusKm = km
		}
	}
}

// BuildGraph converts landmark records into a routing graph.
//
// Records with malformed coordinates are dropped and reported by Skipped.
// Curated topology pairs become edges first; the augmentation pass then links
// every node to its nearest non-neighbors within the configured radius.
func BuildGraph(records []domain.LandmarkRecord, opts ...BuildOption) *Graph {
	cfg := buildConfig{
		topology:         BaganTopology,
		neighborCount:    defaultNeighborCount,
		neighborRadiusKm: defaultNeighborRadiusKm,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{nodes: make(map[string]*Node, len(records))}

	for _, r := range records {
		loc, err := r.Location()
		if err != nil {
			g.skipped = append(g.skipped, r.Name)
			continue
		}
		// Duplicate names: last write wins.
		g.nodes[r.Name] = &Node{
			Name:      r.Name,
			Location:  loc,
			Neighbors: make(map[string]float64),
		}
	}

	for a, connections := range cfg.topology {
		for _, b := range connections {
			g.connect(a, b)
		}
	}

	if cfg.neighborCount > 0 {
		g.augment(cfg.neighborCount, cfg.neighborRadiusKm)
	}

	return g
}

type candidate struct {
	name string
	km   float64
}

// augment links each node to its k nearest non-neighbors within maxKm.
func (g *Graph) augment(k int, maxKm float64) {
	names := g.Names()

	for _, a := range names {
		na := g.nodes[a]

		cands := make([]candidate, 0, len(names))
		for _, b := range names {
			if a == b {
				continue
			}
			if _, ok := na.Neighbors[b]; ok {
				continue
			}
			d := na.Location.Geo().DistanceKm(g.nodes[b].Location.Geo())
			if d > maxKm {
				continue
			}
			cands = append(cands, candidate{name: b, km: d})
		}

		slices.SortFunc(cands, func(x, y candidate) int {
			if c := cmp.Compare(x.km, y.km); c != 0 {
				return c
			}
			return cmp.Compare(x.name, y.name)
		})

		for _, c := range cands[:min(k, len(cands))] {
			g.connect(a, c.name)
		}
	}
}

// connect adds a bidirectional edge with the road-distance weight. Pairs
// naming missing nodes and self loops are ignored.
func (g *Graph) connect(a, b string) {
	if a == b {
		return
	}
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return
	}

	w := geo.RoadDistanceKm(na.Location.Geo(), nb.Location.Geo())
	if w < minEdgeWeightKm {
		w = minEdgeWeightKm
	}

	na.Neighbors[b] = w
	nb.Neighbors[a] = w
}

// Node returns the node for name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Has reports whether name is a node of g.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Weight returns the weight of edge a-b.
func (g *Graph) Weight(a, b string) (float64, bool) {
	n, ok := g.nodes[a]
	if !ok {
		return 0, false
	}
	w, ok := n.Neighbors[b]
	return w, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Names returns all node names in ascending order.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Nodes returns landmark nodes in name order.
func (g *Graph) Nodes() []domain.LandmarkNode {
	out := make([]domain.LandmarkNode, 0, len(g.nodes))
	for _, name := range g.Names() {
		out = append(out, domain.LandmarkNode{Name: name, Location: g.nodes[name].Location})
	}
	return out
}

// Skipped returns the names of records excluded for malformed coordinates.
func (g *Graph) Skipped() []string { return slices.Clone(g.skipped) }

// location resolves a path name to its coordinates.
func (g *Graph) location(name string) (domain.Coordinates, error) {
	n, ok := g.nodes[name]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n.Location, nil
}
