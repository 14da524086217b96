package routing

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
	"sync"
)

const defaultCacheLimit = 256

// pathKey is an ordered (start, end) pair; (a, b) and (b, a) are distinct.
type pathKey struct {
	start string
	end   string
}

// RouteFinder runs A* searches over a single Graph and memoizes resolved
// paths per ordered endpoint pair. It is safe for concurrent use.
type RouteFinder struct {
	graph *Graph

	mu       sync.Mutex
	cache    map[pathKey][]string
	order    []pathKey // insertion order, oldest first
	limit    int
	searches int
}

// FinderOption customizes a RouteFinder.
type FinderOption func(*RouteFinder)

// WithCacheLimit bounds the number of memoized paths. When full, the oldest
// entry is evicted. A limit of zero disables memoization.
func WithCacheLimit(n int) FinderOption {
	return func(f *RouteFinder) {
		if n >= 0 {
			f.limit = n
		}
	}
}

func NewRouteFinder(g *Graph, opts ...FinderOption) *RouteFinder {
	f := &RouteFinder{
		graph: g,
		cache: make(map[pathKey][]string),
		limit: defaultCacheLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find returns a minimum-cost path from start to end.
//
// The heuristic is the straight-line distance to the goal. Every edge weight
// is a straight-line distance scaled by a road factor of at least 1, so the
// heuristic is admissible and consistent: the first time a node is popped its
// cost is final, and the path returned is optimal.
func (f *RouteFinder) Find(start, end string) ([]string, error) {
	if !f.graph.Has(start) {
		return nil, fmt.Errorf("find path: start %q: %w", start, ErrUnknownNode)
	}
	if !f.graph.Has(end) {
		return nil, fmt.Errorf("find path: end %q: %w", end, ErrUnknownNode)
	}

	key := pathKey{start: start, end: end}

	f.mu.Lock()
	if cached, ok := f.cache[key]; ok {
		f.mu.Unlock()
		return slices.Clone(cached), nil
	}
	f.searches++
	f.mu.Unlock()

	path, err := f.search(start, end)
	if err != nil {
		return nil, err
	}

	f.store(key, path)
	return slices.Clone(path), nil
}

func (f *RouteFinder) store(key pathKey, path []string) {
	if f.limit == 0 {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.cache[key]; ok {
		return
	}
	for len(f.order) >= f.limit {
		oldest := f.order[0]
		f.order = f.order[1:]
		delete(f.cache, oldest)
	}
	f.cache[key] = path
	f.order = append(f.order, key)
}

func (f *RouteFinder) search(start, goal string) ([]string, error) {
	goalLoc := f.graph.nodes[goal].Location.Geo()
	h := func(name string) float64 {
		return f.graph.nodes[name].Location.Geo().DistanceKm(goalLoc)
	}

	g := map[string]float64{start: 0}
	cameFrom := make(map[string]string)
	closed := make(map[string]bool)

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{name: start, f: h(start)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem).name

		// Stale entries are discarded here rather than removed on relax.
		if closed[current] {
			continue
		}
		closed[current] = true

		if current == goal {
			return reconstruct(cameFrom, start, goal), nil
		}

		for neighbor, w := range f.graph.nodes[current].Neighbors {
			if closed[neighbor] {
				continue
			}

			tentative := g[current] + w
			if best, seen := g[neighbor]; seen && tentative >= best {
				continue
			}

			g[neighbor] = tentative
			cameFrom[neighbor] = current
			heap.Push(open, &openItem{name: neighbor, f: tentative + h(neighbor)})
		}
	}

	return nil, fmt.Errorf("find path %q -> %q: %w", start, goal, ErrNoPathFound)
}

func reconstruct(cameFrom map[string]string, start, goal string) []string {
	path := []string{goal}
	for at := goal; at != start; {
		at = cameFrom[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}

// Cost sums the edge weights along path. Consecutive names without a direct
// edge (for example after augmentation) contribute their straight-line distance.
func (f *RouteFinder) Cost(path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		if w, ok := f.graph.Weight(path[i], path[i+1]); ok {
			total += w
			continue
		}
		a, okA := f.graph.Node(path[i])
		b, okB := f.graph.Node(path[i+1])
		if !okA || !okB {
			return math.Inf(1)
		}
		total += a.Location.Geo().DistanceKm(b.Location.Geo())
	}
	return total
}

type openItem struct {
	name string
	f    float64
}

// openSet is a min-heap on f; ties break by name to keep searches deterministic.
type openSet []*openItem

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].name < s[j].name
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(*openItem)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return item
}
