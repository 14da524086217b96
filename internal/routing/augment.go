package routing

import (
	"cmp"
	"landmark-route-service/internal/geo"
	"slices"
)

// Defaults used when augmenting a computed route.
const (
	DefaultMaxAdditions     = 3
	DefaultAugmentThreshold = 0.35 // km
)

type insertion struct {
	after int // index in the original path the landmark follows
	name  string
	km    float64
}

// Augment returns a copy of path with up to maxAdditions landmarks inserted
// that lie within thresholdKm of one of its segments.
//
// Candidates are taken closest first. Each is placed directly after the
// segment start that produced it; later positions shift for every landmark
// already inserted at or before the same segment. The graph is not modified.
func Augment(g *Graph, path []string, maxAdditions int, thresholdKm float64) []string {
	out := slices.Clone(path)
	if len(path) < 2 || maxAdditions <= 0 {
		return out
	}

	onPath := make(map[string]bool, len(path))
	for _, name := range path {
		onPath[name] = true
	}

	names := g.Names()

	var cands []insertion
	for i := 0; i+1 < len(path); i++ {
		a, okA := g.Node(path[i])
		b, okB := g.Node(path[i+1])
		if !okA || !okB {
			continue
		}
		for _, name := range names {
			if onPath[name] {
				continue
			}
			d := geo.SegmentDistanceKm(g.nodes[name].Location.Geo(), a.Location.Geo(), b.Location.Geo())
			if d <= thresholdKm {
				cands = append(cands, insertion{after: i, name: name, km: d})
			}
		}
	}

	slices.SortStableFunc(cands, func(x, y insertion) int {
		return cmp.Compare(x.km, y.km)
	})

	var done []insertion
	for _, c := range cands {
		if len(done) >= maxAdditions {
			break
		}
		if onPath[c.name] {
			continue
		}

		shift := 0
		for _, d := range done {
			if d.after <= c.after {
				shift++
			}
		}

		out = slices.Insert(out, c.after+1+shift, c.name)
		onPath[c.name] = true
		done = append(done, c)
	}

	return out
}
