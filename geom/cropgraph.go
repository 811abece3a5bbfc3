package geom

import (
	"slices"
	"sort"
)

// The boolean engine builds a directed graph over the vertices of both
// polygons plus every pairwise edge intersection, then prunes nodes and edges
// by containment and walks the remaining cycles. Vertices live in an arena
// and are referenced by integer handles, so edges never hold pointers into
// each other and adjacency stays a plain map.
//
// Determinism: handles are assigned in insertion order, but every iteration
// that picks a node or edge does so in lexicographic (x, then y) point order,
// so identical inputs always yield identical output regardless of map
// iteration order.

type cropOp int

const (
	opIntersection cropOp = iota
	opDifference
	opUnion
)

type cropGraph struct {
	tol  Tolerance
	a, b Polygon

	arena []Point
	out   map[int]map[int]bool
	in    map[int]map[int]bool
}

func newCropGraph(a, b Polygon, tol Tolerance) *cropGraph {
	// Scale the epsilon to the joint magnitude of the inputs so containment
	// and snapping agree with the segment intersector.
	diag := a.Bounds().Union(b.Bounds()).Diagonal()
	return &cropGraph{
		tol: tol.Scaled(diag),
		a:   a,
		b:   b,
		out: make(map[int]map[int]bool),
		in:  make(map[int]map[int]bool),
	}
}

// handle returns the arena handle for pt, snapping to a previously seen
// vertex when one lies within the tolerance. Points are compared fuzzily, so
// they can't be map keys themselves; the arena scan keeps equality and
// hashing consistent.
func (g *cropGraph) handle(pt Point) int {
	for i, extant := range g.arena {
		if g.tol.EqPoint(extant, pt) {
			return i
		}
	}
	g.arena = append(g.arena, pt)
	return len(g.arena) - 1
}

func (g *cropGraph) addEdge(from, to int) {
	if from == to {
		return
	}
	if g.out[from] == nil {
		g.out[from] = make(map[int]bool)
	}
	if g.in[to] == nil {
		g.in[to] = make(map[int]bool)
	}
	g.out[from][to] = true
	g.in[to][from] = true
}

func (g *cropGraph) removeEdge(from, to int) {
	delete(g.out[from], to)
	delete(g.in[to], from)
}

func (g *cropGraph) removeNode(n int) {
	for to := range g.out[n] {
		delete(g.in[to], n)
	}
	for from := range g.in[n] {
		delete(g.out[from], n)
	}
	delete(g.out, n)
	delete(g.in, n)
}

// sortedNodes returns every node that still has an edge, in lexicographic
// point order.
func (g *cropGraph) sortedNodes() []int {
	seen := make(map[int]bool)
	var nodes []int
	for n, tos := range g.out {
		if len(tos) > 0 && !seen[n] {
			seen[n] = true
			nodes = append(nodes, n)
		}
	}
	for n, froms := range g.in {
		if len(froms) > 0 && !seen[n] {
			seen[n] = true
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		return g.arena[nodes[i]].Less(g.arena[nodes[j]])
	})
	return nodes
}

func (g *cropGraph) sortedEdges() [][2]int {
	var edges [][2]int
	for from, tos := range g.out {
		for to := range tos {
			edges = append(edges, [2]int{from, to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if c := g.arena[edges[i][0]].Compare(g.arena[edges[j][0]]); c != 0 {
			return c < 0
		}
		return g.arena[edges[i][1]].Less(g.arena[edges[j][1]])
	})
	return edges
}

// build subdivides every edge of both polygons at its intersections with the
// other polygon and inserts the pieces. For a difference, the subtrahend's
// edges are flipped so that walking the pruned graph traces the result with
// a consistent orientation.
func (g *cropGraph) build(op cropOp) {
	polys := [2]Polygon{g.a, g.b}
	for which, this := range polys {
		that := polys[1-which]
		for _, sg := range this.Segments() {
			if which == 1 && op == opDifference {
				sg = sg.Reversed()
			}
			g.insertSubdivided(sg, that)
		}
	}
}

func (g *cropGraph) insertSubdivided(sg Segment, that Polygon) {
	type cut struct {
		t  float64
		pt Point
	}
	var cuts []cut
	for _, osg := range that.Segments() {
		if isxn, ok := sg.Intersect(osg, g.tol); ok {
			cuts = append(cuts, cut{t: isxn.T, pt: isxn.Point})
		}
	}
	sort.Slice(cuts, func(i, j int) bool {
		if cuts[i].t != cuts[j].t {
			return cuts[i].t < cuts[j].t
		}
		return cuts[i].pt.Less(cuts[j].pt)
	})

	prev := g.handle(sg.P0)
	for _, c := range cuts {
		next := g.handle(c.pt)
		g.addEdge(prev, next)
		prev = next
	}
	g.addEdge(prev, g.handle(sg.P1))
}

// prune removes the nodes and edges that can't lie on the result boundary
// for the given operation.
func (g *cropGraph) prune(op cropOp) {
	switch op {
	case opIntersection:
		g.removeNodesWhere(func(pt Point) bool { return g.a.Location(pt, g.tol) == LocOutside })
		g.removeNodesWhere(func(pt Point) bool { return g.b.Location(pt, g.tol) == LocOutside })
		g.removeEdgesWhere(func(mid Point) bool { return g.a.Location(mid, g.tol) == LocOutside })
		g.removeEdgesWhere(func(mid Point) bool { return g.b.Location(mid, g.tol) == LocOutside })
	case opDifference:
		g.removeNodesWhere(func(pt Point) bool { return g.a.Location(pt, g.tol) == LocOutside })
		g.removeNodesWhere(func(pt Point) bool { return g.b.Location(pt, g.tol) == LocInside })
		g.removeEdgesWhere(func(mid Point) bool { return g.a.Location(mid, g.tol) == LocOutside })
		g.removeEdgesWhere(func(mid Point) bool { return g.b.Location(mid, g.tol) == LocInside })
	case opUnion:
		g.removeNodesWhere(func(pt Point) bool { return g.a.Location(pt, g.tol) == LocInside })
		g.removeNodesWhere(func(pt Point) bool { return g.b.Location(pt, g.tol) == LocInside })
		g.removeEdgesWhere(func(mid Point) bool { return g.a.Location(mid, g.tol) == LocInside })
		g.removeEdgesWhere(func(mid Point) bool { return g.b.Location(mid, g.tol) == LocInside })
	}
	g.removeStubs()
	g.removeDualEdges()
	g.removeOrphans()
}

func (g *cropGraph) removeNodesWhere(cond func(pt Point) bool) {
	for _, n := range g.sortedNodes() {
		if cond(g.arena[n]) {
			g.removeNode(n)
		}
	}
}

func (g *cropGraph) removeEdgesWhere(cond func(mid Point) bool) {
	for _, e := range g.sortedEdges() {
		if cond(g.arena[e[0]].Midpoint(g.arena[e[1]])) {
			g.removeEdge(e[0], e[1])
		}
	}
}

// removeStubs drops nodes whose only in- and out-neighbor is the same node,
// i.e. dead-end spurs that bounce straight back.
func (g *cropGraph) removeStubs() {
	for {
		removed := false
		for _, n := range g.sortedNodes() {
			if len(g.in[n]) == 1 && len(g.out[n]) == 1 {
				var from, to int
				for f := range g.in[n] {
					from = f
				}
				for t := range g.out[n] {
					to = t
				}
				if from == to {
					g.removeNode(n)
					removed = true
				}
			}
		}
		if !removed {
			return
		}
	}
}

// removeDualEdges drops edge pairs that traverse the same two nodes in both
// directions. These arise where the two inputs share a boundary stretch; the
// shared stretch is interior to the result and must not survive.
func (g *cropGraph) removeDualEdges() {
	for _, e := range g.sortedEdges() {
		if g.out[e[1]][e[0]] && g.out[e[0]][e[1]] {
			g.removeEdge(e[0], e[1])
			g.removeEdge(e[1], e[0])
		}
	}
}

// removeOrphans drops nodes missing either an incoming or an outgoing edge,
// iterating until the graph is stable.
func (g *cropGraph) removeOrphans() {
	for {
		removed := false
		for _, n := range g.sortedNodes() {
			if len(g.in[n]) == 0 || len(g.out[n]) == 0 {
				g.removeNode(n)
				removed = true
			}
		}
		if !removed {
			return
		}
	}
}

// extract walks and consumes one cycle, preferring branch nodes as starting
// points so that figure-eight graphs split cleanly. It returns false once no
// edges remain.
func (g *cropGraph) extract() ([]Point, bool) {
	nodes := g.sortedNodes()
	if len(nodes) == 0 {
		return nil, false
	}
	start := -1
	for _, n := range nodes {
		if len(g.out[n]) > 1 {
			start = n
			break
		}
	}
	if start == -1 {
		for _, n := range nodes {
			if len(g.out[n]) > 0 {
				start = n
				break
			}
		}
	}
	if start == -1 {
		return nil, false
	}

	var handles []int
	cur := start
	for !slices.Contains(handles, cur) {
		handles = append(handles, cur)
		next := g.pickNext(cur, handles)
		if next == -1 {
			break
		}
		g.removeEdge(cur, next)
		cur = next
	}
	g.removeOrphans()

	pts := make([]Point, len(handles))
	for i, h := range handles {
		pts[i] = g.arena[h]
	}
	return pts, true
}

// pickNext chooses the next node of a cycle walk. At a branch it prefers an
// unvisited neighbor, then a vertex of the first input, then the
// lexicographically smallest point.
func (g *cropGraph) pickNext(cur int, visited []int) int {
	var candidates []int
	for to := range g.out[cur] {
		candidates = append(candidates, to)
	}
	if len(candidates) == 0 {
		return -1
	}
	sort.Slice(candidates, func(i, j int) bool {
		return g.arena[candidates[i]].Less(g.arena[candidates[j]])
	})
	if len(candidates) == 1 {
		return candidates[0]
	}
	unvisited := candidates[:0:0]
	for _, c := range candidates {
		if !slices.Contains(visited, c) {
			unvisited = append(unvisited, c)
		}
	}
	if len(unvisited) == 1 {
		return unvisited[0]
	}
	if len(unvisited) > 1 {
		candidates = unvisited
	}
	for _, c := range candidates {
		if g.onOriginal(g.a, c) {
			return c
		}
	}
	return candidates[0]
}

func (g *cropGraph) onOriginal(pg Polygon, n int) bool {
	pt := g.arena[n]
	for _, v := range pg.pts {
		if g.tol.EqPoint(v, pt) {
			return true
		}
	}
	return false
}

// dropCollinear removes ring vertices that sit on the straight line between
// their neighbors. Subdivision points survive the graph wherever the two
// inputs shared a boundary stretch; they carry no information about the
// result's shape.
func dropCollinear(pts []Point, tol Tolerance) []Point {
	if len(pts) < 3 {
		return pts
	}
	out := pts[:0:0]
	for i, cur := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		next := pts[(i+1)%len(pts)]
		u := cur.Sub(prev).Normalize()
		w := next.Sub(cur).Normalize()
		if tol.IsZero(u.Cross(w)) && u.Dot(w) > 0 {
			continue
		}
		out = append(out, cur)
	}
	return out
}

// run executes the full boolean operation and collects the resulting rings,
// discarding degenerate slivers.
func (g *cropGraph) run(op cropOp) []Polygon {
	g.build(op)
	g.prune(op)

	areaEps := g.tol.epsilon()
	var out []Polygon
	for {
		pts, ok := g.extract()
		if !ok {
			break
		}
		pg, err := NewPolygon(dropCollinear(pts, g.tol))
		if err != nil {
			continue // collinear or otherwise degenerate ring
		}
		if pg.SignedArea() <= areaEps {
			continue
		}
		out = append(out, pg.Canonical())
	}
	return out
}
