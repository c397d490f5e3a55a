package aoc

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph keyed by any comparable node type. Edges[a][b]
// is the cost of moving from a to b. Undirected edges are stored in both
// directions.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds a directed edge from a to b. If the arc already exists, the
// cheaper cost wins. It panics if cost is negative.
func (g *Graph[K]) AddArc(a, b K, cost int) {
	if cost < 0 {
		panic(fmt.Sprintf("aoc: negative cost %d from %v to %v", cost, a, b))
	}
	InitMap(&g.Nodes)
	InitMap(&g.Edges)
	g.Nodes[a] = true
	g.Nodes[b] = true
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if old, ok := g.Edges[a][b]; ok && old <= cost {
		return
	}
	g.Edges[a][b] = cost
}

// AddEdge adds an undirected edge between a and b, replacing any existing
// one.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// Explore builds the graph of everything reachable from start. moves is
// called once per discovered node and reports each outgoing arc through arc.
func Explore[K comparable](start K, moves func(from K, arc func(to K, cost int))) *Graph[K] {
	g := new(Graph[K])
	g.AddNode(start)
	var todo Stack[K]
	todo.Push(start)
	todo.While(func(from K) bool {
		moves(from, func(to K, cost int) {
			if !g.Nodes[to] {
				todo.Push(to)
			}
			g.AddArc(from, to, cost)
		})
		return true
	})
	return g
}

// ShortestPath returns the lowest total cost of reaching any node for which
// isTarget is true, starting from src. It reports false if src is not in
// the graph or no target is reachable.
func (g *Graph[K]) ShortestPath(src K, isTarget func(K) bool) (cost int, ok bool) {
	g.dijkstra(src, func(k K, d int) bool {
		if isTarget(k) {
			cost, ok = d, true
			return false
		}
		return true
	})
	return cost, ok
}

// ShortestPaths returns the lowest cost from src to every node reachable
// from it. Unreachable nodes are absent.
func (g *Graph[K]) ShortestPaths(src K) map[K]int {
	dist := make(map[K]int)
	g.dijkstra(src, func(k K, d int) bool {
		dist[k] = d
		return true
	})
	return dist
}

// dijkstra calls visit for each node reachable from src in order of
// increasing distance, stopping early if visit returns false. A node's
// distance is final when it is visited.
func (g *Graph[K]) dijkstra(src K, visit func(k K, dist int) bool) {
	if !g.Nodes[src] {
		return
	}
	pq := MinQueue[K]()
	items := map[K]*PQI[K]{src: {V: src}}
	pq.Push(items[src])
	for pq.Len() > 0 {
		cur := pq.Pop()
		if !visit(cur.V, cur.P) {
			return
		}
		for k, cost := range g.Edges[cur.V] {
			alt := cur.P + cost
			it, seen := items[k]
			switch {
			case !seen:
				it = &PQI[K]{V: k, P: alt}
				items[k] = it
				pq.Push(it)
			case it.Index() != -1 && alt < it.P:
				it.P = alt
				pq.Update(it)
			}
		}
	}
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// LongestPath returns the cost of the most expensive simple path from start
// to end.
func (g *Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g *Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer delete(visited, start)
	best := -1
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		if ok && got+v > best {
			best = got + v
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// Collapse folds away every node of an undirected graph that has exactly two
// neighbors, joining those neighbors with an edge as long as both removed
// edges together. Where the neighbors were already joined, the longer edge
// is kept. Nodes in keep are never folded, so pass the endpoints of any
// path that will be searched afterwards.
func (g *Graph[K]) Collapse(keep ...K) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || slices.Contains(keep, k1) {
				continue
			}
			var ends [2]K
			var dist int
			i := 0
			for k, v := range e {
				ends[i] = k
				dist += v
				i++
			}
			if ends[0] == k1 || ends[1] == k1 {
				continue // self-loop
			}
			trimmed = true
			g.RemoveEdge(ends[0], k1)
			g.RemoveEdge(ends[1], k1)
			delete(g.Edges, k1)
			delete(g.Nodes, k1)
			if old, ok := g.Edges[ends[0]][ends[1]]; ok && old > dist {
				dist = old
			}
			g.AddEdge(ends[0], ends[1], dist)
		}
		if !trimmed {
			break
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// MinCut calculates a minimum cut of an undirected graph using the
// Stoer-Wagner algorithm. It returns the edges crossing the cut, all
// oriented from the same side. g is not modified.
func (g *Graph[T]) MinCut() []Edge[T] {
	if len(g.Nodes) < 2 {
		return nil
	}
	var (
		g2    = g.Clone() // copy of graph to mutate
		start = AnyKey(g2.Nodes)

		// members[v] lists the original nodes merged into v.
		members = make(map[T][]T, len(g.Nodes))

		minCut = math.MaxInt
		side   []T
	)
	for k := range g.Nodes {
		members[k] = []T{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < minCut {
			minCut = w
			side = slices.Clone(members[t])
		}
		members[s] = append(members[s], members[t]...)
		delete(members, t)
		g2.merge(s, t)
	}

	in := make(map[T]bool, len(side))
	for _, v := range side {
		in[v] = true
	}
	var cuts []Edge[T]
	for _, v := range side {
		for e := range g.Edges[v] {
			if !in[e] {
				cuts = append(cuts, Edge[T]{v, e})
			}
		}
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut separating t from the rest.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int) {
	pq := MaxQueue[T]()
	pris := make(map[T]*PQI[T], len(g.Nodes))
	for k := range g.Nodes {
		i := &PQI[T]{V: k}
		if k == start {
			i.P = 1
		}
		pris[k] = i
		pq.Push(i)
	}

	for pq.Len() > 0 {
		next := pq.Pop()
		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if p.Index() != -1 {
				p.P += v
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

// merge folds t into s, summing the weights of edges they share.
func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		g.RemoveEdge(t, k)
		if k == s {
			continue
		}
		g.AddEdge(s, k, g.Edges[s][k]+tvk)
	}
	delete(g.Nodes, t)
	delete(g.Edges, t)
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("aoc: AnyKey of empty map")
}
