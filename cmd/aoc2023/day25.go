package main

import (
	"log"
	"strings"

	"github.com/advent-go/aoc"
)

func (s solver) wiring() *aoc.Graph[string] {
	g := new(aoc.Graph[string])
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		name, conns := aoc.Cut(line, ": ")
		for _, c := range strings.Fields(conns) {
			g.AddEdge(name, c, 1)
		}
	})
	return g
}

/*
want=54

	jqt: rhn xhk nvd
	rsh: frs pzl lsr
	xhk: hfx
	cmg: qnr nvd lhk bvb
	rhn: xhk bvb hfx
	bvb: xhk hfx
	pzl: lsr hfx nvd
	qnr: nvd
	ntq: jqt hfx bvb xhk
	nvd: lhk
	lsr: lhk
	rzs: qnr cmg lsr rsh
	frs: qnr lhk lsr
*/
func (s solver) D25p1() any {
	g := s.wiring()
	cut := g.MinCut()
	if len(cut) != 3 {
		log.Fatalf("minimum cut has %d wires, want 3", len(cut))
	}
	s.Log().Debug("cutting", "wires", cut)
	for _, e := range cut {
		g.RemoveEdge(e.A, e.B)
	}
	n := len(g.ReachableNodes(cut[0].A))
	return n * (len(g.Nodes) - n)
}
