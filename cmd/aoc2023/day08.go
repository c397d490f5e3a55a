package main

import (
	"log"
	"slices"
	"strings"

	"github.com/advent-go/aoc"
)

type fork struct {
	left, right string
}

type network struct {
	turns string
	nodes map[string]fork
}

func (s solver) network() network {
	lines := s.Lines()
	if len(lines) < 3 {
		log.Fatalf("network too short: %d lines", len(lines))
	}
	n := network{
		turns: strings.TrimSpace(lines[0]),
		nodes: make(map[string]fork),
	}
	for _, c := range n.turns {
		if c != 'L' && c != 'R' {
			log.Fatalf("invalid direction %q", c)
		}
	}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		name, rest := aoc.Cut(line, " = ")
		left, right := aoc.Cut(strings.Trim(rest, "()"), ", ")
		n.nodes[name] = fork{left, right}
	}
	return n
}

func (n network) step(node string, i int) string {
	f, ok := n.nodes[node]
	if !ok {
		log.Fatalf("unknown node %q", node)
	}
	if n.turns[i%len(n.turns)] == 'L' {
		return f.left
	}
	return f.right
}

/*
want=6

	LLR

	AAA = (BBB, BBB)
	BBB = (AAA, ZZZ)
	ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	n := s.network()
	steps := 0
	for node := "AAA"; node != "ZZZ"; steps++ {
		node = n.step(node, steps)
	}
	return steps
}

// loopLength walks from start until it has reached the same Z node twice,
// and returns the number of steps between those visits.
func (n network) loopLength(start string) int {
	seen := make(map[string]int)
	node := start
	for steps := 0; ; {
		node = n.step(node, steps)
		steps++
		if !strings.HasSuffix(node, "Z") {
			continue
		}
		if prev, ok := seen[node]; ok {
			return steps - prev
		}
		seen[node] = steps
	}
}

/*
want=6

	LR

	11A = (11B, XXX)
	11B = (XXX, 11Z)
	11Z = (11B, XXX)
	22A = (22B, XXX)
	22B = (22C, 22C)
	22C = (22Z, 22Z)
	22Z = (22B, 22B)
	XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	n := s.network()
	var loops []int
	for node := range n.nodes {
		if strings.HasSuffix(node, "A") {
			loops = append(loops, n.loopLength(node))
		}
	}
	slices.Sort(loops)
	s.Debugf("loop lengths: %v", loops)
	return aoc.LCM(loops...)
}
