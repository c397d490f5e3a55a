package main

import (
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/advent-go/aoc"
)

type pulse struct {
	from, to string
	high     bool
}

// module is a flip-flop ('%'), a conjunction ('&') or the broadcaster ('b').
type module struct {
	kind    byte
	outputs []string
	on      bool
	memory  map[string]bool // last pulse from each input of a conjunction
}

func (s solver) modules() map[string]*module {
	mods := make(map[string]*module)
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		name, outs := aoc.Cut(line, " -> ")
		m := &module{outputs: strings.Split(outs, ", ")}
		switch {
		case name == "broadcaster":
			m.kind = 'b'
		case name[0] == '%':
			m.kind, name = '%', name[1:]
		case name[0] == '&':
			m.kind, name = '&', name[1:]
			m.memory = make(map[string]bool)
		default:
			log.Fatalf("invalid module %q", name)
		}
		mods[name] = m
	})
	for name, m := range mods {
		for _, out := range m.outputs {
			if c, ok := mods[out]; ok && c.kind == '&' {
				c.memory[name] = false
			}
		}
	}
	return mods
}

// press sends a low pulse to the broadcaster and delivers pulses in the
// order they are sent until the network settles. seen is called on each.
func press(mods map[string]*module, seen func(pulse)) {
	q := aoc.NewQueue(pulse{from: "button", to: "broadcaster"})
	q.While(func(p pulse) bool {
		seen(p)
		m, ok := mods[p.to]
		if !ok {
			return true
		}
		high := p.high
		switch m.kind {
		case '%':
			if p.high {
				return true
			}
			m.on = !m.on
			high = m.on
		case '&':
			m.memory[p.from] = p.high
			high = slices.Contains(slices.Collect(maps.Values(m.memory)), false)
		}
		for _, out := range m.outputs {
			q.Push(pulse{from: p.to, to: out, high: high})
		}
		return true
	})
}

/*
want=32000000

	broadcaster -> a, b, c
	%a -> b
	%b -> c
	%c -> inv
	&inv -> a
*/
func (s solver) D20p1() any {
	mods := s.modules()
	var low, high int
	for range 1000 {
		press(mods, func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return low * high
}

// want=???
func (s solver) D20p2() any {
	mods := s.modules()
	var feed string
	for name, m := range mods {
		if slices.Contains(m.outputs, "rx") {
			feed = name
		}
	}
	if feed == "" || mods[feed].kind != '&' {
		log.Fatal("rx is not fed by a conjunction")
	}

	// rx gets a low pulse once every input of its feed is high in the same
	// press. Each input turns high on its own cycle.
	first := make(map[string]int)
	for presses := 1; len(first) < len(mods[feed].memory); presses++ {
		press(mods, func(p pulse) {
			if _, ok := first[p.from]; !ok && p.to == feed && p.high {
				first[p.from] = presses
			}
		})
	}
	s.Log().Debug("rx cycles", "feed", feed, "first", first)
	return aoc.LCM(slices.Collect(maps.Values(first))...)
}
