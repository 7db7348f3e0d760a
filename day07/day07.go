// Day 7: Laboratories.
package main

import (
	"fmt"

	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[manifold]{
	Day:   7,
	Parse: parse,
	Part1: part1,
	Part2: part2,
}

const (
	start    = 'S'
	space    = '.'
	splitter = '^'
)

type manifold struct {
	g     aoc.Grid[rune]
	start aoc.Pt
}

func parse(input string) manifold {
	g := aoc.ParseGrid(input)
	s, ok := aoc.Find(g, start)
	if !ok {
		panic(fmt.Sprintf("no %q in manifold", start))
	}
	return manifold{g: g, start: s}
}

// down returns the cell below p, or false if the beam leaves the manifold.
func (m manifold) down(p aoc.Pt) (aoc.Pt, rune, bool) {
	next, ok := m.g.Move(aoc.Path{Pt: p, Dir: aoc.Down})
	if !ok {
		return aoc.Pt{}, 0, false
	}
	return next.Pt, m.g.At(next.Pt), true
}

// sides returns the in-bounds cells left and right of p.
func (m manifold) sides(p aoc.Pt) []aoc.Pt {
	var out []aoc.Pt
	for _, dir := range []aoc.Direction{aoc.Left, aoc.Right} {
		if next, ok := m.g.Move(aoc.Path{Pt: p, Dir: dir}); ok {
			out = append(out, next.Pt)
		}
	}
	return out
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func part1(m manifold) any {
	split := make(map[aoc.Pt]bool)
	visited := map[aoc.Pt]bool{m.start: true}
	q := aoc.NewQueue(m.start)
	q.While(func(p aoc.Pt) bool {
		next, c, ok := m.down(p)
		if !ok || visited[next] {
			return true
		}
		visited[next] = true
		switch c {
		case space, start:
			q.Push(next)
		case splitter:
			split[next] = true
			for _, s := range m.sides(next) {
				q.Push(s)
			}
		}
		return true
	})
	return len(split)
}

// want=40
func part2(m manifold) any {
	memo := make(map[aoc.Pt]int)
	var timelines func(p aoc.Pt) int
	timelines = func(p aoc.Pt) int {
		if n, ok := memo[p]; ok {
			return n
		}
		next, c, ok := m.down(p)
		n := 1
		if ok {
			switch c {
			case space, start:
				n = timelines(next)
			case splitter:
				n = timelines(next.Add(aoc.Pt{X: -1})) + timelines(next.Add(aoc.Pt{X: 1}))
			}
		}
		memo[p] = n
		return n
	}
	return timelines(m.start)
}
