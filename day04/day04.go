// Day 4: Printing Department.
package main

import (
	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[aoc.Grid[rune]]{
	Day:   4,
	Parse: aoc.ParseGrid,
	Part1: part1,
	Part2: part2,
}

const (
	roll  = '@'
	empty = '.'

	// A forklift can reach a roll with fewer than this many rolls around it.
	crowded = 4
)

// accessible returns the rolls a forklift can reach, in row-major order.
func accessible(g aoc.Grid[rune]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, c rune) {
		if c == roll && aoc.CountNeighbors(g, p, roll) < crowded {
			out = append(out, p)
		}
	})
	return out
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func part1(g aoc.Grid[rune]) any {
	return len(accessible(g))
}

// want=43
func part2(g aoc.Grid[rune]) any {
	g = g.Clone()
	removed := 0
	for {
		before := g.Hash()
		for _, p := range accessible(g) {
			g.Set(p, empty)
			removed++
		}
		if g.Hash() == before {
			return removed
		}
	}
}
