// Day 5: Cafeteria.
package main

import (
	"cmp"
	"slices"

	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[inventory]{
	Day:   5,
	Parse: parse,
	Part1: part1,
	Part2: part2,
}

// span is an inclusive range of fresh ingredient IDs.
type span struct {
	lo, hi int
}

func (s span) contains(id int) bool { return s.lo <= id && id <= s.hi }

func (s span) len() int { return s.hi - s.lo + 1 }

type inventory struct {
	fresh []span
	ids   []int
}

// parse reads the fresh ranges and, after a blank line, the available
// ingredient IDs. The IDs may be absent.
func parse(input string) inventory {
	var inv inventory
	paras := aoc.Paragraphs(input)
	if len(paras) == 0 {
		return inv
	}
	for _, line := range aoc.Lines(paras[0]) {
		lo, hi := aoc.Split(line, "-")
		inv.fresh = append(inv.fresh, span{aoc.Int(lo), aoc.Int(hi)})
	}
	if len(paras) > 1 {
		inv.ids = aoc.Ints(aoc.Lines(paras[1])...)
	}
	return inv
}

// merge returns the union of spans as sorted, disjoint spans. Touching
// spans are joined.
func merge(spans []span) []span {
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b span) int {
		if c := cmp.Compare(a.lo, b.lo); c != 0 {
			return c
		}
		return cmp.Compare(a.hi, b.hi)
	})
	var out []span
	for _, s := range sorted {
		if n := len(out); n > 0 && s.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, s.hi)
			continue
		}
		out = append(out, s)
	}
	return out
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func part1(inv inventory) any {
	n := 0
	for _, id := range inv.ids {
		if slices.ContainsFunc(inv.fresh, func(s span) bool { return s.contains(id) }) {
			n++
		}
	}
	return n
}

// want=14
func part2(inv inventory) any {
	total := 0
	for _, s := range merge(inv.fresh) {
		total += s.len()
	}
	return total
}
