// Day 8: Playground.
package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[playground]{
	Day:   8,
	Parse: parse,
	Part1: part1,
	Part2: part2,
	SampleSetup: func(pg playground) playground {
		pg.connections = 10
		return pg
	},
}

type playground struct {
	boxes []aoc.Pt3Int
	// connections is how many of the closest pairs part1 wires up.
	connections int
}

func parse(input string) playground {
	pg := playground{connections: 1000}
	for _, line := range aoc.Lines(input) {
		xyz := aoc.Ints(strings.Split(line, ",")...)
		if len(xyz) != 3 {
			panic("bad junction box: " + line)
		}
		pg.boxes = append(pg.boxes, aoc.Pt3Int{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return pg
}

type pair struct {
	a, b  int // indexes into boxes, a < b
	dist2 int
}

// pairs returns every pair of boxes, closest first.
func (pg playground) pairs() []pair {
	n := len(pg.boxes)
	out := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, pair{i, j, pg.boxes[i].Dist2(pg.boxes[j])})
		}
	}
	slices.SortFunc(out, func(x, y pair) int {
		if c := cmp.Compare(x.dist2, y.dist2); c != 0 {
			return c
		}
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})
	return out
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func part1(pg playground) any {
	var g aoc.Graph[int]
	for i := range pg.boxes {
		g.AddNode(i)
	}
	ps := pg.pairs()
	for _, p := range ps[:min(pg.connections, len(ps))] {
		g.AddEdge(p.a, p.b, p.dist2)
	}
	var sizes []int
	for _, c := range g.Components() {
		sizes = append(sizes, len(c))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return aoc.Product(sizes[:min(3, len(sizes))]...)
}

// want=25272
func part2(pg playground) any {
	ds := aoc.NewDisjointSet(len(pg.boxes))
	for _, p := range pg.pairs() {
		if ds.Union(p.a, p.b) && ds.Sets() == 1 {
			return pg.boxes[p.a].X * pg.boxes[p.b].X
		}
	}
	return -1
}
