// Day 1: Secret Entrance.
package main

import (
	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[[]rotation]{
	Day:   1,
	Parse: parse,
	Part1: part1,
	Part2: part2,
}

const (
	dialSize  = 100
	dialStart = 50
)

// rotation turns the dial by dist clicks, left when dir is -1.
type rotation struct {
	dir  int
	dist int
}

func parse(input string) []rotation {
	var out []rotation
	for _, line := range aoc.Lines(input) {
		r := rotation{dist: aoc.Int(line[1:])}
		switch line[0] {
		case 'L':
			r.dir = -1
		case 'R':
			r.dir = 1
		default:
			panic("bad rotation: " + line)
		}
		out = append(out, r)
	}
	return out
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func part1(rs []rotation) any {
	pos, zeros := dialStart, 0
	for _, r := range rs {
		pos = aoc.Mod(pos+r.dir*r.dist, dialSize)
		if pos == 0 {
			zeros++
		}
	}
	return zeros
}

// want=6
func part2(rs []rotation) any {
	pos, zeros := dialStart, 0
	for _, r := range rs {
		zeros += zeroCrossings(pos, r)
		pos = aoc.Mod(pos+r.dir*r.dist, dialSize)
	}
	return zeros
}

// zeroCrossings returns how many clicks of r, starting at pos, leave the
// dial pointing at 0.
func zeroCrossings(pos int, r rotation) int {
	if r.dir > 0 {
		return (pos + r.dist) / dialSize
	}
	if pos == 0 {
		return r.dist / dialSize
	}
	return (r.dist - pos + dialSize) / dialSize
}
