// Day 2: Gift Shop.
package main

import (
	"strconv"
	"strings"

	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[[]idRange]{
	Day:   2,
	Parse: parse,
	Part1: part1,
	Part2: part2,
}

// idRange is an inclusive range of product IDs.
type idRange struct {
	lo, hi int
}

func parse(input string) []idRange {
	var out []idRange
	for _, f := range strings.Split(strings.TrimSpace(input), ",") {
		lo, hi := aoc.Split(strings.TrimSpace(f), "-")
		out = append(out, idRange{aoc.Int(lo), aoc.Int(hi)})
	}
	return out
}

func sumInvalid(rs []idRange, invalid func(string) bool) int {
	total := 0
	for _, r := range rs {
		for id := r.lo; id <= r.hi; id++ {
			if invalid(strconv.Itoa(id)) {
				total += id
			}
		}
	}
	return total
}

// repeatedTwice reports whether s is some digit sequence written twice.
func repeatedTwice(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	half := len(s) / 2
	return s[:half] == s[half:]
}

// repeated reports whether s is some digit sequence written two or more
// times.
func repeated(s string) bool {
	n := len(s)
	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		if strings.Repeat(s[:size], n/size) == s {
			return true
		}
	}
	return false
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func part1(rs []idRange) any {
	return sumInvalid(rs, repeatedTwice)
}

// want=4174379265
func part2(rs []idRange) any {
	return sumInvalid(rs, repeated)
}
