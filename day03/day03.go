// Day 3: Lobby.
package main

import (
	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[[][]int]{
	Day:   3,
	Parse: parse,
	Part1: part1,
	Part2: part2,
}

// parse returns the joltage ratings of each battery bank.
func parse(input string) [][]int {
	var banks [][]int
	for _, line := range aoc.Lines(input) {
		banks = append(banks, aoc.Digits(line))
	}
	return banks
}

// maxJoltage returns the largest number formed by switching on exactly k
// batteries of bank, keeping their order. It is 0 if the bank has fewer
// than k batteries.
func maxJoltage(bank []int, k int) int {
	if k > len(bank) {
		return 0
	}
	var st aoc.Stack[int]
	drop := len(bank) - k
	for _, d := range bank {
		for drop > 0 {
			top, ok := st.Peek()
			if !ok || top >= d {
				break
			}
			st.Pop()
			drop--
		}
		st.Push(d)
	}
	return aoc.FromDigits(st.Bottom(k))
}

func totalJoltage(banks [][]int, k int) int {
	total := 0
	for _, b := range banks {
		total += maxJoltage(b, k)
	}
	return total
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func part1(banks [][]int) any {
	return totalJoltage(banks, 2)
}

// want=3121910778619
func part2(banks [][]int) any {
	return totalJoltage(banks, 12)
}
