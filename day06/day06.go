// Day 6: Trash Compactor.
package main

import (
	"strings"

	"github.com/advent2025/aoc"
)

var solution = aoc.Solution[worksheet]{
	Day:   6,
	Parse: parse,
	Part1: part1,
	Part2: part2,
}

// problem is the character columns [start, end) of one worksheet problem.
type problem struct {
	start, end int
	op         string
}

type worksheet struct {
	rows     aoc.Grid[rune] // number rows, operator row excluded
	cols     aoc.Grid[rune] // rows transposed
	problems []problem
}

func parse(input string) worksheet {
	g := aoc.ParseGrid(input)
	if len(g) == 0 {
		return worksheet{}
	}
	ws := worksheet{rows: g[:len(g)-1]}
	ws.cols = ws.rows.Transpose()
	ops := g[len(g)-1]
	start := -1
	for x, col := range g.Transpose() {
		blank := strings.TrimSpace(string(col)) == ""
		switch {
		case !blank && start < 0:
			start = x
		case blank && start >= 0:
			ws.problems = append(ws.problems, newProblem(ops, start, x))
			start = -1
		}
	}
	if start >= 0 {
		ws.problems = append(ws.problems, newProblem(ops, start, len(ops)))
	}
	return ws
}

func newProblem(ops []rune, start, end int) problem {
	return problem{
		start: start,
		end:   end,
		op:    strings.TrimSpace(string(ops[start:end])),
	}
}

func (p problem) apply(nums []int) int {
	switch p.op {
	case "+":
		return aoc.Sum(nums...)
	case "*":
		return aoc.Product(nums...)
	}
	return 0
}

// rowNumbers reads one number per row, the way humans do.
func (ws worksheet) rowNumbers(p problem) []int {
	var nums []int
	for _, row := range ws.rows {
		if s := strings.TrimSpace(string(row[p.start:p.end])); s != "" {
			nums = append(nums, aoc.Int(s))
		}
	}
	return nums
}

// columnNumbers reads one number per character column, right to left,
// with the most significant digit at the top.
func (ws worksheet) columnNumbers(p problem) []int {
	var nums []int
	for x := min(p.end, len(ws.cols)) - 1; x >= p.start; x-- {
		var ds []int
		for _, c := range ws.cols[x] {
			if aoc.IsDigit(c) {
				ds = append(ds, aoc.Digit(c))
			}
		}
		if len(ds) > 0 {
			nums = append(nums, aoc.FromDigits(ds))
		}
	}
	return nums
}

func (ws worksheet) grandTotal(read func(worksheet, problem) []int) int {
	total := 0
	for _, p := range ws.problems {
		total += p.apply(read(ws, p))
	}
	return total
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func part1(ws worksheet) any {
	return ws.grandTotal(worksheet.rowNumbers)
}

// want=3263827
func part2(ws worksheet) any {
	return ws.grandTotal(worksheet.columnNumbers)
}
