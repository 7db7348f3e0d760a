package main

import (
	_ "embed"

	"github.com/advent2025/aoc"
)

//go:embed day06.go
var source []byte

func main() {
	aoc.Main(source, solution)
}
