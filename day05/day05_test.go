package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"

	"github.com/advent2025/aoc"
)

const example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32`

func TestParse(t *testing.T) {
	inv := parse(example)
	assert.Equal(t, []span{{3, 5}, {10, 14}, {16, 20}, {12, 18}}, inv.fresh)
	assert.Equal(t, []int{1, 5, 8, 11, 17, 32}, inv.ids)

	rangesOnly := parse("3-5\n10-14")
	assert.Len(t, rangesOnly.fresh, 2)
	assert.Empty(t, rangesOnly.ids)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		in   []span
		want []span
	}{
		{nil, nil},
		{[]span{{3, 5}, {10, 14}, {16, 20}, {12, 18}}, []span{{3, 5}, {10, 20}}},
		{[]span{{1, 2}, {3, 4}}, []span{{1, 4}}},
		{[]span{{1, 10}, {2, 3}}, []span{{1, 10}}},
		{[]span{{5, 6}, {1, 2}}, []span{{1, 2}, {5, 6}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, merge(tt.in), "%v", tt.in)
	}
}

func TestExample(t *testing.T) {
	inv := parse(example)
	assert.Equal(t, 3, part1(inv))
	assert.Equal(t, 14, part2(inv))
	assert.Equal(t, []span{{3, 5}, {10, 14}, {16, 20}, {12, 18}}, inv.fresh, "merge reordered the input")
}

func TestDeterministic(t *testing.T) {
	a, b := parse(example), parse(example)
	require.Equal(t, deephash.Hash(&a), deephash.Hash(&b))
	assert.Equal(t, part1(a), part1(b))
	assert.Equal(t, part2(a), part2(b))
}

func TestSamples(t *testing.T) {
	require.NoError(t, aoc.Run(io.Discard, source, solution, aoc.Options{OnlySample: true}))
}
