package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"

	"github.com/advent2025/aoc"
)

const example = `162,817,812
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
425,690,689`

func TestParse(t *testing.T) {
	pg := parse(example)
	require.Len(t, pg.boxes, 20)
	assert.Equal(t, aoc.Pt3Int{X: 162, Y: 817, Z: 812}, pg.boxes[0])
	assert.Equal(t, 1000, pg.connections)
	assert.Panics(t, func() { parse("1,2") })
}

func TestPairs(t *testing.T) {
	ps := parse(example).pairs()
	require.Len(t, ps, 20*19/2)
	// The two closest boxes are 162,817,812 and 425,690,689.
	assert.Equal(t, pair{a: 0, b: 19, dist2: 263*263 + 127*127 + 123*123}, ps[0])
	for i := 1; i < len(ps); i++ {
		assert.LessOrEqual(t, ps[i-1].dist2, ps[i].dist2)
	}
}

func TestExample(t *testing.T) {
	pg := parse(example)
	pg.connections = 10
	assert.Equal(t, 40, part1(pg))
	assert.Equal(t, 25272, part2(pg))
}

func TestSingleBox(t *testing.T) {
	pg := parse("1,2,3")
	assert.Equal(t, 1, part1(pg))
	assert.Equal(t, -1, part2(pg))
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
