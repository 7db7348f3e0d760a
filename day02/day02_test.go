package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"

	"github.com/advent2025/aoc"
)

const example = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124"

func TestParse(t *testing.T) {
	assert.Equal(t, []idRange{{11, 22}, {95, 115}}, parse("11-22, 95-115\n"))
}

func TestInvalid(t *testing.T) {
	for _, s := range []string{"55", "6464", "123123", "1010"} {
		assert.True(t, repeatedTwice(s), s)
		assert.True(t, repeated(s), s)
	}
	for _, s := range []string{"111", "565656", "824824824", "2121212121"} {
		assert.False(t, repeatedTwice(s), s)
		assert.True(t, repeated(s), s)
	}
	for _, s := range []string{"1", "12", "101", "1231"} {
		assert.False(t, repeatedTwice(s), s)
		assert.False(t, repeated(s), s)
	}
}

func TestExample(t *testing.T) {
	rs := parse(example)
	assert.Equal(t, 1227775554, part1(rs))
	assert.Equal(t, 4174379265, part2(rs))
	assert.Equal(t, 11+22, part1([]idRange{{11, 22}}))
	assert.Equal(t, 99+111, part2([]idRange{{95, 115}}))
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
