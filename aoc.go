// Package aoc are quick & dirty utilities for solving the Advent of Code
// 2025 puzzles. Each day is its own main package that hands a Solution to
// Main. (forked from maisem/aoc)
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/exp/maps"
)

var (
	// ErrSampleMismatch is returned by Run when a part disagrees with the
	// published example answer.
	ErrSampleMismatch = errors.New("sample mismatch")
	// ErrNoSample is returned when an example answer has no input to go
	// with it.
	ErrNoSample = errors.New("no sample input")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the examples found in the doc comments of the
// top-level functions in src, keyed by function name. A function with only
// a want= line inherits the input of the function before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solution.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Solution is one day's puzzle: a parser and the two parts that consume
// what it returns. Parts must not modify the parsed value; both parts
// are handed the same one.
type Solution[T any] struct {
	Day   int
	Parse func(input string) T
	Part1 func(T) any
	Part2 func(T) any

	// SampleSetup, if non-nil, adjusts a parsed example before it is
	// solved, for puzzles whose examples use smaller parameters than the
	// real input.
	SampleSetup func(T) T
}

type partSolver[T any] struct {
	fn   func(T) any
	Part string
	Name string
}

func (s Solution[T]) parts() []partSolver[T] {
	var out []partSolver[T]
	for i, fn := range []func(T) any{s.Part1, s.Part2} {
		if fn == nil {
			continue
		}
		out = append(out, partSolver[T]{
			fn:   fn,
			Part: fmt.Sprint(i + 1),
			Name: funcName(fn),
		})
	}
	return out
}

// funcName returns the unqualified name of the function fn.
func funcName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Options controls a single Run.
type Options struct {
	Input      string // input path; empty means FindInput's default
	Part       string // "1", "2" or empty for both
	OnlySample bool
	SkipSample bool
}

func (o Options) wantPart(part string) bool {
	return o.Part == "" || o.Part == part
}

// Run checks each part against its published example from src and then
// solves the real input, writing one "Part N: answer" line per part to w.
func Run[T any](w io.Writer, src []byte, s Solution[T], opts Options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	Debugf("day %d: samples for %v", s.Day, sortedKeys(samples))
	parts := s.parts()

	if !opts.SkipSample {
		for _, ps := range parts {
			if !opts.wantPart(ps.Part) {
				continue
			}
			if err := runSample(s, ps, samples); err != nil {
				return err
			}
		}
	}
	if opts.OnlySample {
		return nil
	}

	path, err := FindInput(s.Day, opts.Input)
	if err != nil {
		return err
	}
	text, err := Load(path)
	if err != nil {
		return err
	}
	in := s.Parse(text)
	for _, ps := range parts {
		if !opts.wantPart(ps.Part) {
			continue
		}
		t0 := time.Now()
		got := ps.fn(in)
		Debugf("part %s took %v", ps.Part, time.Since(t0).Round(time.Microsecond))
		if _, err := fmt.Fprintf(w, "Part %s: %v\n", ps.Part, got); err != nil {
			return err
		}
	}
	return nil
}

func runSample[T any](s Solution[T], ps partSolver[T], samples map[string]sample) error {
	sm, ok := samples[ps.Name]
	if !ok {
		Debugf("part %s: no sample for %s", ps.Part, ps.Name)
		return nil
	}
	if sm.input == "" {
		return fmt.Errorf("%w for %s", ErrNoSample, ps.Name)
	}
	in := s.Parse(strings.TrimSpace(sm.input))
	if s.SampleSetup != nil {
		in = s.SampleSetup(in)
	}
	t0 := time.Now()
	got := ps.fn(in)
	if fmt.Sprint(got) != sm.want {
		return fmt.Errorf("%w: part %s: got %v; want %v", ErrSampleMismatch, ps.Part, got, sm.want)
	}
	Debugf("part %s sample: %v ✅ (%v)", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

var (
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagPprof      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.BoolVar(&flagPprof, "pprof", false, "write a CPU profile to the current directory")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "input file (default dayNN.dat)")
}

var initFlags = sync.OnceFunc(flag.Parse)

var debugLog = log.New(io.Discard, "", 0)

// Debugf logs to stderr when the -debug flag is set.
func Debugf(format string, args ...any) {
	debugLog.Printf(format, args...)
}

// Main runs s with options taken from the command line, printing the
// answers to stdout. It exits non-zero on any error.
func Main[T any](src []byte, s Solution[T]) {
	initFlags()
	log.SetFlags(0)
	if flagDebug {
		debugLog.SetOutput(os.Stderr)
	}
	err := func() error {
		if flagPprof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		}
		return Run(os.Stdout, src, s, Options{
			Input:      flagInput,
			Part:       flagPart,
			OnlySample: flagOnlySample,
			SkipSample: flagSkipSample,
		})
	}()
	if err != nil {
		log.Fatalf("day %d: %v", s.Day, err)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
