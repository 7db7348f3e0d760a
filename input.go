package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("input file not found")
	// ErrRead is returned when the input file exists but cannot be read.
	ErrRead = errors.New("read error")
	// ErrEncoding is returned when the input is not valid UTF-8.
	ErrEncoding = errors.New("input is not valid UTF-8")
)

// LoadError records the input file that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// Load returns the whole content of the file at path with leading and
// trailing whitespace removed.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &LoadError{Path: path, Err: ErrFileNotFound}
	}
	if err != nil {
		return "", &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}
	if !utf8.Valid(b) {
		return "", &LoadError{Path: path, Err: ErrEncoding}
	}
	return strings.TrimSpace(string(b)), nil
}

// InputName returns the default input file name for day, e.g. "day07.dat".
func InputName(day int) string {
	return fmt.Sprintf("day%02d.dat", day)
}

// FindInput returns the input path for day. A non-empty override is
// returned as is. Otherwise the default file name is looked up in the
// working directory and then in the day's own directory, so a day runs
// the same from the repository root and from inside its directory.
func FindInput(day int, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	name := InputName(day)
	candidates := []string{
		name,
		filepath.Join(strings.TrimSuffix(name, ".dat"), name),
	}
	for _, c := range candidates {
		_, err := os.Stat(c)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", &LoadError{Path: c, Err: fmt.Errorf("%w: %w", ErrRead, err)}
		}
	}
	return "", &LoadError{Path: name, Err: ErrFileNotFound}
}

// Lines splits s into lines. Carriage returns are dropped.
// The empty string has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Paragraphs splits s into blocks separated by blank lines.
func Paragraphs(s string) []string {
	var out []string
	var cur []string
	for _, l := range Lines(s) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, strings.Join(cur, "\n"))
	}
	return out
}

// Split cuts s around the first sep, failing if sep is absent.
func Split(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		log.Fatalf("no %q in %q", sep, s)
	}
	return before, after
}
