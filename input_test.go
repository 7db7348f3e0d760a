package aoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, b []byte) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, b, 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"trimmed", write("a.dat", []byte("\n\t  L68\nR5  \n\n")), "L68\nR5", nil},
		{"empty", write("b.dat", nil), "", nil},
		{"missing", filepath.Join(dir, "missing.dat"), "", ErrFileNotFound},
		{"directory", dir, "", ErrRead},
		{"binary", write("c.dat", []byte{'o', 'k', 0xff, 0xfe}), "", ErrEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load error = %v; want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Load = %q; want %q", got, tt.want)
			}
			if err == nil {
				return
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Path != tt.path {
				t.Errorf("Load error %v does not name %s", err, tt.path)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error message %q lacks path", err)
			}
		})
	}
}

func TestFindInput(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if got, err := FindInput(3, "other.txt"); err != nil || got != "other.txt" {
		t.Errorf("FindInput override = %q, %v", got, err)
	}
	if _, err := FindInput(3, ""); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("FindInput with no file: err = %v; want %v", err, ErrFileNotFound)
	}

	MustDo(os.Mkdir("day03", 0755))
	MustDo(os.WriteFile(filepath.Join("day03", "day03.dat"), []byte("x"), 0644))
	if got, err := FindInput(3, ""); err != nil || got != filepath.Join("day03", "day03.dat") {
		t.Errorf("FindInput in day dir = %q, %v", got, err)
	}

	MustDo(os.WriteFile("day03.dat", []byte("y"), 0644))
	if got, err := FindInput(3, ""); err != nil || got != "day03.dat" {
		t.Errorf("FindInput in working dir = %q, %v", got, err)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\r\nb\n", []string{"a", "b", ""}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParagraphs(t *testing.T) {
	in := "3-5\n10-14\n\n\n1\n5\n  \n8"
	want := []string{"3-5\n10-14", "1\n5", "8"}
	if diff := cmp.Diff(want, Paragraphs(in)); diff != "" {
		t.Errorf("Paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit(t *testing.T) {
	a, b := Split("11-22", "-")
	if a != "11" || b != "22" {
		t.Errorf("Split = %q, %q", a, b)
	}
}
