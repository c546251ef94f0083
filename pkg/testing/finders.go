package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/htmllabel/pkg/graphics"
)

// Finder locates runs in converted text.
type Finder interface {
	// Evaluate returns the indexes of all matching runs, in order.
	Evaluate(runs []graphics.TextRun) []int
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	runs    []graphics.TextRun
	indexes []int
	finder  Finder
}

// First returns the first matching run. Panics if no matches.
func (r FinderResult) First() graphics.TextRun {
	return r.runs[r.Index(0)]
}

// Index returns the run index of the i-th match. Panics if out of range.
func (r FinderResult) Index(i int) int {
	if i < 0 || i >= len(r.indexes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		if len(r.indexes) == 0 {
			panic(fmt.Sprintf("Finder found no runs: %s", desc))
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", i, len(r.indexes), desc))
	}
	return r.indexes[i]
}

// At returns the i-th matching run. Panics if out of range.
func (r FinderResult) At(i int) graphics.TextRun {
	return r.runs[r.Index(i)]
}

// All returns all matching runs in order.
func (r FinderResult) All() []graphics.TextRun {
	out := make([]graphics.TextRun, len(r.indexes))
	for i, idx := range r.indexes {
		out[i] = r.runs[idx]
	}
	return out
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.indexes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.indexes) > 0
}

// predicateFinder matches runs satisfying a predicate.
type predicateFinder struct {
	fn   func(graphics.TextRun) bool
	desc string
}

func (f *predicateFinder) Evaluate(runs []graphics.TextRun) []int {
	var out []int
	for i, r := range runs {
		if f.fn(r) {
			out = append(out, i)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByText returns a finder that matches runs whose text equals text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(r graphics.TextRun) bool { return r.Text == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches runs containing substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(r graphics.TextRun) bool { return strings.Contains(r.Text, substring) },
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByLink returns a finder that matches tappable runs targeting url.
func ByLink(url string) Finder {
	return &predicateFinder{
		fn:   func(r graphics.TextRun) bool { return r.Tappable() && r.Link == url },
		desc: fmt.Sprintf("ByLink(%q)", url),
	}
}

// ByPredicate returns a finder using a custom predicate.
func ByPredicate(desc string, fn func(graphics.TextRun) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}
