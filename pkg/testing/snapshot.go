package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/htmllabel/pkg/graphics"
)

// UpdateSnapshotsEnv is the environment variable that, when set to "1",
// makes MatchesFile rewrite golden files instead of comparing them.
const UpdateSnapshotsEnv = "HTMLLABEL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the runs of a label.
type Snapshot struct {
	Text string        `json:"text"`
	Runs []RunSnapshot `json:"runs"`
}

// RunSnapshot is the serialized form of one run. Transparent backgrounds,
// regular attributes and missing decorations are omitted.
type RunSnapshot struct {
	Text        string  `json:"text"`
	Color       string  `json:"color"`
	Background  string  `json:"background,omitempty"`
	Attributes  string  `json:"attributes,omitempty"`
	Decorations string  `json:"decorations,omitempty"`
	FontFamily  string  `json:"fontFamily,omitempty"`
	FontSize    float64 `json:"fontSize"`
	Link        string  `json:"link,omitempty"`
	Tappable    bool    `json:"tappable,omitempty"`
}

// CaptureSnapshot captures the label's current runs.
func (t *LabelTester) CaptureSnapshot() *Snapshot {
	return NewSnapshot(t.label.FormattedText())
}

// NewSnapshot captures text.
func NewSnapshot(text graphics.FormattedText) *Snapshot {
	snap := &Snapshot{Text: text.PlainText(), Runs: make([]RunSnapshot, 0, len(text.Runs))}
	for _, r := range text.Runs {
		run := RunSnapshot{
			Text:       r.Text,
			Color:      serializeColor(r.Style.Color),
			FontFamily: r.Style.FontFamily,
			FontSize:   round2(r.Style.FontSize),
			Link:       r.Link,
			Tappable:   r.Tappable(),
		}
		if !r.Style.BackgroundColor.IsTransparent() {
			run.Background = serializeColor(r.Style.BackgroundColor)
		}
		if r.Style.FontAttributes != graphics.FontAttributesNone {
			run.Attributes = r.Style.FontAttributes.String()
		}
		if r.Style.Decorations != graphics.TextDecorationsNone {
			run.Decorations = r.Style.Decorations.String()
		}
		snap.Runs = append(snap.Runs, run)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// HTMLLABEL_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func serializeColor(c graphics.Color) string {
	return c.String()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
