package cmd

import (
	"fmt"

	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/htmlspan"
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the styled runs as YAML",
		Long: `Convert markup and print the resulting runs as YAML.

Each run lists its text, resolved colors (#aarrggbb), font attributes,
decorations, font family and size, and link target if any. Invalid markup
or colors produce a single "Error: ..." run, exactly as a label would show.

Input is read from FILE, or from stdin when FILE is omitted or "-".`,
		Usage: "htmllabel dump [FILE]",
		Run:   runDump,
	})
}

type dumpDoc struct {
	Runs []dumpRun `yaml:"runs"`
}

type dumpRun struct {
	Text        string  `yaml:"text"`
	Foreground  string  `yaml:"foreground"`
	Background  string  `yaml:"background"`
	Attributes  string  `yaml:"attributes,omitempty"`
	Decorations string  `yaml:"decorations,omitempty"`
	FontFamily  string  `yaml:"font_family,omitempty"`
	FontSize    float64 `yaml:"font_size"`
	Link        string  `yaml:"link,omitempty"`
}

func runDump(args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}
	res, err := resolve()
	if err != nil {
		return err
	}

	htmlspan.ConvertWithOptions(res.Label, src, res.Options)

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(newDumpDoc(res.Label.FormattedText())); err != nil {
		return fmt.Errorf("failed to encode runs: %w", err)
	}
	return enc.Close()
}

func newDumpDoc(text graphics.FormattedText) dumpDoc {
	doc := dumpDoc{Runs: make([]dumpRun, 0, len(text.Runs))}
	for _, r := range text.Runs {
		run := dumpRun{
			Text:       r.Text,
			Foreground: r.Style.Color.String(),
			Background: r.Style.BackgroundColor.String(),
			FontFamily: r.Style.FontFamily,
			FontSize:   r.Style.FontSize,
			Link:       r.Link,
		}
		if r.Style.FontAttributes != graphics.FontAttributesNone {
			run.Attributes = r.Style.FontAttributes.String()
		}
		if r.Style.Decorations != graphics.TextDecorationsNone {
			run.Decorations = r.Style.Decorations.String()
		}
		doc.Runs = append(doc.Runs, run)
	}
	return doc
}
