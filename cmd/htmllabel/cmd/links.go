package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/htmllabel/cmd/htmllabel/internal/match"
	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/htmlspan"
	"github.com/go-drift/htmllabel/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "links",
		Short: "List hyperlinks and their text",
		Long: `Convert markup and list every active hyperlink as "TEXT<TAB>URL".

Adjacent runs of the same link (for example "<a>go <b>now</b></a>") are
listed once with their text joined. Anchors without href, or with an empty
or "#" href, are not links.

Flags:
  --match QUERY   Keep only links whose text or URL fuzzy-matches QUERY,
                  best match first. Smart case: the match is case-sensitive
                  only when QUERY contains an upper-case letter.
  --broken        Keep only links the URL launcher would refuse to open,
                  such as relative or malformed URLs, listed as
                  "TEXT<TAB>URL<TAB>REASON".

Input is read from FILE, or from stdin when FILE is omitted or "-".`,
		Usage: "htmllabel links [--match QUERY] [--broken] [FILE]",
		Run:   runLinks,
	})
}

type linkEntry struct {
	Text string
	URL  string
	// Problem is why the launcher cannot open URL, set only by --broken.
	Problem string
}

func (l linkEntry) String() string {
	if l.Problem != "" {
		return l.Text + "\t" + l.URL + "\t" + l.Problem
	}
	return l.Text + "\t" + l.URL
}

type linksFlags struct {
	query  string
	broken bool
}

func runLinks(args []string) error {
	flags, rest, err := parseLinksArgs(args)
	if err != nil {
		return err
	}
	src, err := readInput(rest)
	if err != nil {
		return err
	}
	res, err := resolve()
	if err != nil {
		return err
	}

	runs, err := htmlspan.ConvertString(src, htmlspan.NewStyleContext(res.Label.DefaultStyle()), res.Options)
	if err != nil {
		return err
	}

	entries := collectLinks(runs)
	if flags.broken {
		entries = brokenLinks(entries)
	}
	query := flags.query
	if query == "" {
		for _, e := range entries {
			fmt.Fprintln(stdout, e)
		}
		return nil
	}

	candidates := make([]string, len(entries))
	for i, e := range entries {
		candidates[i] = e.Text + " " + e.URL
	}
	for _, r := range match.Rank(candidates, query) {
		fmt.Fprintln(stdout, entries[r.Index])
	}
	return nil
}

func parseLinksArgs(args []string) (linksFlags, []string, error) {
	var flags linksFlags
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--match":
			if i+1 >= len(args) {
				return flags, nil, fmt.Errorf("--match requires a query")
			}
			flags.query = args[i+1]
			i++
		case strings.HasPrefix(arg, "--match="):
			flags.query = strings.TrimPrefix(arg, "--match=")
		case arg == "--broken":
			flags.broken = true
		default:
			filtered = append(filtered, arg)
		}
	}
	return flags, filtered, nil
}

// brokenLinks keeps the entries whose URL the platform launcher rejects and
// records the reason.
func brokenLinks(entries []linkEntry) []linkEntry {
	var broken []linkEntry
	for _, e := range entries {
		ok, err := platform.URLLauncher.CanOpenURL(e.URL)
		switch {
		case err != nil:
			e.Problem = err.Error()
		case !ok:
			e.Problem = platform.ErrNoLauncher.Error()
		default:
			continue
		}
		broken = append(broken, e)
	}
	return broken
}

// collectLinks groups consecutive tappable runs sharing a target. Link text
// has its whitespace collapsed.
func collectLinks(runs []graphics.TextRun) []linkEntry {
	var (
		entries []linkEntry
		raw     []string
		prev    string
	)
	for _, r := range runs {
		if !r.Tappable() {
			prev = ""
			continue
		}
		if r.Link == prev && len(entries) > 0 {
			raw[len(raw)-1] += r.Text
		} else {
			entries = append(entries, linkEntry{URL: r.Link})
			raw = append(raw, r.Text)
			prev = r.Link
		}
		entries[len(entries)-1].Text = strings.Join(strings.Fields(raw[len(raw)-1]), " ")
	}
	return entries
}
