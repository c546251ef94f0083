// Package match ranks strings against a fuzzy query with fzf's scoring.
package match

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var initOnce sync.Once

// Result is the score of one candidate. Positions are rune indexes of the
// matched characters.
type Result struct {
	Index     int
	Score     int
	Positions []int
}

// Score matches text against query. Matching is case-insensitive unless the
// query contains an upper-case letter. ok is false when text does not match.
// An empty query matches everything with a zero score.
func Score(text, query string) (res Result, ok bool) {
	if query == "" {
		return Result{}, true
	}
	initOnce.Do(func() { algo.Init("default") })

	// fzf folds case in the text; the pattern must already be lower case.
	caseSensitive := hasUpper(query)
	if !caseSensitive {
		query = strings.ToLower(query)
	}

	chars := util.ToChars([]byte(text))
	slab := util.MakeSlab(16384, 1024)
	r, positions := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, []rune(query), true, slab)
	if r.Start < 0 {
		return Result{}, false
	}

	res.Score = r.Score
	if positions != nil {
		res.Positions = make([]int, len(*positions))
		copy(res.Positions, *positions)
		sort.Ints(res.Positions)
	}
	return res, true
}

// Rank returns the candidates matching query, best score first. Ties keep
// the candidates' order.
func Rank(candidates []string, query string) []Result {
	var results []Result
	for i, c := range candidates {
		res, ok := Score(c, query)
		if !ok {
			continue
		}
		res.Index = i
		results = append(results, res)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
