/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Seednode/characterdle/character"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultLimit is the number of suggestions shown under the input.
	DefaultLimit = 5

	// MinQueryLength is the shortest normalized query that gets suggestions.
	MinQueryLength = 2
)

var apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "", "ʼ", "")

// folder lower-cases names. A cases.Caser is stateful, so each ranking
// builds its own.
type folder struct {
	lower cases.Caser
}

func newFolder() *folder {
	return &folder{lower: cases.Lower(language.Und)}
}

// forms returns the lower-cased and the normalized (lower-cased, apostrophes
// removed) form of s.
func (f *folder) forms(s string) (string, string) {
	raw := f.lower.String(s)
	return raw, apostrophes.Replace(raw)
}

// Normalize lower-cases s and strips apostrophes, the form names are
// matched in.
func Normalize(s string) string {
	_, norm := newFolder().forms(s)
	return norm
}

type tier int

const (
	tierExact tier = iota
	tierPrefix
	tierContains
)

type candidate struct {
	rec   *character.Record
	lower string
	tier  tier
	pos   int
}

// Rank returns up to limit records from pool whose name contains query,
// exact matches first, then prefix matches, then the rest, each group in
// alphabetical order. Matching ignores case and apostrophes. Queries shorter
// than MinQueryLength return nothing. A non-positive limit means
// DefaultLimit.
//
// Rank is deterministic, so calling it again with the same arguments
// reproduces the same list; Select relies on that.
func Rank(query string, pool []*character.Record, limit int) []*character.Record {
	if limit <= 0 {
		limit = DefaultLimit
	}

	f := newFolder()
	rawQuery, normQuery := f.forms(query)
	if utf8.RuneCountInString(normQuery) < MinQueryLength {
		return nil
	}

	var matches []candidate
	for i, rec := range pool {
		if rec == nil {
			continue
		}

		raw, norm := f.forms(rec.Name)
		if !strings.Contains(raw, rawQuery) && !strings.Contains(norm, normQuery) {
			continue
		}

		t := tierContains
		switch {
		case raw == rawQuery || norm == normQuery:
			t = tierExact
		case strings.HasPrefix(raw, rawQuery) || strings.HasPrefix(norm, normQuery):
			t = tierPrefix
		}

		matches = append(matches, candidate{rec: rec, lower: raw, tier: t, pos: i})
	}

	slices.SortFunc(matches, func(a, b candidate) int {
		return cmp.Or(
			cmp.Compare(a.tier, b.tier),
			strings.Compare(a.lower, b.lower),
			strings.Compare(a.rec.Name, b.rec.Name),
			cmp.Compare(a.pos, b.pos),
		)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]*character.Record, len(matches))
	for i, m := range matches {
		out[i] = m.rec
	}

	return out
}

// Select re-ranks query against pool and returns the suggestion at index,
// for confirming a highlighted suggestion from the keyboard.
func Select(query string, pool []*character.Record, limit, index int) (*character.Record, bool) {
	ranked := Rank(query, pool, limit)
	if index < 0 || index >= len(ranked) {
		return nil, false
	}
	return ranked[index], true
}

type nameSource []string

func (n nameSource) String(i int) string { return n[i] }
func (n nameSource) Len() int            { return len(n) }

// DidYouMean offers fuzzy subsequence matches for a query that Rank found
// nothing for, such as "tph" for "Toph Beifong". Results are ordered by
// match score, then alphabetically.
func DidYouMean(query string, pool []*character.Record, limit int) []*character.Record {
	if limit <= 0 {
		limit = DefaultLimit
	}

	f := newFolder()
	_, normQuery := f.forms(query)
	if utf8.RuneCountInString(normQuery) < MinQueryLength {
		return nil
	}

	names := make(nameSource, 0, len(pool))
	recs := make([]*character.Record, 0, len(pool))
	for _, rec := range pool {
		if rec == nil {
			continue
		}
		_, norm := f.forms(rec.Name)
		names = append(names, norm)
		recs = append(recs, rec)
	}

	found := fuzzy.FindFrom(normQuery, names)
	slices.SortStableFunc(found, func(a, b fuzzy.Match) int {
		return cmp.Or(
			cmp.Compare(b.Score, a.Score),
			strings.Compare(a.Str, b.Str),
			cmp.Compare(a.Index, b.Index),
		)
	})

	if len(found) > limit {
		found = found[:limit]
	}

	out := make([]*character.Record, len(found))
	for i, m := range found {
		out[i] = recs[m.Index]
	}

	return out
}
