/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"cmp"
	"slices"

	"github.com/Seednode/characterdle/character"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ColumnValues lists the distinct values of field f across pool, as shown
// in the "possible values" overlay for a column. Names come back in
// alphabetical order; every other column is ordered by how many characters
// share the value, most common first, ties in first-seen order.
func ColumnValues(pool []*character.Record, f character.Field) []string {
	counts := make(map[string]int)
	var order []string

	add := func(v string) {
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	for _, rec := range pool {
		if rec == nil {
			continue
		}
		if v, ok := rec.Multi(f); ok {
			for _, s := range v.Set() {
				add(s)
			}
			continue
		}
		if v, ok := rec.Scalar(f); ok && v != "" {
			add(v)
		}
	}

	if f == character.FieldName {
		c := collate.New(language.English)
		slices.SortStableFunc(order, func(a, b string) int {
			return cmp.Or(c.CompareString(a, b), cmp.Compare(a, b))
		})
		return order
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})

	return order
}
