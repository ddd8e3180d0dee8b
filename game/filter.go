/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"github.com/Seednode/characterdle/character"
)

// Selection is the filter state the player has ticked: tag -> included.
// Group tags (see character.Categories) include all of their children.
type Selection map[string]bool

// Any reports whether at least one tag is included.
func (s Selection) Any() bool {
	for _, on := range s {
		if on {
			return true
		}
	}
	return false
}

// FilterPool returns the records, in dataset order, that appear in at least
// one active tag. An empty selection yields an empty pool. cats may be nil,
// in which case no group expansion happens.
func FilterPool(all []*character.Record, sel Selection, cats *character.Categories) []*character.Record {
	if !sel.Any() {
		return nil
	}

	active := cats.Expand(sel)

	var pool []*character.Record
	for _, rec := range all {
		if rec != nil && rec.AppearsIn(active) {
			pool = append(pool, rec)
		}
	}

	return pool
}
