/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Package game is the rules engine: comparing a guess against the target,
// ranking autocomplete suggestions, filtering the candidate pool, and the
// per-game session state machine. Nothing here does I/O.
package game

import (
	"slices"

	"github.com/Seednode/characterdle/character"
)

// Kind selects the comparison policy for a field.
type Kind int

const (
	// Scalar fields are correct when equal and incorrect otherwise.
	Scalar Kind = iota
	// Overlap fields are sets: identical is correct, any shared value is
	// partial, disjoint is incorrect.
	Overlap
	// Category fields hold one or more taxonomy values. Same size with
	// every guessed value in the target is correct, any shared value is
	// partial, disjoint is incorrect.
	Category
)

var kinds = map[character.Field]Kind{
	character.FieldName:          Scalar,
	character.FieldGender:        Scalar,
	character.FieldPlaceOfOrigin: Scalar,
	character.FieldSpecies:       Category,
	character.FieldBendingType:   Category,
	character.FieldSpecialSkills: Category,
	character.FieldAffiliation:   Overlap,
	character.FieldAppearances:   Overlap,
}

// Compare evaluates guess against target field by field, in
// character.Columns order. It fails only when either record breaks the
// schema, in which case the error matches character.ErrMalformedRecord.
func Compare(target, guess *character.Record) (Verdict, error) {
	if err := target.Check(); err != nil {
		return Verdict{}, err
	}
	if err := guess.Check(); err != nil {
		return Verdict{}, err
	}

	entries := make([]Entry, 0, len(character.Columns))

	for _, f := range character.Columns {
		var state State

		switch kinds[f] {
		case Scalar:
			t, _ := target.Scalar(f)
			g, _ := guess.Scalar(f)
			state = compareScalar(t, g)
		case Overlap, Category:
			t, _ := target.Multi(f)
			g, _ := guess.Multi(f)
			if (t == nil) != (g == nil) {
				name := guess.Name
				if g != nil {
					name = target.Name
				}
				return Verdict{}, &character.MalformedRecordError{Index: -1, Name: name, Field: f, Reason: "missing"}
			}
			if kinds[f] == Overlap {
				state = compareOverlap(t.Set(), g.Set())
			} else {
				state = compareCategory(t.Set(), g.Set())
			}
		}

		entries = append(entries, Entry{Field: f, State: state})
	}

	return Verdict{entries: entries}, nil
}

func compareScalar(target, guess string) State {
	if target == guess {
		return Correct
	}
	return Incorrect
}

func compareOverlap(target, guess []string) State {
	shared := intersect(target, guess)

	switch {
	case shared == len(guess) && shared == len(target):
		return Correct
	case shared > 0:
		return Partial
	}

	return Incorrect
}

func compareCategory(target, guess []string) State {
	if len(guess) == len(target) && intersect(target, guess) == len(guess) {
		return Correct
	}
	if intersect(target, guess) > 0 {
		return Partial
	}
	return Incorrect
}

// intersect counts the guessed values present in target. Both sides are
// already de-duplicated.
func intersect(target, guess []string) int {
	n := 0
	for _, g := range guess {
		if slices.Contains(target, g) {
			n++
		}
	}
	return n
}
