/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Seednode/characterdle/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(name string) *character.Record {
	return &character.Record{
		Name:          name,
		Gender:        "Female",
		Species:       character.Values{"Human"},
		PlaceOfOrigin: "Southern Water Tribe",
		BendingType:   character.Values{"Water"},
		SpecialSkills: character.Values{"Healing"},
		Affiliation:   character.Values{"Team Avatar"},
		Appearances:   character.Values{"Avatar: The Last Airbender"},
	}
}

func mustCompare(t *testing.T, target, guess *character.Record) Verdict {
	t.Helper()

	v, err := Compare(target, guess)
	require.NoError(t, err)
	require.Equal(t, len(character.Columns), v.Len())

	return v
}

func stateOf(t *testing.T, v Verdict, f character.Field) State {
	t.Helper()

	s, ok := v.Get(f)
	require.True(t, ok, "field %s missing from verdict", f)

	return s
}

func TestCompareIsReflexive(t *testing.T) {
	ds, err := character.Load("")
	require.NoError(t, err)

	for _, r := range ds.Records {
		v := mustCompare(t, r, r)
		assert.True(t, v.Solved(), r.Name)
	}
}

func TestCompareReflexiveWithEmptySets(t *testing.T) {
	r := newRecord("Raava")
	r.Affiliation = character.Values{}
	r.BendingType = character.Values{}

	assert.True(t, mustCompare(t, r, r).Solved())
}

func TestCompareScalarFields(t *testing.T) {
	target := newRecord("Katara")
	guess := newRecord("Kya")
	guess.Gender = "Female"
	guess.PlaceOfOrigin = "Northern Water Tribe"

	v := mustCompare(t, target, guess)
	assert.Equal(t, Incorrect, stateOf(t, v, character.FieldName))
	assert.Equal(t, Correct, stateOf(t, v, character.FieldGender))
	assert.Equal(t, Incorrect, stateOf(t, v, character.FieldPlaceOfOrigin))
	assert.False(t, v.Solved())
}

func TestCompareAppearances(t *testing.T) {
	tests := []struct {
		name          string
		target, guess character.Values
		want          State
	}{
		{"disjoint", character.Values{"A"}, character.Values{"B"}, Incorrect},
		{"identical", character.Values{"A", "B"}, character.Values{"A", "B"}, Correct},
		{"identical reordered", character.Values{"A", "B"}, character.Values{"B", "A"}, Correct},
		{"overlap", character.Values{"A", "B"}, character.Values{"B", "C"}, Partial},
		{"guess subset", character.Values{"A", "B"}, character.Values{"A"}, Partial},
		{"guess superset", character.Values{"A"}, character.Values{"A", "B"}, Partial},
		{"duplicates", character.Values{"A", "B"}, character.Values{"A", "B", "A"}, Correct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newRecord("Target")
			guess := newRecord("Guess")
			target.Appearances = tt.target
			guess.Appearances = tt.guess

			v := mustCompare(t, target, guess)
			assert.Equal(t, tt.want, stateOf(t, v, character.FieldAppearances))
		})
	}
}

func TestCompareAffiliationEmptyAgainstNonEmpty(t *testing.T) {
	target := newRecord("Target")
	guess := newRecord("Guess")
	target.Affiliation = character.Values{}

	v := mustCompare(t, target, guess)
	assert.Equal(t, Incorrect, stateOf(t, v, character.FieldAffiliation))
}

func TestCompareCategoryFields(t *testing.T) {
	tests := []struct {
		name          string
		field         character.Field
		target, guess character.Values
		want          State
	}{
		{"species superset", character.FieldSpecies, character.Values{"Human"}, character.Values{"Human", "Spirit"}, Partial},
		{"species subset", character.FieldSpecies, character.Values{"Human", "Spirit"}, character.Values{"Spirit"}, Partial},
		{"species equal", character.FieldSpecies, character.Values{"Human", "Spirit"}, character.Values{"Spirit", "Human"}, Correct},
		{"bending scalar vs list", character.FieldBendingType, character.Values{"Fire"}, character.Values{"Fire"}, Correct},
		{"bending disjoint", character.FieldBendingType, character.Values{"Fire"}, character.Values{"Air"}, Incorrect},
		{"skills same size different", character.FieldSpecialSkills, character.Values{"A", "B"}, character.Values{"A", "C"}, Partial},
		{"skills none", character.FieldSpecialSkills, character.Values{"None"}, character.Values{"None"}, Correct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newRecord("Target")
			guess := newRecord("Guess")

			set := func(r *character.Record, v character.Values) {
				switch tt.field {
				case character.FieldSpecies:
					r.Species = v
				case character.FieldBendingType:
					r.BendingType = v
				case character.FieldSpecialSkills:
					r.SpecialSkills = v
				}
			}
			set(target, tt.target)
			set(guess, tt.guess)

			v := mustCompare(t, target, guess)
			assert.Equal(t, tt.want, stateOf(t, v, tt.field))
		})
	}
}

func TestCompareIgnoresImageAndHints(t *testing.T) {
	target := newRecord("Katara")
	guess := newRecord("Katara")
	target.Image = "a.png"
	guess.Image = "b.png"
	target.Hints = []string{"one"}

	v := mustCompare(t, target, guess)
	assert.True(t, v.Solved())

	_, ok := v.Get(character.FieldImage)
	assert.False(t, ok)
	_, ok = v.Get(character.FieldHints)
	assert.False(t, ok)
}

func TestCompareMalformed(t *testing.T) {
	good := newRecord("Katara")

	noName := newRecord("")
	noAppearances := newRecord("Kya")
	noAppearances.Appearances = nil
	missingSpecies := newRecord("Hakoda")
	missingSpecies.Species = nil

	tests := []struct {
		name          string
		target, guess *character.Record
		field         character.Field
	}{
		{"nil guess", good, nil, ""},
		{"nil target", nil, good, ""},
		{"empty name", good, noName, character.FieldName},
		{"no appearances", noAppearances, good, character.FieldAppearances},
		{"field absent on guess", good, missingSpecies, character.FieldSpecies},
		{"field absent on target", missingSpecies, good, character.FieldSpecies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(tt.target, tt.guess)
			require.Error(t, err)
			assert.True(t, errors.Is(err, character.ErrMalformedRecord))

			var merr *character.MalformedRecordError
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tt.field, merr.Field)
		})
	}
}

func TestMissingFieldNamesTheRecordThatLacksIt(t *testing.T) {
	missing := newRecord("Hakoda")
	missing.Species = nil

	_, err := Compare(newRecord("Katara"), missing)
	var merr *character.MalformedRecordError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "Hakoda", merr.Name)

	_, err = Compare(missing, newRecord("Katara"))
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "Hakoda", merr.Name)
}

func TestVerdictJSONKeepsColumnOrder(t *testing.T) {
	target := newRecord("Katara")
	guess := newRecord("Sokka")
	guess.BendingType = character.Values{}

	data, err := json.Marshal(mustCompare(t, target, guess))
	require.NoError(t, err)

	assert.Equal(t,
		`{"Name":"incorrect","Gender":"correct","Species":"correct","Place of Origin":"correct",`+
			`"Bending type":"incorrect","Special Skills":"correct","Affiliation/Group":"correct","Appearances":"correct"}`,
		string(data))
}

func TestVerdictSolved(t *testing.T) {
	assert.False(t, Verdict{}.Solved())
	assert.True(t, Verdict{entries: []Entry{{character.FieldName, Correct}, {character.FieldGender, Correct}}}.Solved())
	assert.False(t, Verdict{entries: []Entry{{character.FieldName, Correct}, {character.FieldGender, Partial}}}.Solved())
	assert.False(t, Verdict{entries: []Entry{{character.FieldName, Incorrect}}}.Solved())
}

func TestStateText(t *testing.T) {
	for _, s := range []State{Correct, Partial, Incorrect} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s.String(), string(text))
	}

	assert.Equal(t, "State(7)", State(7).String())
}
