/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"testing"

	"github.com/Seednode/characterdle/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolOf(names ...string) []*character.Record {
	pool := make([]*character.Record, len(names))
	for i, n := range names {
		pool[i] = newRecord(n)
	}
	return pool
}

func namesOf(recs []*character.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestRankShortQueryReturnsNothing(t *testing.T) {
	pool := poolOf("Zuko", "Zhao", "Azula", "Aang")

	assert.Empty(t, Rank("", pool, 5))
	assert.Empty(t, Rank("a", pool, 5))
	assert.Empty(t, Rank("z", pool, 5))
	// Apostrophes do not count towards the length.
	assert.Empty(t, Rank("'z", pool, 5))
}

func TestRankPrefixTieBreaksAlphabetically(t *testing.T) {
	pool := poolOf("Zuko", "Zhu Li", "Azhar", "Zhao", "Azula")

	assert.Equal(t, []string{"Zhao", "Zhu Li", "Azhar"}, namesOf(Rank("zh", pool, 5)))
	assert.Equal(t, []string{"Zhao", "Zhu Li", "Azhar"}, namesOf(Rank("ZH", pool, 5)))
	assert.Equal(t, []string{"Zhao", "Zhu Li"}, namesOf(Rank("zh", pool, 2)))
}

func TestRankTiers(t *testing.T) {
	pool := poolOf("Lin Beifong", "Toph Beifong", "Bei Fong", "Beifong", "Suyin Beifong")

	got := namesOf(Rank("beifong", pool, 10))
	assert.Equal(t, []string{"Beifong", "Lin Beifong", "Suyin Beifong", "Toph Beifong"}, got)

	got = namesOf(Rank("bei", pool, 10))
	assert.Equal(t, []string{"Bei Fong", "Beifong", "Lin Beifong", "Suyin Beifong", "Toph Beifong"}, got)
}

func TestRankExactBeatsPrefix(t *testing.T) {
	pool := poolOf("Aang's Glider", "Aang", "Aangs")

	assert.Equal(t, []string{"Aang", "Aang's Glider", "Aangs"}, namesOf(Rank("aang", pool, 5)))
}

func TestRankApostropheTolerance(t *testing.T) {
	pool := poolOf("Ba Sing Se", "Sokka's Master", "Sokka")

	withMark := namesOf(Rank("sokka's", pool, 5))
	without := namesOf(Rank("sokkas", pool, 5))

	assert.Equal(t, []string{"Sokka's Master"}, withMark)
	assert.Equal(t, withMark, without)

	// Omitting the apostrophe still lands the name in the exact tier.
	pool = poolOf("Oma's", "Omashu Guard")
	assert.Equal(t, []string{"Oma's", "Omashu Guard"}, namesOf(Rank("omas", pool, 5)))
}

func TestRankTypographicApostrophe(t *testing.T) {
	pool := poolOf("Jet’s Hideout")

	assert.Equal(t, []string{"Jet’s Hideout"}, namesOf(Rank("jets", pool, 5)))
	assert.Equal(t, []string{"Jet’s Hideout"}, namesOf(Rank("jet's", pool, 5)))
}

func TestRankIsDeterministic(t *testing.T) {
	ds, err := character.Load("")
	require.NoError(t, err)

	for _, q := range []string{"ko", "ai", "an", "be", "zu", "ra"} {
		first := Rank(q, ds.Records, 5)
		second := Rank(q, ds.Records, 5)
		assert.Equal(t, namesOf(first), namesOf(second), q)
	}
}

func TestRankDuplicateNamesKeepPoolOrder(t *testing.T) {
	a := newRecord("Kya")
	b := newRecord("Kya")
	b.Gender = "Male"

	got := Rank("kya", []*character.Record{a, b}, 5)
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
}

func TestRankLimit(t *testing.T) {
	pool := poolOf("Kai", "Kya", "Kyoshi", "Korra", "Koh", "Kuvira", "Katara")

	assert.Len(t, Rank("k", pool, 5), 0)
	assert.Len(t, Rank("ka", pool, 1), 1)
	assert.Len(t, Rank("ky", pool, 0), 2)

	var many []string
	for range 8 {
		many = append(many, "Kyoshi Warrior")
	}
	assert.Len(t, Rank("kyoshi", poolOf(many...), 0), DefaultLimit)
}

func TestRankSkipsNilRecords(t *testing.T) {
	pool := []*character.Record{nil, newRecord("Mako"), nil}
	assert.Equal(t, []string{"Mako"}, namesOf(Rank("mak", pool, 5)))
}

func TestSelect(t *testing.T) {
	pool := poolOf("Tenzin", "Ten", "Katen")

	rec, ok := Select("ten", pool, 5, 0)
	require.True(t, ok)
	assert.Equal(t, "Ten", rec.Name)

	rec, ok = Select("ten", pool, 5, 2)
	require.True(t, ok)
	assert.Equal(t, "Katen", rec.Name)

	_, ok = Select("ten", pool, 5, 3)
	assert.False(t, ok)
	_, ok = Select("ten", pool, 5, -1)
	assert.False(t, ok)
}

func TestDidYouMean(t *testing.T) {
	pool := poolOf("Toph Beifong", "Zuko", "Tenzin")

	assert.Empty(t, Rank("tph", pool, 5))
	assert.Equal(t, []string{"Toph Beifong"}, namesOf(DidYouMean("tph", pool, 5)))
	assert.Empty(t, DidYouMean("t", pool, 5))
	assert.Empty(t, DidYouMean("qqq", pool, 5))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "sokkas master", Normalize("Sokka's Master"))
	assert.Equal(t, "jets", Normalize("JET’S"))
}
