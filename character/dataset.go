/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package character

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/characters.json
var defaultDataset []byte

var requiredFields = []Field{
	FieldName,
	FieldGender,
	FieldSpecies,
	FieldPlaceOfOrigin,
	FieldBendingType,
	FieldSpecialSkills,
	FieldAffiliation,
	FieldAppearances,
}

// Dataset is an ordered, loaded set of records. Records that failed
// ingestion are left out and reported in Rejected.
type Dataset struct {
	Source   string
	Records  []*Record
	Rejected []error
}

// Find returns the first record whose name matches, ignoring case.
func (d *Dataset) Find(name string) *Record {
	if d == nil {
		return nil
	}

	name = strings.TrimSpace(name)
	for _, r := range d.Records {
		if strings.EqualFold(r.Name, name) {
			return r
		}
	}

	return nil
}

// Decode reads a JSON array of records. A document that is not a JSON
// array fails outright; individual records that do not fit the schema are
// rejected without failing the rest.
func Decode(r io.Reader) (*Dataset, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := &Dataset{
		Records: make([]*Record, 0, len(raw)),
	}

	for i, item := range raw {
		rec, err := decodeRecord(i, item)
		if err != nil {
			ds.Rejected = append(ds.Rejected, err)
			continue
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// Load reads a dataset from path, or the embedded dataset when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		ds, err := Decode(bytes.NewReader(defaultDataset))
		if err != nil {
			return nil, err
		}
		ds.Source = "embedded"
		return ds, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, err
	}
	ds.Source = path

	return ds, nil
}

func decodeRecord(index int, data json.RawMessage) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &MalformedRecordError{Index: index, Reason: "not a JSON object"}
	}

	rec := &Record{}

	// Pull the name first so every later error can say who it is about.
	if v, ok := fields[string(FieldName)]; ok {
		_ = json.Unmarshal(v, &rec.Name)
	}

	for _, f := range requiredFields {
		if _, ok := fields[string(f)]; !ok {
			return nil, &MalformedRecordError{Index: index, Name: rec.Name, Field: f, Reason: "missing"}
		}
	}

	scalars := []struct {
		field Field
		dst   *string
	}{
		{FieldName, &rec.Name},
		{FieldGender, &rec.Gender},
		{FieldPlaceOfOrigin, &rec.PlaceOfOrigin},
	}
	for _, s := range scalars {
		if err := json.Unmarshal(fields[string(s.field)], s.dst); err != nil {
			return nil, &MalformedRecordError{Index: index, Name: rec.Name, Field: s.field, Reason: "expected a string"}
		}
	}

	multis := []struct {
		field Field
		dst   *Values
	}{
		{FieldSpecies, &rec.Species},
		{FieldBendingType, &rec.BendingType},
		{FieldSpecialSkills, &rec.SpecialSkills},
		{FieldAffiliation, &rec.Affiliation},
		{FieldAppearances, &rec.Appearances},
	}
	for _, m := range multis {
		if err := json.Unmarshal(fields[string(m.field)], m.dst); err != nil {
			return nil, &MalformedRecordError{Index: index, Name: rec.Name, Field: m.field, Reason: err.Error()}
		}
	}

	if v, ok := fields[string(FieldImage)]; ok && string(v) != "null" {
		if err := json.Unmarshal(v, &rec.Image); err != nil {
			return nil, &MalformedRecordError{Index: index, Name: rec.Name, Field: FieldImage, Reason: "expected a string"}
		}
	}

	if v, ok := fields[string(FieldHints)]; ok {
		var hints Values
		if err := json.Unmarshal(v, &hints); err != nil {
			return nil, &MalformedRecordError{Index: index, Name: rec.Name, Field: FieldHints, Reason: err.Error()}
		}
		rec.Hints = hints
	}

	if err := rec.Check(); err != nil {
		merr := err.(*MalformedRecordError)
		merr.Index = index
		return nil, merr
	}

	return rec, nil
}
