/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

// Package character holds the character dataset: the record schema, the
// tolerant JSON decoding the dataset needs, ingestion with per-record
// rejection, the appearance category catalog, and a reloadable store.
package character

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Field names a column of the dataset, spelled exactly as the JSON key.
type Field string

const (
	FieldName          Field = "Name"
	FieldGender        Field = "Gender"
	FieldSpecies       Field = "Species"
	FieldPlaceOfOrigin Field = "Place of Origin"
	FieldBendingType   Field = "Bending type"
	FieldSpecialSkills Field = "Special Skills"
	FieldAffiliation   Field = "Affiliation/Group"
	FieldAppearances   Field = "Appearances"
	FieldImage         Field = "Image"
	FieldHints         Field = "Hints"
)

// Columns is the display order of the compared fields.
var Columns = []Field{
	FieldName,
	FieldGender,
	FieldSpecies,
	FieldPlaceOfOrigin,
	FieldBendingType,
	FieldSpecialSkills,
	FieldAffiliation,
	FieldAppearances,
}

// Values is a multi-valued field. The dataset stores these either as a
// single string or as a list of strings; both decode to a Values.
type Values []string

func (v *Values) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case nil:
		*v = Values{}
	case string:
		*v = Values{t}
	case []any:
		out := make(Values, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("element %d is %T, not a string", i, item)
			}
			out = append(out, s)
		}
		*v = out
	default:
		return fmt.Errorf("expected a string or a list of strings, got %T", raw)
	}

	return nil
}

// Set returns the distinct values, in first-seen order.
func (v Values) Set() []string {
	out := make([]string, 0, len(v))
	for _, s := range v {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Record is one character. Records are shared read-only once loaded.
type Record struct {
	Name          string   `json:"Name"`
	Gender        string   `json:"Gender"`
	Species       Values   `json:"Species"`
	PlaceOfOrigin string   `json:"Place of Origin"`
	BendingType   Values   `json:"Bending type"`
	SpecialSkills Values   `json:"Special Skills"`
	Affiliation   Values   `json:"Affiliation/Group"`
	Appearances   Values   `json:"Appearances"`
	Image         string   `json:"Image,omitempty"`
	Hints         []string `json:"Hints,omitempty"`
}

// Scalar returns the value of a single-valued field.
func (r *Record) Scalar(f Field) (string, bool) {
	switch f {
	case FieldName:
		return r.Name, true
	case FieldGender:
		return r.Gender, true
	case FieldPlaceOfOrigin:
		return r.PlaceOfOrigin, true
	case FieldImage:
		return r.Image, true
	}
	return "", false
}

// Multi returns the value of a multi-valued field.
func (r *Record) Multi(f Field) (Values, bool) {
	switch f {
	case FieldSpecies:
		return r.Species, true
	case FieldBendingType:
		return r.BendingType, true
	case FieldSpecialSkills:
		return r.SpecialSkills, true
	case FieldAffiliation:
		return r.Affiliation, true
	case FieldAppearances:
		return r.Appearances, true
	}
	return nil, false
}

// Check verifies the record invariants: a non-empty name and at least
// one appearance.
func (r *Record) Check() error {
	if r == nil {
		return &MalformedRecordError{Index: -1, Reason: "record is nil"}
	}
	if r.Name == "" {
		return &MalformedRecordError{Index: -1, Field: FieldName, Reason: "name is empty"}
	}
	if len(r.Appearances) == 0 {
		return &MalformedRecordError{Index: -1, Name: r.Name, Field: FieldAppearances, Reason: "no appearances"}
	}
	return nil
}

// AppearsIn reports whether any of the record's appearances is in tags.
func (r *Record) AppearsIn(tags map[string]struct{}) bool {
	for _, a := range r.Appearances {
		if _, ok := tags[a]; ok {
			return true
		}
	}
	return false
}
