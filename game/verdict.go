/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Seednode/characterdle/character"
)

// State is the per-field result of a comparison.
type State int

const (
	Incorrect State = iota
	Partial
	Correct
)

func (s State) String() string {
	switch s {
	case Correct:
		return "correct"
	case Partial:
		return "partial"
	case Incorrect:
		return "incorrect"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Entry is one field of a Verdict.
type Entry struct {
	Field character.Field `json:"field"`
	State State           `json:"state"`
}

// Verdict maps each compared field to its State, in display order.
type Verdict struct {
	entries []Entry
}

// Get returns the state of field f.
func (v Verdict) Get(f character.Field) (State, bool) {
	for _, e := range v.entries {
		if e.Field == f {
			return e.State, true
		}
	}
	return Incorrect, false
}

func (v Verdict) Len() int {
	return len(v.entries)
}

// Solved reports whether every field is correct. An empty verdict is never
// solved.
func (v Verdict) Solved() bool {
	if len(v.entries) == 0 {
		return false
	}
	for _, e := range v.entries {
		if e.State != Correct {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the verdict as an object whose keys keep display order.
func (v Verdict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Field))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteByte('"')
		buf.WriteString(e.State.String())
		buf.WriteByte('"')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
