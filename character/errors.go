/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package character

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord matches every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes a record that is missing a field or has a
// field of the wrong shape. Index is the position in the source dataset, or
// -1 when the record did not come from one.
type MalformedRecordError struct {
	Index  int
	Name   string
	Field  Field
	Reason string
}

func (e *MalformedRecordError) Error() string {
	who := e.Name
	if who == "" && e.Index >= 0 {
		who = fmt.Sprintf("#%d", e.Index)
	}

	switch {
	case who != "" && e.Field != "":
		return fmt.Sprintf("malformed record %s: %s: %s", who, e.Field, e.Reason)
	case who != "":
		return fmt.Sprintf("malformed record %s: %s", who, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("malformed record: %s: %s", e.Field, e.Reason)
	}

	return "malformed record: " + e.Reason
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
