// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package models

// Record is one catalog entity (a person or a planet) as decoded from the
// upstream JSON. The aggregation pipeline treats it as an opaque mapping and
// only reads the fields it filters, sorts or enriches on.
type Record map[string]any

// Field names the pipeline inspects.
const (
	FieldName          = "name"
	FieldCreated       = "created"
	FieldHomeworld     = "homeworld"
	FieldHomeworldName = "homeworld_name"
)

// String returns the string value of field, or "" when the field is missing
// or not a string.
func (r Record) String(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

// Clone returns a shallow copy of r. Nested values are shared.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}
