// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Animal is a single catalog entry stored in the "animalweb" table.
//
// JSON field names follow the public wire format consumed by the web front
// end, which mirrors the column names of the table.
type Animal struct {
	// ID is assigned by the store on creation and never changes afterwards.
	ID int64 `json:"id"`

	// Name is the only required field.
	Name string `json:"animal_name"`

	Characteristics *string          `json:"animal_char"`
	Description     *string          `json:"animal_desc"`
	Habitat         *string          `json:"animal_habitat"`
	Diet            *string          `json:"animal_diet"`
	AggressionLevel *AggressionLevel `json:"animal_agg"`
	Category        *string          `json:"animal_cat"`

	// PictureRef is a URL or a path to the animal's picture.
	PictureRef *string `json:"animal_pic"`
}

// TableName returns the name of the database table associated with Animal.
func (a Animal) TableName() string {
	return "animalweb"
}

// AnimalFields is the set of mutable fields of an [Animal].
// A nil field means "not provided": on create it is stored as NULL, on update
// the column is left untouched.
type AnimalFields struct {
	Name            *string          `json:"animal_name,omitempty"`
	Characteristics *string          `json:"animal_char,omitempty"`
	Description     *string          `json:"animal_desc,omitempty"`
	Habitat         *string          `json:"animal_habitat,omitempty"`
	Diet            *string          `json:"animal_diet,omitempty"`
	AggressionLevel *AggressionLevel `json:"animal_agg,omitempty"`
	Category        *string          `json:"animal_cat,omitempty"`
	PictureRef      *string          `json:"animal_pic,omitempty"`
}

// IsEmpty reports whether no field was provided.
func (f AnimalFields) IsEmpty() bool {
	return f.Name == nil &&
		f.Characteristics == nil &&
		f.Description == nil &&
		f.Habitat == nil &&
		f.Diet == nil &&
		f.AggressionLevel == nil &&
		f.Category == nil &&
		f.PictureRef == nil
}

// ToAnimal builds an [Animal] without ID from the provided fields.
func (f AnimalFields) ToAnimal() Animal {
	a := Animal{
		Characteristics: f.Characteristics,
		Description:     f.Description,
		Habitat:         f.Habitat,
		Diet:            f.Diet,
		AggressionLevel: f.AggressionLevel,
		Category:        f.Category,
		PictureRef:      f.PictureRef,
	}
	if f.Name != nil {
		a.Name = *f.Name
	}

	return a
}

// Apply overwrites the fields of a that are present in f.
func (f AnimalFields) Apply(a Animal) Animal {
	if f.Name != nil {
		a.Name = *f.Name
	}
	if f.Characteristics != nil {
		a.Characteristics = f.Characteristics
	}
	if f.Description != nil {
		a.Description = f.Description
	}
	if f.Habitat != nil {
		a.Habitat = f.Habitat
	}
	if f.Diet != nil {
		a.Diet = f.Diet
	}
	if f.AggressionLevel != nil {
		a.AggressionLevel = f.AggressionLevel
	}
	if f.Category != nil {
		a.Category = f.Category
	}
	if f.PictureRef != nil {
		a.PictureRef = f.PictureRef
	}

	return a
}

// AggressionLevel is a free-form aggression rating. Clients send it either as
// a number (3) or as a label ("high"); both are kept as text.
type AggressionLevel string

// UnmarshalJSON accepts a JSON string or a JSON number.
func (l *AggressionLevel) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty aggression level")
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = AggressionLevel(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("aggression level must be a string or a number: %w", err)
	}
	*l = AggressionLevel(n.String())

	return nil
}

// MarshalJSON writes levels that are valid JSON numbers as numbers and
// everything else ("+3", ".5", "NaN", "high") as JSON strings, so a value
// round-trips in the shape it was sent.
func (l AggressionLevel) MarshalJSON() ([]byte, error) {
	if isJSONNumber(string(l)) {
		return []byte(l), nil
	}

	return json.Marshal(string(l))
}

// isJSONNumber reports whether s matches the JSON number grammar exactly,
// without surrounding whitespace.
func isJSONNumber(s string) bool {
	if s == "" {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if (first != '-' && (first < '0' || first > '9')) || last < '0' || last > '9' {
		return false
	}

	return json.Valid([]byte(s))
}

// String implements [fmt.Stringer].
func (l AggressionLevel) String() string {
	return string(l)
}
