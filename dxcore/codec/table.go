/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package codec converts diamond grading labels to compact numeric codes and
// back, independently per grading category.
//
// Every category has a forward table declared as an ordered list of
// label/code entries. Several labels may share a code (aliases such as "FL"
// and "Flawless"); when decoding, the label declared first for a code is its
// canonical label. The declaration order of entries is therefore
// significant, and it is the only place where it is.
//
// Tables are built once, when the package is initialised, and are immutable
// afterwards. All functions in this package are pure and safe for concurrent
// use.
//
// Lookup failures are reported as *errors.InvalidValueError and match
// errors.ErrInvalidValue. The codec never logs, retries or substitutes a
// default; callers decide how to present an invalid label or code.
package codec

import (
	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model/grading"
)

// Entry is one label/code pair of a forward table.
type Entry struct {
	Label string
	Code  grading.Code
}

// Table is the immutable forward and reverse mapping of one category.
type Table struct {
	category grading.Category
	entries  []Entry
	forward  map[string]grading.Code
	reverse  map[grading.Code]string

	// codes holds each distinct code once, in order of first declaration.
	codes []grading.Code
}

// NewTable builds the table of category from entries in declared order.
//
// The reverse mapping is built by walking entries in order and assigning a
// label to its code only if no earlier entry has claimed that code. Building
// a table twice from the same entries always yields the same mapping.
//
// NewTable returns a *errors.ValidationError when category is not one of the
// six codec categories, when entries is empty, or when a label is empty or
// declared twice.
func NewTable(category grading.Category, entries ...Entry) (*Table, error) {
	if !category.Valid() {
		return nil, &errors.ValidationError{
			Type:   "Table",
			Field:  "Category",
			Reason: "must be a grading category",
			Value:  category,
		}
	}
	if len(entries) == 0 {
		return nil, &errors.ValidationError{
			Type:   "Table",
			Field:  "Entries",
			Reason: category.Name() + " table has no entries",
		}
	}

	t := &Table{
		category: category,
		entries:  make([]Entry, len(entries)),
		forward:  make(map[string]grading.Code, len(entries)),
		reverse:  make(map[grading.Code]string, len(entries)),
	}
	copy(t.entries, entries)

	for _, e := range t.entries {
		if e.Label == "" {
			return nil, &errors.ValidationError{
				Type:   "Table",
				Field:  "Entries",
				Reason: category.Name() + " table has an empty label",
				Value:  e.Code,
			}
		}
		if _, dup := t.forward[e.Label]; dup {
			return nil, &errors.ValidationError{
				Type:   "Table",
				Field:  "Entries",
				Reason: category.Name() + " table declares label " + e.Label + " twice",
				Value:  e.Label,
			}
		}
		t.forward[e.Label] = e.Code

		// First come, first served.
		if _, claimed := t.reverse[e.Code]; !claimed {
			t.reverse[e.Code] = e.Label
			t.codes = append(t.codes, e.Code)
		}
	}

	return t, nil
}

// Category returns the category the table maps.
func (t *Table) Category() grading.Category {
	return t.category
}

// Encode returns the code of label. The match is exact and case-sensitive.
func (t *Table) Encode(label string) (grading.Code, error) {
	code, ok := t.forward[label]
	if !ok {
		return grading.CodeUndefined, &errors.InvalidValueError{Type: t.category.Name(), Value: label}
	}
	return code, nil
}

// Decode returns the canonical label of code.
func (t *Table) Decode(code grading.Code) (string, error) {
	label, ok := t.reverse[code]
	if !ok {
		return "", &errors.InvalidValueError{Type: t.category.Name(), Value: code.String()}
	}
	return label, nil
}

// Canonical reports whether label is the canonical label of its code.
// Aliases and unknown labels are not canonical.
func (t *Table) Canonical(label string) bool {
	code, ok := t.forward[label]
	return ok && t.reverse[code] == label
}

// Entries returns a copy of the forward entries in declared order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Labels returns every label, aliases included, in declared order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Codes returns each distinct code once, in order of first declaration.
func (t *Table) Codes() []grading.Code {
	out := make([]grading.Code, len(t.codes))
	copy(out, t.codes)
	return out
}

// Len returns the number of forward entries, aliases included.
func (t *Table) Len() int {
	return len(t.entries)
}
