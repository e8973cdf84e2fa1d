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

package codec

import (
	"errors"
	"reflect"
	"testing"

	dxerrors "dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model/grading"
)

func TestNewTable_FirstDeclaredAliasWins(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		code      grading.Code
		canonical string
	}{
		{"alias after canonical", []Entry{{"FL", 1}, {"Flawless", 1}}, 1, "FL"},
		{"alias before canonical", []Entry{{"Flawless", 1}, {"FL", 1}}, 1, "Flawless"},
		{"three aliases", []Entry{{"x", 7}, {"y", 7}, {"z", 7}}, 7, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(grading.Clarity, tt.entries...)
			if err != nil {
				t.Fatalf("NewTable() error = %v", err)
			}
			got, err := table.Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.canonical {
				t.Errorf("Decode(%d) = %q, want %q", tt.code, got, tt.canonical)
			}
			for _, e := range tt.entries {
				if code, err := table.Encode(e.Label); err != nil || code != tt.code {
					t.Errorf("Encode(%q) = %d, %v, want %d", e.Label, code, err, tt.code)
				}
			}
		})
	}
}

func TestNewTable_Deterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		a, err := NewTable(grading.Clarity, clarityEntries...)
		if err != nil {
			t.Fatalf("NewTable() error = %v", err)
		}
		b, err := NewTable(grading.Clarity, clarityEntries...)
		if err != nil {
			t.Fatalf("NewTable() error = %v", err)
		}
		if !reflect.DeepEqual(a.reverse, b.reverse) {
			t.Fatalf("reverse mappings differ: %v vs %v", a.reverse, b.reverse)
		}
		if !reflect.DeepEqual(a.Codes(), b.Codes()) {
			t.Fatalf("code order differs: %v vs %v", a.Codes(), b.Codes())
		}
	}
}

func TestNewTable_Errors(t *testing.T) {
	tests := []struct {
		name     string
		category grading.Category
		entries  []Entry
	}{
		{"unknown category", grading.CategoryUnknown, []Entry{{"A", 1}}},
		{"out of range category", grading.Category(9), []Entry{{"A", 1}}},
		{"no entries", grading.Color, nil},
		{"empty label", grading.Color, []Entry{{"A", 1}, {"", 2}}},
		{"duplicate label", grading.Color, []Entry{{"A", 1}, {"A", 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.category, tt.entries...)
			if err == nil {
				t.Fatalf("NewTable() = %v, want error", table)
			}
			var verr *dxerrors.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("NewTable() error = %T, want *errors.ValidationError", err)
			}
		})
	}
}

func TestNewTable_CopiesEntries(t *testing.T) {
	entries := []Entry{{"Poor", 1}, {"Fair", 2}}
	table, err := NewTable(grading.Cut, entries...)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	entries[0].Label = "Awful"

	if got, _ := table.Decode(1); got != "Poor" {
		t.Errorf("Decode(1) = %q after caller mutation, want Poor", got)
	}
	out := table.Entries()
	out[1].Label = "Mutated"
	if got := table.Labels(); got[1] != "Fair" {
		t.Errorf("Labels() = %v after Entries() mutation", got)
	}
}

func TestTable_Introspection(t *testing.T) {
	table, err := NewTable(grading.Clarity, clarityEntries...)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if table.Category() != grading.Clarity {
		t.Errorf("Category() = %v", table.Category())
	}
	if table.Len() != 13 {
		t.Errorf("Len() = %d, want 13", table.Len())
	}
	if got := table.Codes(); len(got) != 12 || got[0] != 0 || got[11] != 11 {
		t.Errorf("Codes() = %v, want 0..11", got)
	}
	if labels := table.Labels(); labels[1] != "FL" || labels[2] != "Flawless" {
		t.Errorf("Labels() = %v, want declared order", labels)
	}

	tests := []struct {
		label string
		want  bool
	}{
		{"FL", true},
		{"Flawless", false},
		{grading.UndefinedLabel, true},
		{"I3", true},
		{"fl", false},
	}
	for _, tt := range tests {
		if got := table.Canonical(tt.label); got != tt.want {
			t.Errorf("Canonical(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
