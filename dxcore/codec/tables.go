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
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/dxgrade/dxcore/model/semver"
)

// Scheme is the version of the table set below.
//
// Bump Minor when adding labels or aliases and Major when any existing code
// changes meaning; codes already stored elsewhere depend on it.
var Scheme = semver.MustParse("1.0.0")

var colorEntries = []Entry{
	{grading.UndefinedLabel, 0},
	{"A", 1}, {"B", 2}, {"C", 3}, {"D", 4}, {"E", 5}, {"F", 6}, {"G", 7},
	{"H", 8}, {"I", 9}, {"J", 10}, {"K", 11}, {"L", 12}, {"M", 13},
	{"N", 14}, {"O", 15}, {"P", 16}, {"Q", 17}, {"R", 18}, {"S", 19},
	{"T", 20}, {"U", 21}, {"V", 22}, {"W", 23}, {"X", 24}, {"Y", 25},
	{"Z", 26},
}

var clarityEntries = []Entry{
	{grading.UndefinedLabel, 0},
	{"FL", 1}, // Flawless
	{"Flawless", 1},
	{"IF", 2},   // Internally Flawless
	{"VVS1", 3}, // Very Very Slightly Included
	{"VVS2", 4},
	{"VS1", 5}, // Very Slightly Included
	{"VS2", 6},
	{"SI1", 7}, // Slightly Included
	{"SI2", 8},
	{"I1", 9}, // Included
	{"I2", 10},
	{"I3", 11},
}

var cutEntries = []Entry{
	{grading.UndefinedLabel, 0},
	{"Poor", 1},
	{"Fair", 2},
	{"Good", 3},
	{"Very Good", 4},
	{"Excellent", 5},
}

var polishEntries = []Entry{
	{grading.UndefinedLabel, 0},
	{"Poor", 1},
	{"Fair", 2},
	{"Good", 3},
	{"Very Good", 4},
	{"Excellent", 5},
}

var symmetryEntries = []Entry{
	{grading.UndefinedLabel, 0},
	{"Poor", 1},
	{"Fair", 2},
	{"Good", 3},
	{"Very Good", 4},
	{"Excellent", 5},
}

var fluorescenceEntries = []Entry{
	{grading.UndefinedLabel, 0},
	{"None", 1},
	{"Faint", 2},
	{"Medium", 3},
	{"Strong", 4},
	{"Very Strong", 5},
}

// tables is indexed by grading.Category; index 0 (CategoryUnknown) is nil.
var tables = [...]*Table{
	grading.Color:        mustTable(grading.Color, colorEntries),
	grading.Clarity:      mustTable(grading.Clarity, clarityEntries),
	grading.Cut:          mustTable(grading.Cut, cutEntries),
	grading.Polish:       mustTable(grading.Polish, polishEntries),
	grading.Symmetry:     mustTable(grading.Symmetry, symmetryEntries),
	grading.Fluorescence: mustTable(grading.Fluorescence, fluorescenceEntries),
}

func mustTable(category grading.Category, entries []Entry) *Table {
	t, err := NewTable(category, entries...)
	if err != nil {
		panic(err)
	}
	return t
}
