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

// Package grading defines the vocabulary shared by the dxgrade codec: the six
// independent diamond grading categories and the compact numeric code each
// grading label is stored as.
package grading

import (
	"encoding/json"
	"strconv"
	"strings"

	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Category identifies one of the six independent diamond grading dimensions.
//
// Each category owns its own label set and numeric code range; a code is only
// meaningful together with the category it was encoded in. The zero value,
// CategoryUnknown, is a valid Category value for data structures but is never
// accepted by the codec.
//
// JSON, YAML and text serialization use the lowercase names ("color",
// "clarity", ...) rather than numeric values.
type Category uint8

const (
	// CategoryUnknown represents an unset or unrecognized category.
	CategoryUnknown Category = iota

	// Color is the body color grade, A through Z.
	Color

	// Clarity is the inclusion grade, FL through I3.
	Clarity

	// Cut is the cut quality grade, Poor through Excellent.
	Cut

	// Polish is the surface finish grade, Poor through Excellent.
	Polish

	// Symmetry is the facet alignment grade, Poor through Excellent.
	Symmetry

	// Fluorescence is the UV fluorescence intensity, None through Very Strong.
	Fluorescence
)

// String constants for Category values used in serialization, parsing and
// CLI arguments. Changing any of these strings is a breaking change.
const (
	CategoryUnknownStr = "unknown"
	ColorStr           = "color"
	ClarityStr         = "clarity"
	CutStr             = "cut"
	PolishStr          = "polish"
	SymmetryStr        = "symmetry"
	FluorescenceStr    = "fluorescence"
)

// categoryOrder is the fixed order used by Codes and Properties records and
// by the batch decoders.
var categoryOrder = [...]Category{Color, Clarity, Cut, Fluorescence, Polish, Symmetry}

// Categories returns the six codec categories in the order color, clarity,
// cut, fluorescence, polish, symmetry. Each call returns a fresh slice.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// Compile-time assertion that Category implements model.Model.
var _ model.Model = (*Category)(nil)

// ParseCategory parses a category name.
//
// The input is trimmed and lowercased before matching, so "Clarity",
// " CLARITY " and "clarity" are equivalent. "colour" is accepted as an
// alias of "color". Unknown names return a *errors.ParseError.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ColorStr, "colour":
		return Color, nil
	case ClarityStr:
		return Clarity, nil
	case CutStr:
		return Cut, nil
	case PolishStr:
		return Polish, nil
	case SymmetryStr:
		return Symmetry, nil
	case FluorescenceStr:
		return Fluorescence, nil
	case CategoryUnknownStr:
		return CategoryUnknown, nil
	default:
		return CategoryUnknown, &errors.ParseError{Type: "Category", Value: s}
	}
}

// String returns the lowercase serialization name of the category.
func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return CategoryUnknownStr
	case Color:
		return ColorStr
	case Clarity:
		return ClarityStr
	case Cut:
		return CutStr
	case Polish:
		return PolishStr
	case Symmetry:
		return SymmetryStr
	case Fluorescence:
		return FluorescenceStr
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// Name returns the display name of the category ("Color", "Clarity", ...).
//
// Name is used as the Type of *errors.InvalidValueError so that codec errors
// read "dxgrade: invalid Clarity value: Z9".
func (c Category) Name() string {
	switch c {
	case Color:
		return "Color"
	case Clarity:
		return "Clarity"
	case Cut:
		return "Cut"
	case Polish:
		return "Polish"
	case Symmetry:
		return "Symmetry"
	case Fluorescence:
		return "Fluorescence"
	default:
		return "Unknown"
	}
}

// Redacted returns String(); category names are not sensitive.
func (c Category) Redacted() string {
	return c.String()
}

// TypeName returns "Category".
func (c Category) TypeName() string {
	return "Category"
}

// IsZero reports whether c is CategoryUnknown.
func (c Category) IsZero() bool {
	return c == CategoryUnknown
}

// Equal reports whether c and other are the same category.
func (c Category) Equal(other Category) bool {
	return c == other
}

// Valid reports whether c is one of the six codec categories.
//
// CategoryUnknown is not Valid, although it still passes Validate and
// serializes; codec entry points check Valid.
func (c Category) Valid() bool {
	return c >= Color && c <= Fluorescence
}

// Validate reports an error when c is outside the declared constants.
func (c Category) Validate() error {
	if c > Fluorescence {
		return &errors.ValidationError{
			Type:   "Category",
			Reason: "invalid Category value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON encodes the category as its lowercase name.
func (c Category) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a category name string. On failure the receiver is
// left unchanged.
func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the category as its lowercase name.
func (c Category) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.String(), nil
}

// UnmarshalYAML accepts a category name scalar.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, which also makes Category
// usable as a JSON map key.
func (c Category) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseCategory.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
