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
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/rxmerr"
)

// TableFor returns the static table of category. Categories other than the
// six codec categories return a *errors.InvalidValueError of type
// "Category".
func TableFor(category grading.Category) (*Table, error) {
	if !category.Valid() {
		return nil, &errors.InvalidValueError{Type: "Category", Value: category.String()}
	}
	return tables[category], nil
}

// Encode returns the code of label in category.
//
// The lookup is an exact, case-sensitive match against every declared label,
// aliases included: Encode("Flawless", grading.Clarity) and
// Encode("FL", grading.Clarity) both return 1. There is no fuzzy matching.
func Encode(label string, category grading.Category) (grading.Code, error) {
	t, err := TableFor(category)
	if err != nil {
		return grading.CodeUndefined, err
	}
	return t.Encode(label)
}

// Decode returns the canonical label of code in category.
//
// Code 0 decodes to "UNDEFINED" in every category because every table
// declares it explicitly. Codes with no entry return an error.
func Decode(code grading.Code, category grading.Category) (string, error) {
	t, err := TableFor(category)
	if err != nil {
		return "", err
	}
	return t.Decode(code)
}

// DecodeInt is Decode for an integer from outside the process, such as a
// command-line argument or a JSON number. Integers outside the Code range
// have no entry in any table and return *errors.InvalidValueError like any
// other unknown code: DecodeInt(9999, grading.Color) fails with
// "dxgrade: invalid Color value: 9999".
func DecodeInt(n int64, category grading.Category) (string, error) {
	code, err := CodeOf(n, category)
	if err != nil {
		return "", err
	}
	return Decode(code, category)
}

// CodeOf narrows n to a Code of category without a table lookup. Integers
// outside the Code range return *errors.InvalidValueError.
func CodeOf(n int64, category grading.Category) (grading.Code, error) {
	if _, err := TableFor(category); err != nil {
		return grading.CodeUndefined, err
	}
	if n < 0 || n > math.MaxUint8 {
		return grading.CodeUndefined, &errors.InvalidValueError{Type: category.Name(), Value: strconv.FormatInt(n, 10)}
	}
	return grading.Code(n), nil
}

// ParseCode parses a decimal code of category. Text that is not an integer
// returns *errors.ParseError; integers outside the Code range, however large,
// return *errors.InvalidValueError.
func ParseCode(s string, category grading.Category) (grading.Code, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			if _, terr := TableFor(category); terr != nil {
				return grading.CodeUndefined, terr
			}
			return grading.CodeUndefined, &errors.InvalidValueError{Type: category.Name(), Value: s}
		}
		return grading.CodeUndefined, &errors.ParseError{Type: "Code", Value: s}
	}
	return CodeOf(n, category)
}

// DecodeOptional is Decode for a code that may be missing. A nil code
// returns "UNDEFINED" without consulting any table, whatever the category.
func DecodeOptional(code *grading.Code, category grading.Category) (string, error) {
	if code == nil {
		return grading.UndefinedLabel, nil
	}
	return Decode(*code, category)
}

// DecodeDiamondProperties decodes six optional codes, each against its own
// category table, in the order color, clarity, cut, fluorescence, polish,
// symmetry.
//
// Fields are decoded independently; there is no cross-category check. The
// first failing field stops decoding and its error is returned wrapped with
// the category name. Use DecodeDiamondPropertiesAll to collect every failure.
func DecodeDiamondProperties(color, clarity, cut, fluorescence, polish, symmetry *grading.Code) (grading.Properties, error) {
	codes := grading.Codes{
		Color:        color,
		Clarity:      clarity,
		Cut:          cut,
		Fluorescence: fluorescence,
		Polish:       polish,
		Symmetry:     symmetry,
	}

	var props grading.Properties
	for _, category := range grading.Categories() {
		label, err := DecodeOptional(codes.Get(category), category)
		if err != nil {
			return grading.Properties{}, fmt.Errorf("%s: %w", category, err)
		}
		props.Set(category, label)
	}
	return props, nil
}

// DecodeDiamondPropertiesAll is DecodeDiamondProperties that decodes every
// field and reports all failures together.
//
// Fields that decode successfully are set in the returned Properties even
// when the error is non-nil; failed fields are left empty.
func DecodeDiamondPropertiesAll(color, clarity, cut, fluorescence, polish, symmetry *grading.Code) (grading.Properties, error) {
	codes := grading.Codes{
		Color:        color,
		Clarity:      clarity,
		Cut:          cut,
		Fluorescence: fluorescence,
		Polish:       polish,
		Symmetry:     symmetry,
	}
	return DecodeCodesAll(codes)
}

// DecodeCodes decodes c with the first-error behaviour of
// DecodeDiamondProperties.
func DecodeCodes(c grading.Codes) (grading.Properties, error) {
	return DecodeDiamondProperties(c.Color, c.Clarity, c.Cut, c.Fluorescence, c.Polish, c.Symmetry)
}

// DecodeCodesAll decodes c with the aggregating behaviour of
// DecodeDiamondPropertiesAll.
func DecodeCodesAll(c grading.Codes) (grading.Properties, error) {
	errs := rxmerr.NewCollector()

	var props grading.Properties
	for _, category := range grading.Categories() {
		label, err := DecodeOptional(c.Get(category), category)
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", category, err))
			continue
		}
		props.Set(category, label)
	}
	return props, errs.Err()
}

// EncodeDiamondProperties encodes six labels, each against its own category
// table, in the order color, clarity, cut, fluorescence, polish, symmetry.
// Every field of the returned Codes is set. The first unknown label stops
// encoding.
func EncodeDiamondProperties(color, clarity, cut, fluorescence, polish, symmetry string) (grading.Codes, error) {
	props := grading.Properties{
		Color:        color,
		Clarity:      clarity,
		Cut:          cut,
		Fluorescence: fluorescence,
		Polish:       polish,
		Symmetry:     symmetry,
	}
	return EncodeProperties(props)
}

// EncodeProperties encodes every label of p.
func EncodeProperties(p grading.Properties) (grading.Codes, error) {
	var codes grading.Codes
	for _, category := range grading.Categories() {
		code, err := Encode(p.Get(category), category)
		if err != nil {
			return grading.Codes{}, fmt.Errorf("%s: %w", category, err)
		}
		codes.Set(category, code)
	}
	return codes, nil
}
