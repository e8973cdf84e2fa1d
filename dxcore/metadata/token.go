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

package metadata

import (
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dirpx.dev/dxgrade/dxcore/codec"
	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model/diamond"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/dxgrade/dxcore/model/semver"
	"dirpx.dev/rxmerr"
	"github.com/shopspring/decimal"
)

// Token is an ERC-721 style metadata document.
type Token struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// Attribute is a single trait. Value is whatever JSON value the document
// carries: a string, a float64 or a bool.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// Trait returns the value of the first attribute whose trait type equals
// name, ignoring case and surrounding spaces.
func (t *Token) Trait(name string) (any, bool) {
	name = strings.TrimSpace(name)
	for _, a := range t.Attributes {
		if strings.EqualFold(strings.TrimSpace(a.TraitType), name) {
			return a.Value, true
		}
	}
	return nil, false
}

// ImageURL returns Image resolved against gateway.
func (t *Token) ImageURL(gateway string) string {
	return ResolveURI(t.Image, gateway)
}

// Codes collects the grading traits of t. A trait counts as a grade when its
// trait type names a category, optionally followed by "Grade" ("Color",
// "Clarity Grade", "colour"). Numeric values are taken as codes; string
// values are encoded through the codec, so both "VS1" and 5 work for
// clarity. Every bad trait is reported; the codes that were read are
// returned either way.
func (t *Token) Codes() (grading.Codes, error) {
	var codes grading.Codes
	c := rxmerr.NewCollector()

	for _, a := range t.Attributes {
		category, ok := traitCategory(a.TraitType)
		if !ok {
			continue
		}
		code, err := attributeCode(a.Value, category)
		if err != nil {
			c.Append(fmt.Errorf("trait %q: %w", a.TraitType, err))
			continue
		}
		if codes.Get(category) == nil {
			codes.Set(category, code)
		}
	}
	return codes, c.Err()
}

// Grades decodes the grading traits of t to canonical labels. Categories
// without a trait decode to "UNDEFINED".
func (t *Token) Grades() (grading.Properties, error) {
	codes, err := t.Codes()
	if err != nil {
		return grading.Properties{}, err
	}
	return codec.DecodeCodes(codes)
}

// Report builds a certificate from the grading traits and the "Report
// Number", "Shape", "Carat", "Source" and "Scheme" traits. The result is not
// validated.
func (t *Token) Report() (diamond.Report, error) {
	codes, err := t.Codes()
	if err != nil {
		return diamond.Report{}, err
	}
	r := diamond.Report{Codes: codes}
	if v, ok := t.Trait("Report Number"); ok {
		r.ReportNumber = fmt.Sprint(v)
	}
	if v, ok := t.Trait("Shape"); ok {
		r.Shape = fmt.Sprint(v)
	}
	if v, ok := t.Trait("Source"); ok {
		r.Source = fmt.Sprint(v)
	}
	if v, ok := t.Trait("Scheme"); ok {
		scheme, err := semver.ParseVersion(fmt.Sprint(v))
		if err != nil {
			return diamond.Report{}, fmt.Errorf("trait %q: %w", "Scheme", err)
		}
		r.Scheme = &scheme
	}
	if v, ok := t.Trait("Carat"); ok {
		carat, err := decimalValue(v)
		if err != nil {
			return diamond.Report{}, fmt.Errorf("trait %q: %w", "Carat", err)
		}
		r.Carat = carat
	}
	return r, nil
}

func (t *Token) clone() *Token {
	out := *t
	out.Attributes = append([]Attribute(nil), t.Attributes...)
	return &out
}

func traitCategory(trait string) (grading.Category, bool) {
	name := strings.ToLower(strings.TrimSpace(trait))
	name = strings.TrimSpace(strings.TrimSuffix(name, "grade"))
	category, err := grading.ParseCategory(name)
	if err != nil || !category.Valid() {
		return grading.CategoryUnknown, false
	}
	return category, true
}

func attributeCode(v any, category grading.Category) (grading.Code, error) {
	switch val := v.(type) {
	case float64:
		if val != math.Trunc(val) || val < math.MinInt64 || val >= math.MaxInt64 {
			return 0, &errors.InvalidValueError{Type: category.Name(), Value: strconv.FormatFloat(val, 'f', -1, 64)}
		}
		code, err := codec.CodeOf(int64(val), category)
		if err != nil {
			return 0, err
		}
		if _, err := codec.Decode(code, category); err != nil {
			return 0, err
		}
		return code, nil
	case string:
		code, err := codec.Encode(strings.TrimSpace(val), category)
		if err == nil {
			return code, nil
		}
		if parsed, perr := codec.ParseCode(val, category); perr == nil {
			if _, derr := codec.Decode(parsed, category); derr != nil {
				return 0, derr
			}
			return parsed, nil
		} else if stderrors.Is(perr, errors.ErrInvalidValue) {
			return 0, perr
		}
		return 0, err
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

func decimalValue(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(val))
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type %T", v)
	}
}
