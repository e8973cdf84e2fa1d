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

// Package diamond models a graded diamond certificate: the laboratory report
// data minted into a diamond-backed token, with its six grades stored as
// compact codes.
package diamond

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dirpx.dev/dxgrade/dxcore/codec"
	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/dxgrade/dxcore/model/semver"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Report is a diamond grading certificate.
//
// Grades are kept as codes exactly as stored on-chain; Grades() decodes them
// to canonical labels. Dimensional values use decimal.Decimal so that values
// such as 6.41 mm or 58.9 % survive serialization unchanged.
//
// Report implements model.Model. Validate requires a report number, a
// positive carat weight, non-negative proportions, a scheme readable by
// codec.Scheme and grade codes that decode in their categories.
type Report struct {
	// Scheme is the version of the code tables the grade codes were written
	// under. A nil Scheme is taken to be the current one.
	Scheme *semver.Version `json:"scheme,omitempty" yaml:"scheme,omitempty"`

	// ReportDate is the issue date of the laboratory report, in Unix seconds.
	ReportDate int64 `json:"reportDate,omitempty" yaml:"reportDate,omitempty"`

	// ReportNumber is the laboratory report identifier, for example
	// "IGI-00000000".
	ReportNumber string `json:"reportNumber" yaml:"reportNumber"`

	Shape string          `json:"shape,omitempty" yaml:"shape,omitempty"`
	Carat decimal.Decimal `json:"carat" yaml:"carat"`

	grading.Codes `yaml:",inline"`

	// Inscriptions is the laser inscription text. It is masked by Redacted.
	Inscriptions string `json:"inscriptions,omitempty" yaml:"inscriptions,omitempty"`

	// Comments is free-form laboratory commentary. It is masked by Redacted.
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty"`

	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Measurements are length, width and depth in millimetres.
	Measurements []decimal.Decimal `json:"measurements,omitempty" yaml:"measurements,omitempty"`

	TotalDepth       decimal.Decimal `json:"totalDepth" yaml:"totalDepth"`
	TableDiameter    decimal.Decimal `json:"tableDiameter" yaml:"tableDiameter"`
	PavilionDepth    decimal.Decimal `json:"pavilionDepth" yaml:"pavilionDepth"`
	PavilionAngle    decimal.Decimal `json:"pavilionAngle" yaml:"pavilionAngle"`
	CrownHeight      decimal.Decimal `json:"crownHeight" yaml:"crownHeight"`
	CrownAngle       decimal.Decimal `json:"crownAngle" yaml:"crownAngle"`
	GirdlePercentage decimal.Decimal `json:"girdlePercentage" yaml:"girdlePercentage"`
}

// Compile-time assertion that Report implements model.Model.
var _ model.Model = (*Report)(nil)

// DefaultReport returns the sample certificate shown when a token carries no
// report data.
func DefaultReport() Report {
	scheme := codec.Scheme
	return Report{
		Scheme:       &scheme,
		ReportDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(),
		ReportNumber: "IGI-00000000",
		Shape:        "Round Brilliant",
		Carat:        decimal.RequireFromString("1.01"),
		Codes: grading.Codes{
			Color:        grading.Code(10).Ptr(),
			Clarity:      grading.Code(6).Ptr(),
			Cut:          grading.Code(5).Ptr(),
			Polish:       grading.Code(5).Ptr(),
			Symmetry:     grading.Code(5).Ptr(),
			Fluorescence: grading.Code(1).Ptr(),
		},
		Inscriptions: "I Love You",
		Comments:     "**SAMPLE**",
		Source:       "Natural Diamond",
		Measurements: []decimal.Decimal{
			decimal.RequireFromString("6.41"),
			decimal.RequireFromString("6.43"),
			decimal.RequireFromString("3.97"),
		},
		TotalDepth:       decimal.RequireFromString("58.9"),
		TableDiameter:    decimal.NewFromInt(67),
		PavilionDepth:    decimal.RequireFromString("43.5"),
		PavilionAngle:    decimal.RequireFromString("41.9"),
		CrownHeight:      decimal.NewFromInt(12),
		CrownAngle:       decimal.RequireFromString("38.5"),
		GirdlePercentage: decimal.RequireFromString("3.7"),
	}
}

// Merge returns r with every zero-valued field replaced by the field of
// defaults. Grade codes are merged per category.
func (r Report) Merge(defaults Report) Report {
	out := r
	if out.Scheme == nil && defaults.Scheme != nil {
		scheme := *defaults.Scheme
		out.Scheme = &scheme
	}
	if out.ReportDate == 0 {
		out.ReportDate = defaults.ReportDate
	}
	if out.ReportNumber == "" {
		out.ReportNumber = defaults.ReportNumber
	}
	if out.Shape == "" {
		out.Shape = defaults.Shape
	}
	if out.Carat.IsZero() {
		out.Carat = defaults.Carat
	}
	for _, category := range grading.Categories() {
		if out.Codes.Get(category) == nil {
			if c := defaults.Codes.Get(category); c != nil {
				out.Codes.Set(category, *c)
			}
		}
	}
	if out.Inscriptions == "" {
		out.Inscriptions = defaults.Inscriptions
	}
	if out.Comments == "" {
		out.Comments = defaults.Comments
	}
	if out.Source == "" {
		out.Source = defaults.Source
	}
	if len(out.Measurements) == 0 {
		out.Measurements = append([]decimal.Decimal(nil), defaults.Measurements...)
	}
	for _, f := range []struct{ dst, src *decimal.Decimal }{
		{&out.TotalDepth, &defaults.TotalDepth},
		{&out.TableDiameter, &defaults.TableDiameter},
		{&out.PavilionDepth, &defaults.PavilionDepth},
		{&out.PavilionAngle, &defaults.PavilionAngle},
		{&out.CrownHeight, &defaults.CrownHeight},
		{&out.CrownAngle, &defaults.CrownAngle},
		{&out.GirdlePercentage, &defaults.GirdlePercentage},
	} {
		if f.dst.IsZero() {
			*f.dst = *f.src
		}
	}
	return out
}

// Grades decodes the grade codes with the first-error behaviour of
// codec.DecodeDiamondProperties. Missing codes decode to "UNDEFINED".
func (r Report) Grades() (grading.Properties, error) {
	return codec.DecodeCodes(r.Codes)
}

// IssuedAt returns ReportDate as a UTC time. The zero ReportDate returns the
// zero time.
func (r Report) IssuedAt() time.Time {
	if r.ReportDate == 0 {
		return time.Time{}
	}
	return time.Unix(r.ReportDate, 0).UTC()
}

// FormatMeasurements renders Measurements as "6.41 x 6.43 x 3.97 mm", or ""
// when there are none.
func (r Report) FormatMeasurements() string {
	if len(r.Measurements) == 0 {
		return ""
	}
	parts := make([]string, len(r.Measurements))
	for i, m := range r.Measurements {
		parts[i] = m.StringFixed(2)
	}
	return strings.Join(parts, " x ") + " mm"
}

// Validate checks the certificate invariants. Every grade code is decoded, so
// a single call reports all invalid grades at once.
func (r Report) Validate() error {
	if strings.TrimSpace(r.ReportNumber) == "" {
		return &errors.ValidationError{Type: "Report", Field: "ReportNumber", Reason: "must not be empty"}
	}
	if !r.Carat.IsPositive() {
		return &errors.ValidationError{Type: "Report", Field: "Carat", Reason: "must be positive", Value: r.Carat.String()}
	}
	if len(r.Measurements) != 0 && len(r.Measurements) != 3 {
		return &errors.ValidationError{
			Type:   "Report",
			Field:  "Measurements",
			Reason: fmt.Sprintf("must have 3 dimensions, got %d", len(r.Measurements)),
		}
	}
	for i, m := range r.Measurements {
		if m.IsNegative() {
			return &errors.ValidationError{
				Type:   "Report",
				Field:  fmt.Sprintf("Measurements[%d]", i),
				Reason: "must not be negative",
				Value:  m.String(),
			}
		}
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{"TotalDepth", r.TotalDepth},
		{"TableDiameter", r.TableDiameter},
		{"PavilionDepth", r.PavilionDepth},
		{"PavilionAngle", r.PavilionAngle},
		{"CrownHeight", r.CrownHeight},
		{"CrownAngle", r.CrownAngle},
		{"GirdlePercentage", r.GirdlePercentage},
	} {
		if f.v.IsNegative() {
			return &errors.ValidationError{Type: "Report", Field: f.name, Reason: "must not be negative", Value: f.v.String()}
		}
	}
	if r.Scheme != nil {
		if err := r.Scheme.Validate(); err != nil {
			return &errors.ValidationError{Type: "Report", Field: "Scheme", Reason: err.Error(), Value: r.Scheme.String()}
		}
		if !codec.Scheme.Compatible(*r.Scheme) {
			return &errors.ValidationError{
				Type:   "Report",
				Field:  "Scheme",
				Reason: fmt.Sprintf("codes written under scheme %s cannot be read with scheme %s", r.Scheme, codec.Scheme),
				Value:  r.Scheme.String(),
			}
		}
	}
	if _, err := codec.DecodeCodesAll(r.Codes); err != nil {
		return &errors.ValidationError{Type: "Report", Field: "Codes", Reason: err.Error()}
	}
	return nil
}

// TypeName returns "Report".
func (r Report) TypeName() string {
	return "Report"
}

// IsZero reports whether r carries no report number, carat or grades.
func (r Report) IsZero() bool {
	return r.ReportNumber == "" && r.Carat.IsZero() && r.Codes.IsZero()
}

// String returns a one-line summary including free-text fields.
func (r Report) String() string {
	return r.format(r.Inscriptions, r.Comments)
}

// Redacted returns a one-line summary with inscriptions and comments masked.
func (r Report) Redacted() string {
	return r.format(redact(r.Inscriptions), redact(r.Comments))
}

func (r Report) format(inscriptions, comments string) string {
	grades, err := r.Grades()
	g := "invalid"
	if err == nil {
		g = strings.Join([]string{grades.Color, grades.Clarity, grades.Cut, grades.Fluorescence, grades.Polish, grades.Symmetry}, "/")
	}
	return fmt.Sprintf("Report{Number:%s, Shape:%s, Carat:%s, Grades:%s, Inscriptions:%s, Comments:%s}",
		r.ReportNumber, r.Shape, r.Carat.String(), g, inscriptions, comments)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

// MarshalJSON validates r and encodes it with its JSON field names.
func (r Report) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type alias Report
	return json.Marshal(alias(r))
}

// UnmarshalJSON decodes r and validates the result.
func (r *Report) UnmarshalJSON(data []byte) error {
	type alias Report
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return &errors.UnmarshalError{Type: "Report", Data: data, Reason: err.Error()}
	}
	if err := Report(a).Validate(); err != nil {
		return fmt.Errorf("unmarshaled Report is invalid: %w", err)
	}
	*r = Report(a)
	return nil
}

// MarshalYAML validates r and encodes it with its YAML field names.
func (r Report) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type alias Report
	return alias(r), nil
}

// UnmarshalYAML decodes r and validates the result.
func (r *Report) UnmarshalYAML(node *yaml.Node) error {
	type alias Report
	var a alias
	if err := node.Decode(&a); err != nil {
		return &errors.UnmarshalError{Type: "Report", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := Report(a).Validate(); err != nil {
		return fmt.Errorf("unmarshaled Report is invalid: %w", err)
	}
	*r = Report(a)
	return nil
}
