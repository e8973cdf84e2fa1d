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

package diamond_test

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/model"
	"dirpx.dev/dxgrade/dxcore/model/diamond"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/dxgrade/dxcore/model/semver"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func TestDefaultReport(t *testing.T) {
	r := diamond.DefaultReport()

	if err := r.Validate(); err != nil {
		t.Fatalf("DefaultReport().Validate() = %v, want nil", err)
	}
	if got, want := r.IssuedAt(), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("IssuedAt() = %v, want %v", got, want)
	}
	if got, want := r.FormatMeasurements(), "6.41 x 6.43 x 3.97 mm"; got != want {
		t.Errorf("FormatMeasurements() = %q, want %q", got, want)
	}

	grades, err := r.Grades()
	if err != nil {
		t.Fatalf("Grades() error = %v", err)
	}
	want := grading.Properties{
		Color:        "J",
		Clarity:      "VS2",
		Cut:          "Excellent",
		Fluorescence: "None",
		Polish:       "Excellent",
		Symmetry:     "Excellent",
	}
	if diff := cmp.Diff(want, grades); diff != "" {
		t.Errorf("Grades() mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_Grades_Missing(t *testing.T) {
	r := diamond.Report{ReportNumber: "X", Carat: decimal.NewFromInt(1)}
	r.Codes.Set(grading.Color, 5)

	got, err := r.Grades()
	if err != nil {
		t.Fatalf("Grades() error = %v", err)
	}
	want := grading.Properties{
		Color:        "E",
		Clarity:      grading.UndefinedLabel,
		Cut:          grading.UndefinedLabel,
		Fluorescence: grading.UndefinedLabel,
		Polish:       grading.UndefinedLabel,
		Symmetry:     grading.UndefinedLabel,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Grades() mismatch (-want +got):\n%s", diff)
	}
}

func schemePtr(s string) *semver.Version {
	v := semver.MustParse(s)
	return &v
}

func TestReport_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *diamond.Report)
		wantField string
	}{
		{"valid", func(r *diamond.Report) {}, ""},
		{"no grades", func(r *diamond.Report) { r.Codes = grading.Codes{} }, ""},
		{"empty number", func(r *diamond.Report) { r.ReportNumber = "  " }, "ReportNumber"},
		{"zero carat", func(r *diamond.Report) { r.Carat = decimal.Zero }, "Carat"},
		{"negative carat", func(r *diamond.Report) { r.Carat = decimal.NewFromInt(-1) }, "Carat"},
		{"two dimensions", func(r *diamond.Report) { r.Measurements = r.Measurements[:2] }, "Measurements"},
		{"negative dimension", func(r *diamond.Report) {
			r.Measurements = []decimal.Decimal{decimal.NewFromInt(1), decimal.NewFromInt(-1), decimal.NewFromInt(1)}
		}, "Measurements[1]"},
		{"negative crown angle", func(r *diamond.Report) { r.CrownAngle = decimal.NewFromInt(-3) }, "CrownAngle"},
		{"bad clarity code", func(r *diamond.Report) { r.Codes.Set(grading.Clarity, 99) }, "Codes"},
		{"no scheme", func(r *diamond.Report) { r.Scheme = nil }, ""},
		{"earlier prerelease scheme", func(r *diamond.Report) { r.Scheme = schemePtr("1.0.0-rc.1") }, ""},
		{"newer scheme", func(r *diamond.Report) { r.Scheme = schemePtr("1.1.0") }, "Scheme"},
		{"other major scheme", func(r *diamond.Report) { r.Scheme = schemePtr("2.0.0") }, "Scheme"},
		{"negative scheme", func(r *diamond.Report) { r.Scheme = &semver.Version{Major: -1} }, "Scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := diamond.DefaultReport()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ve *errors.ValidationError
			if !stderrors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestReport_Validate_ReportsEveryBadCode(t *testing.T) {
	r := diamond.DefaultReport()
	r.Codes.Set(grading.Color, 27)
	r.Codes.Set(grading.Symmetry, 6)

	err := r.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"Color value: 27", "Symmetry value: 6"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, want it to contain %q", err, want)
		}
	}
}

func TestReport_Merge(t *testing.T) {
	partial := diamond.Report{
		ReportNumber: "GIA-123",
		Carat:        decimal.RequireFromString("0.5"),
	}
	partial.Codes.Set(grading.Color, 4)

	got := partial.Merge(diamond.DefaultReport())

	want := diamond.DefaultReport()
	want.ReportNumber = "GIA-123"
	want.Carat = decimal.RequireFromString("0.5")
	want.Codes.Set(grading.Color, 4)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_StringRedacted(t *testing.T) {
	r := diamond.DefaultReport()

	s := r.String()
	if !strings.Contains(s, "I Love You") || !strings.Contains(s, "J/VS2/Excellent/None/Excellent/Excellent") {
		t.Errorf("String() = %q, want inscriptions and grades", s)
	}
	red := r.Redacted()
	if strings.Contains(red, "I Love You") || strings.Contains(red, "**SAMPLE**") {
		t.Errorf("Redacted() = %q, leaks free text", red)
	}
	if !strings.Contains(red, "IGI-00000000") {
		t.Errorf("Redacted() = %q, want report number", red)
	}
	if got := r.TypeName(); got != "Report" {
		t.Errorf("TypeName() = %q, want %q", got, "Report")
	}
}

func TestReport_IsZero(t *testing.T) {
	if !(diamond.Report{}).IsZero() {
		t.Error("Report{}.IsZero() = false, want true")
	}
	if diamond.DefaultReport().IsZero() {
		t.Error("DefaultReport().IsZero() = true, want false")
	}
}

func TestReport_JSON(t *testing.T) {
	r := diamond.DefaultReport()

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	for _, key := range []string{`"scheme":"1.0.0"`, `"reportNumber":"IGI-00000000"`, `"colorGrade":10`, `"carat":"1.01"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("json.Marshal() = %s, want it to contain %s", data, key)
		}
	}

	var got diamond.Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}

	invalid := r
	invalid.ReportNumber = ""
	if _, err := json.Marshal(invalid); err == nil {
		t.Error("json.Marshal(invalid) error = nil, want error")
	}

	if err := json.Unmarshal([]byte(`{"reportNumber":"A","carat":1,"clarityGrade":42}`), &got); err == nil {
		t.Error("json.Unmarshal(bad code) error = nil, want error")
	}
	if err := json.Unmarshal([]byte(`{"reportNumber":`), &got); err == nil {
		t.Error("json.Unmarshal(truncated) error = nil, want error")
	}
}

func TestReport_YAML(t *testing.T) {
	r := diamond.DefaultReport()

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "colorGrade: 10") {
		t.Errorf("yaml.Marshal() = %s, want inline grade codes", data)
	}

	var got diamond.Report
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}

	if err := yaml.Unmarshal([]byte("reportNumber: A\ncarat: 0\n"), &got); err == nil {
		t.Error("yaml.Unmarshal(zero carat) error = nil, want error")
	}
}

func TestReport_ValidateAll(t *testing.T) {
	good := diamond.DefaultReport()
	bad := diamond.DefaultReport()
	bad.ReportNumber = ""

	if err := model.ValidateAll([]*diamond.Report{&good, &good}); err != nil {
		t.Errorf("ValidateAll(good, good) = %v, want nil", err)
	}
	if err := model.ValidateAll([]*diamond.Report{&good, &bad}); err == nil {
		t.Error("ValidateAll(good, bad) = nil, want error")
	}
}
