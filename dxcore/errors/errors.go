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

// Package errors provides reusable error types for dxgrade codecs and model
// types.
//
// The codec in dxcore/codec has exactly one failure mode: a label or code
// that has no entry in the table of the requested grading category. That
// failure is reported as an *InvalidValueError. The remaining types cover
// parsing, marshaling, unmarshaling and validation of the enum-like and
// record types under dxcore/model.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from codec, parsing and marshaling code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - InvalidValueError
//     Returned by codec encode and decode when a label or code is not
//     present in the category table. Matches ErrInvalidValue via errors.Is.
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails.
//
//   - ValidationError
//     Returned when validation of a model type fails.
package errors

import (
	"errors"
	"strconv"
)

// ErrInvalidValue is the sentinel matched by every *InvalidValueError.
//
// Callers that only care about the failure kind SHOULD test with
// errors.Is(err, ErrInvalidValue); callers that need the category or the
// offending value SHOULD use errors.As with *InvalidValueError.
var ErrInvalidValue = errors.New("dxgrade: invalid value")

// InvalidValueError is returned when a label or code has no entry in the
// table of a grading category.
//
// Type is the name of the grading category (for example, "Clarity") and
// Value is the textual form of the rejected input: the label itself when
// encoding, or the decimal code when decoding.
//
// # Example
//
//	code, err := codec.Encode("Z9", grading.Clarity)
//	// err.Error() == "dxgrade: invalid Clarity value: Z9"
type InvalidValueError struct {
	// Type is the grading category name.
	Type string

	// Value is the label or the decimal code that was rejected.
	Value string
}

// Error implements the error interface for InvalidValueError.
//
// The error message format is:
//
//	"dxgrade: invalid {Type} value: {Value}"
func (e *InvalidValueError) Error() string {
	return "dxgrade: invalid " + e.Type + " value: " + e.Value
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Category"),
// and Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Category").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxgrade: cannot parse {Type}: {Value}"
func (e *ParseError) Error() string {
	return "dxgrade: cannot parse " + e.Type + ": " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, for example a
// Category produced by a numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxgrade: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxgrade: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the original
// raw payload, and Reason provides a human-readable description of what went
// wrong. The Data field is intentionally not included in the formatted
// message; callers can log it separately when appropriate.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxgrade: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxgrade: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the type being validated (for example, "Report"), Field
// optionally names the field that failed, Reason explains the failure and
// Value optionally carries the offending value.
//
// # Example
//
//	func (r Report) Validate() error {
//	    if r.ReportNumber == "" {
//	        return &errors.ValidationError{
//	            Type:   "Report",
//	            Field:  "ReportNumber",
//	            Reason: "must not be empty",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxgrade: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxgrade: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxgrade: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxgrade: invalid " + e.Type + ": " + e.Reason
}
