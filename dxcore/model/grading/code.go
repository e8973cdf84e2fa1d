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

package grading

import (
	"strconv"

	"dirpx.dev/dxgrade/dxcore/errors"
)

// Code is the compact numeric form of a grading label within one category.
//
// Codes fit in a uint8 so that a full set of six grades can be stored as
// small integers on-chain. Code values are only meaningful together with
// their Category.
type Code uint8

// CodeUndefined is reserved in every category to mean "undefined / unset".
const CodeUndefined Code = 0

// UndefinedLabel is the label of CodeUndefined in every category, and the
// label returned when decoding a missing code.
const UndefinedLabel = "UNDEFINED"

// String renders the code as a decimal integer.
func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// IsUndefined reports whether c is CodeUndefined.
func (c Code) IsUndefined() bool {
	return c == CodeUndefined
}

// Ptr returns a pointer to a copy of c, for populating optional code fields.
func (c Code) Ptr() *Code {
	return &c
}

// ParseCode parses a decimal code in the uint8 range. Anything else returns
// a *errors.ParseError.
func ParseCode(s string) (Code, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return CodeUndefined, &errors.ParseError{Type: "Code", Value: s}
	}
	return Code(n), nil
}
