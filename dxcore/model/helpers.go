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

package model

import (
	"encoding/json"
	"fmt"
	"reflect"

	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first failure.
//
// Each failure is wrapped with the model's position in the slice and its
// type name, and the failures are combined through rxmerr.Collector. Empty
// slices are valid and return nil.
//
// Example usage for validating a batch of certificates loaded from files:
//
//	if err := model.ValidateAll(reports); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate validates a model and panics if validation fails.
//
// Callers MUST only use MustValidate where an invalid value is a programming
// error, such as package-level defaults and test fixtures.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns Redacted() unless unsafe is true, in which case it
// returns String().
//
// Production logging SHOULD always pass false.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and marshals it to JSON.
//
// No marshaling is attempted when validation fails.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and marshals it to YAML.
//
// No marshaling is attempted when validation fails.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON unmarshals data into m and validates the result.
//
// If FromJSON returns an error, the state of *m is undefined and MUST NOT be
// used.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if isNil(*m) {
		return &errors.UnmarshalError{Type: "JSON", Data: data, Reason: "document is null"}
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML unmarshals data into m and validates the result.
//
// If FromYAML returns an error, the state of *m is undefined and MUST NOT be
// used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if isNil(*m) {
		return &errors.UnmarshalError{Type: "YAML", Data: data, Reason: "document is null"}
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// isNil reports whether m is a nil pointer, which a null JSON or YAML
// document leaves behind when T is a pointer type.
func isNil[T Model](m T) bool {
	v := reflect.ValueOf(m)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}
