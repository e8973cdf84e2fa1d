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

// Package model defines the contracts that dxgrade value types implement so
// that grading categories, decoded grade records and diamond certificates
// behave the same way at every boundary: validation, JSON and YAML
// serialization, safe logging, type identification and zero detection.
//
// Types under dxcore/model are immutable value types. They are safe for
// concurrent reads; unmarshal methods mutate the receiver and require
// exclusive access.
//
// Types implementing Model can be used with the generic helpers in this
// package, such as ValidateAll, MustValidate, SafeString, ToJSON, ToYAML,
// FromJSON and FromYAML.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxgrade value types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable checks
// invariants, Serializable provides JSON and YAML encoding, Loggable offers
// safe (redacted) and full string forms, Identifiable supplies a type name
// and ZeroCheckable detects empty instances.
//
// Example implementation check:
//
//	var _ model.Model = (*Report)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// perform I/O and MUST NOT mutate the receiver. When validation fails the
// returned error MUST say what is invalid, for example
// "Report.ReportNumber: must not be empty" rather than "validation failed".
//
// Callers SHOULD invoke Validate immediately after unmarshaling external
// input and before persisting or transmitting a value.
type Validatable interface {
	// Validate returns nil if the instance satisfies all invariants, or a
	// descriptive error otherwise.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Implementations MUST validate before marshaling and after unmarshaling so
// that invalid values never cross a serialization boundary. A value encoded
// and decoded in either format MUST compare equal to the original.
//
// Implementations SHOULD use the local "type alias" pattern to avoid
// infinite recursion:
//
//	func (r Report) MarshalJSON() ([]byte, error) {
//	    if err := r.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
//	    }
//	    type alias Report
//	    return json.Marshal(alias(r))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging.
//
// Redacted returns a representation suitable for production logs; free-text
// fields entered by people (certificate inscriptions, comments) MUST be
// masked. String returns the full representation and MUST NOT be used for
// production logging.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production.
	Redacted() string

	// String returns a human-readable representation of the instance that
	// MAY include free-text fields.
	String() string
}

// Identifiable defines the contract for types that identify themselves by a
// canonical type name such as "Category" or "Report".
//
// TypeName MUST return a constant, CamelCase name without a package prefix.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
type ZeroCheckable interface {
	// IsZero reports whether this instance contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for equality.
//
// Equal MUST be reflexive, symmetric, transitive and consistent.
type Comparable[T any] interface {
	// Equal reports whether this instance represents the same logical value
	// as other.
	Equal(other T) bool
}
