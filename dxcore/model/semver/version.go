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

// Package semver provides the semantic version type used to stamp the
// grading code scheme.
//
// Grading codes are persisted outside the process (for example in on-chain
// token metadata), so the set of code tables is versioned: adding a label
// alias is a minor change, renumbering a code is a major one. Readers use
// Version.Compatible to decide whether codes written under one scheme can be
// decoded by the tables of another.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxgrade/dxcore/errors"
	bsemver "github.com/blang/semver/v4"

	"gopkg.in/yaml.v3"
)

// Version is a Semantic Versioning 2.0.0 version.
//
// This implementation wraps github.com/blang/semver/v4 for parsing, validation
// and precedence. The zero value is 0.0.0.
type Version struct {
	// Major is incremented when an existing code changes meaning.
	Major int

	// Minor is incremented when labels or aliases are added.
	Minor int

	// Patch is incremented for changes that do not touch any table.
	Patch int

	// Prerelease is an optional dot-separated pre-release identifier.
	Prerelease string

	// Metadata is optional build metadata. It does not affect precedence.
	Metadata string
}

// ParseVersion parses "Major.Minor.Patch[-Prerelease][+Metadata]". A leading
// "v" is tolerated.
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}
	return fromBlangSemver(bv), nil
}

// MustParse is like ParseVersion but panics on error. It is intended for
// package-level constants.
func MustParse(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical SemVer text.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

func (v Version) toBlangSemver() (bsemver.Version, error) {
	bv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("failed to convert to blang/semver: %w", err)
	}
	return bv, nil
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   strings.Join(bv.Build, "."),
	}
}

// Validate checks that the components are non-negative and that prerelease
// and metadata identifiers are well formed.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return &dxerrors.ValidationError{
			Type:   "Version",
			Reason: "components must be non-negative",
			Value:  v.String(),
		}
	}
	if _, err := v.toBlangSemver(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// IsZero reports whether v is exactly 0.0.0 with no prerelease or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or +1 according to SemVer precedence. Build metadata
// is ignored. Invalid versions compare by their numeric core only.
func (v Version) Compare(other Version) int {
	bv, errA := v.toBlangSemver()
	bo, errB := other.toBlangSemver()
	if errA != nil || errB != nil {
		return compareCore(v, other)
	}
	return bv.Compare(bo)
}

func compareCore(a, b Version) int {
	for _, d := range [...]int{a.Major - b.Major, a.Minor - b.Minor, a.Patch - b.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// Less reports whether v precedes other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compatible reports whether codes written under scheme other can be decoded
// by tables of scheme v: the majors match and other does not come after v.
//
// Example:
//
//	MustParse("1.2.0").Compatible(MustParse("1.0.0")) // true
//	MustParse("1.2.0").Compatible(MustParse("1.3.0")) // false, newer aliases
//	MustParse("1.2.0").Compatible(MustParse("2.0.0")) // false, renumbered
func (v Version) Compatible(other Version) bool {
	return v.Major == other.Major && other.Compare(v) <= 0
}

// MarshalJSON encodes a valid Version as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes a valid Version as a scalar string.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a scalar string via ParseVersion.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
