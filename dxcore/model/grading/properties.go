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

// Codes is a set of six optional grade codes, one per category, as read from
// certificate records or token metadata. A nil field means the code is
// missing, which is distinct from an explicit CodeUndefined.
//
// JSON and YAML keys follow the certificate record field names.
type Codes struct {
	Color        *Code `json:"colorGrade,omitempty" yaml:"colorGrade,omitempty"`
	Clarity      *Code `json:"clarityGrade,omitempty" yaml:"clarityGrade,omitempty"`
	Cut          *Code `json:"cutGrade,omitempty" yaml:"cutGrade,omitempty"`
	Fluorescence *Code `json:"fluorescence,omitempty" yaml:"fluorescence,omitempty"`
	Polish       *Code `json:"polishGrade,omitempty" yaml:"polishGrade,omitempty"`
	Symmetry     *Code `json:"symmetryGrade,omitempty" yaml:"symmetryGrade,omitempty"`
}

// Get returns the field of c for category, or nil for CategoryUnknown.
func (c Codes) Get(category Category) *Code {
	switch category {
	case Color:
		return c.Color
	case Clarity:
		return c.Clarity
	case Cut:
		return c.Cut
	case Fluorescence:
		return c.Fluorescence
	case Polish:
		return c.Polish
	case Symmetry:
		return c.Symmetry
	default:
		return nil
	}
}

// Set stores code in the field for category. Set is a no-op for
// CategoryUnknown.
func (c *Codes) Set(category Category, code Code) {
	p := code.Ptr()
	switch category {
	case Color:
		c.Color = p
	case Clarity:
		c.Clarity = p
	case Cut:
		c.Cut = p
	case Fluorescence:
		c.Fluorescence = p
	case Polish:
		c.Polish = p
	case Symmetry:
		c.Symmetry = p
	}
}

// IsZero reports whether every field is missing.
func (c Codes) IsZero() bool {
	return c.Color == nil && c.Clarity == nil && c.Cut == nil &&
		c.Fluorescence == nil && c.Polish == nil && c.Symmetry == nil
}

// Properties holds the canonical label of each of the six categories.
type Properties struct {
	Color        string `json:"color" yaml:"color"`
	Clarity      string `json:"clarity" yaml:"clarity"`
	Cut          string `json:"cut" yaml:"cut"`
	Fluorescence string `json:"fluorescence" yaml:"fluorescence"`
	Polish       string `json:"polish" yaml:"polish"`
	Symmetry     string `json:"symmetry" yaml:"symmetry"`
}

// Get returns the label of category, or "" for CategoryUnknown.
func (p Properties) Get(category Category) string {
	switch category {
	case Color:
		return p.Color
	case Clarity:
		return p.Clarity
	case Cut:
		return p.Cut
	case Fluorescence:
		return p.Fluorescence
	case Polish:
		return p.Polish
	case Symmetry:
		return p.Symmetry
	default:
		return ""
	}
}

// Set stores label in the field for category. Set is a no-op for
// CategoryUnknown.
func (p *Properties) Set(category Category, label string) {
	switch category {
	case Color:
		p.Color = label
	case Clarity:
		p.Clarity = label
	case Cut:
		p.Cut = label
	case Fluorescence:
		p.Fluorescence = label
	case Polish:
		p.Polish = label
	case Symmetry:
		p.Symmetry = label
	}
}
