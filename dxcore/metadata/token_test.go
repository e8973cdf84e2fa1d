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

package metadata_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxgrade/dxcore/errors"
	"dirpx.dev/dxgrade/dxcore/metadata"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeToken(t *testing.T, doc string) *metadata.Token {
	t.Helper()
	var token metadata.Token
	require.NoError(t, json.Unmarshal([]byte(doc), &token))
	return &token
}

func TestToken_Grades(t *testing.T) {
	token := decodeToken(t, sampleDocument)

	got, err := token.Grades()
	require.NoError(t, err)
	assert.Equal(t, grading.Properties{
		Color:        "E",
		Clarity:      "VVS1",
		Cut:          "Excellent",
		Fluorescence: "None",
		Polish:       "Very Good",
		Symmetry:     "Good",
	}, got)
}

func TestToken_Codes(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		category grading.Category
		want     *grading.Code
		wantErr  string
	}{
		{
			name:     "numeric code",
			doc:      `{"attributes":[{"trait_type":"Color","value":26}]}`,
			category: grading.Color,
			want:     grading.Code(26).Ptr(),
		},
		{
			name:     "label",
			doc:      `{"attributes":[{"trait_type":"colour","value":"D"}]}`,
			category: grading.Color,
			want:     grading.Code(4).Ptr(),
		},
		{
			name:     "alias label",
			doc:      `{"attributes":[{"trait_type":"Clarity","value":"Flawless"}]}`,
			category: grading.Clarity,
			want:     grading.Code(1).Ptr(),
		},
		{
			name:     "missing trait",
			doc:      `{"attributes":[{"trait_type":"Color","value":1}]}`,
			category: grading.Cut,
			want:     nil,
		},
		{
			name:     "first trait wins",
			doc:      `{"attributes":[{"trait_type":"Cut","value":"Fair"},{"trait_type":"Cut Grade","value":"Good"}]}`,
			category: grading.Cut,
			want:     grading.Code(2).Ptr(),
		},
		{
			name:    "unknown label",
			doc:     `{"attributes":[{"trait_type":"Clarity","value":"VS3"}]}`,
			wantErr: "dxgrade: invalid Clarity value: VS3",
		},
		{
			name:    "code outside table",
			doc:     `{"attributes":[{"trait_type":"Cut","value":6}]}`,
			wantErr: "dxgrade: invalid Cut value: 6",
		},
		{
			name:    "fractional code",
			doc:     `{"attributes":[{"trait_type":"Cut","value":1.5}]}`,
			wantErr: "dxgrade: invalid Cut value: 1.5",
		},
		{
			name:    "boolean",
			doc:     `{"attributes":[{"trait_type":"Polish","value":true}]}`,
			wantErr: "unsupported value type bool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, err := decodeToken(t, tt.doc).Codes()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, codes.Get(tt.category))
		})
	}
}

func TestToken_Codes_OutOfRangeIsInvalidValue(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"number", `{"attributes":[{"trait_type":"Color","value":9999}]}`, "dxgrade: invalid Color value: 9999"},
		{"negative", `{"attributes":[{"trait_type":"Cut","value":-2}]}`, "dxgrade: invalid Cut value: -2"},
		{"huge", `{"attributes":[{"trait_type":"Polish","value":1e30}]}`, "dxgrade: invalid Polish value: 1000000000000000000000000000000"},
		{"numeric string", `{"attributes":[{"trait_type":"Color","value":"9999"}]}`, "dxgrade: invalid Color value: 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeToken(t, tt.doc).Codes()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidValue)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestToken_Codes_ReportsEveryBadTrait(t *testing.T) {
	token := decodeToken(t, `{"attributes":[
		{"trait_type":"Color","value":"ZZ"},
		{"trait_type":"Cut","value":"Good"},
		{"trait_type":"Symmetry","value":9}
	]}`)

	codes, err := token.Codes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Color value: ZZ")
	assert.Contains(t, err.Error(), "Symmetry value: 9")
	assert.Equal(t, grading.Code(3).Ptr(), codes.Cut)
}

func TestToken_Report(t *testing.T) {
	token := decodeToken(t, sampleDocument)

	r, err := token.Report()
	require.NoError(t, err)
	assert.Equal(t, "IGI-123", r.ReportNumber)
	assert.Equal(t, "1.01", r.Carat.String())
	assert.Equal(t, grading.Code(5).Ptr(), r.Codes.Color)
	assert.Nil(t, r.Scheme)
	require.NoError(t, r.Validate())
}

func TestToken_Report_Scheme(t *testing.T) {
	token := decodeToken(t, `{"attributes":[
		{"trait_type":"Report Number","value":"IGI-9"},
		{"trait_type":"Carat","value":"0.30"},
		{"trait_type":"Scheme","value":"2.0.0"}
	]}`)

	r, err := token.Report()
	require.NoError(t, err)
	require.NotNil(t, r.Scheme)
	assert.Equal(t, "2.0.0", r.Scheme.String())
	assert.Error(t, r.Validate())

	bad := decodeToken(t, `{"attributes":[{"trait_type":"Scheme","value":"one"}]}`)
	_, err = bad.Report()
	assert.Error(t, err)
}

func TestToken_TraitAndImage(t *testing.T) {
	token := decodeToken(t, sampleDocument)

	v, ok := token.Trait("  edition ")
	require.True(t, ok)
	assert.Equal(t, float64(7), v)

	_, ok = token.Trait("Weight")
	assert.False(t, ok)

	assert.Equal(t, "https://ipfs.io/ipfs/bafyimage/1.png", token.ImageURL("https://ipfs.io/ipfs/"))
}
