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

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dirpx.dev/dxgrade/dxcore/codec"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/rxmerr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// undefinedArg marks a missing code in the properties command.
const undefinedArg = "-"

type encodeResult struct {
	Category grading.Category `json:"category" yaml:"category"`
	Label    string           `json:"label" yaml:"label"`
	Code     grading.Code     `json:"code" yaml:"code"`
}

func (a *app) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <category> <label>",
		Short: "Encode a grading label to its code",
		Example: `  dxgrade encode clarity VVS1
  dxgrade encode cut "Very Good"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := grading.ParseCategory(args[0])
			if err != nil {
				return err
			}
			code, err := codec.Encode(args[1], category)
			if err != nil {
				return err
			}
			a.logger.Debug("encoded", zap.Stringer("category", category), zap.String("label", args[1]), zap.Uint8("code", uint8(code)))

			res := encodeResult{Category: category, Label: args[1], Code: code}
			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, code)
				return err
			})
		},
	}
}

func (a *app) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <category> [code]",
		Short: "Decode a code to its canonical label",
		Long: `Decode a code to its canonical label. Without a code the value is
treated as missing and decodes to UNDEFINED.`,
		Example: `  dxgrade decode color 5
  dxgrade decode clarity`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := grading.ParseCategory(args[0])
			if err != nil {
				return err
			}
			var code *grading.Code
			if len(args) == 2 {
				c, err := codec.ParseCode(args[1], category)
				if err != nil {
					return err
				}
				code = &c
			}
			label, err := codec.DecodeOptional(code, category)
			if err != nil {
				return err
			}

			res := map[string]any{"category": category, "label": label}
			if code != nil {
				res["code"] = *code
			}
			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, label)
				return err
			})
		},
	}
}

func (a *app) newPropertiesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "properties <color> <clarity> <cut> <fluorescence> <polish> <symmetry>",
		Short: "Decode the six grade codes of a diamond",
		Long: `Decode the six grade codes of a diamond in the order color, clarity,
cut, fluorescence, polish, symmetry. Pass "-" for a missing code.

By default decoding stops at the first invalid code. With --all every
invalid code is reported.`,
		Example: `  dxgrade properties 5 3 5 1 4 3
  dxgrade properties 5 - - - - -`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			var codes grading.Codes
			parseErrs := rxmerr.NewCollector()
			for i, category := range grading.Categories() {
				if args[i] == undefinedArg {
					continue
				}
				c, err := codec.ParseCode(args[i], category)
				if err != nil {
					err = fmt.Errorf("%s: %w", category, err)
					if !all {
						// An earlier field that fails to decode is reported first.
						if _, derr := codec.DecodeCodes(codes); derr != nil {
							return derr
						}
						return err
					}
					parseErrs.Append(err)
					continue
				}
				codes.Set(category, c)
			}

			if !all {
				props, err := codec.DecodeCodes(codes)
				if err != nil {
					return err
				}
				return a.renderProperties(cmd.OutOrStdout(), props)
			}

			props, err := codec.DecodeCodesAll(codes)
			if err != nil {
				parseErrs.Append(err)
			}
			if err := parseErrs.Err(); err != nil {
				return err
			}
			return a.renderProperties(cmd.OutOrStdout(), props)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "report every invalid code")
	return cmd
}

func (a *app) renderProperties(w io.Writer, props grading.Properties) error {
	return a.render(w, props, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, category := range grading.Categories() {
			fmt.Fprintf(tw, "%s\t%s\n", category.Name(), props.Get(category))
		}
		return tw.Flush()
	})
}

type tableView struct {
	Category grading.Category `json:"category" yaml:"category"`
	Entries  []entryView      `json:"entries" yaml:"entries"`
}

type entryView struct {
	Label     string       `json:"label" yaml:"label"`
	Code      grading.Code `json:"code" yaml:"code"`
	Canonical bool         `json:"canonical" yaml:"canonical"`
}

func (a *app) newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables [category]",
		Short: "List the label tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := grading.Categories()
			if len(args) == 1 {
				category, err := grading.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []grading.Category{category}
			}

			views := make([]tableView, 0, len(categories))
			for _, category := range categories {
				table, err := codec.TableFor(category)
				if err != nil {
					return err
				}
				view := tableView{Category: category}
				for _, e := range table.Entries() {
					view.Entries = append(view.Entries, entryView{
						Label:     e.Label,
						Code:      e.Code,
						Canonical: table.Canonical(e.Label),
					})
				}
				views = append(views, view)
			}

			return a.render(cmd.OutOrStdout(), views, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, view := range views {
					fmt.Fprintf(tw, "%s\n", view.Category.Name())
					for _, e := range view.Entries {
						alias := ""
						if !e.Canonical {
							alias = "(alias)"
						}
						fmt.Fprintf(tw, "  %d\t%s\t%s\n", e.Code, e.Label, alias)
					}
				}
				return tw.Flush()
			})
		},
	}
}
