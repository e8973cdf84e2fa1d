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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/dxgrade/dxcore/model"
	"dirpx.dev/dxgrade/dxcore/model/diamond"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"dirpx.dev/dxgrade/internal/config"
	"dirpx.dev/rxmerr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Work with diamond certificate files",
	}
	cmd.AddCommand(a.newReportValidateCmd(), a.newReportShowCmd(), a.newReportSampleCmd())
	return cmd
}

func (a *app) newReportValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate certificate files (JSON or YAML)",
		Long: `Validate certificate files. Files ending in .yaml or .yml are read as
YAML, everything else as JSON. Every file is checked and all failures are
reported together.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rxmerr.NewCollector()
			reports := make([]*diamond.Report, 0, len(args))
			for _, path := range args {
				r, err := loadReport(path)
				if err != nil {
					a.logger.Debug("report rejected", zap.String("file", path), zap.Error(err))
					c.Append(fmt.Errorf("%s: %w", path, err))
					continue
				}
				reports = append(reports, r)
				summary := model.SafeString(r, false)
				a.logger.Debug("report accepted", zap.String("file", path), zap.String("report", summary))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, summary)
			}
			if err := c.Err(); err != nil {
				return err
			}
			return model.ValidateAll(reports)
		},
	}
}

func (a *app) newReportShowCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a certificate with decoded grades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadReport(args[0])
			if err != nil {
				return err
			}
			if defaults {
				merged := r.Merge(diamond.DefaultReport())
				r = &merged
			}
			return a.renderReport(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "fill missing fields from the sample certificate")
	return cmd
}

func (a *app) newReportSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the sample certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := diamond.DefaultReport()
			return a.renderReport(cmd.OutOrStdout(), model.MustValidate(&r))
		},
	}
}

func (a *app) renderReport(w io.Writer, r *diamond.Report) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		data, err := model.ToJSON(r)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	case config.OutputYAML:
		data, err := model.ToYAML(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	grades, err := r.Grades()
	if err != nil {
		return err
	}
	return a.render(w, r, func(w io.Writer) error {
		fmt.Fprintf(w, "Report number:  %s\n", r.ReportNumber)
		if !r.IssuedAt().IsZero() {
			fmt.Fprintf(w, "Report date:    %s\n", r.IssuedAt().Format("2 January 2006"))
		}
		fmt.Fprintf(w, "Shape:          %s\n", r.Shape)
		fmt.Fprintf(w, "Carat weight:   %s ct\n", r.Carat.StringFixed(2))
		for _, category := range grading.Categories() {
			fmt.Fprintf(w, "%-15s %s\n", category.Name()+":", grades.Get(category))
		}
		if m := r.FormatMeasurements(); m != "" {
			fmt.Fprintf(w, "Measurements:   %s\n", m)
		}
		_, err := fmt.Fprintf(w, "Source:         %s\n", r.Source)
		return err
	})
}

// loadReport reads and validates a certificate file.
func loadReport(path string) (*diamond.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty certificate")
	}

	r := &diamond.Report{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = model.FromYAML(data, &r)
	default:
		err = model.FromJSON(data, &r)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
