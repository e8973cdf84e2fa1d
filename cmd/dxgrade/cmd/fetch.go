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
	"net/http"

	"dirpx.dev/dxgrade/dxcore/metadata"
	"dirpx.dev/dxgrade/dxcore/model/grading"
	"github.com/spf13/cobra"
)

// httpClient is the client used by the fetch command. Tests replace its
// transport.
var httpClient *http.Client

type fetchResult struct {
	URI    string             `json:"uri" yaml:"uri"`
	Name   string             `json:"name" yaml:"name"`
	Image  string             `json:"image,omitempty" yaml:"image,omitempty"`
	Grades grading.Properties `json:"grades" yaml:"grades"`
}

func (a *app) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <tokenURI>",
		Short: "Fetch token metadata and decode its grades",
		Long: `Fetch a token metadata document and decode its grading traits.
ipfs:// URIs are tried against every configured gateway in order.`,
		Example: `  dxgrade fetch ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi/1.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := httpClient
			if client == nil {
				client = &http.Client{Timeout: a.cfg.Metadata.Timeout}
			}
			fetcher := metadata.NewFetcher(a.cfg.FetcherConfig(), client, a.logger)

			token, err := fetcher.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			grades, err := token.Grades()
			if err != nil {
				return err
			}

			res := fetchResult{
				URI:    args[0],
				Name:   token.Name,
				Image:  token.ImageURL(a.cfg.Metadata.Gateways[0]),
				Grades: grades,
			}
			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				fmt.Fprintf(w, "%s\n", res.Name)
				for _, category := range grading.Categories() {
					fmt.Fprintf(w, "  %-13s %s\n", category.Name()+":", grades.Get(category))
				}
				return nil
			})
		},
	}
}
