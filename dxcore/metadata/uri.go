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

// Package metadata reads diamond token metadata from IPFS through public HTTP
// gateways and turns its grading attributes into codec codes and labels.
package metadata

import "strings"

// IPFSScheme is the URI scheme of content-addressed token URIs.
const IPFSScheme = "ipfs://"

// DefaultGateways returns the public gateways tried by a Fetcher, in order.
// Every entry ends with "/ipfs/" so that a CID path can be appended.
func DefaultGateways() []string {
	return []string{
		"https://ipfs.io/ipfs/",
		"https://gateway.pinata.cloud/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
		"https://gateway.ipfs.io/ipfs/",
		"https://dweb.link/ipfs/",
	}
}

// ContentPath returns the CID path of an ipfs:// URI and true, or uri and
// false for any other URI.
func ContentPath(uri string) (string, bool) {
	if strings.HasPrefix(uri, IPFSScheme) {
		return strings.TrimPrefix(uri, IPFSScheme), true
	}
	return uri, false
}

// ResolveURI rewrites an ipfs:// URI to an HTTP URL on gateway. Other URIs
// are returned unchanged and the empty URI resolves to "".
//
//	ResolveURI("ipfs://bafy/1.json", "https://ipfs.io/ipfs/")
//	// "https://ipfs.io/ipfs/bafy/1.json"
func ResolveURI(uri, gateway string) string {
	if uri == "" {
		return ""
	}
	path, ok := ContentPath(uri)
	if !ok {
		return uri
	}
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return gateway + path
}
