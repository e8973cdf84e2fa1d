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

package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var (
	// ErrEmptyURI is returned by Fetch for an empty token URI.
	ErrEmptyURI = errors.New("metadata: token URI is empty")

	// ErrAllGatewaysFailed is returned by Fetch when no gateway produced a
	// metadata document.
	ErrAllGatewaysFailed = errors.New("metadata: failed to fetch token metadata from all gateways")
)

// maxDocumentSize bounds the metadata document read from a gateway.
const maxDocumentSize = 1 << 20

// Config configures a Fetcher. Zero fields take the DefaultConfig value,
// except Retries where a negative value is replaced.
type Config struct {
	Gateways   []string
	Retries    int
	RetryDelay time.Duration
	Timeout    time.Duration
	CacheTTL   time.Duration
}

// DefaultConfig returns three attempts per gateway one second apart, a ten
// second request timeout and a five minute cache.
func DefaultConfig() Config {
	return Config{
		Gateways:   DefaultGateways(),
		Retries:    3,
		RetryDelay: time.Second,
		Timeout:    10 * time.Second,
		CacheTTL:   5 * time.Minute,
	}
}

// Fetcher downloads token metadata documents. Gateways are tried in order;
// each gets Retries attempts. Successful documents are cached per token URI.
//
// A Fetcher is safe for concurrent use.
type Fetcher struct {
	config Config
	client *http.Client
	cache  *cache.Cache
	logger *zap.Logger
}

// NewFetcher returns a Fetcher for config. A nil client uses an http.Client
// with config.Timeout, and a nil logger discards log output.
func NewFetcher(config Config, client *http.Client, logger *zap.Logger) *Fetcher {
	def := DefaultConfig()
	if len(config.Gateways) == 0 {
		config.Gateways = def.Gateways
	}
	if config.Retries <= 0 {
		config.Retries = def.Retries
	}
	if config.RetryDelay < 0 {
		config.RetryDelay = 0
	}
	if config.Timeout == 0 {
		config.Timeout = def.Timeout
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = def.CacheTTL
	}
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		config: config,
		client: client,
		cache:  cache.New(config.CacheTTL, config.CacheTTL*2),
		logger: logger.With(zap.String("component", "metadata")),
	}
}

// Config returns the effective configuration.
func (f *Fetcher) Config() Config {
	c := f.config
	c.Gateways = append([]string(nil), f.config.Gateways...)
	return c
}

// Fetch returns the metadata document of tokenURI. For ipfs:// URIs each
// gateway is tried in order; other URIs are fetched directly. The result is
// cached for the configured TTL.
func (f *Fetcher) Fetch(ctx context.Context, tokenURI string) (*Token, error) {
	if tokenURI == "" {
		return nil, ErrEmptyURI
	}

	if cached, found := f.cache.Get(tokenURI); found {
		if token, ok := cached.(*Token); ok {
			f.logger.Debug("metadata cache hit", zap.String("uri", tokenURI))
			return token.clone(), nil
		}
	}

	urls := []string{tokenURI}
	if _, ok := ContentPath(tokenURI); ok {
		urls = make([]string, 0, len(f.config.Gateways))
		for _, gw := range f.config.Gateways {
			urls = append(urls, ResolveURI(tokenURI, gw))
		}
	}

	for _, url := range urls {
		token, err := f.fetchWithRetry(ctx, url)
		if err == nil {
			f.cache.Set(tokenURI, token, cache.DefaultExpiration)
			f.logger.Debug("metadata fetched", zap.String("uri", tokenURI), zap.String("url", url))
			return token.clone(), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		f.logger.Warn("metadata gateway failed",
			zap.String("uri", tokenURI),
			zap.String("url", url),
			zap.Error(err))
	}

	return nil, fmt.Errorf("%w: %s", ErrAllGatewaysFailed, tokenURI)
}

// Invalidate drops the cached document of tokenURI.
func (f *Fetcher) Invalidate(tokenURI string) {
	f.cache.Delete(tokenURI)
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, url string) (*Token, error) {
	var lastErr error
	for attempt := 1; attempt <= f.config.Retries; attempt++ {
		token, err := f.get(ctx, url)
		if err == nil {
			return token, nil
		}
		lastErr = err
		f.logger.Debug("metadata request failed",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == f.config.Retries {
			break
		}
		timer := time.NewTimer(f.config.RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", f.config.Retries, lastErr)
}

func (f *Fetcher) get(ctx context.Context, url string) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var token Token
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxDocumentSize)).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	return &token, nil
}
