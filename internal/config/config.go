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

// Package config loads dxgrade settings from defaults, an optional YAML file
// and DXGRADE_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"dirpx.dev/dxgrade/dxcore/metadata"
	"dirpx.dev/dxgrade/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, for example
// DXGRADE_METADATA_RETRIES or DXGRADE_LOG_LEVEL.
const EnvPrefix = "DXGRADE"

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the complete dxgrade configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Output   string         `mapstructure:"output"`
	Metadata Metadata       `mapstructure:"metadata"`
}

// Metadata configures the token metadata fetcher.
type Metadata struct {
	Gateways   []string      `mapstructure:"gateways"`
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

// New returns a viper instance carrying the defaults and the environment
// binding. Callers may bind command flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	log := logging.DefaultConfig()
	v.SetDefault("log.level", log.Level)
	v.SetDefault("log.format", log.Format)
	v.SetDefault("log.output", log.Output)
	v.SetDefault("log.development", log.Development)

	v.SetDefault("output", OutputText)

	md := metadata.DefaultConfig()
	v.SetDefault("metadata.gateways", md.Gateways)
	v.SetDefault("metadata.retries", md.Retries)
	v.SetDefault("metadata.retry_delay", md.RetryDelay)
	v.SetDefault("metadata.timeout", md.Timeout)
	v.SetDefault("metadata.cache_ttl", md.CacheTTL)
}

// Load reads path (when non-empty) into v, then decodes and validates the
// result. A missing file named explicitly is an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration produced by New and Load with no file
// and no environment.
func Default() Config {
	return Config{
		Log:    logging.DefaultConfig(),
		Output: OutputText,
		Metadata: Metadata{
			Gateways:   metadata.DefaultGateways(),
			Retries:    metadata.DefaultConfig().Retries,
			RetryDelay: metadata.DefaultConfig().RetryDelay,
			Timeout:    metadata.DefaultConfig().Timeout,
			CacheTTL:   metadata.DefaultConfig().CacheTTL,
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: output %q: want text, json or yaml", c.Output)
	}
	if len(c.Metadata.Gateways) == 0 {
		return fmt.Errorf("config: metadata.gateways must not be empty")
	}
	for _, gw := range c.Metadata.Gateways {
		if !strings.HasPrefix(gw, "http://") && !strings.HasPrefix(gw, "https://") {
			return fmt.Errorf("config: metadata gateway %q is not an http(s) URL", gw)
		}
	}
	if c.Metadata.Retries < 1 {
		return fmt.Errorf("config: metadata.retries must be at least 1")
	}
	if c.Metadata.RetryDelay < 0 || c.Metadata.Timeout < 0 || c.Metadata.CacheTTL < 0 {
		return fmt.Errorf("config: metadata durations must not be negative")
	}
	return nil
}

// FetcherConfig converts the metadata section for metadata.NewFetcher.
func (c *Config) FetcherConfig() metadata.Config {
	return metadata.Config{
		Gateways:   append([]string(nil), c.Metadata.Gateways...),
		Retries:    c.Metadata.Retries,
		RetryDelay: c.Metadata.RetryDelay,
		Timeout:    c.Metadata.Timeout,
		CacheTTL:   c.Metadata.CacheTTL,
	}
}
