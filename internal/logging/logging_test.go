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

package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"json debug", func(c *Config) { c.Format = "json"; c.Level = "debug" }, false},
		{"bad level", func(c *Config) { c.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Format = "xml" }, true},
		{"empty output", func(c *Config) { c.Output = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("decoded", zap.String("category", "clarity"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "decoded", entry["msg"])
	assert.Equal(t, "clarity", entry["category"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dxgrade.log")
	logger, err := New(Config{Level: "info", Format: "console", Output: path})
	require.NoError(t, err)

	logger.Warn("gateway failed")
	require.NoError(t, logger.Sync())
	assert.FileExists(t, path)
}

func TestInitialize(t *testing.T) {
	prev := Logger
	t.Cleanup(func() {
		Logger = prev
		Sugar = prev.Sugar()
	})

	require.NoError(t, Initialize(Config{Level: "error", Format: "json", Output: "discard"}))
	assert.NotSame(t, prev, Logger)
	assert.False(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.ErrorLevel))

	assert.Error(t, Initialize(Config{Level: "nope", Format: "json", Output: "discard"}))
}
