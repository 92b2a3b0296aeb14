package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Setenv(DictEnv, "")

	t.Run("missing named file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wordgraph.yaml")
		data := `
dictionaries:
  - nwl20.txt
  - extra.txt
empty_word: true
skip_invalid: true
logging:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"nwl20.txt", "extra.txt"}, cfg.Dictionaries)
		assert.True(t, cfg.EmptyWord)
		assert.True(t, cfg.SkipInvalid)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dictionaries: [unclosed"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to parse config")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("WORDGRAPH_DICT replaces dictionaries", func(t *testing.T) {
		list := "a.txt" + string(os.PathListSeparator) + "b.txt"
		t.Setenv(DictEnv, list)

		cfg := &Config{Dictionaries: []string{"file.txt"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Dictionaries)
	})

	t.Run("unset keeps file value", func(t *testing.T) {
		t.Setenv(DictEnv, "")

		cfg := &Config{Dictionaries: []string{"file.txt"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, []string{"file.txt"}, cfg.Dictionaries)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(DictEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "wordgraph.yaml")

	cfg := DefaultConfig()
	cfg.Dictionaries = []string{"words.txt"}
	cfg.SkipInvalid = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: *DefaultConfig()},
		{name: "empty level", cfg: Config{}},
		{name: "bad level", cfg: Config{Logging: LoggingConfig{Level: "loud"}}, wantErr: "logging.level"},
		{name: "empty path", cfg: Config{Dictionaries: []string{""}}, wantErr: "empty path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestZapLevel(t *testing.T) {
	level, err := LoggingConfig{Level: "warn"}.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	level, err = LoggingConfig{}.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}
