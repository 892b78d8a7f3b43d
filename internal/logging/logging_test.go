package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		cfg, err := Config(in, FormatConsole)
		require.NoError(t, err, "level %q", in)
		assert.Equal(t, want, cfg.Level.Level(), "level %q", in)
	}
}

func TestConfig_Formats(t *testing.T) {
	cfg, err := Config("info", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Encoding)

	cfg, err = Config("info", "")
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Encoding)
	assert.True(t, cfg.DisableStacktrace)
}

func TestConfig_Invalid(t *testing.T) {
	_, err := Config("loud", FormatConsole)
	assert.Error(t, err)

	_, err = Config("info", "xml")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New("debug", FormatJSON)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
