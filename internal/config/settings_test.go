package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, ";", s.Delimiter)
	assert.Equal(t, 50, s.ExportRowsPerSet)
	assert.Equal(t, "yourssince1615", s.HoneypotName)
	assert.Equal(t, 3, s.MinimumTimeInSeconds)
	assert.True(t, s.DuplicateCheckEnabled)
	assert.False(t, s.GoogleRecaptchaEnabled)
	assert.NoError(t, s.Validate())
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delimiter: \",\"\nexportRowsPerSet: 10\nhoneypotEnabled: false\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ",", s.Delimiter)
	assert.Equal(t, 10, s.ExportRowsPerSet)
	assert.False(t, s.HoneypotEnabled)
	// untouched keys keep their defaults
	assert.True(t, s.TimeCheckEnabled)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestApply(t *testing.T) {
	s, err := DefaultSettings().Apply(map[string]string{
		"minimumTimeInSeconds": "7",
		"originCheckEnabled":   "false",
		"honeypotName":         "website",
		"delimiter":            "|",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, s.MinimumTimeInSeconds)
	assert.False(t, s.OriginCheckEnabled)
	assert.Equal(t, "website", s.HoneypotName)
	assert.Equal(t, '|', s.DelimiterRune())
}

func TestApply_Rejects(t *testing.T) {
	base := DefaultSettings()

	_, err := base.Apply(map[string]string{"bogus": "1"})
	assert.ErrorIs(t, err, ErrUnknownSetting)

	_, err = base.Apply(map[string]string{"delimiter": "ab"})
	assert.ErrorIs(t, err, ErrInvalidSetting)

	_, err = base.Apply(map[string]string{"exportRowsPerSet": "0"})
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestParseInterval(t *testing.T) {
	d, err := ParseInterval("-4 weeks")
	require.NoError(t, err)
	assert.Equal(t, -28*24*time.Hour, d)

	d, err = ParseInterval("2 days")
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	_, err = ParseInterval("soon")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCleanUpCutoff(t *testing.T) {
	now := time.Date(2024, 3, 29, 12, 0, 0, 0, time.UTC)
	cutoff, err := DefaultSettings().CleanUpCutoff(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), cutoff)
}
