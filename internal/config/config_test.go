package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, ".", c.OutputDir)
	assert.Equal(t, "--psm 6", c.OCR.Config)
	assert.Equal(t, "eng", c.OCR.Language)
	assert.Empty(t, c.OCR.TessdataPrefix)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocr-keywords.yaml")
	yaml := `
log:
  level: debug
  format: json
output_dir: /tmp/results
ocr:
  config: "--psm 11"
  language: eng+deu
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "/tmp/results", c.OutputDir)
	assert.Equal(t, "--psm 11", c.OCR.Config)
	assert.Equal(t, "eng+deu", c.OCR.Language)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("OCR_KEYWORDS_LOG_LEVEL", "warn")
	t.Setenv("OCR_KEYWORDS_OCR_LANGUAGE", "fra")
	t.Setenv("OCR_KEYWORDS_OUTPUT_DIR", "/var/log/robot")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "fra", c.OCR.Language)
	assert.Equal(t, "/var/log/robot", c.OutputDir)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("OCR_KEYWORDS_LOG_FORMAT", "xml")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}
