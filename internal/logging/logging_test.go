package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", "json")
	require.NoError(t, err)

	log.WithField("keyword", "Read Image").Debug("keyword finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Read Image", entry["keyword"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "keyword finished", entry["msg"])
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", "text")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
