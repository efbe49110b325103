package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	var c Config
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	c.Database.DSN = "postgres://localhost/docparse"
	err = c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "INBOX_DIR")

	c.Ingest.InboxDir = "/inbox"
	c.Queue.Workers = 4
	assert.NoError(t, c.Validate())
}
