package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shipquote/pkg/shipquote"
)

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)

	assert.Contains(t, out, "shipquote v"+shipquote.Version)
	assert.Contains(t, out, modulePath)
}
