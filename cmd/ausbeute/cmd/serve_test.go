package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommandStructure(t *testing.T) {
	assert.NotNil(t, serveCmd)
	assert.Equal(t, "serve", serveCmd.Use)
	assert.NotEmpty(t, serveCmd.Short)
	assert.NotEmpty(t, serveCmd.Long)
	assert.NotNil(t, serveCmd.RunE)
}

func TestServeCommandFlags(t *testing.T) {
	addr := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, "", addr.DefValue)
}

func TestServeCommandDocumentsEndpoints(t *testing.T) {
	assert.Contains(t, serveCmd.Long, "POST /api/v1/analysis")
	assert.Contains(t, serveCmd.Long, "POST /api/v1/analysis/preview")
	assert.Contains(t, serveCmd.Long, "GET  /healthz")
	assert.Contains(t, serveCmd.Long, "Example:")
}

func TestServeIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "serve" {
			found = true
			break
		}
	}
	assert.True(t, found, "serve command should be added to root command")
}

func TestRunServe_InvalidConfig(t *testing.T) {
	resetConfigFlag(t)
	cfgFile = writeFile(t, t.TempDir(), "ausbeute.yaml", `server:
  max_upload_mb: 0
`)

	err := runServe(serveCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.max_upload_mb")
}
