/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "connection.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("name: test-network\n"), 0o600))
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("network:\n  connectionProfile: "+profile+"\n  walletPath: "+filepath.Join(dir, "wallet")+"\n"), 0o600))

	t.Run("success", func(t *testing.T) {
		ConfigFile = config
		defer func() { ConfigFile = "" }()

		var seen *model.Configuration
		client, err := NewClient(func(c *model.Configuration) { seen = c })
		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.Equal(t, profile, seen.Network.ConnectionProfile)

		_, err = client.Dispatcher()
		require.NoError(t, err)
	})

	t.Run("invalid_config", func(t *testing.T) {
		ConfigFile = filepath.Join(dir, "missing.yaml")
		defer func() { ConfigFile = "" }()

		_, err := NewClient(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not read the configuration")
	})
}

func TestRetryPolicy(t *testing.T) {
	p := RetryPolicy(3)
	assert.Equal(t, uint64(3), p.MaxRetries)
	assert.Equal(t, c.DefaultRetryInterval, p.InitialInterval)
	assert.Equal(t, 5*time.Second, p.MaxInterval)
}

func TestPrintPayload(t *testing.T) {
	b := &bytes.Buffer{}
	PrintPayload(b, nil)
	assert.Empty(t, b.String())

	PrintPayload(b, []byte(`{"id":"CAR1"}`))
	assert.Equal(t, "{\"id\":\"CAR1\"}\n", b.String())
}
