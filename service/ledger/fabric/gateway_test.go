/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabric

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connection-org1.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: test-network-org1\nversion: 1.0.0\n"), 0o600))
	return path
}

func TestNewProvider(t *testing.T) {
	t.Setenv(c.DiscoveryAsLocalhostEnv, "")
	walletPath := filepath.Join(t.TempDir(), "wallet")

	p, err := NewProvider(model.NetworkConfig{
		ConnectionProfile: writeProfile(t),
		WalletPath:        walletPath,
		Discovery:         model.DiscoveryConfig{Enabled: true, AsLocalhost: true},
	}, logging.MustGetLogger("cartrade", "fabric", "test"))
	require.NoError(t, err)
	assert.Equal(t, "true", os.Getenv(c.DiscoveryAsLocalhostEnv))
	assert.Equal(t, c.DefaultNetworkTimeout, p.timeout)
	assert.False(t, p.Exists("alice"))

	wallet, err := gateway.NewFileSystemWallet(walletPath)
	require.NoError(t, err)
	require.NoError(t, wallet.Put("alice", gateway.NewX509Identity("Org1MSP", "cert", "key")))
	assert.True(t, p.Exists("alice"))
	assert.False(t, p.Exists("bob"))
}

func TestNewProviderDiscoveryDisabled(t *testing.T) {
	t.Setenv(c.DiscoveryAsLocalhostEnv, "")

	p, err := NewProvider(model.NetworkConfig{
		ConnectionProfile: writeProfile(t),
		WalletPath:        filepath.Join(t.TempDir(), "wallet"),
		Discovery:         model.DiscoveryConfig{Enabled: false, AsLocalhost: true},
		Timeout:           time.Minute,
	}, logging.MustGetLogger("cartrade", "fabric", "test"))
	require.NoError(t, err)
	assert.Equal(t, "false", os.Getenv(c.DiscoveryAsLocalhostEnv))
	assert.Equal(t, time.Minute, p.timeout)
}

func TestNewProviderMissingProfile(t *testing.T) {
	_, err := NewProvider(model.NetworkConfig{
		ConnectionProfile: filepath.Join(t.TempDir(), "missing.yaml"),
		WalletPath:        filepath.Join(t.TempDir(), "wallet"),
	}, logging.MustGetLogger("cartrade", "fabric", "test"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read connection profile")
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))

	plain := errors.New("endorsement failure")
	assert.False(t, ledger.IsUnavailable(classify(plain)))

	for _, group := range []status.Group{status.GRPCTransportStatus, status.HTTPTransportStatus, status.DiscoveryServerStatus} {
		err := errors.Wrap(status.New(group, 14, "unavailable", nil), "Failed to submit")
		assert.True(t, ledger.IsUnavailable(classify(err)), "group %d", group)
	}

	chaincode := errors.Wrap(status.New(status.ChaincodeStatus, 500, "Car CAR0 already exists", nil), "Failed to submit")
	assert.False(t, ledger.IsUnavailable(classify(chaincode)))
}

func TestAwait(t *testing.T) {
	v, err := await(t.Context(), func() (int, error) { return 42, nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = await(t.Context(), func() (int, error) { return 0, errors.New("boom") }, nil)
	assert.EqualError(t, err, "boom")

	canceled, cancel := context.WithCancel(t.Context())
	cancel()
	called := false
	_, err = await(canceled, func() (int, error) { called = true; return 1, nil }, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAwaitReleasesLateResults(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	unblock := make(chan struct{})
	released := make(chan int, 1)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := await(ctx, func() (int, error) {
		<-unblock
		return 7, nil
	}, func(v int) { released <- v })
	assert.ErrorIs(t, err, context.Canceled)

	close(unblock)
	select {
	case v := <-released:
		assert.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("late result was not released")
	}
}
