/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabric

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
)

// Provider opens gateway connections with identities taken from a file system wallet.
type Provider struct {
	logger  logging.Logger
	wallet  *gateway.Wallet
	profile string
	timeout time.Duration
}

func NewProvider(cfg model.NetworkConfig, logger logging.Logger) (*Provider, error) {
	if _, err := os.Stat(cfg.ConnectionProfile); err != nil {
		return nil, errors.Wrapf(err, "failed to read connection profile at [%s]", cfg.ConnectionProfile)
	}
	wallet, err := gateway.NewFileSystemWallet(cfg.WalletPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wallet at [%s]", cfg.WalletPath)
	}
	logger.Infof("Wallet path: %s", cfg.WalletPath)

	// the SDK reads this while mapping the endpoints returned by discovery
	asLocalhost := cfg.Discovery.Enabled && cfg.Discovery.AsLocalhost
	if err := os.Setenv(c.DiscoveryAsLocalhostEnv, strconv.FormatBool(asLocalhost)); err != nil {
		return nil, errors.Wrapf(err, "failed to set %s", c.DiscoveryAsLocalhostEnv)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = c.DefaultNetworkTimeout
	}
	return &Provider{
		logger:  logger,
		wallet:  wallet,
		profile: cfg.ConnectionProfile,
		timeout: timeout,
	}, nil
}

func (p *Provider) Exists(identity string) bool {
	return p.wallet.Exists(identity)
}

func (p *Provider) Connect(ctx context.Context, identity string) (ledger.Connection, error) {
	p.logger.Debugf("connecting to gateway as [%s] with profile [%s]", identity, p.profile)
	gw, err := await(ctx, func() (*gateway.Gateway, error) {
		return gateway.Connect(
			gateway.WithConfig(config.FromFile(p.profile)),
			gateway.WithIdentity(p.wallet, identity),
			gateway.WithTimeout(p.timeout),
		)
	}, func(gw *gateway.Gateway) { gw.Close() })
	if err != nil {
		return nil, errors.WithMessagef(classify(err), "failed to connect as [%s]", identity)
	}
	return &connection{gw: gw}, nil
}

type connection struct {
	gw *gateway.Gateway
}

func (c *connection) Network(name string) (ledger.Network, error) {
	n, err := c.gw.GetNetwork(name)
	if err != nil {
		return nil, classify(err)
	}
	return &network{n: n}, nil
}

func (c *connection) Close() {
	c.gw.Close()
}

type network struct {
	n *gateway.Network
}

func (n *network) Contract(name string) (ledger.Contract, error) {
	contract := n.n.GetContract(name)
	if contract == nil {
		return nil, errors.Errorf("contract [%s] not found on channel [%s]", name, n.n.Name())
	}
	return &chaincode{c: contract}, nil
}

type chaincode struct {
	c *gateway.Contract
}

func (cc *chaincode) Submit(ctx context.Context, function string, args ...string) ([]byte, error) {
	payload, err := await(ctx, func() ([]byte, error) {
		return cc.c.SubmitTransaction(function, args...)
	}, nil)
	if err != nil {
		return nil, classify(err)
	}
	return payload, nil
}

func (cc *chaincode) Evaluate(ctx context.Context, function string, args ...string) ([]byte, error) {
	payload, err := await(ctx, func() ([]byte, error) {
		return cc.c.EvaluateTransaction(function, args...)
	}, nil)
	if err != nil {
		return nil, classify(err)
	}
	return payload, nil
}

// classify marks the SDK failures raised by the transport layer as ledger.ErrUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	s, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch s.Group {
	case status.GRPCTransportStatus, status.HTTPTransportStatus, status.DiscoveryServerStatus:
		return ledger.Unavailable(err)
	default:
		return err
	}
}

type outcome[T any] struct {
	v   T
	err error
}

// await runs call and returns its outcome, or ctx.Err() if ctx is done first.
// The SDK calls cannot be interrupted: when ctx wins, call keeps running and,
// if it succeeds, release receives the value it produced.
func await[T any](ctx context.Context, call func() (T, error), release func(T)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	ch := make(chan outcome[T], 1)
	go func() {
		v, err := call()
		ch <- outcome[T]{v: v, err: err}
	}()
	select {
	case o := <-ch:
		return o.v, o.err
	case <-ctx.Done():
		if release != nil {
			go func() {
				if o := <-ch; o.err == nil {
					release(o.v)
				}
			}()
		}
		var zero T
		return zero, ctx.Err()
	}
}
