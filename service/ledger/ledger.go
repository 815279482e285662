/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledger declares the Fabric collaborators the dispatcher consumes:
// an identity wallet and a gateway exposing channels and their contracts.
package ledger

import (
	"context"
)

//go:generate counterfeiter -o mock/wallet.go -fake-name Wallet . Wallet

// Wallet is a store of enrolled client identities.
type Wallet interface {
	// Exists returns true if an identity with the given label is stored in the wallet
	Exists(identity string) bool
}

//go:generate counterfeiter -o mock/connector.go -fake-name Connector . Connector

// Connector opens gateway connections on behalf of wallet identities.
type Connector interface {
	// Connect opens a connection to the gateway signing with the passed identity.
	// The caller owns the returned connection and must close it.
	Connect(ctx context.Context, identity string) (Connection, error)
}

//go:generate counterfeiter -o mock/connection.go -fake-name Connection . Connection

// Connection is an open gateway connection.
type Connection interface {
	// Network returns the channel with the passed name
	Network(name string) (Network, error)
	// Close releases the connection
	Close()
}

//go:generate counterfeiter -o mock/network.go -fake-name Network . Network

// Network is a channel reachable through a gateway connection.
type Network interface {
	// Contract returns the chaincode deployed on this channel with the passed name
	Contract(name string) (Contract, error)
}

//go:generate counterfeiter -o mock/contract.go -fake-name Contract . Contract

// Contract is a chaincode handle.
type Contract interface {
	// Submit endorses the transaction, sends it to ordering and waits for the commit.
	Submit(ctx context.Context, function string, args ...string) ([]byte, error)
	// Evaluate runs the transaction on a peer without sending it to ordering.
	Evaluate(ctx context.Context, function string, args ...string) ([]byte, error)
}
