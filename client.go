/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cartrade

import (
	"errors"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/hyperledger-labs/fabric-cartrade/service/api"
	"github.com/hyperledger-labs/fabric-cartrade/service/batch"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger/fabric"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/hyperledger-labs/fabric-cartrade/service/metrics"
	fmetrics "github.com/hyperledger/fabric-lib-go/common/metrics"
	perrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/dig"
)

// Client instantiates all dependencies of the dispatcher and its hosting surfaces.
// Dependencies are built on first use.
type Client struct {
	C *dig.Container // Allow for overwriting dependencies
}

func NewClient(config *model.Configuration) (*Client, error) {
	c := dig.New()

	err := errors.Join(
		c.Provide(func() logging.Logger { return logging.MustGetLogger("cartrade") }),
		c.Provide(func() model.NetworkConfig { return config.Network }),
		c.Provide(func() model.ServerConfig { return config.Server }),
		c.Provide(func() model.MetricsConfig { return config.Metrics }),
		c.Provide(func() model.BatchConfig { return config.Batch }),
		c.Provide(metrics.NewProviderFromConfig),
		c.Provide(func(p fmetrics.Provider) (*metrics.Metrics, metrics.Reporter) {
			m := metrics.NewMetrics(p)

			return m, metrics.NewReporter(m)
		}),
		c.Provide(func() trace.TracerProvider { return noop.NewTracerProvider() }),
		c.Provide(fabric.NewProvider),
		c.Provide(func(p *fabric.Provider) ledger.Wallet { return p }),
		c.Provide(func(p *fabric.Provider) ledger.Connector { return p }),
		c.Provide(invoke.NewDispatcher),
		c.Provide(func(d *invoke.Dispatcher) batch.Invoker { return d }),
		c.Provide(func(d *invoke.Dispatcher) api.Dispatcher { return d }),
		c.Provide(batch.NewRunner),
		c.Provide(api.NewServer),
	)
	if err != nil {
		return nil, perrors.Wrap(err, "failed to wire the client")
	}

	return &Client{C: c}, nil
}

func (c *Client) Dispatcher() (*invoke.Dispatcher, error) {
	return resolve[*invoke.Dispatcher](c.C)
}

func (c *Client) BatchRunner() (*batch.Runner, error) {
	return resolve[*batch.Runner](c.C)
}

func (c *Client) Server() (*api.Server, error) {
	return resolve[*api.Server](c.C)
}

func (c *Client) Reporter() (metrics.Reporter, error) {
	return resolve[metrics.Reporter](c.C)
}

func resolve[T any](c *dig.Container) (T, error) {
	var t T
	err := c.Invoke(func(v T) { t = v })
	if err != nil {
		return t, dig.RootCause(err)
	}
	return t, nil
}
