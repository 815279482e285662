/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package invoke

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/hyperledger-labs/fabric-cartrade/service/metrics"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	requestIDKey = attribute.Key("request_id")
	identityKey  = attribute.Key("identity")
	functionKey  = attribute.Key("function")
	successKey   = attribute.Key("success")
)

// Result is the outcome of a successful call.
type Result struct {
	// Name is the operation or query requested by the caller
	Name string
	// Function is the chaincode function that was called
	Function string
	// Payload is the chaincode response
	Payload []byte
}

// Dispatcher executes operations and queries against the configured contract.
// Every call opens its own gateway connection and closes it before returning,
// so a Dispatcher can be shared by concurrent callers.
type Dispatcher struct {
	logger    logging.Logger
	wallet    ledger.Wallet
	connector ledger.Connector
	channel   string
	contract  string
	functions map[string]string
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

func NewDispatcher(wallet ledger.Wallet, connector ledger.Connector, config model.NetworkConfig, m *metrics.Metrics, tracerProvider trace.TracerProvider, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		logger:    logger,
		wallet:    wallet,
		connector: connector,
		channel:   config.Channel,
		contract:  config.Contract,
		functions: functionOverrides(config.Functions),
		metrics:   m,
		tracer:    tracerProvider.Tracer("cartrade/invoke"),
	}
}

// Invoke submits the operation named by function on behalf of identity.
func (d *Dispatcher) Invoke(ctx context.Context, identity string, function string, args []string) (*Result, error) {
	op, err := ParseOperation(function)
	if err != nil {
		return nil, withIdentity(err, identity)
	}
	return d.Submit(ctx, identity, op, args)
}

// Submit submits op on behalf of identity.
func (d *Dispatcher) Submit(ctx context.Context, identity string, op Operation, args []string) (*Result, error) {
	s, ok := operations[op]
	if !ok {
		return nil, newError(UnsupportedOperation, op.String(), identity, nil)
	}
	txArgs, err := s.arguments(identity, args)
	if err != nil {
		return nil, newError(InvalidArguments, op.String(), identity, err)
	}
	return d.call(ctx, identity, op.String(), d.function(op.String(), s), txArgs, true)
}

// Query evaluates the query named by query on behalf of identity.
func (d *Dispatcher) Query(ctx context.Context, identity string, query string, args []string) (*Result, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, withIdentity(err, identity)
	}
	return d.Evaluate(ctx, identity, q, args)
}

// Evaluate evaluates q on behalf of identity.
func (d *Dispatcher) Evaluate(ctx context.Context, identity string, q Query, args []string) (*Result, error) {
	s, ok := queries[q]
	if !ok {
		return nil, newError(UnsupportedOperation, q.String(), identity, nil)
	}
	txArgs, err := s.arguments(identity, args)
	if err != nil {
		return nil, newError(InvalidArguments, q.String(), identity, err)
	}
	return d.call(ctx, identity, q.String(), d.function(q.String(), s), txArgs, false)
}

// functionOverrides keys the configured functions by lower-cased name,
// configuration keys are case-insensitive.
func functionOverrides(functions map[string]string) map[string]string {
	overrides := make(map[string]string, len(functions))
	for name, f := range functions {
		overrides[strings.ToLower(name)] = f
	}
	return overrides
}

func (d *Dispatcher) function(name string, s signature) string {
	if f, ok := d.functions[strings.ToLower(name)]; ok && len(f) != 0 {
		return f
	}
	return s.function
}

func (d *Dispatcher) call(ctx context.Context, identity, name, function string, args []string, submit bool) (*Result, error) {
	requestID, err := uuid.GenerateUUID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate request id")
	}
	ctx, span := d.tracer.Start(ctx, name, trace.WithAttributes(
		requestIDKey.String(requestID),
		identityKey.String(identity),
		functionKey.String(function),
	))
	defer span.End()

	d.metrics.RequestsSent.With(metrics.OperationLabel, name).Add(1)
	d.logger.Debugf("[%s] %s on behalf of [%s]: %s%v", requestID, name, identity, function, args)

	start := time.Now()
	payload, err := d.execute(ctx, identity, name, function, args, submit)
	duration := time.Since(start)

	success := err == nil
	span.SetAttributes(successKey.Bool(success))
	successType := metrics.SuccessValues[success]
	d.metrics.RequestsReceived.
		With(metrics.OperationLabel, name, metrics.SuccessLabel, successType).
		Add(1)
	d.metrics.RequestDuration.
		With(metrics.OperationLabel, name, metrics.SuccessLabel, successType).
		Observe(duration.Seconds())

	if err != nil {
		span.RecordError(err)
		d.metrics.RequestsFailed.With(metrics.OperationLabel, name).Add(1)
		d.logger.Warnf("[%s] %s on behalf of [%s] failed after %s: %v", requestID, name, identity, duration, err)
		return nil, err
	}
	d.logger.Infof("[%s] %s on behalf of [%s] completed in %s", requestID, name, identity, duration)
	return &Result{Name: name, Function: function, Payload: payload}, nil
}

func (d *Dispatcher) execute(ctx context.Context, identity, name, function string, args []string, submit bool) ([]byte, error) {
	if len(identity) == 0 || !d.wallet.Exists(identity) {
		return nil, newError(IdentityNotFound, name, identity, errors.New("enroll the identity before retrying"))
	}

	conn, err := d.connector.Connect(ctx, identity)
	if err != nil {
		if cause := canceled(ctx, err); cause != nil {
			return nil, errors.WithMessagef(cause, "%s on behalf of [%s] abandoned while connecting", name, identity)
		}
		return nil, newError(ConnectionFailed, name, identity, err)
	}
	d.metrics.ActiveConnections.Add(1)
	defer func() {
		conn.Close()
		d.metrics.ActiveConnections.Add(-1)
	}()

	network, err := conn.Network(d.channel)
	if err != nil {
		return nil, newError(ContractResolutionFailed, name, identity, errors.WithMessagef(err, "channel [%s]", d.channel))
	}
	contract, err := network.Contract(d.contract)
	if err != nil {
		return nil, newError(ContractResolutionFailed, name, identity, errors.WithMessagef(err, "contract [%s] on channel [%s]", d.contract, d.channel))
	}

	var payload []byte
	if submit {
		payload, err = contract.Submit(ctx, function, args...)
	} else {
		payload, err = contract.Evaluate(ctx, function, args...)
	}
	if err != nil {
		if cause := canceled(ctx, err); cause != nil {
			return nil, errors.WithMessagef(cause, "%s on behalf of [%s] abandoned, the transaction may still commit", name, identity)
		}
		if ledger.IsUnavailable(err) {
			return nil, newError(ConnectionFailed, name, identity, err)
		}
		return nil, newError(TransactionRejected, name, identity, errors.WithMessagef(err, "function [%s]", function))
	}
	return payload, nil
}

// canceled returns the caller's context error if the call was abandoned by the caller.
// Deadlines enforced by the gateway itself are not cancellations.
func canceled(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	return nil
}

func withIdentity(err error, identity string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Identity = identity
	}
	return err
}
