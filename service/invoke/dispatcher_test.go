/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package invoke_test

import (
	"context"
	"sync"
	"testing"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger"
	"github.com/hyperledger-labs/fabric-cartrade/service/ledger/mock"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/hyperledger-labs/fabric-cartrade/service/metrics"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type testEnv struct {
	wallet     *mock.Wallet
	connector  *mock.Connector
	conn       *mock.Connection
	network    *mock.Network
	contract   *mock.Contract
	metrics    *metrics.Metrics
	dispatcher *invoke.Dispatcher
}

func newTestEnv(t *testing.T, functions map[string]string, registered ...string) *testEnv {
	t.Helper()

	wallet := &mock.Wallet{}
	wallet.ExistsCalls(func(identity string) bool {
		for _, r := range registered {
			if r == identity {
				return true
			}
		}
		return false
	})
	contract := &mock.Contract{}
	contract.SubmitReturns([]byte("ok"), nil)
	contract.EvaluateReturns([]byte("[]"), nil)
	network := &mock.Network{}
	network.ContractReturns(contract, nil)
	conn := &mock.Connection{}
	conn.NetworkReturns(network, nil)
	connector := &mock.Connector{}
	connector.ConnectReturns(conn, nil)

	m := metrics.NewMetrics(metrics.NewProvider())
	d := invoke.NewDispatcher(
		wallet,
		connector,
		model.NetworkConfig{Channel: "mychannel", Contract: "mycc", Functions: functions},
		m,
		noop.NewTracerProvider(),
		logging.MustGetLogger("cartrade", "invoke", "test"),
	)
	return &testEnv{
		wallet:     wallet,
		connector:  connector,
		conn:       conn,
		network:    network,
		contract:   contract,
		metrics:    m,
		dispatcher: d,
	}
}

func TestInvokeRegisterVehicle(t *testing.T) {
	env := newTestEnv(t, nil, "alice")

	res, err := env.dispatcher.Invoke(t.Context(), "alice", "registerVehicle", []string{"Honda", "Accord", "Black"})
	require.NoError(t, err)
	assert.Equal(t, "registerVehicle", res.Name)
	assert.Equal(t, "registerCar", res.Function)
	assert.Equal(t, []byte("ok"), res.Payload)

	require.Equal(t, 1, env.contract.SubmitCallCount())
	_, function, args := env.contract.SubmitArgsForCall(0)
	assert.Equal(t, "registerCar", function)
	assert.Equal(t, []string{"Honda", "Accord", "Black", "alice"}, args)

	assert.Equal(t, 1, env.connector.ConnectCallCount())
	_, identity := env.connector.ConnectArgsForCall(0)
	assert.Equal(t, "alice", identity)
	assert.Equal(t, 1, env.conn.CloseCallCount())
	assert.Equal(t, "mychannel", env.conn.NetworkArgsForCall(0))
	assert.Equal(t, "mycc", env.network.ContractArgsForCall(0))
	assert.Equal(t, 0, env.contract.EvaluateCallCount())
}

func TestInvokeSupportedOperations(t *testing.T) {
	testCases := []struct {
		name         string
		function     string
		args         []string
		expectedFunc string
		expectedArgs []string
	}{
		{
			name:         "register vehicle",
			function:     "registerVehicle",
			args:         []string{"Honda", "Accord", "Black"},
			expectedFunc: "registerCar",
			expectedArgs: []string{"Honda", "Accord", "Black", "alice"},
		},
		{
			name:         "change owner name",
			function:     "changeOwnerName",
			args:         []string{"Alicia"},
			expectedFunc: "changeOwnerName",
			expectedArgs: []string{"Alicia"},
		},
		{
			name:         "sell vehicle",
			function:     "sellVehicle",
			args:         []string{"CAR007"},
			expectedFunc: "sellMyCar",
			expectedArgs: []string{"CAR007"},
		},
		{
			name:         "buy vehicle",
			function:     "buyVehicle",
			args:         []string{"CAR007"},
			expectedFunc: "buyUserCar",
			expectedArgs: []string{"CAR007", "alice"},
		},
		{
			name:         "kebab-case alias",
			function:     "buy-vehicle",
			args:         []string{"CAR001"},
			expectedFunc: "buyUserCar",
			expectedArgs: []string{"CAR001", "alice"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, nil, "alice")

			_, err := env.dispatcher.Invoke(t.Context(), "alice", tc.function, tc.args)
			require.NoError(t, err)

			require.Equal(t, 1, env.contract.SubmitCallCount())
			_, function, args := env.contract.SubmitArgsForCall(0)
			assert.Equal(t, tc.expectedFunc, function)
			assert.Equal(t, tc.expectedArgs, args)
			assert.Equal(t, 1, env.connector.ConnectCallCount())
			assert.Equal(t, 1, env.conn.CloseCallCount())
		})
	}
}

func TestInvokeUnregisteredIdentity(t *testing.T) {
	env := newTestEnv(t, nil, "alice")

	res, err := env.dispatcher.Invoke(t.Context(), "bob", "sellVehicle", []string{"CAR007"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, invoke.ErrIdentityNotFound)
	assert.Equal(t, invoke.IdentityNotFound, invoke.KindOf(err))
	assert.False(t, invoke.IsRetryable(err))
	assert.Contains(t, err.Error(), "identity=bob")

	assert.Equal(t, 1, env.wallet.ExistsCallCount())
	assert.Equal(t, "bob", env.wallet.ExistsArgsForCall(0))
	assert.Equal(t, 0, env.connector.ConnectCallCount())
	assert.Equal(t, 0, env.contract.SubmitCallCount())
}

func TestInvokeEmptyIdentity(t *testing.T) {
	env := newTestEnv(t, nil, "")

	_, err := env.dispatcher.Invoke(t.Context(), "", "sellVehicle", []string{"CAR007"})
	assert.ErrorIs(t, err, invoke.ErrIdentityNotFound)
	assert.Equal(t, 0, env.wallet.ExistsCallCount())
	assert.Equal(t, 0, env.connector.ConnectCallCount())
}

func TestInvokeUnsupportedOperation(t *testing.T) {
	env := newTestEnv(t, nil, "carol")

	_, err := env.dispatcher.Invoke(t.Context(), "carol", "flyVehicle", []string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, invoke.ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "operation=flyVehicle, identity=carol")
	assert.Contains(t, err.Error(), "buyVehicle, changeOwnerName, registerVehicle, sellVehicle")

	assert.Equal(t, 0, env.wallet.ExistsCallCount())
	assert.Equal(t, 0, env.connector.ConnectCallCount())
	assert.Equal(t, 0, env.contract.SubmitCallCount())

	// queries are not operations
	_, err = env.dispatcher.Invoke(t.Context(), "carol", "registeredVehicles", nil)
	assert.ErrorIs(t, err, invoke.ErrUnsupportedOperation)

	_, err = env.dispatcher.Submit(t.Context(), "carol", invoke.Operation("flyVehicle"), nil)
	assert.ErrorIs(t, err, invoke.ErrUnsupportedOperation)
	assert.Equal(t, 0, env.contract.SubmitCallCount())
}

func TestInvokeInvalidArguments(t *testing.T) {
	testCases := []struct {
		name     string
		function string
		args     []string
		contains string
	}{
		{name: "missing color", function: "registerVehicle", args: []string{"Honda", "Accord"}, contains: "expected 3 arguments [make, model, color], got 2"},
		{name: "too many", function: "sellVehicle", args: []string{"CAR1", "CAR2"}, contains: "expected 1 arguments [vehicle-key], got 2"},
		{name: "none", function: "buyVehicle", args: nil, contains: "expected 1 arguments [vehicle-key], got 0"},
		{name: "blank", function: "changeOwnerName", args: []string{"  "}, contains: "argument [new-owner-name] is empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, nil, "alice")

			_, err := env.dispatcher.Invoke(t.Context(), "alice", tc.function, tc.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, invoke.ErrInvalidArguments)
			assert.Contains(t, err.Error(), tc.contains)
			assert.Equal(t, 0, env.connector.ConnectCallCount())
			assert.Equal(t, 0, env.contract.SubmitCallCount())
		})
	}
}

func TestInvokeReleasesConnection(t *testing.T) {
	testCases := []struct {
		name         string
		setup        func(env *testEnv)
		expectedErr  error
		expectSubmit int
	}{
		{
			name: "channel not found",
			setup: func(env *testEnv) {
				env.conn.NetworkReturns(nil, errors.New("channel not found"))
			},
			expectedErr: invoke.ErrContractResolutionFailed,
		},
		{
			name: "contract not found",
			setup: func(env *testEnv) {
				env.network.ContractReturns(nil, errors.New("chaincode not found"))
			},
			expectedErr: invoke.ErrContractResolutionFailed,
		},
		{
			name: "endorsement failure",
			setup: func(env *testEnv) {
				env.contract.SubmitReturns(nil, errors.New("Car CAR0 already exists"))
			},
			expectedErr:  invoke.ErrTransactionRejected,
			expectSubmit: 1,
		},
		{
			name: "orderer unreachable",
			setup: func(env *testEnv) {
				env.contract.SubmitReturns(nil, ledger.Unavailable(errors.New("connection refused")))
			},
			expectedErr:  invoke.ErrConnectionFailed,
			expectSubmit: 1,
		},
		{
			name:         "success",
			setup:        func(env *testEnv) {},
			expectSubmit: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, nil, "alice")
			tc.setup(env)

			_, err := env.dispatcher.Invoke(t.Context(), "alice", "sellVehicle", []string{"CAR0"})
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, env.connector.ConnectCallCount())
			assert.Equal(t, 1, env.conn.CloseCallCount())
			assert.Equal(t, tc.expectSubmit, env.contract.SubmitCallCount())
		})
	}
}

func TestInvokeConnectFailure(t *testing.T) {
	env := newTestEnv(t, nil, "alice")
	env.connector.ConnectReturns(nil, errors.New("dial tcp 127.0.0.1:7051: connect: connection refused"))

	_, err := env.dispatcher.Invoke(t.Context(), "alice", "sellVehicle", []string{"CAR0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, invoke.ErrConnectionFailed)
	assert.True(t, invoke.IsRetryable(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 0, env.conn.CloseCallCount())
	assert.Equal(t, 0, env.contract.SubmitCallCount())
}

func TestInvokeRejectedTransactionKeepsCause(t *testing.T) {
	env := newTestEnv(t, nil, "alice")
	cause := errors.New("Car CAR3 does not exist")
	env.contract.SubmitReturns(nil, cause)

	_, err := env.dispatcher.Invoke(t.Context(), "alice", "buyVehicle", []string{"CAR3"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.False(t, invoke.IsRetryable(err))

	var e *invoke.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, invoke.TransactionRejected, e.Kind)
	assert.Equal(t, "buyVehicle", e.Operation)
	assert.Equal(t, "alice", e.Identity)
	assert.Contains(t, err.Error(), "function [buyUserCar]")
}

func TestInvokeConfiguredFunctions(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"changeOwnerName": "changeCarOwner",
		"sellVehicle":     "",
	}, "alice")

	res, err := env.dispatcher.Invoke(t.Context(), "alice", "changeOwnerName", []string{"Alicia"})
	require.NoError(t, err)
	assert.Equal(t, "changeCarOwner", res.Function)

	// empty overrides fall back to the default
	res, err = env.dispatcher.Invoke(t.Context(), "alice", "sellVehicle", []string{"CAR1"})
	require.NoError(t, err)
	assert.Equal(t, "sellMyCar", res.Function)
}

func TestQuery(t *testing.T) {
	testCases := []struct {
		query        string
		expectedFunc string
		expectedArgs []string
	}{
		{query: "myVehicles", expectedFunc: "getMyCar", expectedArgs: []string{"alice"}},
		{query: "registered-vehicles", expectedFunc: "getAllRegisteredCar", expectedArgs: []string{}},
		{query: "orderedVehicles", expectedFunc: "getAllOrderedCar", expectedArgs: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			env := newTestEnv(t, nil, "alice")

			res, err := env.dispatcher.Query(t.Context(), "alice", tc.query, nil)
			require.NoError(t, err)
			assert.Equal(t, []byte("[]"), res.Payload)

			require.Equal(t, 1, env.contract.EvaluateCallCount())
			_, function, args := env.contract.EvaluateArgsForCall(0)
			assert.Equal(t, tc.expectedFunc, function)
			assert.Equal(t, tc.expectedArgs, args)
			assert.Equal(t, 0, env.contract.SubmitCallCount())
			assert.Equal(t, 1, env.conn.CloseCallCount())
		})
	}
}

func TestQueryFailures(t *testing.T) {
	env := newTestEnv(t, nil, "alice")

	_, err := env.dispatcher.Query(t.Context(), "alice", "allVehicles", nil)
	assert.ErrorIs(t, err, invoke.ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "myVehicles, orderedVehicles, registeredVehicles")

	_, err = env.dispatcher.Query(t.Context(), "alice", "myVehicles", []string{"bob"})
	assert.ErrorIs(t, err, invoke.ErrInvalidArguments)

	_, err = env.dispatcher.Query(t.Context(), "bob", "myVehicles", nil)
	assert.ErrorIs(t, err, invoke.ErrIdentityNotFound)

	env.contract.EvaluateReturns(nil, errors.New("chaincode error"))
	_, err = env.dispatcher.Query(t.Context(), "alice", "myVehicles", nil)
	assert.ErrorIs(t, err, invoke.ErrTransactionRejected)
	assert.Equal(t, 1, env.connector.ConnectCallCount())
	assert.Equal(t, 1, env.conn.CloseCallCount())
}

func TestInvokeCanceledContext(t *testing.T) {
	env := newTestEnv(t, nil, "alice")
	env.connector.ConnectCalls(func(ctx context.Context, _ string) (ledger.Connection, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return env.conn, nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := env.dispatcher.Invoke(ctx, "alice", "sellVehicle", []string{"CAR0"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, invoke.Unknown, invoke.KindOf(err))
	assert.False(t, invoke.IsRetryable(err))
	assert.Equal(t, 0, env.conn.CloseCallCount())
}

func TestInvokeCancellationIsNotClassified(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(env *testEnv, cancel context.CancelFunc)
		cause  error
		closed int
	}{
		{
			name: "connect canceled",
			setup: func(env *testEnv, _ context.CancelFunc) {
				env.connector.ConnectReturns(nil, context.Canceled)
			},
			cause:  context.Canceled,
			closed: 0,
		},
		{
			name: "submit canceled",
			setup: func(env *testEnv, _ context.CancelFunc) {
				env.contract.SubmitReturns(nil, errors.Wrap(context.Canceled, "Failed to submit"))
			},
			cause:  context.Canceled,
			closed: 1,
		},
		{
			name: "caller cancels during submit",
			setup: func(env *testEnv, cancel context.CancelFunc) {
				env.contract.SubmitCalls(func(context.Context, string, ...string) ([]byte, error) {
					cancel()
					return nil, errors.New("Failed to submit: stream closed")
				})
			},
			cause:  context.Canceled,
			closed: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil, "alice")
			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()
			tt.setup(env, cancel)

			_, err := env.dispatcher.Invoke(ctx, "alice", "sellVehicle", []string{"CAR0"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.cause)
			assert.Equal(t, invoke.Unknown, invoke.KindOf(err))
			assert.False(t, invoke.IsRetryable(err))
			assert.Equal(t, tt.closed, env.conn.CloseCallCount())
		})
	}
}

func TestInvokeGatewayTimeoutIsRejected(t *testing.T) {
	env := newTestEnv(t, nil, "alice")
	env.contract.SubmitReturns(nil, errors.Wrap(context.DeadlineExceeded, "commit timeout"))

	_, err := env.dispatcher.Invoke(t.Context(), "alice", "sellVehicle", []string{"CAR0"})
	assert.ErrorIs(t, err, invoke.ErrTransactionRejected)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInvokeConcurrentCalls(t *testing.T) {
	env := newTestEnv(t, nil, "alice", "bob")

	const calls = 32
	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		identity := "alice"
		if i%2 == 0 {
			identity = "bob"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.dispatcher.Invoke(context.Background(), identity, "buyVehicle", []string{"CAR1"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, calls, env.connector.ConnectCallCount())
	assert.Equal(t, calls, env.conn.CloseCallCount())
	assert.Equal(t, calls, env.contract.SubmitCallCount())
}

func TestInvokeRecordsMetrics(t *testing.T) {
	env := newTestEnv(t, nil, "alice")
	reporter := metrics.NewReporter(env.metrics)

	_, err := env.dispatcher.Invoke(t.Context(), "alice", "sellVehicle", []string{"CAR0"})
	require.NoError(t, err)
	_, err = env.dispatcher.Invoke(t.Context(), "bob", "sellVehicle", []string{"CAR0"})
	require.Error(t, err)

	summary := reporter.Summary()
	assert.Contains(t, summary, "Total requests 2")
	assert.Contains(t, summary, "Success ratio 50.00%")
	assert.Equal(t, "Active requests: 0", reporter.GetActiveRequests())
}
