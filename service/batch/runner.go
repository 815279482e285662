/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"context"
	"os"
	"slices"
	"time"

	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"gopkg.in/yaml.v2"
)

//go:generate counterfeiter -o mock/invoker.go -fake-name Invoker . Invoker

// Invoker submits a named operation on behalf of an identity.
type Invoker interface {
	Invoke(ctx context.Context, identity string, function string, args []string) (*invoke.Result, error)
}

// Outcome is the result of the request at position Index of a batch.
type Outcome struct {
	Index    int
	Request  model.Request
	Result   *invoke.Result
	Err      error
	Duration time.Duration
}

// Runner executes the requests of a batch concurrently, at most PoolSize at a time.
type Runner struct {
	logger   logging.Logger
	invoker  Invoker
	poolSize int
	policy   invoke.RetryPolicy
}

func NewRunner(invoker Invoker, config model.BatchConfig, logger logging.Logger) *Runner {
	poolSize := config.PoolSize
	if poolSize < 1 {
		poolSize = constants.DefaultPoolSize
	}
	return &Runner{
		logger:   logger,
		invoker:  invoker,
		poolSize: poolSize,
	}
}

// WithRetries returns a copy of the runner retrying each request according to policy.
func (r *Runner) WithRetries(policy invoke.RetryPolicy) *Runner {
	c := *r
	c.policy = policy
	return &c
}

// Run executes requests and returns one outcome per request, in request order.
// A failing request does not stop the others.
func (r *Runner) Run(ctx context.Context, requests []model.Request) []Outcome {
	r.logger.Infof("Running %d requests, pool size %d", len(requests), r.poolSize)
	executorPool := pool.NewWithResults[Outcome]().WithMaxGoroutines(r.poolSize)

	for i, request := range requests {
		executorPool.Go(func() Outcome {
			return r.execute(ctx, i, request)
		})
	}

	outcomes := executorPool.Wait()
	slices.SortFunc(outcomes, func(a, b Outcome) int { return a.Index - b.Index })
	return outcomes
}

func (r *Runner) execute(ctx context.Context, index int, request model.Request) Outcome {
	start := time.Now()
	call := func(ctx context.Context) (*invoke.Result, error) {
		return r.invoker.Invoke(ctx, request.Identity, request.Function, request.Args)
	}

	var result *invoke.Result
	var err error
	if r.policy.MaxRetries > 0 {
		result, err = invoke.Retry(ctx, r.policy, call, func(err error, wait time.Duration) {
			r.logger.Warnf("Request %d failed, retrying in %s: %v", index, wait, err)
		})
	} else {
		result, err = call(ctx)
	}

	return Outcome{
		Index:    index,
		Request:  request,
		Result:   result,
		Err:      err,
		Duration: time.Since(start),
	}
}

// Failed counts the outcomes carrying an error.
func Failed(outcomes []Outcome) int {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	return failed
}

// LoadFile reads a yaml request file.
func LoadFile(path string) ([]model.Request, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't read the request file '%s'", path)
	}

	var file model.RequestFile
	if err := yaml.UnmarshalStrict(content, &file); err != nil {
		return nil, errors.Wrapf(err, "couldn't parse the request file '%s'", path)
	}
	if len(file.Requests) == 0 {
		return nil, errors.Errorf("no requests found in '%s'", path)
	}

	return file.Requests, nil
}
