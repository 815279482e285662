/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package invoke

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the retries made by Retry. The zero value makes a single attempt.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Retry calls fn until it succeeds, returns an error that is not retryable,
// the policy is exhausted or ctx is done.
// notify, if not nil, is called before each retry with the error that caused it.
func Retry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (*Result, error), notify func(err error, wait time.Duration)) (*Result, error) {
	var result *Result
	op := func() error {
		r, err := fn(ctx)
		if err != nil {
			if !IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = r
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	if policy.InitialInterval > 0 {
		eb.InitialInterval = policy.InitialInterval
	}
	if policy.MaxInterval > 0 {
		eb.MaxInterval = policy.MaxInterval
	}
	eb.Reset()
	b := backoff.WithContext(backoff.WithMaxRetries(eb, policy.MaxRetries), ctx)

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, err
	}
	return result, nil
}
