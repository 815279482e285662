/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"github.com/pkg/errors"
)

// ErrUnavailable signals that the gateway could not reach the peers or orderers
// serving the request. It is a transport fault, not a ledger decision.
var ErrUnavailable = errors.New("ledger unavailable")

type unavailableError struct {
	err error
}

func (e *unavailableError) Error() string        { return e.err.Error() }
func (e *unavailableError) Unwrap() error        { return e.err }
func (e *unavailableError) Is(target error) bool { return target == ErrUnavailable }

// Unavailable marks err as a transport fault, see ErrUnavailable.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	return &unavailableError{err: err}
}

// IsUnavailable returns true if err was marked with Unavailable
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
