/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package invoke

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies the failures of a dispatched call.
type Kind int

const (
	Unknown Kind = iota
	// IdentityNotFound the identity is not enrolled in the wallet
	IdentityNotFound
	// ConnectionFailed the gateway could not be reached
	ConnectionFailed
	// ContractResolutionFailed the channel or the contract could not be resolved
	ContractResolutionFailed
	// UnsupportedOperation the function name is not one of the supported operations or queries
	UnsupportedOperation
	// InvalidArguments the arguments do not match the shape the operation expects
	InvalidArguments
	// TransactionRejected the ledger refused the transaction or it timed out
	TransactionRejected
)

var kindNames = map[Kind]string{
	Unknown:                  "Unknown",
	IdentityNotFound:         "IdentityNotFound",
	ConnectionFailed:         "ConnectionFailed",
	ContractResolutionFailed: "ContractResolutionFailed",
	UnsupportedOperation:     "UnsupportedOperation",
	InvalidArguments:         "InvalidArguments",
	TransactionRejected:      "TransactionRejected",
}

var kindMessages = map[Kind]string{
	Unknown:                  "unknown failure",
	IdentityNotFound:         "identity not found in wallet",
	ConnectionFailed:         "failed to connect to gateway",
	ContractResolutionFailed: "failed to resolve contract",
	UnsupportedOperation:     "unsupported operation",
	InvalidArguments:         "invalid arguments",
	TransactionRejected:      "transaction rejected",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[Unknown]
}

// Retryable returns true for infrastructure failures that may succeed if the same call is repeated.
func (k Kind) Retryable() bool {
	return k == ConnectionFailed || k == ContractResolutionFailed
}

var (
	ErrIdentityNotFound         = &Error{Kind: IdentityNotFound}
	ErrConnectionFailed         = &Error{Kind: ConnectionFailed}
	ErrContractResolutionFailed = &Error{Kind: ContractResolutionFailed}
	ErrUnsupportedOperation     = &Error{Kind: UnsupportedOperation}
	ErrInvalidArguments         = &Error{Kind: InvalidArguments}
	ErrTransactionRejected      = &Error{Kind: TransactionRejected}
)

// Error is returned by every Dispatcher call that fails.
// errors.Is matches it against the sentinel of the same Kind.
type Error struct {
	Kind      Kind
	Operation string
	Identity  string
	Err       error
}

func newError(kind Kind, operation, identity string, err error) *Error {
	return &Error{Kind: kind, Operation: operation, Identity: identity, Err: err}
}

func (e *Error) Error() string {
	b := strings.Builder{}
	b.WriteString(kindMessages[e.Kind])
	if len(e.Operation) != 0 || len(e.Identity) != 0 {
		b.WriteString(fmt.Sprintf(" [operation=%s, identity=%s]", e.Operation, e.Identity))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, Unknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsRetryable returns true if err is a dispatcher failure whose Kind is retryable.
func IsRetryable(err error) bool {
	return KindOf(err).Retryable()
}
