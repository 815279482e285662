/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package invoke

import (
	"slices"
	"strings"

	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/pkg/errors"
)

// Operation is a transaction that changes the ledger state.
type Operation string

const (
	RegisterVehicle Operation = "registerVehicle"
	ChangeOwnerName Operation = "changeOwnerName"
	SellVehicle     Operation = "sellVehicle"
	BuyVehicle      Operation = "buyVehicle"
)

// Query is a read-only transaction, evaluated on a peer and never ordered.
type Query string

const (
	MyVehicles         Query = "myVehicles"
	RegisteredVehicles Query = "registeredVehicles"
	OrderedVehicles    Query = "orderedVehicles"
)

// signature describes how a caller request maps onto a chaincode call.
type signature struct {
	alias    string
	function string
	// params names the caller arguments, in the order they are forwarded
	params []string
	// appendIdentity forwards the caller identity as the last chaincode argument
	appendIdentity bool
}

var operations = map[Operation]signature{
	RegisterVehicle: {alias: "register-vehicle", function: c.RegisterCarFunction, params: []string{"make", "model", "color"}, appendIdentity: true},
	ChangeOwnerName: {alias: "change-owner-name", function: c.ChangeOwnerNameFunction, params: []string{"new-owner-name"}},
	SellVehicle:     {alias: "sell-vehicle", function: c.SellMyCarFunction, params: []string{"vehicle-key"}},
	BuyVehicle:      {alias: "buy-vehicle", function: c.BuyUserCarFunction, params: []string{"vehicle-key"}, appendIdentity: true},
}

var queries = map[Query]signature{
	MyVehicles:         {alias: "my-vehicles", function: c.GetMyCarFunction, appendIdentity: true},
	RegisteredVehicles: {alias: "registered-vehicles", function: c.GetAllRegisteredCarFunction},
	OrderedVehicles:    {alias: "ordered-vehicles", function: c.GetAllOrderedCarFunction},
}

// Operations returns the supported operations, sorted by name.
func Operations() []Operation { return sortedKeys(operations) }

// Queries returns the supported queries, sorted by name.
func Queries() []Query { return sortedKeys(queries) }

// ParseOperation resolves a caller-supplied name, either camelCase or its kebab-case alias.
func ParseOperation(name string) (Operation, error) {
	op, ok := lookup(operations, name)
	if !ok {
		return "", newError(UnsupportedOperation, name, "", errors.Errorf("supported operations are [%s]", joinNames(Operations())))
	}
	return op, nil
}

// ParseQuery resolves a caller-supplied name, either camelCase or its kebab-case alias.
func ParseQuery(name string) (Query, error) {
	q, ok := lookup(queries, name)
	if !ok {
		return "", newError(UnsupportedOperation, name, "", errors.Errorf("supported queries are [%s]", joinNames(Queries())))
	}
	return q, nil
}

func (o Operation) String() string { return string(o) }

// Params names the arguments the caller passes for this operation.
func (o Operation) Params() []string { return slices.Clone(operations[o].params) }

func (q Query) String() string { return string(q) }

// Params names the arguments the caller passes for this query.
func (q Query) Params() []string { return slices.Clone(queries[q].params) }

// arguments builds the ordered chaincode argument list.
func (s signature) arguments(identity string, args []string) ([]string, error) {
	if len(args) != len(s.params) {
		return nil, errors.Errorf("expected %d arguments [%s], got %d", len(s.params), strings.Join(s.params, ", "), len(args))
	}
	for i, arg := range args {
		if len(strings.TrimSpace(arg)) == 0 {
			return nil, errors.Errorf("argument [%s] is empty", s.params[i])
		}
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args...)
	if s.appendIdentity {
		out = append(out, identity)
	}
	return out, nil
}

func lookup[K ~string](signatures map[K]signature, name string) (K, bool) {
	if _, ok := signatures[K(name)]; ok {
		return K(name), true
	}
	for k, s := range signatures {
		if s.alias == name {
			return k, true
		}
	}
	return "", false
}

func sortedKeys[K ~string](signatures map[K]signature) []K {
	keys := make([]K, 0, len(signatures))
	for k := range signatures {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func joinNames[K ~string](keys []K) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
