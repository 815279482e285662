/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

type Identity = string

// Request is a single operation to be executed on behalf of an identity.
type Request struct {
	Identity Identity `yaml:"identity" json:"identity"`
	Function string   `yaml:"function" json:"function"`
	Args     []string `yaml:"args" json:"args"`
}

// RequestFile is the on-disk format consumed by the batch command.
type RequestFile struct {
	Requests []Request `yaml:"requests"`
}
