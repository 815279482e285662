/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"io"

	cartrade "github.com/hyperledger-labs/fabric-cartrade"
	"github.com/hyperledger-labs/fabric-cartrade/model"
	c "github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/hyperledger-labs/fabric-cartrade/service/config"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// ConfigFile is the configuration file passed with --config
var ConfigFile string

// AddConfigFlag registers --config on flags.
func AddConfigFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&ConfigFile, "config", "c", "", fmt.Sprintf("path of the configuration file, defaults to $%s", c.ConfigFileEnv))
}

// NewClient loads the configuration, lets override adjust it and wires a client on it.
func NewClient(override func(*model.Configuration)) (*cartrade.Client, error) {
	configuration, err := config.Load(ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, "could not read the configuration")
	}
	if override != nil {
		override(configuration)
	}

	logging.InitializeLogger(configuration.App)

	return cartrade.NewClient(configuration)
}

// RetryPolicy returns the policy used by the --retries flag.
func RetryPolicy(retries uint64) invoke.RetryPolicy {
	return invoke.RetryPolicy{
		MaxRetries:      retries,
		InitialInterval: c.DefaultRetryInterval,
		MaxInterval:     c.DefaultMaxRetryInterval,
	}
}

// PrintPayload writes a chaincode response followed by a newline.
func PrintPayload(w io.Writer, payload []byte) {
	if len(payload) == 0 {
		return
	}
	fmt.Fprintln(w, string(payload))
}
