/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/batch"
	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/common"
	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/query"
	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/serve"
	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/version"
	"github.com/spf13/cobra"
)

// The main command describes the service and
// defaults to printing the help message.
var mainCmd = &cobra.Command{Use: "cartrade"}

func main() {
	mainCmd.Short = "Submit car trade transactions to a Fabric network."
	common.AddConfigFlag(mainCmd.PersistentFlags())

	mainCmd.AddCommand(invoke.Cmd())
	mainCmd.AddCommand(query.Cmd())
	mainCmd.AddCommand(batch.Cmd())
	mainCmd.AddCommand(serve.Cmd())
	mainCmd.AddCommand(version.Cmd())

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
