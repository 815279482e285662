/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/common"
	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Endpoint overrides server.endpoint
var Endpoint string

// Cmd returns the Cobra Command for serving the REST API.
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API.",
		Long:  "Serves operations, queries and metrics over HTTP until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("trailing args detected")
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true

			client, err := common.NewClient(func(c *model.Configuration) {
				if len(Endpoint) != 0 {
					c.Server.Endpoint = Endpoint
				}
			})
			if err != nil {
				return err
			}
			server, err := client.Server()
			if err != nil {
				return errors.Wrap(err, "failed to create the server")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Serve(ctx)
		},
	}

	cmd.Flags().StringVarP(&Endpoint, "endpoint", "e", "", "listen address, overrides server.endpoint")

	return cmd
}
