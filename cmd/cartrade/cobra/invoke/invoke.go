/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package invoke

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/common"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Args struct {
	// Identity is the wallet label the transaction is submitted on behalf of
	Identity string
	// Retries is the number of retries after a connection failure
	Retries uint64
}

// Cmd returns the Cobra Command for submitting an operation.
func Cmd() *cobra.Command {
	args := &Args{}
	cmd := &cobra.Command{
		Use:   "invoke <operation> [args...]",
		Short: "Submit an operation.",
		Long:  fmt.Sprintf("Submits an operation on behalf of an identity. Supported operations: %s.", operations()),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true

			client, err := common.NewClient(nil)
			if err != nil {
				return err
			}
			d, err := client.Dispatcher()
			if err != nil {
				return errors.Wrap(err, "failed to create the dispatcher")
			}
			logger := logging.MustGetLogger("cartrade", "cli")

			call := func(ctx context.Context) (*invoke.Result, error) {
				return d.Invoke(ctx, args.Identity, positional[0], positional[1:])
			}
			res, err := invoke.Retry(cmd.Context(), common.RetryPolicy(args.Retries), call, func(err error, wait time.Duration) {
				logger.Warnf("Retrying in %s: %v", wait, err)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s (%s) has been submitted\n", res.Name, res.Function)
			common.PrintPayload(cmd.OutOrStdout(), res.Payload)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&args.Identity, "identity", "u", "", "wallet label of the submitting identity")
	flags.Uint64VarP(&args.Retries, "retries", "r", 0, "retries after a connection failure")

	return cmd
}

func operations() string {
	names := make([]string, 0, len(invoke.Operations()))
	for _, op := range invoke.Operations() {
		names = append(names, fmt.Sprintf("%s %s", op, strings.Join(op.Params(), " ")))
	}
	return strings.Join(names, ", ")
}
