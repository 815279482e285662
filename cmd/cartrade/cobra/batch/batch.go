/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"fmt"
	"io"

	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/common"
	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/hyperledger-labs/fabric-cartrade/service/batch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Args struct {
	// File is the yaml file listing the requests
	File string
	// PoolSize overrides the configured number of concurrent requests
	PoolSize int
	// Retries is the number of retries after a connection failure, per request
	Retries uint64
}

// Cmd returns the Cobra Command for running a batch of requests.
func Cmd() *cobra.Command {
	args := &Args{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a batch of requests.",
		Long:  "Runs the requests listed in a yaml file concurrently and prints one line per request.",
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) != 0 {
				return fmt.Errorf("trailing args detected")
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true

			requests, err := batch.LoadFile(args.File)
			if err != nil {
				return err
			}

			client, err := common.NewClient(func(c *model.Configuration) {
				if args.PoolSize > 0 {
					c.Batch.PoolSize = args.PoolSize
				}
			})
			if err != nil {
				return err
			}
			runner, err := client.BatchRunner()
			if err != nil {
				return errors.Wrap(err, "failed to create the batch runner")
			}
			if args.Retries > 0 {
				runner = runner.WithRetries(common.RetryPolicy(args.Retries))
			}

			outcomes := runner.Run(cmd.Context(), requests)
			Print(cmd.OutOrStdout(), outcomes)

			if reporter, err := client.Reporter(); err == nil {
				fmt.Fprint(cmd.OutOrStdout(), reporter.Summary())
			}

			if failed := batch.Failed(outcomes); failed != 0 {
				return errors.Errorf("%d of %d requests failed", failed, len(outcomes))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&args.File, "file", "f", "", "yaml file listing the requests")
	flags.IntVarP(&args.PoolSize, "pool-size", "p", 0, "number of concurrent requests, overrides batch.poolSize")
	flags.Uint64VarP(&args.Retries, "retries", "r", 0, "retries after a connection failure, per request")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// Print writes one line per outcome.
func Print(w io.Writer, outcomes []batch.Outcome) {
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "[%d] %s by %s failed after %s: %v\n", o.Index, o.Request.Function, o.Request.Identity, o.Duration, o.Err)
			continue
		}
		fmt.Fprintf(w, "[%d] %s by %s submitted in %s: %s\n", o.Index, o.Result.Name, o.Request.Identity, o.Duration, o.Result.Payload)
	}
}
