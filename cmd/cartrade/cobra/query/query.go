/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package query

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger-labs/fabric-cartrade/cmd/cartrade/cobra/common"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/thedevsaddam/gojsonq"
)

type Args struct {
	// Identity is the wallet label the query is evaluated on behalf of
	Identity string
	// Pluck is the property extracted from each element of the result
	Pluck string
}

// Cmd returns the Cobra Command for evaluating a query.
func Cmd() *cobra.Command {
	args := &Args{}
	cmd := &cobra.Command{
		Use:   "query <query> [args...]",
		Short: "Evaluate a query.",
		Long:  fmt.Sprintf("Evaluates a read-only query on behalf of an identity. Supported queries: %v.", invoke.Queries()),
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

			res, err := d.Query(cmd.Context(), args.Identity, positional[0], positional[1:])
			if err != nil {
				return err
			}

			payload := res.Payload
			if len(args.Pluck) != 0 {
				if payload, err = Pluck(payload, args.Pluck); err != nil {
					return err
				}
			}
			common.PrintPayload(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&args.Identity, "identity", "u", "", "wallet label of the querying identity")
	flags.StringVarP(&args.Pluck, "pluck", "p", "", "print only this property of each vehicle")

	return cmd
}

// Pluck extracts property from every element of the JSON array payload.
func Pluck(payload []byte, property string) ([]byte, error) {
	jq := gojsonq.New().FromString(string(payload))
	if err := jq.Error(); err != nil {
		return nil, errors.Wrap(err, "query result is not valid JSON")
	}
	values := jq.Pluck(property)
	if err := jq.Error(); err != nil {
		return nil, errors.Wrapf(err, "failed to pluck [%s]", property)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal [%s]", property)
	}
	return raw, nil
}
