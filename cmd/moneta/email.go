package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumopay/moneta/pkg/email"
)

// newEmailCmd creates the email command group.
func newEmailCmd() *cobra.Command {
	emailCmd := &cobra.Command{
		Use:   "email",
		Short: "Validate and normalize email addresses",
	}

	emailCmd.AddCommand(&cobra.Command{
		Use:   "check ADDRESS",
		Short: "Validate an address and print its normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			addr, err := email.New(args[0])
			if err != nil {
				return err
			}

			logger.Debug().Str("address", addr.String()).Msg("validated")
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	})

	return emailCmd
}
