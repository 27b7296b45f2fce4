package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumopay/moneta/pkg/config"
	"github.com/lumopay/moneta/pkg/money"
)

// newMoneyCmd creates the money command group.
func newMoneyCmd() *cobra.Command {
	moneyCmd := &cobra.Command{
		Use:   "money",
		Short: "Arithmetic and comparison on currency-tagged amounts",
	}

	moneyCmd.PersistentFlags().StringP("currency", "C", "", "3-letter currency code (default from config)")

	moneyCmd.AddCommand(
		newArithCmd("add", "Add two amounts", money.Money.Add),
		newArithCmd("sub", "Subtract the second amount from the first", money.Money.Sub),
		newScaleCmd("mul", "Multiply an amount by a factor", money.Money.MulString),
		newScaleCmd("div", "Divide an amount by a divisor", money.Money.DivString),
		newCmpCmd(),
		newFmtCmd(),
	)

	return moneyCmd
}

// resolveCurrency picks the currency for a command: flag first, then config.
func resolveCurrency(cmd *cobra.Command, cfg *config.Config) (string, error) {
	cur, err := cmd.Flags().GetString("currency")
	if err != nil {
		return "", fmt.Errorf("failed to get currency flag: %w", err)
	}
	if cur == "" {
		cur = cfg.Currency.Default
	}
	return cur, nil
}

// newArithCmd builds a command taking two amounts in a shared currency.
func newArithCmd(use, short string, op func(money.Money, money.Money) (money.Money, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " AMOUNT AMOUNT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			cur, err := resolveCurrency(cmd, cfg)
			if err != nil {
				return err
			}

			a, err := money.NewFromString(args[0], cur)
			if err != nil {
				return err
			}
			b, err := money.NewFromString(args[1], cur)
			if err != nil {
				return err
			}

			result, err := op(a, b)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("op", use).
				Str("currency", result.Currency()).
				Str("amount", result.Amount().String()).
				Msg("computed")
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// newScaleCmd builds a command taking an amount and a bare decimal operand.
func newScaleCmd(use, short string, op func(money.Money, string) (money.Money, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " AMOUNT OPERAND",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			cur, err := resolveCurrency(cmd, cfg)
			if err != nil {
				return err
			}

			m, err := money.NewFromString(args[0], cur)
			if err != nil {
				return err
			}

			result, err := op(m, args[1])
			if err != nil {
				return err
			}

			logger.Debug().
				Str("op", use).
				Str("currency", result.Currency()).
				Str("amount", result.Amount().String()).
				Msg("computed")
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// newCmpCmd builds the comparison command. It prints the ordering word
// (less, equal, greater) rather than a formatted amount.
func newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp AMOUNT AMOUNT",
		Short: "Compare two amounts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			cur, err := resolveCurrency(cmd, cfg)
			if err != nil {
				return err
			}

			a, err := money.NewFromString(args[0], cur)
			if err != nil {
				return err
			}
			b, err := money.NewFromString(args[1], cur)
			if err != nil {
				return err
			}

			ord, err := a.Compare(b)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ord)
			return nil
		},
	}
}

// newFmtCmd builds the display-format command.
func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt AMOUNT",
		Short: "Print an amount in display form (two decimals, half-up)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			cur, err := resolveCurrency(cmd, cfg)
			if err != nil {
				return err
			}

			m, err := money.NewFromString(args[0], cur)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}
