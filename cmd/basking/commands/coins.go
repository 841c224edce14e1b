package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"basking/internal/app"
)

func coinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Show the coin balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				fmt.Printf("%d coins\n", s.Wallet.Balance())
				return nil
			})
		},
	}
	cmd.AddCommand(coinsAddCmd(), coinsSpendCmd())
	return cmd
}

func coinsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <amount>",
		Short: "Credit coins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return withStores(func(s app.Stores) error {
				s.Wallet.Add(amount)
				fmt.Printf("%d coins\n", s.Wallet.Balance())
				return nil
			})
		},
	}
}

func coinsSpendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spend <amount>",
		Short: "Spend coins if the balance covers it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return withStores(func(s app.Stores) error {
				if !s.Wallet.Spend(amount) {
					return fmt.Errorf("insufficient balance (%d coins)", s.Wallet.Balance())
				}
				fmt.Printf("%d coins\n", s.Wallet.Balance())
				return nil
			})
		},
	}
}
