package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"basking/internal/config"
	"basking/internal/home"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(configInitCmd(), configShowCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := home.BaseDir(homeFlag)
			path := home.ConfigPath(base)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := home.BaseDir(homeFlag)
			cfg := config.LoadOrDefault(home.ConfigPath(base))
			fmt.Printf("data_dir:       %s\n", cfg.DataDir)
			fmt.Printf("seed_demo_data: %t\n", cfg.SeedDemoData)
			fmt.Printf("initial_coins:  %d\n", cfg.InitialCoins)
			return nil
		},
	}
}
