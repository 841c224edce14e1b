package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"basking/internal/app"
	"basking/internal/config"
	"basking/internal/home"
)

var (
	homeFlag string
	jsonOut  bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "basking",
		Short:         "Local-first data layer for the Basking photo-sharing app",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&homeFlag, "home", "", "app home dir (default ~/.basking)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")

	root.AddCommand(
		registerCmd(), loginCmd(), logoutCmd(), whoamiCmd(), deleteAccountCmd(),
		blockCmd(),
		feedCmd(), postCmd(), likeCmd(),
		chatCmd(),
		coinsCmd(),
		watchCmd(),
		configCmd(),
	)
	return root.Execute()
}

// withStores boots the data layer for one command invocation and tears it
// down afterwards.
func withStores(fn func(s app.Stores) error) error {
	base := home.BaseDir(homeFlag)
	cfg := config.LoadOrDefault(home.ConfigPath(base))

	var s app.Stores
	fxApp := fx.New(
		app.Module(app.Params{Home: base, Config: cfg}),
		fx.NopLogger,
		fx.Populate(&s),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer stopCancel()
		_ = fxApp.Stop(stopCtx)
	}()

	return fn(s)
}
