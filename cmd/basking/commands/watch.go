package commands

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"basking/internal/bus"
	"basking/internal/home"
	"basking/internal/journal"
)

// watch follows the on-disk event journal instead of booting the stores, so
// it never takes the data lock and sees events from every other invocation.
func watchCmd() *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print data-layer events as they happen (Ctrl-C to stop)",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := home.BaseDir(homeFlag)
			if err := home.EnsureDirs(base); err != nil {
				return err
			}
			path := home.EventsPath(base)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return journal.Follow(ctx, path, func(evt bus.Event) {
				if !strings.HasPrefix(evt.Kind, namespace) {
					return
				}
				fmt.Printf("%s %-24s %v\n", evt.Timestamp.Format("15:04:05"), evt.Kind, evt.Payload)
			})
		},
	}
	cmd.Flags().StringVar(&namespace, "namespace", "", "event namespace prefix (e.g. feed., chat.)")
	return cmd
}
