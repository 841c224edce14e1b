package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"basking/internal/app"
	"basking/internal/profile"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Inspect and grow conversations",
	}
	cmd.AddCommand(chatPeersCmd(), chatHistoryCmd(), chatSendCmd())
	return cmd
}

func requireProfile(s app.Stores) (*profile.Profile, error) {
	p := s.Profiles.Current()
	if p == nil {
		return nil, fmt.Errorf("not logged in")
	}
	return p, nil
}

func chatPeersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "List conversation peers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				p, err := requireProfile(s)
				if err != nil {
					return err
				}
				peers := s.Chat.Peers(p.ID)
				sort.Strings(peers)
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(peers)
				}
				for _, peer := range peers {
					fmt.Println(peer)
				}
				return nil
			})
		},
	}
}

func chatHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <peer>",
		Short: "Show a conversation, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				p, err := requireProfile(s)
				if err != nil {
					return err
				}
				msgs := s.Chat.Messages(p.ID, args[0])
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(msgs)
				}
				for _, m := range msgs {
					who := args[0]
					if m.FromMe {
						who = "me"
					}
					fmt.Printf("%s %-16s %s\n", m.SentAt.Format("2006-01-02 15:04"), who, m.Text)
				}
				return nil
			})
		},
	}
}

func chatSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <peer> <text>...",
		Short: "Send a message to a peer",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				p, err := requireProfile(s)
				if err != nil {
					return err
				}
				msg := s.Chat.Send(p.ID, args[0], strings.Join(args[1:], " "))
				fmt.Printf("sent %s\n", msg.ID)
				return nil
			})
		},
	}
}
