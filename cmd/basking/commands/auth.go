package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"basking/internal/app"
)

func registerCmd() *cobra.Command {
	var email, username string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				// The store itself never rejects a re-registration; that
				// policy belongs to the caller.
				if s.Profiles.IsEmailRegistered(email) {
					return fmt.Errorf("email %s is already registered (use login)", email)
				}
				p := s.Profiles.Register(email, username)
				fmt.Printf("registered %s (%s)\n", p.Username, p.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&username, "username", "", "display username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a registered email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				id, ok := s.Profiles.ResolveID(email)
				if !ok {
					return fmt.Errorf("email %s is not registered", email)
				}
				p := s.Profiles.Login(id, username, email)
				fmt.Printf("logged in as %s (%s)\n", p.Username, p.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&username, "username", "", "display username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				s.Profiles.Logout()
				fmt.Println("logged out")
				return nil
			})
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				p := s.Profiles.Current()
				if p == nil {
					fmt.Println("guest (not logged in)")
					return nil
				}
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(p)
				}
				fmt.Printf("%s <%s>\nid: %s\nbio: %s\n", p.Username, p.Email, p.ID, p.Bio)
				return nil
			})
		},
	}
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the current account, its posts and conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				if !s.Profiles.IsLoggedIn() {
					return fmt.Errorf("not logged in")
				}
				s.Profiles.DeleteAccount(s.Feed, s.Chat)
				fmt.Println("account deleted")
				return nil
			})
		},
	}
}

func blockCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "block <username>",
		Short: "Block a username (case-sensitive, no unblock)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				if list {
					for _, name := range s.Profiles.BlockedUsernames() {
						fmt.Println(name)
					}
					return nil
				}
				if len(args) != 1 {
					return fmt.Errorf("username required (or use --list)")
				}
				s.Profiles.BlockUsername(args[0])
				fmt.Printf("blocked %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print the blocklist instead of blocking")
	return cmd
}
