package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"basking/internal/app"
	"basking/internal/feed"
)

func feedCmd() *cobra.Command {
	var tag string
	var mine bool
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List visible posts, videos first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				var posts []feed.Post
				switch {
				case mine:
					p := s.Profiles.Current()
					if p == nil {
						return fmt.Errorf("not logged in")
					}
					posts = s.Feed.ByAuthor(p.ID)
				case tag != "":
					posts = s.Feed.ByTag(tag)
				default:
					posts = s.Feed.All()
				}
				return printPosts(posts)
			})
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only posts carrying this tag")
	cmd.Flags().BoolVar(&mine, "mine", false, "only posts by the current profile")
	return cmd
}

func printPosts(posts []feed.Post) error {
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(posts)
	}
	for _, p := range posts {
		marker := " "
		if p.HasVideo() {
			marker = "▶"
		}
		fmt.Printf("%s %-36s %-16s %4d♥ %4d💬 %s  %s\n",
			marker, p.ID, p.AuthorUsername, p.LikeCount, p.CommentCount, p.TimestampLabel, p.Caption)
	}
	return nil
}

func postCmd() *cobra.Command {
	var caption string
	cmd := &cobra.Command{
		Use:   "post <image-file>",
		Short: "Create a post from a local image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			return withStores(func(s app.Stores) error {
				var author feed.Author
				if p := s.Profiles.Current(); p != nil {
					author = feed.Author{ID: p.ID, Username: p.Username, AvatarRef: p.AvatarRef}
				}
				post := s.Feed.Add(author, image, caption)
				fmt.Printf("posted %s (media %s)\n", post.ID, post.MediaRef)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&caption, "caption", "", "post caption")
	return cmd
}

func likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Toggle the like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStores(func(s app.Stores) error {
				post, ok := s.Feed.ToggleLike(args[0])
				if !ok {
					return fmt.Errorf("no post with id %s", args[0])
				}
				state := "unliked"
				if post.Liked {
					state = "liked"
				}
				fmt.Printf("%s %s (%d♥)\n", state, post.ID, post.LikeCount)
				return nil
			})
		},
	}
}
