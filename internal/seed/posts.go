// Package seed provides the fixture data loaded fresh on every startup:
// the demo feed and the canned conversations backing a first launch.
package seed

import (
	"fmt"
	"strings"

	"basking/internal/feed"
)

var seedUsernames = []string{
	"ChameleonCham", "TurtlePower", "BeardedBuddy", "IguanaIggy",
	"FrogPrince", "DinoDan", "ScalySue", "KoboldKeeper",
	"ViperVicky", "GatorGary", "KomodoKing", "AxolotlAlly",
}

var seedLocations = []string{
	"Madagascar", "Amazon Rainforest", "Sahara Desert", "Florida Everglades",
	"Galapagos", "Komodo Island", "Home Terrarium", "Reptile Expo",
	"Zoo Exhibit", "Backyard Pond",
}

var seedCaptions = []string{
	"Just hanging out in the sun. ☀️",
	"Feeding time is the best time! 🦗",
	"Look at these colors! 🎨",
	"Sleepy head today. 💤",
	"New setup for the enclosure. thoughts? 🌿",
	"Reviewing the new heat lamp. 🔥",
	"My little dinosaur. 🦖",
	"Can't believe how big they're getting!",
	"Shedding season again... 🐍",
	"Found this little guy in the garden.",
	"Reptile love is real love. ❤️",
}

var seedPlaceholders = []string{
	"1.jpg", "2.jpg",
	"placeholder_reptile_1", "placeholder_reptile_2", "placeholder_reptile_3",
}

// Posts returns the fixture feed. The set is identical on every call: ids,
// authors and content are fixed, so the seed-priority merge in the feed
// repository discards any persisted copy of these ids.
func Posts() []feed.Post {
	posts := []feed.Post{
		{
			ID:              "1",
			AuthorID:        "user_geckofan",
			AuthorUsername:  "GeckoFan",
			AuthorAvatarRef: "avatar_reptilefan",
			MediaRef:        "1.jpg",
			Caption:         "My first video post on Basking! 🦎 #leopardgecko #reptiles #video",
			LikeCount:       124,
			CommentCount:    12,
			TimestampLabel:  "Just now",
			VideoRef:        "1.mp4",
			Location:        "Reptile Room",
			Tags:            []string{"Gecko", "Video"},
		},
		{
			ID:              "2",
			AuthorID:        "user_snake",
			AuthorUsername:  "SnakeWhisperer",
			AuthorAvatarRef: "avatar_snake",
			MediaRef:        "2.jpg",
			Caption:         "New jungle setup for the python! 🐍 #ballpython #enclosure",
			LikeCount:       89,
			CommentCount:    34,
			TimestampLabel:  "5h ago",
			VideoRef:        "2.mp4",
			Location:        "Jungle Habitat",
			Tags:            []string{"Python", "Enclosure"},
			Liked:           true,
		},
		{
			ID:              "3",
			AuthorID:        "reptilefan_seed",
			AuthorUsername:  "ReptileFan",
			AuthorAvatarRef: "avatar_reptilefan",
			MediaRef:        "placeholder_reptile_1",
			Caption:         "Beautiful sunset with my gecko! 🌅🦎",
			LikeCount:       89,
			CommentCount:    7,
			TimestampLabel:  "2h ago",
			Location:        "Home",
			Tags:            []string{"Sunset", "Gecko"},
		},
		{
			ID:              "4",
			AuthorID:        "reptilefan_seed",
			AuthorUsername:  "ReptileFan",
			AuthorAvatarRef: "avatar_reptilefan",
			MediaRef:        "placeholder_reptile_2",
			Caption:         "New terrarium setup is complete! 🌿",
			LikeCount:       156,
			CommentCount:    23,
			TimestampLabel:  "1d ago",
			Location:        "Reptile Room",
			Tags:            []string{"Terrarium", "Setup"},
		},
		{
			ID:              "5",
			AuthorID:        "reptilefan_seed",
			AuthorUsername:  "ReptileFan",
			AuthorAvatarRef: "avatar_reptilefan",
			MediaRef:        "placeholder_reptile_3",
			Caption:         "Feeding time! 🦗",
			LikeCount:       67,
			CommentCount:    5,
			TimestampLabel:  "2d ago",
			Location:        "Home",
			Tags:            []string{"Feeding"},
		},
		{
			ID:              "6",
			AuthorID:        "reptilefan_seed",
			AuthorUsername:  "ReptileFan",
			AuthorAvatarRef: "avatar_reptilefan",
			MediaRef:        "1.jpg",
			Caption:         "Look at those eyes! 👀✨",
			LikeCount:       203,
			CommentCount:    15,
			TimestampLabel:  "3d ago",
			Location:        "Home",
			Tags:            []string{"Eyes", "Cute"},
		},
	}

	// Generated filler posts. Selection is round-robin over fixed pools so
	// ids and content never change between launches.
	for i := 7; i <= 54; i++ {
		username := seedUsernames[i%len(seedUsernames)]
		posts = append(posts, feed.Post{
			ID:              fmt.Sprintf("%d", i),
			AuthorID:        "user_" + username,
			AuthorUsername:  username,
			AuthorAvatarRef: "avatar_" + strings.ToLower(username),
			MediaRef:        seedPlaceholders[i%len(seedPlaceholders)],
			Caption:         seedCaptions[i%len(seedCaptions)],
			LikeCount:       10 + (i*137)%4991,
			CommentCount:    (i * 29) % 101,
			TimestampLabel:  fmt.Sprintf("%dh ago", 1+(i*7)%23),
			Location:        seedLocations[i%len(seedLocations)],
			Tags:            []string{"#Reptile", "#Nature"},
			Liked:           i%3 == 0,
		})
	}

	return posts
}
