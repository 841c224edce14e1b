package feed

// Post is one feed entry. Seeded posts reference bundled asset names in
// MediaRef/VideoRef; user posts reference files written to the data dir.
type Post struct {
	ID              string   `json:"id"`
	AuthorID        string   `json:"author_id"`
	AuthorUsername  string   `json:"author_username"`
	AuthorAvatarRef string   `json:"author_avatar_ref"`
	MediaRef        string   `json:"media_ref"`
	Caption         string   `json:"caption"`
	LikeCount       int      `json:"like_count"`
	CommentCount    int      `json:"comment_count"`
	TimestampLabel  string   `json:"timestamp_label"`
	VideoRef        string   `json:"video_ref,omitempty"`
	Location        string   `json:"location,omitempty"`
	Tags            []string `json:"tags"`
	Liked           bool     `json:"liked"`
}

// HasVideo reports whether the post carries a video reference.
func (p Post) HasVideo() bool {
	return p.VideoRef != ""
}

// Author identifies who is creating a post. The zero value is the guest author.
type Author struct {
	ID        string
	Username  string
	AvatarRef string
}

// orGuest substitutes guest defaults for a zero author.
func (a Author) orGuest() Author {
	if a.ID == "" {
		return Author{ID: "Guest", Username: "Me", AvatarRef: "avatar_default"}
	}
	return a
}
