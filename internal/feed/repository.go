// Package feed owns the post list: seed fixtures merged with user-created
// posts, persisted as one JSON file plus loose media blobs.
package feed

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"basking/internal/bus"
	"basking/internal/fstore"
)

const postsFile = "posts_data.json"

// Blocklist answers whether a username is blocked. The profile store
// implements it.
type Blocklist interface {
	IsBlocked(username string) bool
}

// Repository owns the in-memory post list and its on-disk copy.
// Write failures are logged and swallowed: the in-memory list keeps the
// mutation even when the file write fails.
type Repository struct {
	mu        sync.Mutex
	files     *fstore.Store
	blocklist Blocklist
	bus       *bus.Bus
	logger    *zap.Logger
	posts     []Post
}

// NewRepository loads persisted posts and merges them under the seed set.
// Seeded posts win on id collision; persisted posts with novel ids are
// appended after the seeds.
func NewRepository(files *fstore.Store, blocklist Blocklist, b *bus.Bus, logger *zap.Logger, seeds []Post) *Repository {
	r := &Repository{
		files:     files,
		blocklist: blocklist,
		bus:       b,
		logger:    logger,
	}

	saved, _ := fstore.Load[[]Post](files, postsFile)

	merged := slices.Clone(seeds)
	seedIDs := make(map[string]struct{}, len(seeds))
	for _, p := range seeds {
		seedIDs[p.ID] = struct{}{}
	}
	for _, p := range saved {
		if _, ok := seedIDs[p.ID]; !ok {
			merged = append(merged, p)
		}
	}
	r.posts = merged

	return r
}

// All returns every post not authored by a blocked username, videos first.
// The partition is stable: within each group, insertion order is preserved.
func (r *Repository) All() []Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visibleLocked()
}

// ByAuthor returns the visible posts of one author, in feed order.
func (r *Repository) ByAuthor(authorID string) []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Post
	for _, p := range r.visibleLocked() {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out
}

// ByTag returns the visible posts carrying the given tag, in feed order.
// Matching is case-insensitive and ignores a leading '#'.
func (r *Repository) ByTag(tag string) []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := normalizeTag(tag)
	var out []Post
	for _, p := range r.visibleLocked() {
		for _, t := range p.Tags {
			if normalizeTag(t) == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(tag, "#"))
}

// visibleLocked filters blocked authors and stable-partitions videos first.
func (r *Repository) visibleLocked() []Post {
	filtered := make([]Post, 0, len(r.posts))
	for _, p := range r.posts {
		if r.blocklist != nil && r.blocklist.IsBlocked(p.AuthorUsername) {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].HasVideo() && !filtered[j].HasVideo()
	})
	return filtered
}

// Add stores the image bytes under a fresh filename and prepends a new post.
func (r *Repository) Add(author Author, image []byte, caption string) Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	author = author.orGuest()

	mediaRef := fmt.Sprintf("post_%s.jpg", uuid.NewString())
	if _, err := r.files.SaveBinary(mediaRef, image); err != nil {
		r.logger.Error("save post image", zap.String("file", mediaRef), zap.Error(err))
		mediaRef = ""
	}

	post := Post{
		ID:              uuid.NewString(),
		AuthorID:        author.ID,
		AuthorUsername:  author.Username,
		AuthorAvatarRef: author.AvatarRef,
		MediaRef:        mediaRef,
		Caption:         caption,
		TimestampLabel:  "Just now",
		Location:        "Unknown",
		Tags:            []string{},
	}
	r.posts = append([]Post{post}, r.posts...)

	r.persistLocked()
	r.bus.Publish(bus.Event{Kind: bus.KindPostAdded, Payload: post.ID})
	return post
}

// ToggleLike flips the liked flag of a post and adjusts its like count.
// Returns the updated post and whether the id was found.
func (r *Repository) ToggleLike(id string) (Post, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}
		if r.posts[i].Liked {
			r.posts[i].Liked = false
			r.posts[i].LikeCount--
		} else {
			r.posts[i].Liked = true
			r.posts[i].LikeCount++
		}
		r.persistLocked()
		r.bus.Publish(bus.Event{Kind: bus.KindPostAdded, Payload: id})
		return r.posts[i], true
	}
	return Post{}, false
}

// DeleteUserPosts removes every post by authorID together with its media and
// video files, then publishes the generic feed refresh.
func (r *Repository) DeleteUserPosts(authorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.posts[:0]
	for _, p := range r.posts {
		if p.AuthorID != authorID {
			kept = append(kept, p)
			continue
		}
		if p.MediaRef != "" && !strings.HasPrefix(p.MediaRef, "http") {
			r.files.Delete(p.MediaRef)
		}
		if p.VideoRef != "" {
			r.files.Delete(p.VideoRef)
		}
	}
	r.posts = kept

	r.persistLocked()
	r.bus.Publish(bus.Event{Kind: bus.KindPostAdded, Payload: authorID})
}

func (r *Repository) persistLocked() {
	if err := r.files.Save(postsFile, r.posts); err != nil {
		r.logger.Error("persist posts", zap.Error(err))
	}
}
