package seed

import (
	"reflect"
	"testing"
)

func TestPostsDeterministic(t *testing.T) {
	a := Posts()
	b := Posts()
	if !reflect.DeepEqual(a, b) {
		t.Error("seed posts differ between calls")
	}
}

func TestPostsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Posts() {
		if seen[p.ID] {
			t.Errorf("duplicate seed id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestPostsShape(t *testing.T) {
	posts := Posts()
	if len(posts) != 54 {
		t.Errorf("seed set size = %d, want 54", len(posts))
	}

	videos := 0
	for _, p := range posts {
		if p.HasVideo() {
			videos++
		}
		if p.AuthorID == "" || p.AuthorUsername == "" || p.MediaRef == "" {
			t.Errorf("post %s missing author or media", p.ID)
		}
	}
	if videos != 2 {
		t.Errorf("video posts = %d, want 2", videos)
	}
}

func TestPostsIncludeDemoAccount(t *testing.T) {
	found := false
	for _, p := range Posts() {
		if p.AuthorID == "reptilefan_seed" {
			found = true
			break
		}
	}
	if !found {
		t.Error("no posts by the demo directory account")
	}
}

func TestConversations(t *testing.T) {
	convos := Conversations()
	if len(convos) != 3 {
		t.Fatalf("got %d conversations, want 3", len(convos))
	}

	for peer, msgs := range convos {
		if len(msgs) == 0 {
			t.Errorf("conversation with %s is empty", peer)
		}
		for i := 1; i < len(msgs); i++ {
			if msgs[i].SentAt.Before(msgs[i-1].SentAt) {
				t.Errorf("conversation with %s not oldest-first", peer)
			}
		}
	}

	// Each seeded thread opens with an incoming message.
	for peer, msgs := range convos {
		if msgs[0].FromMe {
			t.Errorf("conversation with %s opens FromMe", peer)
		}
	}
}
