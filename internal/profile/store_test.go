package profile

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"basking/internal/bus"
	"basking/internal/fstore"
	"basking/internal/settings"
)

type env struct {
	files *fstore.Store
	db    *settings.DB
	bus   *bus.Bus
}

func testEnv(t *testing.T) env {
	t.Helper()
	db, err := settings.Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return env{
		files: fstore.New(t.TempDir(), zap.NewNop()),
		db:    db,
		bus:   bus.New(),
	}
}

func (e env) newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(e.files, e.db, e.bus, zap.NewNop())
}

func TestFreshDirectoryHasDemoAccount(t *testing.T) {
	s := testEnv(t).newStore(t)

	if !s.IsEmailRegistered("seed@basking.app") {
		t.Error("demo email not registered in fresh directory")
	}
	id, ok := s.ResolveID("seed@basking.app")
	if !ok || id != "reptilefan_seed" {
		t.Errorf("ResolveID(demo) = %q, %v; want reptilefan_seed, true", id, ok)
	}
}

func TestRegisterMintsFreshIDs(t *testing.T) {
	s := testEnv(t).newStore(t)

	seen := make(map[string]bool)
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		p := s.Register(email, "user")
		if seen[p.ID] {
			t.Errorf("id %s minted twice", p.ID)
		}
		seen[p.ID] = true

		id, ok := s.ResolveID(email)
		if !ok || id != p.ID {
			t.Errorf("ResolveID(%s) = %q, %v; want %q, true", email, id, ok, p.ID)
		}
	}
}

func TestConcurrentRegisterKeepsEveryDirectoryEntry(t *testing.T) {
	s := testEnv(t).newStore(t)

	emails := []string{"p0@x.com", "p1@x.com", "p2@x.com", "p3@x.com", "p4@x.com", "p5@x.com", "p6@x.com", "p7@x.com"}
	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			s.Register(email, "racer")
		}(email)
	}
	wg.Wait()

	// The directory update is a read-modify-write; without serialization a
	// concurrent registration can overwrite another's entry.
	for _, email := range emails {
		if !s.IsEmailRegistered(email) {
			t.Errorf("directory lost entry for %s", email)
		}
	}
}

func TestReRegisterSameEmailMintsNewID(t *testing.T) {
	s := testEnv(t).newStore(t)

	first := s.Register("same@x.com", "one")
	second := s.Register("same@x.com", "two")

	if first.ID == second.ID {
		t.Error("re-registration reused the previous id")
	}
	id, _ := s.ResolveID("same@x.com")
	if id != second.ID {
		t.Errorf("directory resolves to %q, want latest id %q", id, second.ID)
	}
}

func TestEmailLookupIsCaseInsensitive(t *testing.T) {
	s := testEnv(t).newStore(t)

	p := s.Register("Gecko@Example.COM", "gex")

	if !s.IsEmailRegistered("gecko@example.com") {
		t.Error("lowercased lookup failed")
	}
	id, ok := s.ResolveID("GECKO@EXAMPLE.COM")
	if !ok || id != p.ID {
		t.Errorf("ResolveID mixed case = %q, %v", id, ok)
	}
}

func TestLoginDerivedDefaults(t *testing.T) {
	e := testEnv(t)
	s := e.newStore(t)

	p := s.Login("some-id", "ScalySue", "sue@x.com")

	if p.AvatarRef != "avatar_scalysue" {
		t.Errorf("AvatarRef = %q, want avatar_scalysue", p.AvatarRef)
	}
	if p.Bio != defaultBio {
		t.Errorf("Bio = %q, want default", p.Bio)
	}

	// Login does not validate the id against the directory.
	if _, ok := s.ResolveID("sue@x.com"); ok {
		t.Error("login should not create a directory entry")
	}

	// Persisted: a fresh store sees the profile.
	s2 := e.newStore(t)
	got := s2.Current()
	if got == nil || got.ID != "some-id" {
		t.Errorf("reloaded current = %+v, want id some-id", got)
	}
}

func TestLogout(t *testing.T) {
	e := testEnv(t)
	s := e.newStore(t)

	s.Register("out@x.com", "outie")
	s.BlockUsername("SnakeWhisperer")
	s.Logout()

	if s.IsLoggedIn() {
		t.Error("still logged in after Logout")
	}
	// Blocklist and directory survive logout.
	if !s.IsBlocked("SnakeWhisperer") {
		t.Error("blocklist cleared by Logout")
	}
	if !s.IsEmailRegistered("out@x.com") {
		t.Error("directory cleared by Logout")
	}

	// Profile file deleted: a fresh store starts as guest.
	if s2 := e.newStore(t); s2.Current() != nil {
		t.Error("fresh store is not guest after Logout")
	}
}

type recordingPurger struct {
	postAuthor string
	convoUser  string
}

func (r *recordingPurger) DeleteUserPosts(authorID string) { r.postAuthor = authorID }
func (r *recordingPurger) DeleteAllConversationsWithUser(userID string) {
	r.convoUser = userID
}

func TestDeleteAccountCascades(t *testing.T) {
	s := testEnv(t).newStore(t)

	p := s.Register("gone@x.com", "goner")
	purger := &recordingPurger{}
	s.DeleteAccount(purger, purger)

	if purger.postAuthor != p.ID {
		t.Errorf("post cascade got %q, want %q", purger.postAuthor, p.ID)
	}
	if purger.convoUser != p.ID {
		t.Errorf("conversation cascade got %q, want %q", purger.convoUser, p.ID)
	}
	if s.IsLoggedIn() {
		t.Error("still logged in after DeleteAccount")
	}
	if s.IsEmailRegistered("gone@x.com") {
		t.Error("directory entry survived DeleteAccount")
	}
}

func TestDeleteAccountIsNoOpForGuest(t *testing.T) {
	s := testEnv(t).newStore(t)

	purger := &recordingPurger{}
	s.DeleteAccount(purger, purger)

	if purger.postAuthor != "" || purger.convoUser != "" {
		t.Error("cascade ran without a current profile")
	}
}

func TestBlockUsername(t *testing.T) {
	e := testEnv(t)
	s := e.newStore(t)

	ch, unsub := e.bus.Subscribe("profile.", 1)
	defer unsub()

	s.BlockUsername("ViperVicky")

	if !s.IsBlocked("ViperVicky") {
		t.Error("IsBlocked = false after block")
	}
	// Case-sensitive exact match.
	if s.IsBlocked("vipervicky") {
		t.Error("blocklist matched case-insensitively")
	}

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindUserBlocked || evt.Payload != "ViperVicky" {
			t.Errorf("event = %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("no user-blocked event")
	}

	// Persisted: a fresh store still blocks.
	if s2 := e.newStore(t); !s2.IsBlocked("ViperVicky") {
		t.Error("blocklist not persisted")
	}
}
