package app

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"go.uber.org/fx"

	"basking/internal/bus"
	"basking/internal/config"
	"basking/internal/feed"
	"basking/internal/home"
)

func boot(t *testing.T, homeDir string, cfg *config.Config) (Stores, func()) {
	t.Helper()

	var s Stores
	fxApp := fx.New(
		Module(Params{Home: homeDir, Config: cfg}),
		fx.NopLogger,
		fx.Populate(&s),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := fxApp.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	return s, func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer stopCancel()
		if err := fxApp.Stop(stopCtx); err != nil {
			t.Errorf("stop: %v", err)
		}
	}
}

func TestLifecycleAndSeeding(t *testing.T) {
	homeDir := t.TempDir()
	cfg := config.Default()

	// First launch: guest, seeded feed, fresh wallet, no conversations.
	s, stop := boot(t, homeDir, cfg)

	if s.Profiles.Current() != nil {
		t.Error("fresh launch is not guest")
	}
	if len(s.Feed.All()) == 0 {
		t.Error("seeded feed is empty")
	}
	if got := s.Wallet.Balance(); got != config.DefaultCoinBonus {
		t.Errorf("wallet = %d, want %d", got, config.DefaultCoinBonus)
	}

	p := s.Profiles.Register("it@basking.app", "Tester")
	stop()

	// Second launch: profile persisted, conversations seeded for it.
	s, stop = boot(t, homeDir, cfg)
	defer stop()

	current := s.Profiles.Current()
	if current == nil || current.ID != p.ID {
		t.Fatalf("current after relaunch = %+v, want %s", current, p.ID)
	}
	peers := s.Chat.Peers(current.ID)
	if len(peers) != 3 {
		t.Errorf("seeded peers = %v, want 3 canned conversations", peers)
	}
}

func TestSeedingDisabledByConfig(t *testing.T) {
	homeDir := t.TempDir()
	cfg := config.Default()
	cfg.SeedDemoData = false

	s, stop := boot(t, homeDir, cfg)
	defer stop()

	if got := len(s.Feed.All()); got != 0 {
		t.Errorf("feed has %d posts with seeding disabled", got)
	}
}

// Every event of a session must land in the on-disk journal, so a follower
// in another process (basking watch) can observe it after the session's lock
// is released.
func TestSessionEventsLandInJournal(t *testing.T) {
	homeDir := t.TempDir()
	s, stop := boot(t, homeDir, config.Default())

	p := s.Profiles.Register("watcher@basking.app", "Watcher")
	s.Feed.Add(feed.Author{ID: p.ID, Username: p.Username, AvatarRef: p.AvatarRef}, []byte("img"), "caption")
	s.Chat.Send(p.ID, "user_Snake", "hi")
	s.Profiles.BlockUsername("Rude")
	stop()

	f, err := os.Open(home.EventsPath(homeDir))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer f.Close()

	got := make(map[string]int)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var evt bus.Event
		if err := json.Unmarshal(sc.Bytes(), &evt); err != nil {
			t.Fatalf("decode journal line: %v", err)
		}
		got[evt.Kind]++
	}

	for _, kind := range []string{
		bus.KindBalanceChanged, // first-open bonus
		bus.KindPostAdded,
		bus.KindMessageSent,
		bus.KindUserBlocked,
	} {
		if got[kind] == 0 {
			t.Errorf("journal is missing a %s event (got %v)", kind, got)
		}
	}
}

func TestDeleteAccountFlow(t *testing.T) {
	homeDir := t.TempDir()
	s, stop := boot(t, homeDir, config.Default())
	defer stop()

	p := s.Profiles.Register("bye@basking.app", "Goner")
	post := s.Feed.Add(feed.Author{ID: p.ID, Username: p.Username, AvatarRef: p.AvatarRef}, []byte("img"), "soon gone")
	s.Chat.Send(p.ID, "user_Snake", "hello")

	s.Profiles.DeleteAccount(s.Feed, s.Chat)

	if s.Profiles.IsLoggedIn() {
		t.Error("still logged in after delete-account")
	}
	for _, got := range s.Feed.All() {
		if got.AuthorID == p.ID {
			t.Errorf("post %s survived delete-account", got.ID)
		}
	}
	if s.Files.Exists(post.MediaRef) {
		t.Error("media file survived delete-account")
	}
	if peers := s.Chat.Peers(p.ID); len(peers) != 0 {
		t.Errorf("conversations survived delete-account: %v", peers)
	}
}
