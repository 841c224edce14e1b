// Package profile owns the current profile, the registered-email directory
// and the blocked-username set. The profile lives in its own JSON file; the
// directory and blocklist live in settings storage, so they survive logout.
package profile

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"basking/internal/bus"
	"basking/internal/fstore"
	"basking/internal/settings"
)

const (
	profileFile = "user_profile.json"
	defaultBio  = "New reptile enthusiast 🦎"

	// Demo account present in every fresh directory. Its id matches the
	// ReptileFan seed posts.
	demoEmail = "seed@basking.app"
	demoID    = "reptilefan_seed"
)

// PostPurger removes all posts by an author. The feed repository implements it.
type PostPurger interface {
	DeleteUserPosts(authorID string)
}

// ConversationPurger erases a user from the conversation index. The chat
// store implements it.
type ConversationPurger interface {
	DeleteAllConversationsWithUser(userID string)
}

// Store owns authentication state. Mutations persist synchronously; write
// failures are logged and the in-memory state keeps the change.
type Store struct {
	mu       sync.Mutex
	files    *fstore.Store
	settings *settings.DB
	bus      *bus.Bus
	logger   *zap.Logger
	current  *Profile
	blocked  map[string]struct{}
}

// NewStore loads the current profile and blocklist, and seeds the directory
// with the demo account when none exists yet.
func NewStore(files *fstore.Store, st *settings.DB, b *bus.Bus, logger *zap.Logger) *Store {
	s := &Store{
		files:    files,
		settings: st,
		bus:      b,
		logger:   logger,
		blocked:  make(map[string]struct{}),
	}

	if p, ok := fstore.Load[Profile](files, profileFile); ok {
		s.current = &p
	}

	names, err := st.StringSlice(settings.KeyBlockedUsers)
	if err != nil {
		logger.Error("load blocklist", zap.Error(err))
	}
	for _, n := range names {
		s.blocked[n] = struct{}{}
	}

	ok, err := st.Has(settings.KeyRegisteredUsers)
	if err != nil {
		logger.Error("probe directory", zap.Error(err))
	}
	if err == nil && !ok {
		if err := st.SetStringMap(settings.KeyRegisteredUsers, map[string]string{demoEmail: demoID}); err != nil {
			logger.Error("seed directory", zap.Error(err))
		}
	}

	return s
}

// Current returns a copy of the current profile, or nil in guest mode.
func (s *Store) Current() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

// IsLoggedIn reports whether a profile is current.
func (s *Store) IsLoggedIn() bool {
	return s.Current() != nil
}

// IsEmailRegistered reports whether the email has a directory entry.
// Lookup is case-insensitive.
func (s *Store) IsEmailRegistered(email string) bool {
	_, ok := s.directory()[strings.ToLower(email)]
	return ok
}

// ResolveID returns the profile id registered for email, if any.
func (s *Store) ResolveID(email string) (string, bool) {
	id, ok := s.directory()[strings.ToLower(email)]
	return id, ok
}

// Register mints a fresh id for the email, overwrites its directory entry and
// logs the new profile in. Re-registering an email always produces a new id;
// the previous id becomes unreachable through the directory.
func (s *Store) Register(email, username string) Profile {
	newID := uuid.NewString()

	s.mu.Lock()
	dir := s.directory()
	dir[strings.ToLower(email)] = newID
	err := s.settings.SetStringMap(settings.KeyRegisteredUsers, dir)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("persist directory", zap.Error(err))
	}

	return s.Login(newID, username, email)
}

// Login constructs a profile with the derived avatar and default bio, makes
// it current and persists it. The id is not validated against the directory.
func (s *Store) Login(id, username, email string) Profile {
	p := Profile{
		ID:        id,
		Username:  username,
		Email:     email,
		AvatarRef: "avatar_" + strings.ToLower(username),
		Bio:       defaultBio,
	}

	s.mu.Lock()
	s.current = &p
	s.mu.Unlock()

	if err := s.settings.SetBool(settings.KeyLoggedIn, true); err != nil {
		s.logger.Error("persist login flag", zap.Error(err))
	}
	if err := s.files.Save(profileFile, p); err != nil {
		s.logger.Error("persist profile", zap.Error(err))
	}
	return p
}

// Logout clears the current profile and deletes its file. The blocklist and
// the directory are untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.settings.SetBool(settings.KeyLoggedIn, false); err != nil {
		s.logger.Error("persist login flag", zap.Error(err))
	}
	s.files.Delete(profileFile)
}

// DeleteAccount removes the current profile's directory entry, cascades the
// delete to posts and conversations, then logs out. No-op in guest mode.
func (s *Store) DeleteAccount(posts PostPurger, convos ConversationPurger) {
	current := s.Current()
	if current == nil {
		return
	}

	s.mu.Lock()
	dir := s.directory()
	delete(dir, strings.ToLower(current.Email))
	err := s.settings.SetStringMap(settings.KeyRegisteredUsers, dir)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("persist directory", zap.Error(err))
	}

	posts.DeleteUserPosts(current.ID)
	convos.DeleteAllConversationsWithUser(current.ID)

	s.Logout()
}

// BlockUsername adds the username to the device-local blocklist and
// broadcasts the block. Matching is case-sensitive; there is no unblock.
func (s *Store) BlockUsername(name string) {
	s.mu.Lock()
	s.blocked[name] = struct{}{}
	names := make([]string, 0, len(s.blocked))
	for n := range s.blocked {
		names = append(names, n)
	}
	s.mu.Unlock()

	if err := s.settings.SetStringSlice(settings.KeyBlockedUsers, names); err != nil {
		s.logger.Error("persist blocklist", zap.Error(err))
	}
	s.bus.Publish(bus.Event{Kind: bus.KindUserBlocked, Payload: name})
}

// IsBlocked reports whether the exact username is blocked.
func (s *Store) IsBlocked(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blocked[name]
	return ok
}

// BlockedUsernames returns the blocklist. Order is unspecified.
func (s *Store) BlockedUsernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.blocked))
	for n := range s.blocked {
		names = append(names, n)
	}
	return names
}

// directory reads the email-to-id map from settings. Read failures are
// logged and surface as an empty directory.
func (s *Store) directory() map[string]string {
	dir, err := s.settings.StringMap(settings.KeyRegisteredUsers)
	if err != nil {
		s.logger.Error("load directory", zap.Error(err))
		return make(map[string]string)
	}
	return dir
}
