// Package chat owns the conversation index: every owner's per-peer message
// lists, persisted as one JSON file.
package chat

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"basking/internal/bus"
	"basking/internal/fstore"
)

const messagesFile = "messages_data_v4.json"

// Store owns the conversation index and its on-disk copy. Owner ids are
// always passed explicitly; the store has no notion of a current profile.
type Store struct {
	mu     sync.Mutex
	files  *fstore.Store
	bus    *bus.Bus
	logger *zap.Logger
	index  Index
	loaded bool
}

// NewStore loads the persisted index. Loaded() tells the caller whether a
// file existed, so app wiring can decide to seed sample conversations.
func NewStore(files *fstore.Store, b *bus.Bus, logger *zap.Logger) *Store {
	s := &Store{
		files:  files,
		bus:    b,
		logger: logger,
		index:  make(Index),
	}
	if saved, ok := fstore.Load[Index](files, messagesFile); ok {
		s.index = saved
		s.loaded = true
	}
	return s
}

// Loaded reports whether a persisted index existed at construction.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Messages returns the conversation between owner and peer in insertion
// order, or an empty list when absent.
func (s *Store) Messages(ownerID, peerID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.index[ownerID][peerID])
}

// Send appends an outgoing message to the owner's conversation with peer,
// creating intermediate maps as needed, and publishes the new-message event
// carrying the peer id.
func (s *Store) Send(ownerID, peerID, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:     uuid.NewString(),
		Text:   text,
		FromMe: true,
		SentAt: time.Now(),
	}

	if s.index[ownerID] == nil {
		s.index[ownerID] = make(map[string][]Message)
	}
	s.index[ownerID][peerID] = append(s.index[ownerID][peerID], msg)

	s.persistLocked()
	s.bus.Publish(bus.Event{Kind: bus.KindMessageSent, Payload: peerID})
	return msg
}

// Peers returns the ids of every peer the owner has a conversation with.
// Order is unspecified.
func (s *Store) Peers(ownerID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	convos := s.index[ownerID]
	peers := make([]string, 0, len(convos))
	for peer := range convos {
		peers = append(peers, peer)
	}
	return peers
}

// DeleteAllConversationsWithUser erases every trace of userID: its own
// outbound map and its entry as a peer under every other owner.
func (s *Store) DeleteAllConversationsWithUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.index, userID)
	for _, convos := range s.index {
		delete(convos, userID)
	}

	s.persistLocked()
}

// SeedIndex installs canned conversations under the given owner and persists
// them. Used once at startup when no index file exists yet.
func (s *Store) SeedIndex(ownerID string, convos map[string][]Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index[ownerID] == nil {
		s.index[ownerID] = make(map[string][]Message)
	}
	for peer, msgs := range convos {
		s.index[ownerID][peer] = slices.Clone(msgs)
	}

	s.persistLocked()
}

func (s *Store) persistLocked() {
	if err := s.files.Save(messagesFile, s.index); err != nil {
		s.logger.Error("persist conversations", zap.Error(err))
	}
}
