package chat

import "time"

// Message is a single chat message. Messages are immutable once appended and
// are only ever removed by the conversation cascade delete.
type Message struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	FromMe bool      `json:"from_me"`
	SentAt time.Time `json:"sent_at"`
}

// Index maps owner id to peer id to the ordered message list. Order is
// insertion order, oldest first. A conversation exists iff it has at least
// one message.
type Index map[string]map[string][]Message
