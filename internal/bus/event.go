package bus

import "time"

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// Event kinds published by the data layer. Consumers subscribe by namespace
// prefix ("feed.", "chat.", ...) and re-query the owning store on receipt.
const (
	// KindPostAdded signals that the post list changed. It doubles as the
	// generic feed refresh signal after bulk deletes.
	KindPostAdded = "feed.post_added"

	// KindMessageSent carries the peer id of the conversation that grew.
	KindMessageSent = "chat.message_sent"

	// KindUserBlocked carries the blocked username.
	KindUserBlocked = "profile.user_blocked"

	// KindBalanceChanged carries the new coin balance.
	KindBalanceChanged = "wallet.balance_changed"
)
