package seed

import (
	"time"

	"github.com/google/uuid"

	"basking/internal/chat"
)

// Conversations returns the canned first-launch conversations, keyed by peer
// id. Timestamps are relative to now; message ids are fresh on every call.
func Conversations() map[string][]chat.Message {
	now := time.Now()
	msg := func(text string, fromMe bool, age time.Duration) chat.Message {
		return chat.Message{
			ID:     uuid.NewString(),
			Text:   text,
			FromMe: fromMe,
			SentAt: now.Add(-age),
		}
	}

	return map[string][]chat.Message{
		"user_ReptileFan": {
			msg("Hey! Nice gecko setup!", false, 48*time.Hour),
			msg("Thanks! Just finished setting it up 🦎", true, 48*time.Hour-5*time.Minute),
			msg("The terrarium looks amazing", false, 24*time.Hour),
		},
		"user_Snake": {
			msg("Love your video!", false, 5*time.Hour),
			msg("Thank you so much! 😊", true, 4*time.Hour),
		},
		"user_TurtlePower": {
			msg("Hey, what substrate do you use?", false, 12*time.Hour),
			msg("I use eco earth, works great!", true, 11*time.Hour),
			msg("Cool, I'll try that. Thanks!", false, 10*time.Hour),
		},
	}
}
