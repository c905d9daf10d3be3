package chat

import "context"

// Repository stores conversation logs keyed by conversation id. Append is the
// only mutator besides Clear; implementations must return history in append
// order.
type Repository interface {
	// Append adds a turn to the end of the conversation log.
	Append(ctx context.Context, conversationID string, turn Turn) error

	// History retrieves the full conversation log in append order.
	History(ctx context.Context, conversationID string) ([]Turn, error)

	// Clear removes all turns for a conversation.
	Clear(ctx context.Context, conversationID string) error

	// Count returns the number of turns in the conversation.
	Count(ctx context.Context, conversationID string) (int, error)
}

// Config controls conversation storage behaviour.
type Config struct {
	TTL string `envconfig:"CONVERSATION_TTL" default:"15m"`
}
