package chat

import "time"

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation log. Turns are append-only: once
// written they are never edited, reordered, or deleted for the lifetime of the
// conversation.
type Turn struct {
	Role                Role      `json:"role"`
	Text                string    `json:"text"`
	Timestamp           time.Time `json:"timestamp"`
	SuggestedProductIDs []string  `json:"suggested_product_ids,omitempty"`
}

// UserTurn builds a user turn stamped with the current time.
func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text, Timestamp: time.Now()}
}

// AssistantTurn builds an assistant turn with optional product suggestions,
// stamped with the current time.
func AssistantTurn(text string, suggestedIDs []string) Turn {
	return Turn{
		Role:                RoleAssistant,
		Text:                text,
		Timestamp:           time.Now(),
		SuggestedProductIDs: suggestedIDs,
	}
}
