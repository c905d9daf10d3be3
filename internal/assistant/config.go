package assistant

import "time"

// Config holds the model and persona settings for the shopping assistant,
// sourced from environment variables.
type Config struct {
	Model       string        `envconfig:"ASSISTANT_MODEL" default:"gemini-3-flash-preview"`
	Temperature float32       `envconfig:"ASSISTANT_TEMPERATURE" default:"0.7"`
	MaxTokens   int32         `envconfig:"ASSISTANT_MAX_TOKENS" default:"2000"`
	Timeout     time.Duration `envconfig:"ASSISTANT_TIMEOUT" default:"30s"`
	StoreName   string        `envconfig:"ASSISTANT_STORE_NAME" default:"Lumina Commerce"`
	Persona     string        `envconfig:"ASSISTANT_PERSONA" default:"Lumina"`
}
