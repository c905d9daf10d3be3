package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"github.com/lumina-commerce/storefront/internal/catalog"
	"github.com/lumina-commerce/storefront/internal/chat"
	logx "github.com/lumina-commerce/storefront/pkg/logger"
)

const (
	// FallbackText is returned when the model call fails or its output cannot
	// be parsed.
	FallbackText = "I encountered a slight glitch. I'm still here to help with your shopping!"
	// MissingTextFallback is returned when the model produced valid JSON
	// without the required text field.
	MissingTextFallback = "I'm sorry, I couldn't process that. How can I help you shop today?"
)

// Reply is the normalised assistant response: the required text plus the
// optional ordered list of recommended product ids. Ids are not validated
// against the catalog here; resolution happens at the presentation boundary.
type Reply struct {
	Text                string   `json:"text"`
	SuggestedProductIDs []string `json:"suggestedProductIds,omitempty"`
}

// replySchema constrains the model output to the Reply shape.
var replySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {
			Type:        genai.TypeString,
			Description: "The textual response to the user",
		},
		"suggestedProductIds": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of product IDs recommended",
		},
	},
	Required: []string{"text"},
}

// generator abstracts the single model call so tests can substitute a fake.
type generator interface {
	generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", err
	}
	logUsage(resp, g.model)
	return resp.Text(), nil
}

// Adapter turns a user utterance plus prior history into an assistant reply
// through a single best-effort Gemini call. It never returns an error: every
// failure degrades to a fixed fallback reply.
type Adapter struct {
	gen    generator
	cfg    Config
	system string
}

// New builds the adapter, rendering the system instruction from the catalog up
// front.
func New(ctx context.Context, client *genai.Client, store *catalog.Store, cfg Config) (*Adapter, error) {
	system, err := RenderSystemInstruction(ctx, cfg, store.List())
	if err != nil {
		return nil, err
	}
	return &Adapter{
		gen:    &geminiGenerator{client: client, model: cfg.Model},
		cfg:    cfg,
		system: system,
	}, nil
}

// Respond sends the prior history and the new user text to the model and
// normalises whatever comes back. One attempt, no retry; a timeout or any
// other failure yields the fallback reply with no suggestions.
func (a *Adapter) Respond(ctx context.Context, userText string, history []chat.Turn) Reply {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		var role genai.Role = genai.RoleUser
		if t.Role == chat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(userText, genai.RoleUser))

	gcfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(a.system, genai.RoleUser),
		Temperature:       genai.Ptr(a.cfg.Temperature),
		MaxOutputTokens:   a.cfg.MaxTokens,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    replySchema,
	}

	raw, err := a.gen.generate(ctx, contents, gcfg)
	if err != nil {
		logx.Error().Err(err).Str("model", a.cfg.Model).Msg("assistant model call failed")
		return Reply{Text: FallbackText}
	}
	return parseReply(raw)
}

// parseReply validates the raw model output against the Reply contract. The
// shape is never trusted beyond this function.
func parseReply(raw string) Reply {
	var out Reply
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logx.Warn().Err(err).Int("len", len(raw)).Msg("assistant returned unparseable output")
		return Reply{Text: FallbackText}
	}
	if strings.TrimSpace(out.Text) == "" {
		logx.Warn().Msg("assistant reply missing required text field")
		return Reply{Text: MissingTextFallback}
	}
	return out
}
