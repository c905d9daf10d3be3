package assistant

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/lumina-commerce/storefront/internal/catalog"
)

//go:embed template/system_prompt.txt
var systemPromptTemplate string

// RenderSystemInstruction renders the assistant's system instruction,
// enumerating every catalog product so the model can only recommend ids that
// exist. Rendered once at startup since the catalog is static.
func RenderSystemInstruction(ctx context.Context, cfg Config, products []catalog.Product) (string, error) {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- [ID: %s] %s: %s ($%.2f)", p.ID, p.Name, p.Description, p.Price))
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(systemPromptTemplate),
	)
	vars := map[string]any{
		"Persona":   cfg.Persona,
		"StoreName": cfg.StoreName,
		"Catalog":   strings.Join(lines, "\n"),
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}
