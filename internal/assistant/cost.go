package assistant

import (
	"google.golang.org/genai"

	logx "github.com/lumina-commerce/storefront/pkg/logger"
)

// pricing defines USD cost per 1M tokens for input/output.
type pricing struct {
	inputPerM  float64
	outputPerM float64
}

// modelPricing provides hardcoded USD pricing per 1M text tokens. Unknown
// models fall back to zero pricing, so the token counts still get logged.
var modelPricing = map[string]pricing{
	"gemini-3-flash-preview": {inputPerM: 0.30, outputPerM: 2.50},
	"gemini-2.5-flash":       {inputPerM: 0.30, outputPerM: 2.50},
	"gemini-2.5-flash-lite":  {inputPerM: 0.10, outputPerM: 0.40},
}

// logUsage emits token usage and estimated cost for one model call.
func logUsage(resp *genai.GenerateContentResponse, model string) {
	if resp == nil || resp.UsageMetadata == nil {
		return
	}
	u := resp.UsageMetadata
	p := modelPricing[model]
	cost := p.inputPerM*float64(u.PromptTokenCount)/1_000_000.0 +
		p.outputPerM*float64(u.CandidatesTokenCount)/1_000_000.0

	logx.Debug().
		Str("model", model).
		Int32("prompt_tokens", u.PromptTokenCount).
		Int32("completion_tokens", u.CandidatesTokenCount).
		Float64("cost_usd", cost).
		Msg("assistant model usage")
}
