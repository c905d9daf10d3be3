package server

import (
	"github.com/lumina-commerce/storefront/internal/cart"
	"github.com/lumina-commerce/storefront/internal/catalog"
	"github.com/lumina-commerce/storefront/internal/chat"
)

// greetingText opens an empty chat panel. It is display-only: it is never
// appended to the conversation log and never sent to the model as history.
const greetingText = "Hi! I am Lumina, your AI shopping concierge. Looking for something specific or need a recommendation?"

type homeFlags struct {
	CartOpen      bool
	ChatOpen      bool
	AssistantBusy bool
	QuickViewID   string
}

type cartView struct {
	Lines    []cart.Line
	Subtotal float64
	Count    int
	Empty    bool
}

type turnView struct {
	Role      chat.Role
	Text      string
	Suggested []catalog.Product
}

func (t turnView) IsUser() bool {
	return t.Role == chat.RoleUser
}

type homeView struct {
	StoreName      string
	Categories     []catalog.Category
	ActiveCategory catalog.Category
	Query          string
	Products       []catalog.Product
	ResultCount    int
	Filtered       bool
	Cart           cartView
	QuickView      *catalog.Product
	Turns          []turnView
	CartOpen       bool
	ChatOpen       bool
	AssistantBusy  bool
}

func (s *Server) buildHomeView(category catalog.Category, query string, turns []chat.Turn, flags homeFlags) homeView {
	view := homeView{
		StoreName:      "Lumina",
		Categories:     catalog.Categories(),
		ActiveCategory: category,
		Query:          query,
		Products:       s.store.Filter(category, query),
		Cart: cartView{
			Lines:    s.cart.Lines(),
			Subtotal: s.cart.Subtotal(),
			Count:    s.cart.Count(),
			Empty:    s.cart.Empty(),
		},
		Turns:         s.buildTurnViews(turns),
		CartOpen:      flags.CartOpen,
		ChatOpen:      flags.ChatOpen,
		AssistantBusy: flags.AssistantBusy,
	}
	view.ResultCount = len(view.Products)
	view.Filtered = category != catalog.CategoryAll || query != ""

	if flags.QuickViewID != "" {
		if p, ok := s.store.Get(flags.QuickViewID); ok {
			view.QuickView = &p
		}
	}
	return view
}

// buildTurnViews resolves suggested product ids for rendering. An empty log
// yields the static greeting.
func (s *Server) buildTurnViews(turns []chat.Turn) []turnView {
	if len(turns) == 0 {
		return []turnView{{Role: chat.RoleAssistant, Text: greetingText}}
	}
	out := make([]turnView, 0, len(turns))
	for _, t := range turns {
		out = append(out, turnView{
			Role:      t.Role,
			Text:      t.Text,
			Suggested: resolveSuggestions(s.store, t.SuggestedProductIDs),
		})
	}
	return out
}

// resolveSuggestions maps suggested ids back to catalog products, silently
// dropping ids that do not resolve. An unknown id is never an error.
func resolveSuggestions(store *catalog.Store, ids []string) []catalog.Product {
	var out []catalog.Product
	for _, id := range ids {
		if p, ok := store.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}
