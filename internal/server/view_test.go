package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-commerce/storefront/internal/catalog"
	"github.com/lumina-commerce/storefront/internal/chat"
)

func TestResolveSuggestionsDropsUnknownIDs(t *testing.T) {
	store := catalog.NewStore(catalog.DefaultProducts)

	got := resolveSuggestions(store, []string{"1", "missing", "8"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "8", got[1].ID)

	assert.Empty(t, resolveSuggestions(store, []string{"missing", "also-missing"}))
	assert.Empty(t, resolveSuggestions(store, nil))
}

func TestBuildTurnViews(t *testing.T) {
	s, _ := newTestServer(&stubResponder{})

	views := s.buildTurnViews([]chat.Turn{
		chat.UserTurn("hello"),
		chat.AssistantTurn("look at this", []string{"5", "bogus"}),
	})
	require.Len(t, views, 2)
	assert.True(t, views[0].IsUser())
	assert.False(t, views[1].IsUser())
	require.Len(t, views[1].Suggested, 1)
	assert.Equal(t, "Prism Glass Desk Lamp", views[1].Suggested[0].Name)
}

func TestBuildTurnViewsGreeting(t *testing.T) {
	s, _ := newTestServer(&stubResponder{})

	views := s.buildTurnViews(nil)
	require.Len(t, views, 1)
	assert.Equal(t, chat.RoleAssistant, views[0].Role)
	assert.Equal(t, greetingText, views[0].Text)
}

func TestBuildHomeViewQuickView(t *testing.T) {
	s, _ := newTestServer(&stubResponder{})

	view := s.buildHomeView(catalog.CategoryAll, "", nil, homeFlags{QuickViewID: "4"})
	require.NotNil(t, view.QuickView)
	assert.Equal(t, "Nordic Oak Coffee Table", view.QuickView.Name)

	view = s.buildHomeView(catalog.CategoryAll, "", nil, homeFlags{QuickViewID: "missing"})
	assert.Nil(t, view.QuickView)
}

func TestRenderStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", renderStars(4.8))
	assert.Equal(t, "★★★★★", renderStars(5))
	assert.Equal(t, "☆☆☆☆☆", renderStars(0.9))
}

func TestRenderMoney(t *testing.T) {
	assert.Equal(t, "$299.99", renderMoney(299.99))
	assert.Equal(t, "$55.00", renderMoney(55))
}
