package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryAppendOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Append(ctx, "c1", UserTurn("hi")))
	require.NoError(t, repo.Append(ctx, "c1", AssistantTurn("hello", nil)))
	require.NoError(t, repo.Append(ctx, "c1", UserTurn("show me lamps")))
	require.NoError(t, repo.Append(ctx, "c1", AssistantTurn("sure", []string{"5"})))

	turns, err := repo.History(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, turns, 4)

	// strict user/assistant alternation in append order
	wantRoles := []Role{RoleUser, RoleAssistant, RoleUser, RoleAssistant}
	for i, turn := range turns {
		assert.Equal(t, wantRoles[i], turn.Role)
	}
	assert.Equal(t, []string{"5"}, turns[3].SuggestedProductIDs)

	n, err := repo.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMemoryRepositoryTimestampsAreMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, "c1", UserTurn("msg")))
	}

	turns, err := repo.History(ctx, "c1")
	require.NoError(t, err)
	for i := 1; i < len(turns); i++ {
		assert.False(t, turns[i].Timestamp.Before(turns[i-1].Timestamp))
	}
}

func TestMemoryRepositoryIsolatesConversations(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Append(ctx, "a", UserTurn("one")))
	require.NoError(t, repo.Append(ctx, "b", UserTurn("two")))

	turns, err := repo.History(ctx, "a")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "one", turns[0].Text)
}

func TestMemoryRepositoryHistoryReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Append(ctx, "c1", UserTurn("original")))

	turns, err := repo.History(ctx, "c1")
	require.NoError(t, err)
	turns[0].Text = "mutated"

	again, err := repo.History(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Text)
}

func TestMemoryRepositoryClear(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Append(ctx, "c1", UserTurn("hi")))
	require.NoError(t, repo.Clear(ctx, "c1"))

	n, err := repo.Count(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTurnConstructors(t *testing.T) {
	before := time.Now()
	u := UserTurn("hello")
	a := AssistantTurn("hi there", []string{"1", "2"})

	assert.Equal(t, RoleUser, u.Role)
	assert.Empty(t, u.SuggestedProductIDs)
	assert.False(t, u.Timestamp.Before(before))

	assert.Equal(t, RoleAssistant, a.Role)
	assert.Equal(t, []string{"1", "2"}, a.SuggestedProductIDs)
}

func TestRedisRepositoryKeyFormat(t *testing.T) {
	r := NewRedisRepository(nil, 0)
	assert.Equal(t, "conversation:abc:turns", r.key("abc"))
}
