package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore(DefaultProducts)
}

func TestFilterReturnsEverythingByDefault(t *testing.T) {
	s := testStore()

	got := s.Filter(CategoryAll, "")
	require.Len(t, got, len(DefaultProducts))

	// insertion order is preserved
	for i, p := range got {
		assert.Equal(t, DefaultProducts[i].ID, p.ID)
	}
}

func TestFilterByCategory(t *testing.T) {
	s := testStore()

	for _, cat := range Categories() {
		got := s.Filter(cat, "")
		require.NotEmpty(t, got, "category %s should have products", cat)
		for _, p := range got {
			assert.Equal(t, cat, p.Category)
		}
	}
}

func TestFilterByQuery(t *testing.T) {
	s := testStore()

	tests := []struct {
		name     string
		category Category
		query    string
		wantIDs  []string
	}{
		{
			name:     "case-insensitive name match",
			category: CategoryAll,
			query:    "HEADPHONES",
			wantIDs:  []string{"1"},
		},
		{
			name:     "description match",
			category: CategoryAll,
			query:    "cashmere",
			wantIDs:  []string{"2"},
		},
		{
			name:     "query combined with category",
			category: CategoryHome,
			query:    "oak",
			wantIDs:  []string{"4"},
		},
		{
			name:     "category excludes matching query",
			category: CategoryFashion,
			query:    "headphones",
			wantIDs:  nil,
		},
		{
			name:     "no match",
			category: CategoryAll,
			query:    "submarine",
			wantIDs:  nil,
		},
		{
			name:     "surrounding whitespace ignored",
			category: CategoryAll,
			query:    "  silk  ",
			wantIDs:  []string{"8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.category, tt.query)
			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterIsPure(t *testing.T) {
	s := testStore()

	first := s.Filter(CategoryElectronics, "watch")
	second := s.Filter(CategoryElectronics, "watch")
	assert.Equal(t, first, second)
}

func TestGet(t *testing.T) {
	s := testStore()

	p, ok := s.Get("3")
	require.True(t, ok)
	assert.Equal(t, "Zenith Smart Watch Pro", p.Name)

	_, ok = s.Get("does-not-exist")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryFashion, ParseCategory("Fashion"))
	assert.Equal(t, CategoryAll, ParseCategory("All"))
	assert.Equal(t, CategoryAll, ParseCategory(""))
	assert.Equal(t, CategoryAll, ParseCategory("garbage"))
}

func TestLowStock(t *testing.T) {
	assert.True(t, Product{Stock: 5}.LowStock())
	assert.False(t, Product{Stock: 10}.LowStock())
}
