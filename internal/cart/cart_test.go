package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-commerce/storefront/internal/catalog"
)

var (
	headphones = catalog.Product{ID: "1", Name: "AeroPulse Wireless Headphones", Price: 299.99}
	scarf      = catalog.Product{ID: "8", Name: "Elysium Silk Scarf", Price: 55.00}
)

func TestAddMergesDuplicates(t *testing.T) {
	c := New()

	c.Add(headphones)
	c.Add(headphones)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, headphones.ID, lines[0].Product.ID)
}

func TestAddPreservesFirstAddOrder(t *testing.T) {
	c := New()

	c.Add(headphones)
	c.Add(scarf)
	c.Add(headphones)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, headphones.ID, lines[0].Product.ID)
	assert.Equal(t, scarf.ID, lines[1].Product.ID)
}

func TestSubtotal(t *testing.T) {
	c := New()
	assert.Zero(t, c.Subtotal())

	c.Add(headphones)
	c.Add(scarf)
	assert.InDelta(t, 354.99, c.Subtotal(), 1e-9)

	c.Add(scarf)
	assert.InDelta(t, 409.99, c.Subtotal(), 1e-9)

	c.Remove(headphones.ID)
	assert.InDelta(t, 110.00, c.Subtotal(), 1e-9)
}

func TestCountSumsQuantities(t *testing.T) {
	c := New()

	c.Add(headphones)
	c.Add(headphones)
	c.Add(scarf)

	assert.Equal(t, 3, c.Count())
	assert.Len(t, c.Lines(), 2)
}

func TestAdjustClampsAtOne(t *testing.T) {
	c := New()
	c.Add(headphones)

	c.Adjust(headphones.ID, -1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.Adjust(headphones.ID, -5)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.Adjust(headphones.ID, 3)
	assert.Equal(t, 4, c.Lines()[0].Quantity)

	c.Adjust(headphones.ID, -2)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestAdjustAbsentIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(scarf)

	c.Adjust("missing", 5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(scarf)

	c.Remove("missing")
	assert.Len(t, c.Lines(), 1)

	c.Remove(scarf.ID)
	assert.True(t, c.Empty())

	// removing twice is harmless
	c.Remove(scarf.ID)
	assert.True(t, c.Empty())
}

func TestRemoveKeepsIndexConsistent(t *testing.T) {
	c := New()
	third := catalog.Product{ID: "3", Price: 199.50}

	c.Add(headphones)
	c.Add(scarf)
	c.Add(third)

	c.Remove(scarf.ID)
	c.Add(third) // must merge into the shifted line, not append

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, third.ID, lines[1].Product.ID)
	assert.Equal(t, 2, lines[1].Quantity)
}
