package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urbx/storefront/internal/catalog"
)

var (
	tee = catalog.Product{
		ID:       1,
		Name:     "Urban Black Tee",
		Price:    89,
		Image:    "/assets/tshirt-black.jpg",
		Category: "T-Shirts",
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Black", "White"},
	}
	socks = catalog.Product{
		ID:       5,
		Name:     "Urban Socks",
		Price:    29,
		Image:    "/assets/socks-black.jpg",
		Category: "Socks",
	}
	fragrance = catalog.Product{
		ID:       6,
		Name:     "URBX Signature",
		Price:    179,
		Image:    "/assets/fragrance-black.jpg",
		Category: "Fragrances",
		Sizes:    []string{"50ml", "100ml"},
	}
)

func TestAddMergesSameVariant(t *testing.T) {
	c := New()

	_, err := c.Add(tee, catalog.Variant{Size: "M", Color: "Black"})
	require.NoError(t, err)
	line, err := c.Add(tee, catalog.Variant{Size: "M", Color: "Black"})
	require.NoError(t, err)

	require.Len(t, c.Lines(), 1)
	require.Equal(t, 2, line.Quantity)
}

func TestAddKeepsDistinctVariantsApart(t *testing.T) {
	c := New()

	_, err := c.Add(tee, catalog.Variant{Size: "M", Color: "Black"})
	require.NoError(t, err)
	_, err = c.Add(tee, catalog.Variant{Size: "L", Color: "Black"})
	require.NoError(t, err)

	require.Len(t, c.Lines(), 2)
	require.Equal(t, 2, c.Count())
}

func TestAddRejectsMissingSelection(t *testing.T) {
	c := New()

	_, err := c.Add(tee, catalog.Variant{Color: "Black"})
	require.ErrorIs(t, err, catalog.ErrSizeRequired)
	require.Empty(t, c.Lines())
}

func TestPriceFrozenAtAddTime(t *testing.T) {
	c := New()

	line, err := c.Add(fragrance, catalog.Variant{Size: "50ml"})
	require.NoError(t, err)
	require.Equal(t, float64(116), line.Price)

	// Merging keeps the originally resolved price.
	line, err = c.Add(fragrance, catalog.Variant{Size: "50ml"})
	require.NoError(t, err)
	require.Equal(t, float64(116), line.Price)
	require.Equal(t, float64(232), c.Subtotal())
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	c := New()

	line, err := c.Add(socks, catalog.Variant{})
	require.NoError(t, err)
	require.True(t, c.SetQuantity(line.Key(), 0))
	require.Empty(t, c.Lines())
	require.Equal(t, float64(0), c.Subtotal())
}

func TestSetQuantityClampsNegatives(t *testing.T) {
	c := New()

	line, err := c.Add(socks, catalog.Variant{})
	require.NoError(t, err)
	require.True(t, c.SetQuantity(line.Key(), -3))
	require.Empty(t, c.Lines())
}

func TestSetQuantityUnknownKey(t *testing.T) {
	c := New()

	require.False(t, c.SetQuantity(Key{ProductID: 42}, 2))
	require.False(t, c.Remove(Key{ProductID: 42}))
}

func TestSubtotalMatchesLinesAcrossMutations(t *testing.T) {
	c := New()

	teeLine, err := c.Add(tee, catalog.Variant{Size: "M", Color: "Black"})
	require.NoError(t, err)
	_, err = c.Add(socks, catalog.Variant{})
	require.NoError(t, err)
	bottle, err := c.Add(fragrance, catalog.Variant{Size: "100ml"})
	require.NoError(t, err)

	require.True(t, c.SetQuantity(teeLine.Key(), 3))
	require.True(t, c.Remove(bottle.Key()))

	var expected float64
	for _, l := range c.Lines() {
		expected += l.Price * float64(l.Quantity)
	}
	require.Equal(t, expected, c.Subtotal())
	require.Equal(t, float64(3*89+29), c.Subtotal())
	require.Equal(t, 4, c.Count())
}

func TestClear(t *testing.T) {
	c := New()

	_, err := c.Add(socks, catalog.Variant{})
	require.NoError(t, err)
	c.Clear()
	require.Empty(t, c.Lines())
	require.Equal(t, 0, c.Count())
}
