package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewShoeComposition(t *testing.T) {
	shoe := NewShoe(testRNG(1), 0)
	require.Equal(t, ShoeSize, shoe.Remaining())

	counts := make(map[[2]int]int)
	for range ShoeSize {
		c, ok := shoe.Draw()
		require.True(t, ok)
		assert.False(t, c.Hidden)
		counts[[2]int{int(c.Suit), int(c.Rank)}]++
	}

	assert.Len(t, counts, CardsPerDeck)
	for key, n := range counts {
		assert.Equal(t, DecksPerShoe, n, "card %v", key)
	}
}

func TestShoeDrawUntilEmpty(t *testing.T) {
	shoe := NewShoe(testRNG(7), 3)

	ids := make(map[string]struct{}, ShoeSize)
	for i := range ShoeSize {
		before := shoe.Remaining()
		c, ok := shoe.Draw()
		require.True(t, ok, "draw %d", i)
		assert.Equal(t, before-1, shoe.Remaining())
		ids[c.ID] = struct{}{}
	}

	assert.Len(t, ids, ShoeSize, "every card must carry a distinct id")
	assert.Equal(t, 0, shoe.Remaining())

	_, ok := shoe.Draw()
	assert.False(t, ok)
	assert.Equal(t, 0, shoe.Remaining())
}

func TestShoeShuffleDependsOnSeed(t *testing.T) {
	a := NewShoe(testRNG(1), 0)
	b := NewShoe(testRNG(1), 0)
	c := NewShoe(testRNG(2), 0)

	var sameAB, sameAC = true, true
	for range 20 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		cc, _ := c.Draw()
		sameAB = sameAB && ca.Same(cb)
		sameAC = sameAC && ca.Same(cc)
	}
	assert.True(t, sameAB, "equal seeds must produce equal order")
	assert.False(t, sameAC, "different seeds should produce different order")
}

func TestNewShoeFromCards(t *testing.T) {
	shoe := NewShoeFromCards(MustParseCards("AsKh2c"))
	require.Equal(t, 3, shoe.Remaining())
	assert.True(t, shoe.NeedsReplacing())

	want := MustParseCards("AsKh2c")
	for i := range want {
		c, ok := shoe.Draw()
		require.True(t, ok)
		assert.True(t, c.Same(want[i]))
		assert.NotEmpty(t, c.ID)
	}
}

func TestShoeLowWaterMark(t *testing.T) {
	shoe := NewShoe(testRNG(3), 0)
	for shoe.Remaining() > LowWaterMark {
		shoe.Draw()
	}
	assert.False(t, shoe.NeedsReplacing(), "exactly %d remaining is not below the mark", LowWaterMark)
	shoe.Draw()
	assert.True(t, shoe.NeedsReplacing())
}
