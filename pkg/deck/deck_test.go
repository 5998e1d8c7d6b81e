package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *deck.Cards[51])
	assert.Equal(t, int64(-1), deck.GetSeed())
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	unshuffled := CardsToString(d1.Cards)
	d1.Shuffle(1)
	a.NotEqual(unshuffled, CardsToString(d1.Cards))
	a.Equal(int64(1), d1.GetSeed())

	// same seed yields the same order
	d2 := New()
	d2.Shuffle(1)
	a.Equal(CardsToString(d1.Cards), CardsToString(d2.Cards))

	// a different seed yields a different order
	d3 := New()
	d3.Shuffle(2)
	a.NotEqual(CardsToString(d1.Cards), CardsToString(d3.Cards))

	// seed 0 picks a seed from the clock
	d4 := New()
	d4.Shuffle(0)
	a.Greater(d4.GetSeed(), int64(0))

	assert.PanicsWithValue(t, "seed cannot be < 0", func() {
		New().Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	deck := New()
	deck.Shuffle(1)

	a.True(deck.CanDraw(52))
	a.False(deck.CanDraw(53))

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		a.NoError(err)
		a.NotNil(card)
		a.False(seen[*card], "drew duplicate card %s", card)
		seen[*card] = true
	}

	// every rank and suit pair is covered exactly once
	a.Equal(52, len(seen))
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= 14; rank++ {
			a.True(seen[Card{Rank: rank, Suit: suit}])
		}
	}

	card, err := deck.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_EnsureCapacity(t *testing.T) {
	a := assert.New(t)

	deck := New()
	deck.Shuffle(1)
	for i := 0; i < 48; i++ {
		_, err := deck.Draw()
		a.NoError(err)
	}
	a.Equal(4, deck.CardsLeft())

	// enough cards left, deck is untouched
	remaining := CardsToString(deck.Cards)
	deck.EnsureCapacity(4)
	a.Equal(remaining, CardsToString(deck.Cards))

	// too few cards left, a fresh shuffled deck is opened
	deck.EnsureCapacity(10)
	a.Equal(52, deck.CardsLeft())

	// an unshuffled deck is shuffled on refill
	fresh := New()
	_, _ = fresh.Draw()
	fresh.EnsureCapacity(52)
	a.Equal(52, fresh.CardsLeft())
	a.NotEqual(CardsToString(New().Cards), CardsToString(fresh.Cards))
}
