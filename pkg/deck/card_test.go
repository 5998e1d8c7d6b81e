package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♣", CardFromString("2c").String())
	a.Equal("10♢", CardFromString("10d").String())
	a.Equal("J♡", CardFromString("11h").String())
	a.Equal("Q♠", CardFromString("12s").String())
	a.Equal("K♣", CardFromString("13c").String())
	a.Equal("A♠", CardFromString("14s").String())
	a.Equal("??", FaceDown().String())
}

func TestCard_IsFaceDown(t *testing.T) {
	assert.True(t, FaceDown().IsFaceDown())
	assert.False(t, CardFromString("2c").IsFaceDown())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("14s").Equal(&Card{Rank: Ace, Suit: Spades}))
	a.False(CardFromString("14s").Equal(&Card{Rank: Ace, Suit: Hearts}))
	a.False(CardFromString("14s").Equal(&Card{Rank: King, Suit: Spades}))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: Jack, Suit: Hearts}, *CardFromString("11h"))
	a.Equal(Card{Rank: Ace, Suit: Diamonds}, *CardFromString("14D"))
	a.Nil(CardFromString(""))

	a.Panics(func() { CardFromString("1x") })
	a.Panics(func() { CardFromString("15c") })
	a.Panics(func() { CardFromString("0c") })
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,11h,14s")
	a.Len(cards, 3)
	a.Equal(Card{Rank: 2, Suit: Clubs}, *cards[0])
	a.Equal(Card{Rank: Jack, Suit: Hearts}, *cards[1])
	a.Equal(Card{Rank: Ace, Suit: Spades}, *cards[2])

	a.Len(CardsFromString(""), 0)
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)
	a.Equal("2c,11h,14s", CardsToString(CardsFromString("2c,11h,14s")))
	a.Equal("", CardToString(nil))
}
