package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjacktable-server/pkg/deck"
)

func TestValue(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, Value(nil))
	a.Equal(0, Value([]*deck.Card{}))

	a.Equal(21, Value(deck.CardsFromString("14c,13h")))   // A K
	a.Equal(17, Value(deck.CardsFromString("10c,7h")))    // 10 7
	a.Equal(18, Value(deck.CardsFromString("9c,9h")))     // 9 9
	a.Equal(20, Value(deck.CardsFromString("11c,12h")))   // J Q
	a.Equal(22, Value(deck.CardsFromString("13c,12h,2c"))) // K Q 2 busts

	// soft aces demote from 11 to 1 until the hand no longer busts
	a.Equal(21, Value(deck.CardsFromString("14c,14h,9c")))  // A A 9
	a.Equal(12, Value(deck.CardsFromString("14c,14h")))     // A A
	a.Equal(13, Value(deck.CardsFromString("14c,14h,14s"))) // A A A
	a.Equal(16, Value(deck.CardsFromString("14c,5h,13s")))  // A 5 K

	// every ace demoted and still the minimum total
	a.Equal(11, Value(deck.CardsFromString("14c,14h,14s,8c"))) // A A A 8
}

func TestValue_FaceDownIsSkipped(t *testing.T) {
	hand := append([]*deck.Card{deck.FaceDown()}, deck.CardsFromString("14c,13h")...)
	assert.Equal(t, 21, Value(hand))
	assert.Equal(t, 0, Value([]*deck.Card{deck.FaceDown()}))
}

func TestIsBlackjack(t *testing.T) {
	a := assert.New(t)

	a.True(IsBlackjack(deck.CardsFromString("14c,12h"))) // A Q
	a.True(IsBlackjack(deck.CardsFromString("10c,14h"))) // 10 A

	// twenty-one on three cards is not a natural
	a.False(IsBlackjack(deck.CardsFromString("14c,12h,2c")))
	a.False(IsBlackjack(deck.CardsFromString("7c,7h,7s")))

	a.False(IsBlackjack(deck.CardsFromString("10c,9h")))
	a.False(IsBlackjack(deck.CardsFromString("14c")))
}

func TestIsBust(t *testing.T) {
	a := assert.New(t)

	a.False(IsBust(deck.CardsFromString("13c,12h")))    // 20
	a.False(IsBust(deck.CardsFromString("14c,14h,9c"))) // soft 21
	a.True(IsBust(deck.CardsFromString("13c,12h,2c")))  // 22
}
