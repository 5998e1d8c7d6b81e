package blackjack

import "blackjacktable-server/pkg/deck"

// blackjack is a two-card twenty-one
const blackjack = 21

// Value returns the best blackjack value of the hand.
// Numeric ranks count face value, jack/queen/king count ten, and an ace
// counts eleven until the total would bust, at which point aces are demoted
// to one, one at a time. A face-down sentinel contributes nothing.
func Value(hand []*deck.Card) int {
	value := 0
	aces := 0

	for _, card := range hand {
		if card.IsFaceDown() {
			continue
		}

		switch card.Rank {
		case deck.Jack, deck.Queen, deck.King:
			value += 10
		case deck.Ace:
			aces++
			value += 11
		default:
			value += card.Rank
		}
	}

	for value > blackjack && aces > 0 {
		value -= 10
		aces--
	}

	return value
}

// IsBlackjack returns true if the hand is a natural: exactly two cards worth twenty-one
func IsBlackjack(hand []*deck.Card) bool {
	return len(hand) == 2 && Value(hand) == blackjack
}

// IsBust returns true if the hand value exceeds twenty-one
func IsBust(hand []*deck.Card) bool {
	return Value(hand) > blackjack
}
