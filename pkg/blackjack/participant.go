package blackjack

import "blackjacktable-server/pkg/deck"

// Role determines how a participant is driven during a round
type Role string

// role constants
const (
	RoleHuman  Role = "human"
	RoleDealer Role = "dealer"
	RoleBot    Role = "bot"
)

// Stats tracks round outcomes across the life of a participant
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Participant is a single seat at the blackjack table
type Participant struct {
	Name    string
	Role    Role
	Balance int
	Bet     int
	Stats   Stats

	hand    []*deck.Card
	settled bool
}

// NewParticipant returns a new participant
func NewParticipant(name string, role Role, balance int) *Participant {
	return &Participant{
		Name:    name,
		Role:    role,
		Balance: balance,
	}
}

// PlaceBet debits the balance and adds the amount to the participant's bet.
// The participant is left untouched if the amount is not positive or exceeds
// the balance.
func (p *Participant) PlaceBet(amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	if amount > p.Balance {
		return ErrInsufficientFunds
	}

	p.Balance -= amount
	p.Bet += amount
	return nil
}

// AddCard adds a card to the participant's hand
func (p *Participant) AddCard(card *deck.Card) {
	p.hand = append(p.hand, card)
}

// Hand returns a shallow copy of the participant's hand
func (p *Participant) Hand() []*deck.Card {
	return append([]*deck.Card{}, p.hand...)
}

// ClearHand removes all cards from the participant's hand and re-arms
// settlement for the next round
func (p *Participant) ClearHand() {
	p.hand = nil
	p.settled = false
}

// Settle adjusts the balance by the signed round result and resets the bet.
// A participant may only be settled once per round; further calls return
// ErrAlreadySettled and change nothing.
func (p *Participant) Settle(delta int) error {
	if p.settled {
		return ErrAlreadySettled
	}

	p.Balance += delta
	p.Bet = 0
	p.settled = true
	return nil
}
