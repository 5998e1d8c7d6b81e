package table

import (
	"blackjacktable-server/pkg/blackjack"
	"blackjacktable-server/pkg/deck"
)

// RoundStateIdle is reported before the first round has started
const RoundStateIdle = "idle"

// SeatState is the rendering view of one seat
type SeatState struct {
	Name      string          `json:"name"`
	Role      blackjack.Role  `json:"role"`
	Balance   int             `json:"balance"`
	Bet       int             `json:"bet"`
	Cards     []*deck.Card    `json:"cards"`
	HandValue int             `json:"handValue"`
	Stats     blackjack.Stats `json:"stats"`
}

// State is everything the presentation layer needs to draw the table.
// The dealer's hole card is reported face down until the round concludes;
// its hand value covers the visible cards only.
type State struct {
	Round     string               `json:"round"`
	Player    *SeatState           `json:"player"`
	Dealer    *SeatState           `json:"dealer"`
	Bots      []*SeatState         `json:"bots"`
	Messages  []*blackjack.Message `json:"messages"`
	CardsLeft int                  `json:"cardsLeft"`

	// DefaultBet prefills the bet control in the presentation layer
	DefaultBet int `json:"defaultBet"`
}

// State returns the current rendering view of the table
func (t *Table) State() *State {
	state := &State{
		Round:      RoundStateIdle,
		Player:     t.seatState(t.player),
		Dealer:     t.seatState(t.dealer),
		CardsLeft:  t.deck.CardsLeft(),
		DefaultBet: t.defaultBet,
	}

	for _, bot := range t.bots {
		state.Bots = append(state.Bots, t.seatState(bot))
	}

	if t.round != nil {
		state.Round = string(t.round.State)
		state.Messages = t.round.Messages
	}

	return state
}

func (t *Table) seatState(p *blackjack.Participant) *SeatState {
	hand := p.Hand()
	if p.Role == blackjack.RoleDealer && t.round != nil {
		hand = t.round.DealerVisibleHand()
	}

	return &SeatState{
		Name:      p.Name,
		Role:      p.Role,
		Balance:   p.Balance,
		Bet:       p.Bet,
		Cards:     hand,
		HandValue: blackjack.Value(hand),
		Stats:     p.Stats,
	}
}
