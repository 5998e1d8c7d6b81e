package blackjack

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"blackjacktable-server/internal/rng"
	"blackjacktable-server/pkg/deck"
)

// State is the phase of a round
type State string

// round states
const (
	StateBetting    State = "betting"
	StateDealing    State = "dealing"
	StatePlayerTurn State = "player-turn"
	StateDealerTurn State = "dealer-turn"
	StateSettlement State = "settlement"
	StateConcluded  State = "concluded"
)

// the dealer stands at 17 or better; bots keep drawing until 19
const (
	dealerStand = 17
	botStand    = 19
)

// bot bets are multiples of betStep between minBotBet and maxBotBet inclusive
const (
	minBotBet = 100
	maxBotBet = 1000
	betStep   = 100
)

// Round drives a single hand of blackjack from betting through settlement.
// All calls happen on a single control flow; the round performs no I/O of
// its own.
type Round struct {
	State    State
	Messages []*Message

	deck   *deck.Deck
	player *Participant
	dealer *Participant
	bots   []*Participant

	// participants whose bet was collected this round. Anyone else keeps
	// their cards for show but is excluded from settlement.
	eligible map[*Participant]bool

	random rng.Generator
	logger logrus.FieldLogger
}

// NewRound clears all hands and collects the bots' bets. The player's bet
// arrives separately through PlaceBet. The dealer never bets: its balance is
// zeroed and then acts as the house bank, accumulating every bet collected
// this round and funding the payouts.
func NewRound(logger logrus.FieldLogger, d *deck.Deck, player, dealer *Participant, bots []*Participant, random rng.Generator) *Round {
	r := &Round{
		State:    StateBetting,
		deck:     d,
		player:   player,
		dealer:   dealer,
		bots:     bots,
		eligible: make(map[*Participant]bool),
		random:   random,
		logger:   logger,
	}

	for _, p := range r.participants() {
		p.ClearHand()
	}

	dealer.Balance = 0

	for _, bot := range bots {
		bet := r.botBet()
		if err := bot.PlaceBet(bet); err != nil {
			logger.WithField("name", bot.Name).WithError(err).Warn("bot sits out")
			r.addMessage("%s can't cover a bet and sits out.", bot.Name)
			continue
		}

		dealer.Balance += bet
		r.eligible[bot] = true
	}

	return r
}

// botBet picks a uniformly random multiple of 100 between 100 and 1000
func (r *Round) botBet() int {
	steps := (maxBotBet-minBotBet)/betStep + 1
	return (r.random.Intn(steps) + minBotBet/betStep) * betStep
}

// participants returns every seat in the stable dealing order
func (r *Round) participants() []*Participant {
	participants := make([]*Participant, 0, 2+len(r.bots))
	participants = append(participants, r.player, r.dealer)
	return append(participants, r.bots...)
}

// PlaceBet collects the player's bet into the house bank.
// A rejected bet leaves the round in the betting state: the player may retry
// with a smaller amount, or the caller may Deal without them.
func (r *Round) PlaceBet(amount int) error {
	if r.State != StateBetting {
		return fmt.Errorf("cannot bet from state: %s", r.State)
	}

	if err := r.player.PlaceBet(amount); err != nil {
		return err
	}

	r.dealer.Balance += amount
	r.eligible[r.player] = true
	r.State = StateDealing
	return nil
}

// Deal gives two cards to every seat in the stable order: player, dealer,
// then bots. The dealer's first card is concealed by the presentation layer
// until the round concludes; it is fully valued here.
// Dealing without a player bet is allowed so a broke player doesn't block the
// bots' round.
func (r *Round) Deal() error {
	if r.State != StateBetting && r.State != StateDealing {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	r.deck.EnsureCapacity(2 * len(r.participants()))

	for _, p := range r.participants() {
		for i := 0; i < 2; i++ {
			card, err := r.deck.Draw()
			if err != nil {
				return err
			}

			p.AddCard(card)
		}
	}

	r.State = StatePlayerTurn
	return nil
}

// Hit draws one more card for the player. A bust ends the player's turn and
// plays out the rest of the round.
func (r *Round) Hit() error {
	if r.State != StatePlayerTurn {
		return fmt.Errorf("cannot hit from state: %s", r.State)
	}

	r.player.AddCard(r.draw())
	if IsBust(r.player.Hand()) {
		r.finish()
	}

	return nil
}

// Stand ends the player's turn and plays out the rest of the round. The
// player's hand is final from here on; only the dealer and the bots keep
// drawing.
func (r *Round) Stand() error {
	if r.State != StatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.State)
	}

	r.finish()
	return nil
}

// DealerVisibleHand returns the dealer's hand as the table should show it:
// the hole card is face down until the round has concluded.
func (r *Round) DealerVisibleHand() []*deck.Card {
	hand := r.dealer.Hand()
	if r.State != StateConcluded && len(hand) > 0 {
		hand[0] = deck.FaceDown()
	}

	return hand
}

// draw pulls the next card. The capacity checks before dealing should make an
// empty deck unreachable; if it happens anyway, a fresh deck is opened rather
// than crashing the table.
func (r *Round) draw() *deck.Card {
	card, err := r.deck.Draw()
	if err == deck.ErrEndOfDeck {
		r.logger.Error("deck unexpectedly empty, opening a fresh one")
		r.deck.EnsureCapacity(1)
		card, err = r.deck.Draw()
	}

	if err != nil {
		panic(fmt.Sprintf("could not draw: %v", err))
	}

	return card
}

func (r *Round) finish() {
	r.State = StateDealerTurn
	r.playDealer()
	r.playBots()

	r.State = StateSettlement
	r.settle()

	r.State = StateConcluded
}

func (r *Round) playDealer() {
	for Value(r.dealer.Hand()) < dealerStand {
		r.dealer.AddCard(r.draw())
	}
}

func (r *Round) playBots() {
	for _, bot := range r.bots {
		if !r.eligible[bot] {
			continue
		}

		for Value(bot.Hand()) < botStand {
			bot.AddCard(r.draw())
		}
	}
}

func (r *Round) settle() {
	dealerHand := r.dealer.Hand()
	dealerValue := Value(dealerHand)
	dealerBlackjack := IsBlackjack(dealerHand)
	dealerBust := dealerValue > blackjack

	for _, p := range r.participants() {
		if p.Role == RoleDealer || !r.eligible[p] {
			continue
		}

		r.settleParticipant(p, dealerValue, dealerBlackjack, dealerBust)
	}
}

// settleParticipant compares a hand against the dealer in strict priority
// order and applies the result. Every win pays 1.5x the bet, truncated, and
// is funded from the house bank. Pushes and losses leave the bank alone; the
// bet itself was already collected when it was placed.
func (r *Round) settleParticipant(p *Participant, dealerValue int, dealerBlackjack, dealerBust bool) {
	hand := p.Hand()
	value := Value(hand)
	bet := p.Bet
	winnings := bet * 3 / 2

	switch {
	case IsBlackjack(hand) && !dealerBlackjack:
		r.payout(p, winnings)
		r.addMessage("%s has Blackjack and wins! Bank: $%d, Bet: $%d", p.Name, p.Balance, bet)
	case IsBlackjack(hand) && dealerBlackjack:
		r.push(p)
		r.addMessage("%s and dealer have Blackjack! It's a push. Bank: $%d, Bet: $%d", p.Name, p.Balance, bet)
	case value > blackjack:
		r.lose(p)
		r.addMessage("%s busted! Dealer wins! Bank: $%d, Bet: $%d", p.Name, p.Balance, bet)
	case dealerBust:
		r.payout(p, winnings)
		r.addMessage("Dealer busted! %s wins! Bank: $%d, Bet: $%d", p.Name, p.Balance, bet)
	case value > dealerValue:
		r.payout(p, winnings)
		r.addMessage("%s wins! Bank: $%d, Bet: $%d", p.Name, p.Balance, bet)
	case value < dealerValue:
		r.lose(p)
		r.addMessage("Dealer wins! Bank: $%d, Bet: $%d", p.Balance, bet)
	default:
		r.push(p)
		r.addMessage("It's a push! Bank: $%d, Bet: $%d", p.Balance, bet)
	}
}

func (r *Round) payout(p *Participant, winnings int) {
	r.settleOnce(p, winnings)
	r.dealer.Balance -= winnings
	p.Stats.Wins++
}

func (r *Round) lose(p *Participant) {
	r.settleOnce(p, 0)
	p.Stats.Losses++
}

func (r *Round) push(p *Participant) {
	r.settleOnce(p, 0)
}

func (r *Round) settleOnce(p *Participant, delta int) {
	if err := p.Settle(delta); err != nil {
		// settle() visits each participant exactly once
		r.logger.WithField("name", p.Name).WithError(err).Error("double settlement")
	}
}

func (r *Round) addMessage(format string, a ...interface{}) {
	r.Messages = append(r.Messages, newMessage(format, a...))
}
