// Package table orchestrates the long-lived pieces of the simulation: one
// deck, one player, the dealer, and the bots, played across repeated rounds.
// The table owns no I/O; callers load a snapshot before building it and save
// one after each concluded round.
package table

import (
	"github.com/sirupsen/logrus"

	"blackjacktable-server/internal/rng"
	"blackjacktable-server/internal/util"
	"blackjacktable-server/pkg/blackjack"
	"blackjacktable-server/pkg/deck"
	"blackjacktable-server/pkg/persist"
)

// Options configure a new table
type Options struct {
	Bots           int
	DefaultBalance int
	DefaultBet     int

	// Seed shuffles the deck deterministically when > 0. Tests only.
	Seed int64

	// Random drives the bots' betting. Defaults to a crypto-backed source.
	Random rng.Generator
}

// DefaultOptions returns the standard table setup
func DefaultOptions() Options {
	return Options{
		Bots:           3,
		DefaultBalance: 1000,
		DefaultBet:     100,
	}
}

// Table is a single blackjack table
type Table struct {
	logger     logrus.FieldLogger
	deck       *deck.Deck
	player     *blackjack.Participant
	dealer     *blackjack.Participant
	bots       []*blackjack.Participant
	round      *blackjack.Round
	random     rng.Generator
	defaultBet int
}

// New builds a table from a persisted snapshot. A nil snapshot seats a
// default table: player and bots at the default balance, bots with random
// names.
func New(logger logrus.FieldLogger, snapshot *persist.Snapshot, opts Options) *Table {
	if opts.Bots <= 0 {
		opts.Bots = DefaultOptions().Bots
	}

	if opts.DefaultBalance <= 0 {
		opts.DefaultBalance = DefaultOptions().DefaultBalance
	}

	if opts.DefaultBet <= 0 {
		opts.DefaultBet = DefaultOptions().DefaultBet
	}

	random := opts.Random
	if random == nil {
		random = rng.Crypto{}
	}

	d := deck.New()
	d.Shuffle(opts.Seed)

	t := &Table{
		logger:     logger,
		deck:       d,
		random:     random,
		defaultBet: opts.DefaultBet,
	}

	if snapshot == nil {
		t.player = blackjack.NewParticipant("Player", blackjack.RoleHuman, opts.DefaultBalance)
		t.dealer = blackjack.NewParticipant("Dealer", blackjack.RoleDealer, 0)
		for i := 0; i < opts.Bots; i++ {
			t.bots = append(t.bots, blackjack.NewParticipant(util.GetRandomName(), blackjack.RoleBot, opts.DefaultBalance))
		}

		return t
	}

	t.player = fromData(snapshot.Player, blackjack.RoleHuman)
	t.dealer = fromData(snapshot.Dealer, blackjack.RoleDealer)
	for _, bot := range snapshot.Bots {
		t.bots = append(t.bots, fromData(bot, blackjack.RoleBot))
	}

	return t
}

func fromData(data persist.ParticipantData, role blackjack.Role) *blackjack.Participant {
	p := blackjack.NewParticipant(data.Name, role, data.Balance)
	p.Stats = data.Stats
	return p
}

// StartNewRound begins the next round: hands are cleared and the bots bet.
// The player's bet arrives through PlaceBet.
func (t *Table) StartNewRound() error {
	if t.round != nil && t.round.State != blackjack.StateConcluded {
		return ErrRoundInProgress
	}

	t.round = blackjack.NewRound(t.logger, t.deck, t.player, t.dealer, t.bots, t.random)
	return nil
}

// PlaceBet collects the player's bet and deals the round
func (t *Table) PlaceBet(amount int) error {
	if t.round == nil {
		return ErrNoRound
	}

	if err := t.round.PlaceBet(amount); err != nil {
		return err
	}

	return t.round.Deal()
}

// Deal starts the round without a player bet. A player who cannot cover a
// bet sits the round out while the bots still play, so an empty balance
// never stalls the table.
func (t *Table) Deal() error {
	if t.round == nil {
		return ErrNoRound
	}

	return t.round.Deal()
}

// Hit draws another card for the player
func (t *Table) Hit() error {
	if t.round == nil {
		return ErrNoRound
	}

	return t.round.Hit()
}

// Stand ends the player's turn
func (t *Table) Stand() error {
	if t.round == nil {
		return ErrNoRound
	}

	return t.round.Stand()
}

// RoundConcluded returns true once the current round has been settled
func (t *Table) RoundConcluded() bool {
	return t.round != nil && t.round.State == blackjack.StateConcluded
}

// Snapshot returns the persistable state of the table
func (t *Table) Snapshot() *persist.Snapshot {
	snapshot := &persist.Snapshot{
		Player: toData(t.player),
		Dealer: toData(t.dealer),
	}

	for _, bot := range t.bots {
		snapshot.Bots = append(snapshot.Bots, toData(bot))
	}

	return snapshot
}

func toData(p *blackjack.Participant) persist.ParticipantData {
	return persist.ParticipantData{
		Name:    p.Name,
		Balance: p.Balance,
		Stats:   p.Stats,
	}
}
