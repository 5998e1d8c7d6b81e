package mux

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"blackjacktable-server/pkg/persist"
	"blackjacktable-server/pkg/table"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		state := m.tbl.State()
		m.mu.Unlock()

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postTableNewRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.runCommand(w, m.tbl.StartNewRound)
	}
}

type betPayload struct {
	Amount int `json:"amount"`
}

func (m *Mux) postTableBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload betPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		m.runCommand(w, func() error {
			return m.tbl.PlaceBet(payload.Amount)
		})
	}
}

// postTableDeal starts the round without a player bet. This is the escape
// hatch for a player who cannot cover a bet; the bots still play the round.
func (m *Mux) postTableDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.runCommand(w, m.tbl.Deal)
	}
}

func (m *Mux) postTableHit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.runCommand(w, m.tbl.Hit)
	}
}

func (m *Mux) postTableStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.runCommand(w, m.tbl.Stand)
	}
}

// runCommand executes one engine command under the table lock, saves a
// snapshot once the round concludes, and pushes the new state to connected
// websocket clients. Persistence happens here, between engine calls, never
// inside the engine.
func (m *Mux) runCommand(w http.ResponseWriter, command func() error) {
	m.mu.Lock()
	err := command()

	var state *table.State
	var snapshot *persist.Snapshot
	if err == nil {
		state = m.tbl.State()
		if m.tbl.RoundConcluded() {
			snapshot = m.tbl.Snapshot()
		}
	}
	m.mu.Unlock()

	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	if snapshot != nil {
		if err := m.store.Save(snapshot); err != nil {
			logrus.WithError(err).Error("could not save snapshot")
		}
	}

	m.broadcast(state)
	writeJSON(w, http.StatusOK, state)
}
