package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"

	"blackjacktable-server/pkg/persist"
	"blackjacktable-server/pkg/table"
)

// Mux handles HTTP requests for the blackjack table
type Mux struct {
	*gmux.Router
	version string
	tbl     *table.Table
	store   persist.Store

	// the engine is single-threaded; mu serializes every table command
	mu sync.Mutex

	clientsMu sync.Mutex
	clients   map[*wsClient]bool
}

// NewMux returns a new HTTP mux
func NewMux(version string, tbl *table.Table, store persist.Store) *Mux {
	m := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		tbl:     tbl,
		store:   store,
		clients: make(map[*wsClient]bool),
	}

	r := m.Router
	r.Methods(http.MethodGet).Path("/health").Handler(m.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(m.getTable())
	r.Methods(http.MethodGet).Path("/table/ws").Handler(m.getTableWS())
	r.Methods(http.MethodPost).Path("/table/new-round").Handler(m.postTableNewRound())
	r.Methods(http.MethodPost).Path("/table/bet").Handler(m.postTableBet())
	r.Methods(http.MethodPost).Path("/table/deal").Handler(m.postTableDeal())
	r.Methods(http.MethodPost).Path("/table/hit").Handler(m.postTableHit())
	r.Methods(http.MethodPost).Path("/table/stand").Handler(m.postTableStand())

	return m
}
