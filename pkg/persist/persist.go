// Package persist stores table snapshots between rounds. The engine never
// touches a store directly; the orchestrating caller loads a snapshot at
// startup and saves one after each concluded round.
package persist

import "blackjacktable-server/pkg/blackjack"

// ParticipantData is the persisted form of a seat at the table
type ParticipantData struct {
	Name    string          `json:"name"`
	Balance int             `json:"balance"`
	Stats   blackjack.Stats `json:"stats"`
}

// Snapshot is the persisted state of the whole table
type Snapshot struct {
	Player ParticipantData   `json:"player"`
	Dealer ParticipantData   `json:"dealer"`
	Bots   []ParticipantData `json:"bots"`
}

// Store loads and saves table snapshots.
// Load returns (nil, nil) when no snapshot has been saved yet; callers fall
// back to a default table on a nil snapshot or an error.
type Store interface {
	Load() (*Snapshot, error)
	Save(snapshot *Snapshot) error
}
