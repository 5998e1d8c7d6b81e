package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjacktable-server/pkg/blackjack"
)

func TestFileStore_RoundTrip(t *testing.T) {
	a := assert.New(t)

	store := NewFileStore(filepath.Join(t.TempDir(), "player_data.json"))

	snapshot := &Snapshot{
		Player: ParticipantData{Name: "Player", Balance: 850, Stats: blackjack.Stats{Wins: 2, Losses: 1}},
		Dealer: ParticipantData{Name: "Dealer", Balance: 300},
		Bots: []ParticipantData{
			{Name: "Alice Smith", Balance: 1200, Stats: blackjack.Stats{Wins: 1}},
			{Name: "Bob Jones", Balance: 0, Stats: blackjack.Stats{Losses: 4}},
		},
	}

	a.NoError(store.Save(snapshot))

	loaded, err := store.Load()
	a.NoError(err)
	a.Equal(snapshot, loaded)
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	a := assert.New(t)

	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	snapshot, err := store.Load()
	a.NoError(err)
	a.Nil(snapshot)
}

func TestFileStore_Load_Malformed(t *testing.T) {
	a := assert.New(t)

	filename := filepath.Join(t.TempDir(), "player_data.json")
	a.NoError(os.WriteFile(filename, []byte("{not json"), 0644))

	snapshot, err := NewFileStore(filename).Load()
	a.Error(err)
	a.Nil(snapshot)
}
