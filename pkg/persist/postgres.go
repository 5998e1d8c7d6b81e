package persist

import "database/sql"

// PostgresStore persists snapshots in the seats table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a Postgres-backed store
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load reads the saved table, one row per seat. An empty table means the
// table hasn't been saved yet.
func (s *PostgresStore) Load() (*Snapshot, error) {
	const query = `
SELECT role, name, balance, wins, losses
FROM seats
ORDER BY role, seat`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshot Snapshot
	found := false
	for rows.Next() {
		var role string
		var data ParticipantData
		if err := rows.Scan(&role, &data.Name, &data.Balance, &data.Stats.Wins, &data.Stats.Losses); err != nil {
			return nil, err
		}

		found = true
		switch role {
		case "player":
			snapshot.Player = data
		case "dealer":
			snapshot.Dealer = data
		case "bot":
			snapshot.Bots = append(snapshot.Bots, data)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &snapshot, nil
}

// Save replaces the saved table with the snapshot
func (s *PostgresStore) Save(snapshot *Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM seats"); err != nil {
		_ = tx.Rollback()
		return err
	}

	const insert = `
INSERT INTO seats (role, seat, name, balance, wins, losses)
VALUES ($1, $2, $3, $4, $5, $6)`

	save := func(role string, seat int, data ParticipantData) error {
		_, err := tx.Exec(insert, role, seat, data.Name, data.Balance, data.Stats.Wins, data.Stats.Losses)
		return err
	}

	if err := save("player", 0, snapshot.Player); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := save("dealer", 0, snapshot.Dealer); err != nil {
		_ = tx.Rollback()
		return err
	}

	for i, bot := range snapshot.Bots {
		if err := save("bot", i, bot); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
