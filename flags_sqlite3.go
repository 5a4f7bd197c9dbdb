package chat

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// flagsSQLite3 stores the messaging flags in a single SQLite database.
type flagsSQLite3 struct {
	path string
	db   *sql.DB
}

// GlobalPms returns the global private messaging flag if set.
func (s flagsSQLite3) GlobalPms() (bool, bool, error) {
	if err := s.init(); err != nil {
		return false, false, err
	}
	defer s.close()

	var enabled bool
	err := s.db.QueryRow(`SELECT enabled FROM global_pms WHERE id = 0;`).Scan(&enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	return enabled, true, nil
}

// SetGlobalPms writes the global private messaging flag.
func (s flagsSQLite3) SetGlobalPms(enabled bool) error {
	if err := s.init(); err != nil {
		return err
	}
	defer s.close()

	_, err := s.db.Exec(`REPLACE INTO global_pms (id, enabled) VALUES (0, ?);`, enabled)
	return err
}

// UserPms returns the per-user private messaging flag if set.
func (s flagsSQLite3) UserPms(id uuid.UUID) (bool, bool, error) {
	return s.userFlag(id, "pms_enabled")
}

// SetUserPms writes the per-user private messaging flag.
func (s flagsSQLite3) SetUserPms(id uuid.UUID, enabled bool) error {
	return s.setUserFlag(id, "pms_enabled", enabled)
}

// Spying returns the per-user spy flag if set.
func (s flagsSQLite3) Spying(id uuid.UUID) (bool, bool, error) {
	return s.userFlag(id, "is_spying")
}

// SetSpying writes the per-user spy flag.
func (s flagsSQLite3) SetSpying(id uuid.UUID, spying bool) error {
	return s.setUserFlag(id, "is_spying", spying)
}

func (s flagsSQLite3) userFlag(id uuid.UUID, column string) (bool, bool, error) {
	if err := s.init(); err != nil {
		return false, false, err
	}
	defer s.close()

	var flag sql.NullBool
	err := s.db.QueryRow(`SELECT `+column+` FROM user_flags WHERE id = ?;`, id.String()).Scan(&flag)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	return flag.Bool, flag.Valid, nil
}

func (s flagsSQLite3) setUserFlag(id uuid.UUID, column string, value bool) error {
	if err := s.init(); err != nil {
		return err
	}
	defer s.close()

	_, err := s.db.Exec(`INSERT INTO user_flags (id, `+column+`) VALUES (?, ?)
ON CONFLICT (id) DO UPDATE SET `+column+` = excluded.`+column+`;`, id.String(), value)
	return err
}

func (s *flagsSQLite3) init() error {
	var err error
	s.db, err = sql.Open("sqlite3", s.path)
	if err != nil {
		return err
	}

	init := `CREATE TABLE IF NOT EXISTS global_pms (
	id INTEGER PRIMARY KEY CHECK (id = 0),
	enabled INTEGER NOT NULL);
CREATE TABLE IF NOT EXISTS user_flags (
	id VARCHAR(36) PRIMARY KEY NOT NULL,
	pms_enabled INTEGER,
	is_spying INTEGER);`

	if _, err := s.db.Exec(init); err != nil {
		return err
	}

	return nil
}

func (s flagsSQLite3) close() error {
	return s.db.Close()
}
