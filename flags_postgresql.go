package chat

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// flagsPostgreSQL stores the messaging flags in a PostgreSQL database.
// The connection string comes from the configuration.
type flagsPostgreSQL struct {
	conn string
	db   *sql.DB
}

// GlobalPms returns the global private messaging flag if set.
func (p flagsPostgreSQL) GlobalPms() (bool, bool, error) {
	if err := p.init(); err != nil {
		return false, false, err
	}
	defer p.close()

	var enabled bool
	err := p.db.QueryRow(`SELECT enabled FROM global_pms WHERE id = 0;`).Scan(&enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	return enabled, true, nil
}

// SetGlobalPms writes the global private messaging flag.
func (p flagsPostgreSQL) SetGlobalPms(enabled bool) error {
	if err := p.init(); err != nil {
		return err
	}
	defer p.close()

	_, err := p.db.Exec(`INSERT INTO global_pms (id, enabled) VALUES (0, $1)
ON CONFLICT (id) DO UPDATE SET enabled = excluded.enabled;`, enabled)
	return err
}

// UserPms returns the per-user private messaging flag if set.
func (p flagsPostgreSQL) UserPms(id uuid.UUID) (bool, bool, error) {
	return p.userFlag(id, "pms_enabled")
}

// SetUserPms writes the per-user private messaging flag.
func (p flagsPostgreSQL) SetUserPms(id uuid.UUID, enabled bool) error {
	return p.setUserFlag(id, "pms_enabled", enabled)
}

// Spying returns the per-user spy flag if set.
func (p flagsPostgreSQL) Spying(id uuid.UUID) (bool, bool, error) {
	return p.userFlag(id, "is_spying")
}

// SetSpying writes the per-user spy flag.
func (p flagsPostgreSQL) SetSpying(id uuid.UUID, spying bool) error {
	return p.setUserFlag(id, "is_spying", spying)
}

func (p flagsPostgreSQL) userFlag(id uuid.UUID, column string) (bool, bool, error) {
	if err := p.init(); err != nil {
		return false, false, err
	}
	defer p.close()

	var flag sql.NullBool
	err := p.db.QueryRow(`SELECT `+column+` FROM user_flags WHERE id = $1;`, id.String()).Scan(&flag)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	return flag.Bool, flag.Valid, nil
}

func (p flagsPostgreSQL) setUserFlag(id uuid.UUID, column string, value bool) error {
	if err := p.init(); err != nil {
		return err
	}
	defer p.close()

	_, err := p.db.Exec(`INSERT INTO user_flags (id, `+column+`) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET `+column+` = excluded.`+column+`;`, id.String(), value)
	return err
}

func (p *flagsPostgreSQL) init() error {
	var err error
	p.db, err = sql.Open("postgres", p.conn)
	if err != nil {
		return err
	}

	init := `CREATE TABLE IF NOT EXISTS global_pms (
	id INTEGER PRIMARY KEY CHECK (id = 0),
	enabled BOOLEAN NOT NULL);
CREATE TABLE IF NOT EXISTS user_flags (
	id VARCHAR(36) PRIMARY KEY NOT NULL,
	pms_enabled BOOLEAN,
	is_spying BOOLEAN);`

	if _, err := p.db.Exec(init); err != nil {
		return err
	}

	return nil
}

func (p flagsPostgreSQL) close() error {
	return p.db.Close()
}
