package chat

import (
	"errors"

	"github.com/google/uuid"
)

// Defaults applied when a flag record is missing or a backend fails.
const (
	defaultGlobalPms = true
	defaultUserPms   = true
	defaultSpying    = false
)

var ErrUnknownFlagBackend = errors.New("unknown flag backend")

// FlagStore persists the private messaging flags: one global record
// and two independent booleans per user id. Loads report whether a
// record exists so the caller can apply the documented defaults.
// Implementations must serialize concurrent writes for the same user
// id; the core does not lock across processes.
type FlagStore interface {
	GlobalPms() (enabled, ok bool, err error)
	SetGlobalPms(enabled bool) error
	UserPms(id uuid.UUID) (enabled, ok bool, err error)
	SetUserPms(id uuid.UUID, enabled bool) error
	Spying(id uuid.UUID) (spying, ok bool, err error)
	SetSpying(id uuid.UUID, spying bool) error
}

// OpenFlagStore returns the flag store selected by the configuration.
func OpenFlagStore(conf Config) (FlagStore, error) {
	switch conf.FlagBackend {
	case "", "files":
		return flagsFiles{dir: conf.DataDir}, nil
	case "sqlite3":
		return flagsSQLite3{path: conf.DataDir + "/flags.sqlite"}, nil
	case "postgresql":
		return flagsPostgreSQL{conn: conf.PostgresConn}, nil
	default:
		return nil, ErrUnknownFlagBackend
	}
}
