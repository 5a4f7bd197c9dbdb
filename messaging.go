package chat

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MessagingState tracks the global and per-user private message opt-in
// and the per-user spy subscription. Store failures fall back to the
// documented defaults instead of failing the caller.
type MessagingState struct {
	store FlagStore
	log   zerolog.Logger
}

func NewMessagingState(store FlagStore, log zerolog.Logger) *MessagingState {
	return &MessagingState{
		store: store,
		log:   log.With().Str("component", "messaging").Logger(),
	}
}

// CanSend reports whether the user may send private messages:
// private messaging must be enabled globally and for the user.
func (m *MessagingState) CanSend(u User) bool {
	return m.GlobalEnabled() && m.UserEnabled(u.ID)
}

// GlobalEnabled returns the global flag, defaulting to enabled.
func (m *MessagingState) GlobalEnabled() bool {
	enabled, ok, err := m.store.GlobalPms()
	if err != nil {
		m.log.Warn().Err(err).Msg("global pm flag read failed, using default")
		return defaultGlobalPms
	}
	if !ok {
		return defaultGlobalPms
	}

	return enabled
}

// UserEnabled returns the per-user flag, defaulting to enabled.
func (m *MessagingState) UserEnabled(id uuid.UUID) bool {
	enabled, ok, err := m.store.UserPms(id)
	if err != nil {
		m.log.Warn().Err(err).Stringer("user", id).Msg("user pm flag read failed, using default")
		return defaultUserPms
	}
	if !ok {
		return defaultUserPms
	}

	return enabled
}

// IsSpying reports whether the user opted in to mirrored private
// messages. Defaults to false.
func (m *MessagingState) IsSpying(u User) bool {
	spying, ok, err := m.store.Spying(u.ID)
	if err != nil {
		m.log.Warn().Err(err).Str("player", u.Name).Msg("spy flag read failed, using default")
		return defaultSpying
	}
	if !ok {
		return defaultSpying
	}

	return spying
}

// SetGlobalEnabled writes the global flag. The write is unconditional;
// setting an already-set value is a no-op for observers.
func (m *MessagingState) SetGlobalEnabled(enabled bool) {
	if err := m.store.SetGlobalPms(enabled); err != nil {
		m.log.Warn().Err(err).Msg("global pm flag write failed")
	}
}

// SetUserEnabled writes the per-user flag.
func (m *MessagingState) SetUserEnabled(u User, enabled bool) {
	if err := m.store.SetUserPms(u.ID, enabled); err != nil {
		m.log.Warn().Err(err).Str("player", u.Name).Msg("user pm flag write failed")
	}
}

// SetSpying writes the spy flag. It is independent of send permission.
func (m *MessagingState) SetSpying(u User, spying bool) {
	if err := m.store.SetSpying(u.ID, spying); err != nil {
		m.log.Warn().Err(err).Str("player", u.Name).Msg("spy flag write failed")
	}
}
