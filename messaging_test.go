package chat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestCanSend(t *testing.T) {
	u := User{ID: uuid.New(), Name: "Alice"}

	tests := []struct {
		name   string
		global *bool
		user   *bool
		want   bool
	}{
		{"all unset defaults to enabled", nil, nil, true},
		{"global disabled blocks everyone", boolPtr(false), nil, false},
		{"global disabled beats user enabled", boolPtr(false), boolPtr(true), false},
		{"user disabled", boolPtr(true), boolPtr(false), false},
		{"both enabled", boolPtr(true), boolPtr(true), true},
		{"global enabled user unset", boolPtr(true), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemFlagStore()
			if tt.global != nil {
				store.SetGlobalPms(*tt.global)
			}
			if tt.user != nil {
				store.SetUserPms(u.ID, *tt.user)
			}

			m := NewMessagingState(store, zerolog.Nop())
			if got := m.CanSend(u); got != tt.want {
				t.Errorf("CanSend = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessagingStateStoreFailure(t *testing.T) {
	m := NewMessagingState(failingFlagStore{}, zerolog.Nop())
	u := User{ID: uuid.New(), Name: "Alice"}

	if !m.GlobalEnabled() {
		t.Error("GlobalEnabled should default to true on store failure")
	}
	if !m.UserEnabled(u.ID) {
		t.Error("UserEnabled should default to true on store failure")
	}
	if m.IsSpying(u) {
		t.Error("IsSpying should default to false on store failure")
	}
	if !m.CanSend(u) {
		t.Error("CanSend should default to true on store failure")
	}

	// Writes fail silently; the caller never sees the error.
	m.SetGlobalEnabled(false)
	m.SetUserEnabled(u, false)
	m.SetSpying(u, true)
}

func TestSpyingIndependentOfPms(t *testing.T) {
	store := newMemFlagStore()
	m := NewMessagingState(store, zerolog.Nop())
	u := User{ID: uuid.New(), Name: "Alice"}

	m.SetSpying(u, true)
	m.SetGlobalEnabled(false)

	if !m.IsSpying(u) {
		t.Error("spy flag should survive a global pm toggle")
	}
	if m.CanSend(u) {
		t.Error("CanSend should be false with global pms disabled")
	}
}

func TestSetFlagsLastWriteWins(t *testing.T) {
	store := newMemFlagStore()
	m := NewMessagingState(store, zerolog.Nop())
	u := User{ID: uuid.New(), Name: "Alice"}

	m.SetUserEnabled(u, false)
	m.SetUserEnabled(u, false)
	m.SetUserEnabled(u, true)

	if !m.UserEnabled(u.ID) {
		t.Error("UserEnabled should reflect the last write")
	}
}

func boolPtr(b bool) *bool { return &b }
