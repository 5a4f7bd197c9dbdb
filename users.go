package chat

import "github.com/google/uuid"

// User is the core's read-only view of a player session. Identity,
// current server and online status are owned by the session provider.
type User struct {
	ID     uuid.UUID
	Name   string
	Server string
	Online bool
}

// UserProvider supplies player sessions to the core.
type UserProvider interface {
	OnlineUsers() []User
	UserByName(name string) (User, bool)
	UserByID(id uuid.UUID) (User, bool)
}

// Sender delivers a rendered line to a single recipient.
type Sender interface {
	SendToUser(u User, text string) error
}

// CapabilityChecker reports whether a user holds a named capability.
// The authority behind it is external; the core only asks.
type CapabilityChecker interface {
	HasCapability(u User, name string) bool
}
