package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Directory is an in-memory UserProvider and Sender for hosts that
// track sessions in-process. Deliveries go to a pluggable callback; a
// nil callback discards them.
type Directory struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]User
	deliver func(User, string) error
}

func NewDirectory(deliver func(User, string) error) *Directory {
	return &Directory{
		users:   make(map[uuid.UUID]User),
		deliver: deliver,
	}
}

// Put adds or replaces a user session.
func (d *Directory) Put(u User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.users[u.ID] = u
}

// Remove drops a user session.
func (d *Directory) Remove(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.users, id)
}

func (d *Directory) OnlineUsers() []User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]User, 0, len(d.users))
	for _, u := range d.users {
		if u.Online {
			users = append(users, u)
		}
	}

	return users
}

func (d *Directory) UserByName(name string) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Name == name {
			return u, true
		}
	}

	return User{}, false
}

func (d *Directory) UserByID(id uuid.UUID) (User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	return u, ok
}

func (d *Directory) SendToUser(u User, text string) error {
	if d.deliver == nil {
		return nil
	}

	return d.deliver(u, text)
}
