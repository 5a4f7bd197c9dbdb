package chat

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fakeCaps maps a user name to the capabilities they hold.
type fakeCaps map[string][]string

func (f fakeCaps) HasCapability(u User, name string) bool {
	for _, c := range f[u.Name] {
		if c == name {
			return true
		}
	}

	return false
}

// recordingSender records every delivered line per recipient name.
type recordingSender struct {
	mu   sync.Mutex
	sent map[string][]string
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: make(map[string][]string)}
}

func (r *recordingSender) SendToUser(u User, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sent[u.Name] = append(r.sent[u.Name], text)
	return nil
}

func (r *recordingSender) lines(name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.sent[name]...)
}

// memFlagStore is an in-memory FlagStore.
type memFlagStore struct {
	mu     sync.Mutex
	global *bool
	pms    map[uuid.UUID]bool
	spy    map[uuid.UUID]bool
}

func newMemFlagStore() *memFlagStore {
	return &memFlagStore{
		pms: make(map[uuid.UUID]bool),
		spy: make(map[uuid.UUID]bool),
	}
}

func (m *memFlagStore) GlobalPms() (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.global == nil {
		return false, false, nil
	}

	return *m.global, true, nil
}

func (m *memFlagStore) SetGlobalPms(enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.global = &enabled
	return nil
}

func (m *memFlagStore) UserPms(id uuid.UUID) (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	enabled, ok := m.pms[id]
	return enabled, ok, nil
}

func (m *memFlagStore) SetUserPms(id uuid.UUID, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pms[id] = enabled
	return nil
}

func (m *memFlagStore) Spying(id uuid.UUID) (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	spying, ok := m.spy[id]
	return spying, ok, nil
}

func (m *memFlagStore) SetSpying(id uuid.UUID, spying bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.spy[id] = spying
	return nil
}

// failingFlagStore errors on every operation.
type failingFlagStore struct{}

var errStoreDown = errors.New("store down")

func (failingFlagStore) GlobalPms() (bool, bool, error)        { return false, false, errStoreDown }
func (failingFlagStore) SetGlobalPms(bool) error               { return errStoreDown }
func (failingFlagStore) UserPms(uuid.UUID) (bool, bool, error) { return false, false, errStoreDown }
func (failingFlagStore) SetUserPms(uuid.UUID, bool) error      { return errStoreDown }
func (failingFlagStore) Spying(uuid.UUID) (bool, bool, error)  { return false, false, errStoreDown }
func (failingFlagStore) SetSpying(uuid.UUID, bool) error       { return errStoreDown }

// testEnv wires a pipeline with in-memory collaborators.
type testEnv struct {
	dir      *Directory
	sender   *recordingSender
	caps     fakeCaps
	store    *memFlagStore
	snaps    *SnapshotHolder
	state    *MessagingState
	notifier *Notifier
	pipeline *Pipeline
}

func newTestEnv(conf Config, caps fakeCaps) *testEnv {
	dir := NewDirectory(nil)
	sender := newRecordingSender()
	store := newMemFlagStore()

	snaps := NewSnapshotHolder("")
	snaps.Set(conf.Snapshot())

	log := zerolog.Nop()
	state := NewMessagingState(store, log)
	notifier := NewNotifier(dir, caps, sender, log)

	p := NewPipeline(PipelineDeps{
		Snapshots: snaps,
		Users:     dir,
		Caps:      caps,
		Sender:    sender,
		State:     state,
		Notifier:  notifier,
		Log:       log,
	})

	return &testEnv{
		dir:      dir,
		sender:   sender,
		caps:     caps,
		store:    store,
		snaps:    snaps,
		state:    state,
		notifier: notifier,
		pipeline: p,
	}
}

// stop drains pending staff alerts. Call before asserting on them.
func (e *testEnv) stop() {
	e.notifier.Stop()
}

func (e *testEnv) addUser(name, server string) User {
	u := User{ID: uuid.New(), Name: name, Server: server, Online: true}
	e.dir.Put(u)
	return u
}
