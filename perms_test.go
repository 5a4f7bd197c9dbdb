package chat

import "testing"

func TestGroupCaps(t *testing.T) {
	conf := Config{
		UserGroups: map[string]string{
			"Alice": "mods",
			"Eve":   "admins",
		},
		Groups: map[string][]string{
			"default": {CapPmAllow},
			"mods":    {CapPmAllow, CapNotify, "chat.bypass.*"},
			"admins":  {"*"},
		},
	}

	snaps := NewSnapshotHolder("")
	snaps.Set(conf.Snapshot())
	caps := NewGroupCaps(snaps)

	tests := []struct {
		name string
		user string
		cap  string
		want bool
	}{
		{"exact match", "Alice", CapNotify, true},
		{"wildcard prefix", "Alice", CapBypassURL, true},
		{"wildcard other branch", "Alice", CapBypassBanned, true},
		{"not granted", "Alice", CapBroadcast, false},
		{"bare wildcard grants all", "Eve", CapReload, true},
		{"default group fallback", "Bob", CapPmAllow, true},
		{"default group limit", "Bob", CapNotify, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := caps.HasCapability(User{Name: tt.user}, tt.cap)
			if got != tt.want {
				t.Errorf("HasCapability(%s, %s) = %v, want %v", tt.user, tt.cap, got, tt.want)
			}
		})
	}
}

func TestGroupCapsNilSnapshot(t *testing.T) {
	caps := NewGroupCaps(NewSnapshotHolder(""))

	if caps.HasCapability(User{Name: "Alice"}, CapNotify) {
		t.Error("no snapshot should grant nothing")
	}
}
