package chat

import "strings"

// Capabilities checked by the pipeline and the built-in chat commands.
const (
	CapNotify         = "chat.notify"
	CapBypassURL      = "chat.bypass.filter.url"
	CapBypassBanned   = "chat.bypass.filter.banned-words"
	CapBypassPmState  = "chat.bypass.private-message.disablement"
	CapPmAllow        = "chat.private-message.allow"
	CapPmSpy          = "chat.private-message.spy"
	CapPmMute         = "chat.private-message.mute"
	CapBroadcast      = "chat.broadcast"
	CapServerMsgSend  = "chat.server-message.send"
	CapServerMsgAlert = "chat.server-message.alert"
	CapClearChat      = "chat.clear"
	CapReload         = "chat.reload"
)

// GroupCaps is a CapabilityChecker backed by the named capability
// groups of the active snapshot. Users without an explicit group are
// in the "default" group.
type GroupCaps struct {
	snaps *SnapshotHolder
}

func NewGroupCaps(snaps *SnapshotHolder) *GroupCaps {
	return &GroupCaps{snaps: snaps}
}

func (g *GroupCaps) caps(u User) []string {
	snap := g.snaps.Get()
	if snap == nil {
		return nil
	}

	grp, ok := snap.UserGroups[u.Name]
	if !ok {
		grp = "default"
	}

	return snap.Groups[grp]
}

// HasCapability reports whether the user holds the capability.
// A trailing asterisk in a group entry acts as a wildcard. Asterisks
// in other places are treated as regular characters.
func (g *GroupCaps) HasCapability(u User, want string) bool {
	for _, c := range g.caps(u) {
		if strings.HasSuffix(c, "*") {
			if strings.HasPrefix(want, c[:len(c)-1]) {
				return true
			}
		} else if c == want {
			return true
		}
	}

	return false
}
