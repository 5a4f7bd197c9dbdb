package chat

// Broadcast sends a server broadcast line to every online user.
func (p *Pipeline) Broadcast(msg string) {
	p.broadcastLine("[Server Broadcast] " + msg)
}

// ServerMessage delivers a direct server message to one player and
// alerts every holder of the server message alert capability.
func (p *Pipeline) ServerMessage(fromName string, recipient User, msg string) {
	for _, u := range p.users.OnlineUsers() {
		if !p.caps.HasCapability(u, CapServerMsgAlert) {
			continue
		}

		p.send(u, fromName+" Sent a server message to "+recipient.Name+" : "+msg)
	}

	p.send(recipient, "[Server Message] "+msg)
}

// ClearChat pushes the configured number of blank lines to every
// online user, then a confirmation line.
func (p *Pipeline) ClearChat() {
	lines := defaultClearChatLines
	if snap := p.snaps.Get(); snap != nil && snap.ClearChatLines > 0 {
		lines = snap.ClearChatLines
	}

	for _, u := range p.users.OnlineUsers() {
		for i := 0; i < lines; i++ {
			p.send(u, "")
		}

		p.send(u, "> Chat has been cleared.")
	}
}

// AnnounceJoin tells every online user that a player joined.
func (p *Pipeline) AnnounceJoin(name string) {
	p.broadcastLine("+ " + name)
}

// AnnounceLeave tells every online user that a player left.
func (p *Pipeline) AnnounceLeave(name string) {
	p.broadcastLine("- " + name)
}

func (p *Pipeline) broadcastLine(line string) {
	for _, u := range p.users.OnlineUsers() {
		p.send(u, line)
	}
}
