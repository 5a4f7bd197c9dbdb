package chat

import (
	"sort"
	"strings"
)

func builtinCmds() []ChatCmd {
	return []ChatCmd{
		{
			Name:    "help",
			Usage:   "help",
			Handler: helpCmd,
		},
		{
			Name:    "msg",
			Perm:    CapPmAllow,
			Usage:   "msg <player> <message>",
			Handler: msgCmd,
		},
		{
			Name:    "spy",
			Perm:    CapPmSpy,
			Usage:   "spy",
			Handler: spyCmd,
		},
		{
			Name:    "enablepm",
			Perm:    CapPmMute,
			Usage:   "enablepm <player|global>",
			Handler: setPmCmd(true),
		},
		{
			Name:    "disablepm",
			Perm:    CapPmMute,
			Usage:   "disablepm <player|global>",
			Handler: setPmCmd(false),
		},
		{
			Name:    "broadcast",
			Perm:    CapBroadcast,
			Usage:   "broadcast <message>",
			Handler: broadcastCmd,
		},
		{
			Name:    "servermsg",
			Perm:    CapServerMsgSend,
			Usage:   "servermsg <player> <message>",
			Handler: serverMsgCmd,
		},
		{
			Name:    "clearchat",
			Perm:    CapClearChat,
			Usage:   "clearchat",
			Handler: clearChatCmd,
		},
		{
			Name:    "reload",
			Perm:    CapReload,
			Usage:   "reload",
			Handler: reloadCmd,
		},
	}
}

func helpCmd(p *Pipeline, src CmdSource, args ...string) string {
	chatCmdsMu.RLock()
	usages := make([]string, 0, len(chatCmds))
	for _, cmd := range chatCmds {
		usages = append(usages, cmd.Usage)
	}
	chatCmdsMu.RUnlock()

	sort.Strings(usages)
	return "Available commands:\n" + strings.Join(usages, "\n")
}

func msgCmd(p *Pipeline, src CmdSource, args ...string) string {
	if len(args) < 2 {
		return "Usage: msg <player> <message>"
	}

	target, ok := p.users.UserByName(args[0])
	if !ok || !target.Online {
		return "Could not find player " + args[0] + "."
	}

	msg := strings.Join(args[1:], " ")

	if src.Console {
		p.ProcessConsoleMessage(target, msg)
		return ""
	}

	p.ProcessPrivateMessage(src.User, target, msg)
	return ""
}

func spyCmd(p *Pipeline, src CmdSource, args ...string) string {
	if src.Console {
		return "Must be player."
	}

	if p.state.IsSpying(src.User) {
		p.SetSpy(src.User, false)
		return "Toggled spy off."
	}

	p.SetSpy(src.User, true)
	return "Toggled spy on."
}

// setPmCmd builds the enablepm and disablepm handlers. Already-set
// flags are reported rather than rewritten.
func setPmCmd(enabled bool) func(*Pipeline, CmdSource, ...string) string {
	verb := "disabled"
	if enabled {
		verb = "enabled"
	}

	return func(p *Pipeline, src CmdSource, args ...string) string {
		if len(args) < 1 {
			return "Usage: enablepm <player|global>"
		}

		if args[0] == "global" {
			if p.state.GlobalEnabled() == enabled {
				return "PMs already globally " + verb + "."
			}

			p.SetGlobalPm(enabled)
			return strings.ToUpper(verb[:1]) + verb[1:] + " PMs globally."
		}

		target, ok := p.users.UserByName(args[0])
		if !ok {
			return "Could not find player " + args[0] + "."
		}

		if p.state.UserEnabled(target.ID) == enabled {
			return "PMs already " + verb + " for " + target.Name + "."
		}

		p.SetUserPm(target, enabled)
		return strings.ToUpper(verb[:1]) + verb[1:] + " PMs for " + target.Name + "."
	}
}

func broadcastCmd(p *Pipeline, src CmdSource, args ...string) string {
	if len(args) < 1 {
		return "Usage: broadcast <message>"
	}

	p.Broadcast(strings.Join(args, " "))
	return ""
}

func serverMsgCmd(p *Pipeline, src CmdSource, args ...string) string {
	if len(args) < 2 {
		return "Usage: servermsg <player> <message>"
	}

	target, ok := p.users.UserByName(args[0])
	if !ok || !target.Online {
		return "Could not find player " + args[0] + "."
	}

	p.ServerMessage(src.Name(), target, strings.Join(args[1:], " "))
	return ""
}

func clearChatCmd(p *Pipeline, src CmdSource, args ...string) string {
	p.ClearChat()
	return ""
}

func reloadCmd(p *Pipeline, src CmdSource, args ...string) string {
	if err := p.Reload(); err != nil {
		return "Reload failed: " + err.Error()
	}

	return "Reloaded."
}
