package chat

import (
	"strings"
	"sync"
)

// CmdSource identifies who invoked a chat command. Console sources
// bypass capability checks and hold every capability.
type CmdSource struct {
	User    User
	Console bool
}

// Name returns the display name of the source.
func (src CmdSource) Name() string {
	if src.Console {
		return "CONSOLE"
	}

	return src.User.Name
}

// ChatCmd is a named, capability-gated chat command.
type ChatCmd struct {
	Name    string
	Perm    string
	Usage   string
	Handler func(p *Pipeline, src CmdSource, args ...string) string
}

var chatCmds map[string]ChatCmd
var chatCmdsMu sync.RWMutex
var chatCmdsOnce sync.Once

// ChatCmdExists reports whether a chat command is registered.
func ChatCmdExists(name string) bool {
	initChatCmds()

	chatCmdsMu.RLock()
	defer chatCmdsMu.RUnlock()

	_, ok := chatCmds[name]
	return ok
}

// RegisterChatCmd registers a chat command. It returns false if the
// name is already taken.
func RegisterChatCmd(cmd ChatCmd) bool {
	initChatCmds()

	if ChatCmdExists(cmd.Name) {
		return false
	}

	chatCmdsMu.Lock()
	defer chatCmdsMu.Unlock()

	chatCmds[cmd.Name] = cmd
	return true
}

// DoChatCmd parses a command line such as "msg Alice hello" and runs
// the matching command. The returned string is the reply shown to the
// source.
func DoChatCmd(p *Pipeline, src CmdSource, line string) string {
	initChatCmds()

	substrs := strings.Fields(line)
	if len(substrs) == 0 {
		return ""
	}

	name := substrs[0]
	args := substrs[1:]

	if !ChatCmdExists(name) {
		return "Command not found."
	}

	chatCmdsMu.RLock()
	cmd := chatCmds[name]
	chatCmdsMu.RUnlock()

	if !src.Console && cmd.Perm != "" && !p.caps.HasCapability(src.User, cmd.Perm) {
		return "Missing permission " + cmd.Perm + "."
	}

	return cmd.Handler(p, src, args...)
}

func initChatCmds() {
	chatCmdsOnce.Do(func() {
		chatCmdsMu.Lock()
		defer chatCmdsMu.Unlock()

		chatCmds = make(map[string]ChatCmd)
		for _, cmd := range builtinCmds() {
			chatCmds[cmd.Name] = cmd
		}
	})
}
