package chat

import (
	"strings"

	"github.com/rs/zerolog"
)

// CancelSentinel on a message forces immediate rejection with no
// further checks. External systems prepend it to cancel an event.
const CancelSentinel = "[event cancelled]"

// RejectReason identifies why a message was not delivered.
type RejectReason string

const (
	RejectCancelled        RejectReason = "cancelled"
	RejectURL              RejectReason = "url"
	RejectBannedWord       RejectReason = "banned-word"
	RejectPmDisabled       RejectReason = "pm-disabled"
	RejectSelfMessage      RejectReason = "self-message"
	RejectRecipientOffline RejectReason = "recipient-unavailable"
)

// Result is the terminal outcome of processing one message. It is
// returned exactly once per input; delivery has already happened by
// the time the caller sees it.
type Result struct {
	Delivered  bool
	Formatted  string
	Recipients []User
	Reason     RejectReason
}

func rejected(reason RejectReason) Result {
	return Result{Reason: reason}
}

// Warnings sent back to the offending user.
const (
	warnURL        = "> Please do not use URLs in your message."
	warnBanned     = "> Please do not use banned words in your message."
	warnPmDisabled = "You are not allowed to use private messaging"
	warnSelf       = "> You can't message yourself"
	warnNoTarget   = "> An error occurred"
)

// PipelineDeps are the collaborators a Pipeline is wired with. Webhook
// may be nil.
type PipelineDeps struct {
	Snapshots *SnapshotHolder
	Users     UserProvider
	Caps      CapabilityChecker
	Sender    Sender
	State     *MessagingState
	Notifier  *Notifier
	Webhook   *WebhookLogger
	Log       zerolog.Logger
}

// Pipeline decides, for each inbound chat or private message, whether
// it is delivered, how it is formatted and who receives it. One
// Pipeline serves any number of concurrent messages; each call runs
// its steps sequentially against the snapshot it started with.
type Pipeline struct {
	snaps    *SnapshotHolder
	users    UserProvider
	caps     CapabilityChecker
	sender   Sender
	state    *MessagingState
	notifier *Notifier
	webhook  *WebhookLogger
	log      zerolog.Logger
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		snaps:    deps.Snapshots,
		users:    deps.Users,
		caps:     deps.Caps,
		sender:   deps.Sender,
		state:    deps.State,
		notifier: deps.Notifier,
		webhook:  deps.Webhook,
		log:      deps.Log.With().Str("component", "pipeline").Logger(),
	}
}

// ProcessPublicChat filters, formats and routes a public chat message
// from the origin server. An origin on no channel is visible
// proxy-wide.
func (p *Pipeline) ProcessPublicChat(sender User, raw, originServer string) Result {
	snap := p.snaps.Get()

	if reason, ok := p.filterMessage(snap, sender, raw); !ok {
		if reason == RejectCancelled {
			return rejected(reason)
		}

		staffText := "Sent Message with Banned words!"
		if reason == RejectURL {
			staffText = "Sent Message with a URL!"
		}

		return p.rejectFiltered(sender, reason, staffText, raw)
	}

	prefix, postfix := ResolveFormat(p.caps, sender, snap.Format)
	formatted := ComposeLine(prefix, sender.Name, raw, postfix)

	visible := snap.Channels.ExpandVisibility(originServer)

	var recipients []User
	for _, u := range p.users.OnlineUsers() {
		if len(visible) > 0 {
			if _, ok := visible[u.Server]; !ok {
				continue
			}
		}

		recipients = append(recipients, u)
	}

	for _, u := range recipients {
		if err := p.sender.SendToUser(u, formatted); err != nil {
			p.log.Warn().Err(err).Str("player", u.Name).Msg("chat delivery failed")
		}
	}

	p.log.Info().
		Str("player", sender.Name).
		Str("origin", originServer).
		Int("recipients", len(recipients)).
		Msg("chat delivered")

	return Result{Delivered: true, Formatted: formatted, Recipients: recipients}
}

// ProcessPrivateMessage filters and delivers a private message,
// mirroring it to eligible spies. Recipients is the primary delivery
// set; the sender's echo copy is a side effect.
func (p *Pipeline) ProcessPrivateMessage(sender, recipient User, raw string) Result {
	if sender.ID == recipient.ID {
		p.warn(sender, warnSelf)
		return rejected(RejectSelfMessage)
	}

	if !recipient.Online {
		p.warn(sender, warnNoTarget)
		p.log.Warn().Str("player", sender.Name).Msg("private message recipient unavailable")
		return rejected(RejectRecipientOffline)
	}

	if !p.caps.HasCapability(sender, CapBypassPmState) && !p.state.CanSend(sender) {
		p.warn(sender, warnPmDisabled)
		p.notifier.NotifyStaff(sender, "Sent a private message to "+recipient.Name+" but has private messaging disabled", raw)
		return rejected(RejectPmDisabled)
	}

	snap := p.snaps.Get()

	if reason, ok := p.filterMessage(snap, sender, raw); !ok {
		if reason == RejectCancelled {
			return rejected(reason)
		}

		staffText := "Sent a private message to " + recipient.Name + " with Banned words!"
		if reason == RejectURL {
			staffText = "Sent a private message to " + recipient.Name + " with a URL!"
		}

		return p.rejectFiltered(sender, reason, staffText, raw)
	}

	p.mirrorToSpies(sender.Name, recipient, raw)

	p.send(sender, "✉ me -> "+recipient.Name+": "+raw)

	formatted := "✉ " + sender.Name + " -> me : " + raw
	p.send(recipient, formatted)

	p.log.Info().
		Str("from", sender.Name).
		Str("to", recipient.Name).
		Msg("private message delivered")

	return Result{Delivered: true, Formatted: formatted, Recipients: []User{recipient}}
}

// ProcessConsoleMessage delivers a console-originated private message.
// Console messages skip filtering and permission checks but are still
// mirrored to spies.
func (p *Pipeline) ProcessConsoleMessage(recipient User, raw string) Result {
	if !recipient.Online {
		p.log.Warn().Msg("console message recipient unavailable")
		return rejected(RejectRecipientOffline)
	}

	p.mirrorToSpies("CONSOLE", recipient, raw)

	formatted := "✉ CONSOLE -> me : " + raw
	p.send(recipient, formatted)

	return Result{Delivered: true, Formatted: formatted, Recipients: []User{recipient}}
}

// SetGlobalPm enables or disables private messaging process-wide.
func (p *Pipeline) SetGlobalPm(enabled bool) {
	p.state.SetGlobalEnabled(enabled)
}

// SetUserPm enables or disables private messaging for one user.
func (p *Pipeline) SetUserPm(u User, enabled bool) {
	p.state.SetUserEnabled(u, enabled)
}

// SetSpy toggles the user's spy subscription.
func (p *Pipeline) SetSpy(u User, enabled bool) {
	p.state.SetSpying(u, enabled)
}

// Reload atomically swaps in a freshly parsed rule snapshot.
func (p *Pipeline) Reload() error {
	if err := p.snaps.Reload(); err != nil {
		return err
	}

	p.log.Info().Msg("rule snapshot reloaded")
	return nil
}

// filterMessage runs the cancellation sentinel, URL and banned word
// checks in that order. The first failing check decides the reported
// reason.
func (p *Pipeline) filterMessage(snap *Snapshot, sender User, raw string) (RejectReason, bool) {
	if strings.HasPrefix(raw, CancelSentinel) {
		return RejectCancelled, false
	}

	if !p.caps.HasCapability(sender, CapBypassURL) && snap.Filter.ContainsURL(raw) {
		return RejectURL, false
	}

	if !p.caps.HasCapability(sender, CapBypassBanned) && snap.Filter.ContainsBanned(raw) {
		return RejectBannedWord, false
	}

	return "", true
}

// rejectFiltered warns the sender, alerts staff and feeds the webhook.
// The rejection itself is already decided; none of the side effects
// can change or delay it.
func (p *Pipeline) rejectFiltered(sender User, reason RejectReason, staffText, raw string) Result {
	warning := warnBanned
	if reason == RejectURL {
		warning = warnURL
	}
	p.warn(sender, warning)

	p.notifier.NotifyStaff(sender, staffText, raw)

	if p.webhook != nil {
		p.webhook.Log(sender.Name, raw)
	}

	p.log.Info().
		Str("player", sender.Name).
		Str("reason", string(reason)).
		Msg("message rejected")

	return rejected(reason)
}

// mirrorToSpies sends a read-only copy of a private message to every
// online user who holds the spy capability and has spying enabled.
// The distinct format marks it as a relayed copy, not a received
// message.
func (p *Pipeline) mirrorToSpies(fromName string, recipient User, raw string) {
	for _, u := range p.users.OnlineUsers() {
		if !p.caps.HasCapability(u, CapPmSpy) || !p.state.IsSpying(u) {
			continue
		}

		p.send(u, "* "+fromName+" -> "+recipient.Name+" : "+raw)
	}
}

func (p *Pipeline) warn(u User, text string) {
	p.send(u, text)
}

func (p *Pipeline) send(u User, text string) {
	if err := p.sender.SendToUser(u, text); err != nil {
		p.log.Warn().Err(err).Str("player", u.Name).Msg("delivery failed")
	}
}
