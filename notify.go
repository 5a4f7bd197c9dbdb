package chat

import "github.com/rs/zerolog"

type alert struct {
	offender User
	reason   string
	message  string
}

// Notifier broadcasts staff alerts to every online user holding the
// notify capability. Enqueueing never blocks; alerts are dropped when
// the queue is full and delivery errors are swallowed.
type Notifier struct {
	users  UserProvider
	caps   CapabilityChecker
	sender Sender
	log    zerolog.Logger

	ch   chan alert
	done chan struct{}
}

func NewNotifier(users UserProvider, caps CapabilityChecker, sender Sender, log zerolog.Logger) *Notifier {
	n := &Notifier{
		users:  users,
		caps:   caps,
		sender: sender,
		log:    log.With().Str("component", "notify").Logger(),
		ch:     make(chan alert, 64),
		done:   make(chan struct{}),
	}

	go n.run()
	return n
}

// NotifyStaff queues an alert about a rejected or suspicious message.
func (n *Notifier) NotifyStaff(offender User, reason, message string) {
	select {
	case n.ch <- alert{offender: offender, reason: reason, message: message}:
	default:
		n.log.Warn().Str("player", offender.Name).Msg("notification queue full, alert dropped")
	}
}

// Stop drains the queue and stops the worker.
func (n *Notifier) Stop() {
	close(n.ch)
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)

	for a := range n.ch {
		n.fanout(a)
	}
}

func (n *Notifier) fanout(a alert) {
	line := "Player " + a.offender.Name + " " + a.reason + "\n" + a.message

	for _, u := range n.users.OnlineUsers() {
		if !n.caps.HasCapability(u, CapNotify) {
			continue
		}

		if err := n.sender.SendToUser(u, line); err != nil {
			n.log.Warn().Err(err).Str("player", u.Name).Msg("staff alert delivery failed")
		}
	}
}
