package chat

import (
	"os"
	"os/signal"
	"syscall"
)

// RunOptions carries the collaborator implementations the host proxy
// provides. Caps may be nil to use the snapshot's capability groups;
// Scorer may be nil to post webhook entries without scores.
type RunOptions struct {
	Users  UserProvider
	Sender Sender
	Caps   CapabilityChecker
	Scorer ToxicityScorer
}

// Run wires the pipeline from the environment and configuration,
// starts the operator console and blocks. SIGHUP triggers a rule
// snapshot reload.
func Run(opts RunOptions) error {
	log := Logger()

	settings, err := LoadSettings()
	if err != nil {
		return err
	}

	conf, err := LoadConfig(settings.ConfigPath)
	if err != nil {
		return err
	}
	if settings.TelnetAddr != "" {
		conf.TelnetAddr = settings.TelnetAddr
	}
	if settings.WebhookURL != "" {
		conf.WebhookURL = settings.WebhookURL
	}

	snaps := NewSnapshotHolder(settings.ConfigPath)
	snaps.Set(conf.Snapshot())
	log.Info().Str("path", settings.ConfigPath).Msg("load config")

	store, err := OpenFlagStore(conf)
	if err != nil {
		return err
	}

	caps := opts.Caps
	if caps == nil {
		caps = NewGroupCaps(snaps)
	}

	state := NewMessagingState(store, log)

	notifier := NewNotifier(opts.Users, caps, opts.Sender, log)
	defer notifier.Stop()

	var webhook *WebhookLogger
	if conf.WebhookURL != "" {
		webhook = NewWebhookLogger(conf.WebhookURL, opts.Scorer, log)
		defer webhook.Stop()
	}

	p := NewPipeline(PipelineDeps{
		Snapshots: snaps,
		Users:     opts.Users,
		Caps:      caps,
		Sender:    opts.Sender,
		State:     state,
		Notifier:  notifier,
		Webhook:   webhook,
		Log:       log,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP)

		for range sig {
			if err := p.Reload(); err != nil {
				log.Warn().Err(err).Msg("reload failed")
			}
		}
	}()

	log.Info().Str("addr", conf.TelnetAddr).Msg("operator console listening")
	return TelnetServer(conf.TelnetAddr, p, log)
}
