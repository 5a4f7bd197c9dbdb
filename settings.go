package chat

import "github.com/caarlos0/env/v11"

// Settings are process-level options read from the environment. They
// select where the reloadable configuration lives; everything inside
// the configuration itself stays hot-reloadable.
type Settings struct {
	ConfigPath string `env:"CHAT_CONFIG" envDefault:"config.yml"`
	TelnetAddr string `env:"CHAT_TELNET_ADDR"`
	WebhookURL string `env:"CHAT_WEBHOOK_URL"`
}

// LoadSettings parses the settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, err
	}

	return s, nil
}
