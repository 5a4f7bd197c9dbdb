package chat

import (
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

const defaultTelnetAddr = ":40010"
const defaultDataDir = "data"
const defaultClearChatLines = 100

// Config is the on-disk configuration. It is parsed as a unit and
// published as an immutable Snapshot.
type Config struct {
	TelnetAddr     string `yaml:"telnet_addr"`
	FlagBackend    string `yaml:"flag_backend"`
	DataDir        string `yaml:"data_dir"`
	PostgresConn   string `yaml:"postgres_conn"`
	WebhookURL     string `yaml:"webhook_url"`
	ClearChatLines int    `yaml:"clear_chat_lines"`

	BannedWords []string            `yaml:"banned_words"`
	Format      []FormatRule        `yaml:"format"`
	Channels    map[string][]string `yaml:"channels"`

	UserGroups map[string]string   `yaml:"user_groups"`
	Groups     map[string][]string `yaml:"groups"`
}

// LoadConfig reads and parses the YAML configuration, applying
// defaults for missing values.
func LoadConfig(path string) (Config, error) {
	conf := Config{
		TelnetAddr:     defaultTelnetAddr,
		DataDir:        defaultDataDir,
		ClearChatLines: defaultClearChatLines,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, err
	}

	return conf, nil
}

// Snapshot is an immutable view of the reloadable rule state. It is
// never mutated after publication; Reload builds a new one and swaps
// the pointer.
type Snapshot struct {
	Filter     *PhraseFilter
	Format     []FormatRule
	Channels   ChannelWhitelist
	UserGroups map[string]string
	Groups     map[string][]string

	ClearChatLines int
}

// Snapshot builds the rule snapshot from the configuration. The
// snapshot copies everything it keeps so later Config reuse cannot
// leak mutations into published state.
func (c Config) Snapshot() *Snapshot {
	snap := &Snapshot{
		Filter:         NewPhraseFilter(c.BannedWords),
		Format:         append([]FormatRule(nil), c.Format...),
		Channels:       make(ChannelWhitelist, len(c.Channels)),
		UserGroups:     make(map[string]string, len(c.UserGroups)),
		Groups:         make(map[string][]string, len(c.Groups)),
		ClearChatLines: c.ClearChatLines,
	}

	for name, members := range c.Channels {
		snap.Channels[name] = append([]string(nil), members...)
	}
	for name, grp := range c.UserGroups {
		snap.UserGroups[name] = grp
	}
	for name, caps := range c.Groups {
		snap.Groups[name] = append([]string(nil), caps...)
	}

	return snap
}

// SnapshotHolder publishes the active snapshot to concurrent readers.
// Readers never block on a reload and a reload never waits for
// in-flight readers.
type SnapshotHolder struct {
	path string
	p    atomic.Pointer[Snapshot]
}

func NewSnapshotHolder(path string) *SnapshotHolder {
	return &SnapshotHolder{path: path}
}

// Get returns the active snapshot. Nil until the first successful
// Reload or Set.
func (h *SnapshotHolder) Get() *Snapshot {
	return h.p.Load()
}

// Set publishes a prebuilt snapshot.
func (h *SnapshotHolder) Set(snap *Snapshot) {
	h.p.Store(snap)
}

// Reload parses the configuration file and atomically replaces the
// active snapshot. On error the previous snapshot stays active.
func (h *SnapshotHolder) Reload() error {
	conf, err := LoadConfig(h.path)
	if err != nil {
		return err
	}

	h.p.Store(conf.Snapshot())
	return nil
}
