package chat

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// flagsFiles keeps one YAML file per user id plus a single global
// file. Missing files and missing keys mean "no record".
type flagsFiles struct {
	dir string
}

type userFlagsFile struct {
	PmsEnabled *bool `yaml:"pms-enabled,omitempty"`
	IsSpying   *bool `yaml:"is-spying,omitempty"`
}

type globalFlagsFile struct {
	GlobalPmsEnabled *bool `yaml:"global-pms-enabled,omitempty"`
}

func (f flagsFiles) userPath(id uuid.UUID) string {
	return filepath.Join(f.dir, id.String()+".yml")
}

func (f flagsFiles) globalPath() string {
	return filepath.Join(f.dir, "pmdata.yml")
}

// GlobalPms returns the global private messaging flag if set.
func (f flagsFiles) GlobalPms() (bool, bool, error) {
	var gf globalFlagsFile

	data, err := os.ReadFile(f.globalPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, false, nil
		}

		return false, false, err
	}

	if err := yaml.Unmarshal(data, &gf); err != nil {
		return false, false, err
	}

	if gf.GlobalPmsEnabled == nil {
		return false, false, nil
	}

	return *gf.GlobalPmsEnabled, true, nil
}

// SetGlobalPms writes the global private messaging flag.
func (f flagsFiles) SetGlobalPms(enabled bool) error {
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(globalFlagsFile{GlobalPmsEnabled: &enabled})
	if err != nil {
		return err
	}

	return os.WriteFile(f.globalPath(), data, 0600)
}

// UserPms returns the per-user private messaging flag if set.
func (f flagsFiles) UserPms(id uuid.UUID) (bool, bool, error) {
	uf, err := f.readUser(id)
	if err != nil || uf.PmsEnabled == nil {
		return false, false, err
	}

	return *uf.PmsEnabled, true, nil
}

// SetUserPms writes the per-user private messaging flag.
func (f flagsFiles) SetUserPms(id uuid.UUID, enabled bool) error {
	return f.writeUser(id, func(uf *userFlagsFile) {
		uf.PmsEnabled = &enabled
	})
}

// Spying returns the per-user spy flag if set.
func (f flagsFiles) Spying(id uuid.UUID) (bool, bool, error) {
	uf, err := f.readUser(id)
	if err != nil || uf.IsSpying == nil {
		return false, false, err
	}

	return *uf.IsSpying, true, nil
}

// SetSpying writes the per-user spy flag.
func (f flagsFiles) SetSpying(id uuid.UUID, spying bool) error {
	return f.writeUser(id, func(uf *userFlagsFile) {
		uf.IsSpying = &spying
	})
}

func (f flagsFiles) readUser(id uuid.UUID) (userFlagsFile, error) {
	var uf userFlagsFile

	data, err := os.ReadFile(f.userPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return uf, nil
		}

		return uf, err
	}

	return uf, yaml.Unmarshal(data, &uf)
}

// writeUser rewrites a user file, preserving the flags the mutation
// does not touch.
func (f flagsFiles) writeUser(id uuid.UUID, mutate func(*userFlagsFile)) error {
	uf, err := f.readUser(id)
	if err != nil {
		return err
	}

	mutate(&uf)

	data, err := yaml.Marshal(uf)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(f.userPath(id), data, 0600)
}
