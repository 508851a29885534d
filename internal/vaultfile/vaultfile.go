// Package vaultfile persists encrypted export envelopes on disk. It knows
// nothing about the cipher; it only moves sealed envelopes in and out of a
// single JSON file.
package vaultfile

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/atinyakov/GadgetKeeper/internal/models"
)

// Vault reads and writes one envelope file at a fixed path.
type Vault struct {
	path string
	log  *zap.Logger
}

func New(path string, log *zap.Logger) *Vault {
	return &Vault{path: path, log: log}
}

// Path returns the file location this vault operates on.
func (v *Vault) Path() string {
	return v.path
}

// Exists reports whether the vault file is present on disk.
func (v *Vault) Exists() bool {
	_, err := os.Stat(v.path)
	return err == nil
}

// Load reads and decodes the envelope. Callers should check Exists first;
// a missing file is returned as the underlying open error.
func (v *Vault) Load() (models.EncryptedExport, error) {
	f, err := os.Open(v.path)
	if err != nil {
		return models.EncryptedExport{}, err
	}
	defer f.Close()

	var exp models.EncryptedExport
	if err := json.NewDecoder(f).Decode(&exp); err != nil {
		return models.EncryptedExport{}, fmt.Errorf("decode vault %s: %w", v.path, err)
	}

	v.log.Debug("vault loaded", zap.String("path", v.path))
	return exp, nil
}

// Save writes the envelope with owner-only permissions. The write goes
// through a temp file and rename so a crash cannot leave a torn vault.
func (v *Vault) Save(exp models.EncryptedExport) error {
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vault: %w", err)
	}

	tmp := v.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	if err := os.Rename(tmp, v.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace vault: %w", err)
	}

	v.log.Debug("vault saved", zap.String("path", v.path), zap.Int("bytes", len(data)))
	return nil
}
