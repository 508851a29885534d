package cli

import (
	"os"

	"go.uber.org/zap"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
	"github.com/atinyakov/GadgetKeeper/internal/vaultfile"
)

// secret resolves the vault secret from the flag or the environment. It is
// never written to disk or logged.
func (d commandDeps) secret() (string, error) {
	if d.globals.Secret != "" {
		return d.globals.Secret, nil
	}
	if env := os.Getenv("GADGETKEEPER_SECRET"); env != "" {
		return env, nil
	}
	return "", usageErrorf("a secret is required: pass --secret or set GADGETKEEPER_SECRET")
}

// runSession opens the vault into a fresh store, hands it to fn, and when
// mutate is set seals the store back to disk afterwards. A missing vault
// file starts an empty inventory.
func runSession(deps commandDeps, mutate bool, fn func(store *inventory.Store, secret string) error) error {
	secret, err := deps.secret()
	if err != nil {
		return err
	}

	store := inventory.New()
	vault := vaultfile.New(deps.globals.VaultPath, deps.log)
	if vault.Exists() {
		exp, err := vault.Load()
		if err != nil {
			return mapCommandError(err)
		}
		if err := store.ImportEncrypted(exp, secret); err != nil {
			return mapCommandError(err)
		}
	}

	if err := fn(store, secret); err != nil {
		return mapCommandError(err)
	}

	if mutate {
		exp, err := store.ExportEncrypted(secret)
		if err != nil {
			return mapCommandError(err)
		}
		if err := vault.Save(exp); err != nil {
			return mapCommandError(err)
		}
		deps.log.Debug("vault updated",
			zap.String("path", vault.Path()),
			zap.Int("version", store.Version()),
		)
	}
	return nil
}
