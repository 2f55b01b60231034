package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"dc-go/internal/cards"
	"dc-go/internal/config"
	"dc-go/internal/database"
	"dc-go/internal/encryption"
	"dc-go/internal/settings"
	"dc-go/internal/vault"
)

// App is the application layer between the CLI and the card service.
// It constructs all dependencies from config, exposes the high-level
// operations the commands need, and manages lifecycle on Close.
type App struct {
	cfg       *config.Config
	store     *database.SQLiteStore
	service   *cards.Service
	settings  *settings.Service
	encryptor cards.Encryptor
	vault     cards.Vault
	clock     cards.Clock
	logFile   *os.File
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "CreateProfile").
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	store, err := database.NewStoreFromConfig(cfg.Database, cfg.HostID)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	if err := store.MigrateUp(); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	// A vault is optional; only backup/restore need one.
	var v cards.Vault
	if len(cfg.Vaults) > 0 {
		v, err = vault.NewVaultFromConfig(cfg.Vaults[0])
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("creating vault: %w", err)
		}
	}

	flags := settings.NewService(cfg.Settings.Path)
	if err := flags.Load(); err != nil {
		store.Close()
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID+"/"+operation)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := cards.NewService(store, &slogAdapter{l: logger}, cards.RealClock{})

	return &App{
		cfg:       cfg,
		store:     store,
		service:   svc,
		settings:  flags,
		encryptor: enc,
		vault:     v,
		clock:     cards.RealClock{},
		logFile:   logFile,
	}, nil
}

// Service exposes the card service for the CLI commands.
func (a *App) Service() *cards.Service { return a.service }

// Settings exposes the privacy flags service.
func (a *App) Settings() *settings.Service { return a.settings }

// SetupEncryption performs one-time key generation for encrypted exports.
func (a *App) SetupEncryption(passphrase string) error {
	return a.encryptor.Setup(passphrase)
}

// Unlock unlocks the private key for decrypting an encrypted dump.
func (a *App) Unlock(passphrase string) (cards.DecryptionContext, error) {
	return a.encryptor.Unlock(passphrase)
}

// ExportToFile writes an export dump to path. When encrypt is set the
// dump is age-encrypted with the configured public key.
func (a *App) ExportToFile(ctx context.Context, path string, encrypt bool) error {
	if encrypt && !a.encryptor.IsConfigured() {
		return fmt.Errorf("encryption keys not configured; run `dc config keys` first")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if !encrypt {
		return a.service.Export(ctx, f)
	}

	var buf bytes.Buffer
	if err := a.service.Export(ctx, &buf); err != nil {
		return err
	}
	if err := a.encryptor.Encrypt(&buf, f); err != nil {
		return fmt.Errorf("encrypting export: %w", err)
	}
	return nil
}

// ImportFromFile reads a dump from path and imports it in the given mode.
// A non-nil decryptCtx decrypts the file before parsing.
func (a *App) ImportFromFile(ctx context.Context, path string, mode cards.ImportMode, decryptCtx cards.DecryptionContext) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	if decryptCtx == nil {
		return a.service.Import(ctx, f, mode)
	}

	var buf bytes.Buffer
	if err := decryptCtx.Decrypt(f, &buf); err != nil {
		return fmt.Errorf("decrypting import: %w", err)
	}
	return a.service.Import(ctx, &buf, mode)
}

// Backup exports all data and uploads the dump to the configured vault,
// replacing any previous backup for this host. When encrypt is set the
// dump is age-encrypted before upload.
func (a *App) Backup(ctx context.Context, encrypt bool) error {
	if a.vault == nil {
		return fmt.Errorf("no vaults configured")
	}
	if encrypt && !a.encryptor.IsConfigured() {
		return fmt.Errorf("encryption keys not configured; run `dc config keys` first")
	}

	var dump bytes.Buffer
	if err := a.service.Export(ctx, &dump); err != nil {
		return err
	}

	payload := &dump
	if encrypt {
		var sealed bytes.Buffer
		if err := a.encryptor.Encrypt(&dump, &sealed); err != nil {
			return fmt.Errorf("encrypting backup: %w", err)
		}
		payload = &sealed
	}

	version := a.clock.Now().Unix()
	if err := a.vault.PutBackup(a.cfg.HostID, payload, int64(payload.Len()), version); err != nil {
		return fmt.Errorf("uploading backup: %w", err)
	}
	return nil
}

// Restore downloads the latest backup for this host from the vault and
// imports it in replace mode. A non-nil decryptCtx decrypts the dump
// before parsing.
func (a *App) Restore(ctx context.Context, decryptCtx cards.DecryptionContext) error {
	if a.vault == nil {
		return fmt.Errorf("no vaults configured")
	}

	var dump bytes.Buffer
	if err := a.vault.GetBackup(a.cfg.HostID, &dump); err != nil {
		return fmt.Errorf("downloading backup: %w", err)
	}

	payload := &dump
	if decryptCtx != nil {
		var plain bytes.Buffer
		if err := decryptCtx.Decrypt(&dump, &plain); err != nil {
			return fmt.Errorf("decrypting backup: %w", err)
		}
		payload = &plain
	}

	return a.service.Import(ctx, payload, cards.ImportReplace)
}

// BackupVersion reports the version marker of the vaulted backup, or 0
// when none exists.
func (a *App) BackupVersion() (int64, error) {
	if a.vault == nil {
		return 0, fmt.Errorf("no vaults configured")
	}
	return a.vault.GetBackupVersion(a.cfg.HostID)
}

// Close releases all resources.
func (a *App) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
