package vault

import (
	"testing"

	"dc-go/internal/config"
)

func TestNewVaultFromConfig(t *testing.T) {
	t.Run("creates a memory vault", func(t *testing.T) {
		v, err := NewVaultFromConfig(config.VaultConfig{Type: "memory", Name: "mem"})
		if err != nil {
			t.Fatalf("NewVaultFromConfig() error = %v", err)
		}
		if _, ok := v.(*MemoryVault); !ok {
			t.Errorf("vault type = %T, want *MemoryVault", v)
		}
	})

	t.Run("creates a filesystem vault", func(t *testing.T) {
		v, err := NewVaultFromConfig(config.VaultConfig{
			Type: "filesystem", Name: "local", FSVaultRoot: t.TempDir(),
		})
		if err != nil {
			t.Fatalf("NewVaultFromConfig() error = %v", err)
		}
		if _, ok := v.(*FileSystemVault); !ok {
			t.Errorf("vault type = %T, want *FileSystemVault", v)
		}
	})

	t.Run("filesystem vault requires a root", func(t *testing.T) {
		if _, err := NewVaultFromConfig(config.VaultConfig{Type: "filesystem", Name: "local"}); err == nil {
			t.Error("NewVaultFromConfig() expected error for missing fs_vault_root")
		}
	})

	t.Run("s3 vault requires a bucket", func(t *testing.T) {
		if _, err := NewVaultFromConfig(config.VaultConfig{Type: "s3", Name: "offsite"}); err == nil {
			t.Error("NewVaultFromConfig() expected error for missing s3_bucket")
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		if _, err := NewVaultFromConfig(config.VaultConfig{Type: "ftp", Name: "x"}); err == nil {
			t.Error("NewVaultFromConfig() expected error for unknown type")
		}
	})
}
