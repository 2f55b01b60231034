package vault

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSystemVault(t *testing.T) {
	t.Run("put then get round-trips the dump", func(t *testing.T) {
		v, err := NewFileSystemVault("local", t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemVault() error = %v", err)
		}

		dump := `{"version": 1, "profiles": []}`
		if err := v.PutBackup("host-1", strings.NewReader(dump), int64(len(dump)), 7); err != nil {
			t.Fatalf("PutBackup() error = %v", err)
		}

		var buf bytes.Buffer
		if err := v.GetBackup("host-1", &buf); err != nil {
			t.Fatalf("GetBackup() error = %v", err)
		}
		if buf.String() != dump {
			t.Errorf("GetBackup() = %q, want %q", buf.String(), dump)
		}

		version, err := v.GetBackupVersion("host-1")
		if err != nil {
			t.Fatalf("GetBackupVersion() error = %v", err)
		}
		if version != 7 {
			t.Errorf("GetBackupVersion() = %d, want 7", version)
		}
	})

	t.Run("creates the root directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "nested", "vault")

		v, err := NewFileSystemVault("local", root)
		if err != nil {
			t.Fatalf("NewFileSystemVault() error = %v", err)
		}
		if err := v.ValidateSetup(); err != nil {
			t.Errorf("ValidateSetup() error = %v", err)
		}
	})

	t.Run("size mismatch removes the partial file", func(t *testing.T) {
		root := t.TempDir()
		v, err := NewFileSystemVault("local", root)
		if err != nil {
			t.Fatalf("NewFileSystemVault() error = %v", err)
		}

		if err := v.PutBackup("host-1", strings.NewReader("short"), 99, 1); err == nil {
			t.Fatal("PutBackup() expected error for size mismatch")
		}
		if _, err := os.Stat(filepath.Join(root, "host-1.json")); !os.IsNotExist(err) {
			t.Error("partial backup file was left behind")
		}
	})

	t.Run("get fails for unknown host", func(t *testing.T) {
		v, err := NewFileSystemVault("local", t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemVault() error = %v", err)
		}

		var buf bytes.Buffer
		if err := v.GetBackup("nonexistent", &buf); err == nil {
			t.Error("GetBackup() expected error for unknown host")
		}
	})

	t.Run("version is zero before the first backup", func(t *testing.T) {
		v, err := NewFileSystemVault("local", t.TempDir())
		if err != nil {
			t.Fatalf("NewFileSystemVault() error = %v", err)
		}

		version, err := v.GetBackupVersion("host-1")
		if err != nil {
			t.Fatalf("GetBackupVersion() error = %v", err)
		}
		if version != 0 {
			t.Errorf("GetBackupVersion() = %d, want 0", version)
		}
	})

	t.Run("validate fails when root is a file", func(t *testing.T) {
		root := t.TempDir()
		filePath := filepath.Join(root, "not-a-dir")
		if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		v := &FileSystemVault{name: "local", root: filePath}
		if err := v.ValidateSetup(); err == nil {
			t.Error("ValidateSetup() expected error for non-directory root")
		}
	})
}
