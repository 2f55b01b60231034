package vault

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemoryVault(t *testing.T) {
	t.Run("put then get round-trips the dump", func(t *testing.T) {
		v := NewMemoryVault("test")

		dump := `{"version": 1}`
		if err := v.PutBackup("host-1", strings.NewReader(dump), int64(len(dump)), 42); err != nil {
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
		if version != 42 {
			t.Errorf("GetBackupVersion() = %d, want 42", version)
		}
	})

	t.Run("second put replaces the first", func(t *testing.T) {
		v := NewMemoryVault("test")

		if err := v.PutBackup("host-1", strings.NewReader("old"), 3, 1); err != nil {
			t.Fatalf("PutBackup(old) error = %v", err)
		}
		if err := v.PutBackup("host-1", strings.NewReader("newer"), 5, 2); err != nil {
			t.Fatalf("PutBackup(newer) error = %v", err)
		}

		var buf bytes.Buffer
		if err := v.GetBackup("host-1", &buf); err != nil {
			t.Fatalf("GetBackup() error = %v", err)
		}
		if buf.String() != "newer" {
			t.Errorf("GetBackup() = %q, want newer", buf.String())
		}
		if version, _ := v.GetBackupVersion("host-1"); version != 2 {
			t.Errorf("GetBackupVersion() = %d, want 2", version)
		}
	})

	t.Run("rejects a size mismatch", func(t *testing.T) {
		v := NewMemoryVault("test")

		if err := v.PutBackup("host-1", strings.NewReader("abc"), 99, 1); err == nil {
			t.Error("PutBackup() expected error for size mismatch")
		}
	})

	t.Run("get fails for unknown host", func(t *testing.T) {
		v := NewMemoryVault("test")

		var buf bytes.Buffer
		if err := v.GetBackup("nonexistent", &buf); err == nil {
			t.Error("GetBackup() expected error for unknown host")
		}
	})

	t.Run("version is zero for unknown host", func(t *testing.T) {
		v := NewMemoryVault("test")

		version, err := v.GetBackupVersion("nonexistent")
		if err != nil {
			t.Fatalf("GetBackupVersion() error = %v", err)
		}
		if version != 0 {
			t.Errorf("GetBackupVersion() = %d, want 0", version)
		}
	})

	t.Run("hosts are isolated", func(t *testing.T) {
		v := NewMemoryVault("test")

		v.PutBackup("host-1", strings.NewReader("one"), 3, 1)
		v.PutBackup("host-2", strings.NewReader("two"), 3, 2)

		var buf bytes.Buffer
		if err := v.GetBackup("host-1", &buf); err != nil {
			t.Fatalf("GetBackup() error = %v", err)
		}
		if buf.String() != "one" {
			t.Errorf("GetBackup(host-1) = %q, want one", buf.String())
		}
	})
}
