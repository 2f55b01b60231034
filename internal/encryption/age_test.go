package encryption

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"dc-go/internal/config"
)

func newTestAgeEncryptor(t *testing.T) *AgeEncryptor {
	t.Helper()

	dir := t.TempDir()
	return NewAgeEncryptor(config.EncryptionConfig{
		PublicKeyPath:  filepath.Join(dir, "dc.pub"),
		PrivateKeyPath: filepath.Join(dir, "dc.key"),
	})
}

func TestAgeEncryptor_Setup(t *testing.T) {
	t.Run("writes both key files", func(t *testing.T) {
		e := newTestAgeEncryptor(t)

		if e.IsConfigured() {
			t.Error("IsConfigured() = true before Setup")
		}
		if err := e.Setup("passphrase"); err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		if !e.IsConfigured() {
			t.Error("IsConfigured() = false after Setup")
		}
	})
}

func TestAgeEncryptor_RoundTrip(t *testing.T) {
	t.Run("encrypt then unlock and decrypt recovers plaintext", func(t *testing.T) {
		e := newTestAgeEncryptor(t)
		if err := e.Setup("correct horse"); err != nil {
			t.Fatalf("Setup() error = %v", err)
		}

		plaintext := `{"version": 1, "profiles": []}`
		var ciphertext bytes.Buffer
		if err := e.Encrypt(strings.NewReader(plaintext), &ciphertext); err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}
		if strings.Contains(ciphertext.String(), "profiles") {
			t.Error("ciphertext contains plaintext")
		}

		dctx, err := e.Unlock("correct horse")
		if err != nil {
			t.Fatalf("Unlock() error = %v", err)
		}

		var decrypted bytes.Buffer
		if err := dctx.Decrypt(bytes.NewReader(ciphertext.Bytes()), &decrypted); err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if decrypted.String() != plaintext {
			t.Errorf("Decrypt() = %q, want %q", decrypted.String(), plaintext)
		}
	})

	t.Run("unlock fails with the wrong passphrase", func(t *testing.T) {
		e := newTestAgeEncryptor(t)
		if err := e.Setup("right"); err != nil {
			t.Fatalf("Setup() error = %v", err)
		}

		if _, err := e.Unlock("wrong"); err == nil {
			t.Error("Unlock() expected error for wrong passphrase")
		}
	})

	t.Run("encrypt fails before setup", func(t *testing.T) {
		e := newTestAgeEncryptor(t)

		var buf bytes.Buffer
		if err := e.Encrypt(strings.NewReader("data"), &buf); err == nil {
			t.Error("Encrypt() expected error without keys")
		}
	})
}
