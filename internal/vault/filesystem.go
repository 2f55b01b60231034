package vault

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dc-go/internal/cards"
)

// FileSystemVault is a filesystem-based implementation of the Vault
// interface. It keeps one dump per host in a flat directory:
//
//	<root>/
//	  <hostID>.json     (the export dump)
//	  <hostID>.version  (backup version marker)
type FileSystemVault struct {
	name string
	root string
}

// NewFileSystemVault creates a new filesystem vault rooted at the given path.
func NewFileSystemVault(name, root string) (*FileSystemVault, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	return &FileSystemVault{name: name, root: root}, nil
}

// PutBackup stores a dump for the host along with its version marker.
func (v *FileSystemVault) PutBackup(hostID string, r io.Reader, size int64, version int64) error {
	destPath := filepath.Join(v.root, hostID+".json")

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(destPath)
		return fmt.Errorf("writing backup file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing backup file: %w", err)
	}

	if written != size {
		os.Remove(destPath)
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, written)
	}

	versionPath := filepath.Join(v.root, hostID+".version")
	versionData := strconv.FormatInt(version, 10)
	return os.WriteFile(versionPath, []byte(versionData), 0644)
}

// GetBackup retrieves the host's dump and writes it to w.
func (v *FileSystemVault) GetBackup(hostID string, w io.Writer) error {
	srcPath := filepath.Join(v.root, hostID+".json")

	f, err := os.Open(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup not found for host: %s", hostID)
		}
		return fmt.Errorf("opening backup file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("reading backup file: %w", err)
	}
	return nil
}

// GetBackupVersion returns the backup version for a host.
// Returns 0 if no version file exists.
func (v *FileSystemVault) GetBackupVersion(hostID string) (int64, error) {
	versionPath := filepath.Join(v.root, hostID+".version")
	data, err := os.ReadFile(versionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading version file: %w", err)
	}

	version, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing version: %w", err)
	}
	return version, nil
}

// ValidateSetup verifies that the vault directory is accessible.
func (v *FileSystemVault) ValidateSetup() error {
	info, err := os.Stat(v.root)
	if err != nil {
		return fmt.Errorf("vault root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault root is not a directory: %s", v.root)
	}
	return nil
}

// Compile-time check that FileSystemVault implements the cards.Vault interface
var _ cards.Vault = (*FileSystemVault)(nil)
