package vault

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"dc-go/internal/cards"
)

// MemoryVault is an in-memory implementation of the Vault interface.
// It keeps one backup per host, making it useful for testing.
// This implementation is safe for concurrent use.
type MemoryVault struct {
	name     string
	backups  map[string][]byte // hostID -> dump bytes
	versions map[string]int64  // hostID -> version marker
	mu       sync.RWMutex
}

// NewMemoryVault creates a new in-memory vault with the given name.
func NewMemoryVault(name string) *MemoryVault {
	return &MemoryVault{
		name:     name,
		backups:  make(map[string][]byte),
		versions: make(map[string]int64),
	}
}

// PutBackup stores a dump for the host, replacing any previous one.
func (m *MemoryVault) PutBackup(hostID string, r io.Reader, size int64, version int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.backups[hostID] = data
	m.versions[hostID] = version
	return nil
}

// GetBackup writes the host's stored dump to w.
func (m *MemoryVault) GetBackup(hostID string, w io.Writer) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.backups[hostID]
	if !ok {
		return fmt.Errorf("backup not found for host: %s", hostID)
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return nil
}

// GetBackupVersion returns the stored version marker for a host.
// Returns 0 if no backup has been stored for this host.
func (m *MemoryVault) GetBackupVersion(hostID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.versions[hostID], nil
}

// ValidateSetup always succeeds for in-memory vault.
func (m *MemoryVault) ValidateSetup() error {
	return nil
}

// Compile-time check that MemoryVault implements the cards.Vault interface
var _ cards.Vault = (*MemoryVault)(nil)
