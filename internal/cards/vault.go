package cards

import "io"

// Vault is an off-device destination for export dumps. One dump is kept
// per host, replaced on every backup. This is a one-shot push/pull of the
// export file, not synchronization.
type Vault interface {
	// PutBackup stores a dump for the host, replacing any previous one.
	// version is an opaque monotonic marker (unix timestamp of the backup).
	PutBackup(hostID string, r io.Reader, size int64, version int64) error

	// GetBackup writes the host's stored dump to w.
	GetBackup(hostID string, w io.Writer) error

	// GetBackupVersion returns the stored version marker, or 0 when no
	// backup exists for the host.
	GetBackupVersion(hostID string) (int64, error)

	// ValidateSetup verifies the backend is reachable and writable.
	ValidateSetup() error
}
