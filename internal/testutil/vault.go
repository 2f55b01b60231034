package testutil

import (
	"dc-go/internal/cards"
	"dc-go/internal/vault"
)

// NewTestVault creates a new in-memory vault for testing.
func NewTestVault() cards.Vault {
	return vault.NewMemoryVault("test-vault")
}
