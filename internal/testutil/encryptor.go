package testutil

import (
	"dc-go/internal/cards"
	"dc-go/internal/encryption"
)

// NewTestEncryptor creates a new XOR test encryptor.
func NewTestEncryptor() cards.Encryptor {
	return encryption.NewTestEncryptor()
}
