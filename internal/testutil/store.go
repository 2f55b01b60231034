package testutil

import (
	"testing"

	"dc-go/internal/cards"
	"dc-go/internal/database"
)

// NewTestStore creates an in-memory SQLite store with the schema applied
// and deterministic clock and id generator. The store is closed when the
// test completes.
func NewTestStore(t *testing.T) (cards.Store, *StubClock, *StubIDGenerator) {
	t.Helper()

	sqlDB, err := database.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if _, err := sqlDB.Exec(database.Schema); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	clock := FixedClock()
	idgen := NewStubIDGenerator()
	store := database.NewSQLiteStoreFromDB(sqlDB, clock, idgen)

	t.Cleanup(func() {
		store.Close()
	})

	return store, clock, idgen
}
