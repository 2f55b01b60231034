package cards

import (
	"context"

	"dc-go/internal/model"
)

// ImportMode selects how Import reconciles the dump with existing data.
type ImportMode string

const (
	// ImportReplace clears all three collections before inserting the dump.
	ImportReplace ImportMode = "replace"
	// ImportMerge reconciles record-by-record: existing profile fields win
	// (updatedAt takes the later of the two), incoming events and photos win.
	ImportMerge ImportMode = "merge"
)

// ProfileInput carries the user-settable fields for creating a profile.
type ProfileInput struct {
	Name           string              `validate:"required"`
	Status         model.ProfileStatus `validate:"required,oneof=New Talking FirstDate Regular Cooling Closed"`
	Contacts       *model.Contacts
	Attractiveness *int `validate:"omitempty,min=0,max=5"`
	Vibe           *int `validate:"omitempty,min=0,max=5"`
	Notes          string
}

// ProfilePatch is an explicit field-by-field partial update. A nil field
// is left untouched; a set field replaces the stored value. Contacts is
// replaced wholesale, never deep-merged. UpdatedAt is normally forced to
// the current time by the store; a patch that carries one overrides it
// (used only by import).
type ProfilePatch struct {
	Name              *string
	Status            *model.ProfileStatus `validate:"omitempty,oneof=New Talking FirstDate Regular Cooling Closed"`
	Contacts          *model.Contacts
	Attractiveness    *int `validate:"omitempty,min=0,max=5"`
	Vibe              *int `validate:"omitempty,min=0,max=5"`
	Notes             *string
	LastInteractionAt *string
	UpdatedAt         *string
}

// EventInput carries the user-settable fields for logging an interaction.
type EventInput struct {
	Type model.EventType `validate:"required,oneof=message call date important"`
	At   string          `validate:"required"`
	Mood *string
	Text *string
}

// Store is the persistence boundary consumed by the service layer and,
// through it, by every screen of the app. Implementations must wrap each
// multi-step operation (cascade delete, photo and event dual writes) in a
// single transaction so partial effects are never observable.
type Store interface {
	// ListProfiles returns all profiles ordered by updatedAt descending.
	ListProfiles(ctx context.Context) ([]*model.Profile, error)

	// GetProfile returns the profile with the given id, or (nil, nil) if
	// no such profile exists.
	GetProfile(ctx context.Context, id string) (*model.Profile, error)

	// GetPhoto returns the photo with the given id, or (nil, nil).
	GetPhoto(ctx context.Context, id string) (*model.Photo, error)

	// CreateProfile allocates an id, stamps createdAt/updatedAt, starts
	// with an empty photo list and persists the record.
	CreateProfile(ctx context.Context, in ProfileInput) (*model.Profile, error)

	// UpdateProfile merges the patch onto the stored record and bumps
	// updatedAt. Returns ErrProfileNotFound if the id is unknown; nothing
	// is written in that case.
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*model.Profile, error)

	// DeleteProfile removes the profile, every event referencing it and
	// every photo listed in its photoIds, all in one transaction. Unknown
	// ids are a no-op.
	DeleteProfile(ctx context.Context, id string) error

	// AddPhoto stores a new photo and appends its id to the profile's
	// photoIds (new photo last) in one transaction.
	AddPhoto(ctx context.Context, profileID, mime string, data []byte) (*model.Photo, error)

	// RemovePhoto deletes the photo record and drops its id from the
	// profile's photoIds in one transaction. A photoId absent from the
	// list is a no-op on the list side; the record deletion still runs.
	RemovePhoto(ctx context.Context, profileID, photoID string) error

	// ListEvents returns the profile's events ordered by `at` descending.
	ListEvents(ctx context.Context, profileID string) ([]*model.TimelineEvent, error)

	// ListEventsRange returns events across all profiles whose `at` falls
	// within [fromISO, toISO] inclusive, ordered by `at` descending.
	ListEventsRange(ctx context.Context, fromISO, toISO string) ([]*model.TimelineEvent, error)

	// AddEvent persists the event and, in the same transaction, bumps the
	// profile's updatedAt and raises lastInteractionAt to the event's `at`
	// if it is later (monotonic max; backdated events never move it back).
	AddEvent(ctx context.Context, profileID string, in EventInput) (*model.TimelineEvent, error)

	// DeleteEvent removes the event record. Unknown ids are a no-op.
	// The owning profile's lastInteractionAt is deliberately left as-is.
	DeleteEvent(ctx context.Context, eventID string) error

	// Export reads all three collections.
	Export(ctx context.Context) (*model.Snapshot, error)

	// Import writes the snapshot according to mode. Each collection is
	// written in its own transaction; a failure never leaves a collection
	// partially written, but previously committed collections stay.
	Import(ctx context.Context, snap *model.Snapshot, mode ImportMode) error

	// WipeAll clears all three collections unconditionally.
	WipeAll(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
