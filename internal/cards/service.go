package cards

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dc-go/internal/model"
)

// Service is the orchestration layer between the CLI and the Store. It
// validates input before any write, normalizes user-supplied timestamps
// to the canonical layout, handles the export/import wire codec and logs
// every mutating operation.
type Service struct {
	store    Store
	logger   Logger
	clock    Clock
	validate *validator.Validate
}

// NewService creates a Service with the provided dependencies.
func NewService(store Store, logger Logger, clock Clock) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		clock:    clock,
		validate: validator.New(),
	}
}

// ListProfiles returns all profiles, most recently updated first.
func (s *Service) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return s.store.ListProfiles(ctx)
}

// GetProfile returns a profile by id, or (nil, nil) when absent.
func (s *Service) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	return s.store.GetProfile(ctx, id)
}

// GetPhoto returns a photo by id, or (nil, nil) when absent.
func (s *Service) GetPhoto(ctx context.Context, id string) (*model.Photo, error) {
	return s.store.GetPhoto(ctx, id)
}

// CreateProfile validates the input and persists a new profile.
func (s *Service) CreateProfile(ctx context.Context, in ProfileInput) (*model.Profile, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	p, err := s.store.CreateProfile(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile created", "id", p.ID, "name", p.Name, "status", p.Status)
	return p, nil
}

// UpdateProfile validates the patch and applies it to the stored profile.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*model.Profile, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("validating patch: %w", err)
	}

	p, err := s.store.UpdateProfile(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "id", p.ID)
	return p, nil
}

// DeleteProfile removes a profile with its events and photos.
func (s *Service) DeleteProfile(ctx context.Context, id string) error {
	if err := s.store.DeleteProfile(ctx, id); err != nil {
		return err
	}
	s.logger.Info("profile deleted", "id", id)
	return nil
}

// AddPhoto attaches a photo to a profile.
func (s *Service) AddPhoto(ctx context.Context, profileID, mime string, data []byte) (*model.Photo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("photo payload is empty")
	}

	photo, err := s.store.AddPhoto(ctx, profileID, mime, data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("photo added", "profile", profileID, "photo", photo.ID, "mime", mime, "bytes", len(data))
	return photo, nil
}

// RemovePhoto detaches and deletes a photo.
func (s *Service) RemovePhoto(ctx context.Context, profileID, photoID string) error {
	if err := s.store.RemovePhoto(ctx, profileID, photoID); err != nil {
		return err
	}
	s.logger.Info("photo removed", "profile", profileID, "photo", photoID)
	return nil
}

// ListEvents returns a profile's timeline, newest interaction first.
func (s *Service) ListEvents(ctx context.Context, profileID string) ([]*model.TimelineEvent, error) {
	return s.store.ListEvents(ctx, profileID)
}

// ListEventsRange returns events across all profiles within the inclusive
// [from, to] window. Both bounds must be parseable timestamps.
func (s *Service) ListEventsRange(ctx context.Context, fromISO, toISO string) ([]*model.TimelineEvent, error) {
	from, err := ParseISO(fromISO)
	if err != nil {
		return nil, fmt.Errorf("parsing range start: %w", err)
	}
	to, err := ParseISO(toISO)
	if err != nil {
		return nil, fmt.Errorf("parsing range end: %w", err)
	}
	return s.store.ListEventsRange(ctx, FormatISO(from), FormatISO(to))
}

// AddEvent validates and logs an interaction on a profile's timeline.
// The event's `at` is normalized to the canonical layout so that string
// comparisons against stored timestamps stay meaningful.
func (s *Service) AddEvent(ctx context.Context, profileID string, in EventInput) (*model.TimelineEvent, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validating event: %w", err)
	}

	at, err := ParseISO(in.At)
	if err != nil {
		return nil, fmt.Errorf("parsing event time: %w", err)
	}
	in.At = FormatISO(at)

	ev, err := s.store.AddEvent(ctx, profileID, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event added", "profile", profileID, "event", ev.ID, "type", ev.Type, "at", ev.At)
	return ev, nil
}

// DeleteEvent removes an event from the timeline. The owning profile's
// lastInteractionAt is not recomputed; it may go stale until the next
// AddEvent.
func (s *Service) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	s.logger.Info("event deleted", "event", eventID)
	return nil
}

// WipeAll clears every collection. Destructive and immediate; any
// confirmation happens in the CLI, not here.
func (s *Service) WipeAll(ctx context.Context) error {
	if err := s.store.WipeAll(ctx); err != nil {
		return err
	}
	s.logger.Warn("all collections wiped")
	return nil
}
