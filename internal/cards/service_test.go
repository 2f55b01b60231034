package cards_test

import (
	"context"
	"testing"

	"dc-go/internal/cards"
	"dc-go/internal/model"
	"dc-go/internal/testutil"
)

func newTestService(t *testing.T) *cards.Service {
	t.Helper()

	store, clock, _ := testutil.NewTestStore(t)
	return cards.NewService(store, cards.NewNopLogger(), clock)
}

func strptr(s string) *string { return &s }

func intptr(v int) *int { return &v }

func TestService_CreateProfile(t *testing.T) {
	t.Run("creates a minimal profile", func(t *testing.T) {
		svc := newTestService(t)

		p, err := svc.CreateProfile(context.Background(), cards.ProfileInput{
			Name:   "Dana",
			Status: model.StatusNew,
		})
		if err != nil {
			t.Fatalf("CreateProfile() error = %v", err)
		}
		if p.ID == "" {
			t.Error("ID is empty")
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.CreateProfile(context.Background(), cards.ProfileInput{
			Status: model.StatusNew,
		})
		if err == nil {
			t.Error("CreateProfile() expected validation error for empty name")
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.CreateProfile(context.Background(), cards.ProfileInput{
			Name:   "Dana",
			Status: "Married",
		})
		if err == nil {
			t.Error("CreateProfile() expected validation error for unknown status")
		}
	})

	t.Run("rejects an out-of-range rating", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.CreateProfile(context.Background(), cards.ProfileInput{
			Name:           "Dana",
			Status:         model.StatusNew,
			Attractiveness: intptr(6),
		})
		if err == nil {
			t.Error("CreateProfile() expected validation error for rating 6")
		}
	})
}

func TestService_UpdateProfile(t *testing.T) {
	t.Run("rejects an unknown status in the patch", func(t *testing.T) {
		svc := newTestService(t)

		p, err := svc.CreateProfile(context.Background(), cards.ProfileInput{
			Name:   "Dana",
			Status: model.StatusNew,
		})
		if err != nil {
			t.Fatalf("CreateProfile() error = %v", err)
		}

		bad := model.ProfileStatus("Ghosting")
		_, err = svc.UpdateProfile(context.Background(), p.ID, cards.ProfilePatch{Status: &bad})
		if err == nil {
			t.Error("UpdateProfile() expected validation error for unknown status")
		}
	})
}

func TestService_AddEvent(t *testing.T) {
	t.Run("normalizes the timestamp to the canonical layout", func(t *testing.T) {
		svc := newTestService(t)
		ctx := context.Background()

		p, err := svc.CreateProfile(ctx, cards.ProfileInput{Name: "Dana", Status: model.StatusNew})
		if err != nil {
			t.Fatalf("CreateProfile() error = %v", err)
		}

		ev, err := svc.AddEvent(ctx, p.ID, cards.EventInput{
			Type: model.EventCall,
			At:   "2024-01-14T21:00:00+01:00",
		})
		if err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
		if ev.At != "2024-01-14T20:00:00.000Z" {
			t.Errorf("At = %v, want 2024-01-14T20:00:00.000Z", ev.At)
		}
	})

	t.Run("rejects an unknown event type", func(t *testing.T) {
		svc := newTestService(t)
		ctx := context.Background()

		p, _ := svc.CreateProfile(ctx, cards.ProfileInput{Name: "Dana", Status: model.StatusNew})

		_, err := svc.AddEvent(ctx, p.ID, cards.EventInput{
			Type: "brunch",
			At:   "2024-01-14T20:00:00.000Z",
		})
		if err == nil {
			t.Error("AddEvent() expected validation error for unknown type")
		}
	})

	t.Run("rejects a missing timestamp", func(t *testing.T) {
		svc := newTestService(t)
		ctx := context.Background()

		p, _ := svc.CreateProfile(ctx, cards.ProfileInput{Name: "Dana", Status: model.StatusNew})

		_, err := svc.AddEvent(ctx, p.ID, cards.EventInput{Type: model.EventMessage})
		if err == nil {
			t.Error("AddEvent() expected validation error for missing timestamp")
		}
	})

	t.Run("rejects an unparsable timestamp", func(t *testing.T) {
		svc := newTestService(t)
		ctx := context.Background()

		p, _ := svc.CreateProfile(ctx, cards.ProfileInput{Name: "Dana", Status: model.StatusNew})

		_, err := svc.AddEvent(ctx, p.ID, cards.EventInput{
			Type: model.EventMessage,
			At:   "last tuesday",
		})
		if err == nil {
			t.Error("AddEvent() expected error for unparsable timestamp")
		}
	})
}

func TestService_ListEventsRange(t *testing.T) {
	t.Run("rejects unparsable bounds", func(t *testing.T) {
		svc := newTestService(t)

		if _, err := svc.ListEventsRange(context.Background(), "not-a-time", "2024-01-14T20:00:00.000Z"); err == nil {
			t.Error("ListEventsRange() expected error for bad range start")
		}
		if _, err := svc.ListEventsRange(context.Background(), "2024-01-14T20:00:00.000Z", "not-a-time"); err == nil {
			t.Error("ListEventsRange() expected error for bad range end")
		}
	})
}

func TestService_AddPhoto(t *testing.T) {
	t.Run("rejects an empty payload", func(t *testing.T) {
		svc := newTestService(t)
		ctx := context.Background()

		p, _ := svc.CreateProfile(ctx, cards.ProfileInput{Name: "Dana", Status: model.StatusNew})

		_, err := svc.AddPhoto(ctx, p.ID, "image/jpeg", nil)
		if err == nil {
			t.Error("AddPhoto() expected error for empty payload")
		}
	})
}
