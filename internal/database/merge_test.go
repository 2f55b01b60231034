package database

import (
	"testing"

	"dc-go/internal/cards"
	"dc-go/internal/model"
)

func TestApplyPatch(t *testing.T) {
	base := func() *model.Profile {
		return &model.Profile{
			ID:        "p-1",
			Name:      "Dana",
			Status:    model.StatusTalking,
			Notes:     "original",
			CreatedAt: "2024-01-01T00:00:00.000Z",
			UpdatedAt: "2024-01-01T00:00:00.000Z",
			PhotoIDs:  []string{"ph-1"},
		}
	}

	t.Run("empty patch only bumps updatedAt", func(t *testing.T) {
		out := applyPatch(base(), cards.ProfilePatch{}, "2024-01-02T00:00:00.000Z")

		if out.Name != "Dana" || out.Status != model.StatusTalking || out.Notes != "original" {
			t.Errorf("fields changed by empty patch: %+v", out)
		}
		if out.UpdatedAt != "2024-01-02T00:00:00.000Z" {
			t.Errorf("UpdatedAt = %v, want now", out.UpdatedAt)
		}
		if out.CreatedAt != "2024-01-01T00:00:00.000Z" {
			t.Errorf("CreatedAt = %v, want unchanged", out.CreatedAt)
		}
	})

	t.Run("set fields replace stored values", func(t *testing.T) {
		status := model.StatusClosed
		out := applyPatch(base(), cards.ProfilePatch{
			Name:   strptr("Renamed"),
			Status: &status,
			Notes:  strptr(""),
			Vibe:   intptr(2),
		}, "2024-01-02T00:00:00.000Z")

		if out.Name != "Renamed" {
			t.Errorf("Name = %v, want Renamed", out.Name)
		}
		if out.Status != model.StatusClosed {
			t.Errorf("Status = %v, want Closed", out.Status)
		}
		if out.Notes != "" {
			t.Errorf("Notes = %q, want cleared", out.Notes)
		}
		if out.Vibe == nil || *out.Vibe != 2 {
			t.Errorf("Vibe = %v, want 2", out.Vibe)
		}
	})

	t.Run("patch-supplied updatedAt overrides now", func(t *testing.T) {
		out := applyPatch(base(), cards.ProfilePatch{
			UpdatedAt: strptr("2024-03-01T00:00:00.000Z"),
		}, "2024-01-02T00:00:00.000Z")

		if out.UpdatedAt != "2024-03-01T00:00:00.000Z" {
			t.Errorf("UpdatedAt = %v, want patch value", out.UpdatedAt)
		}
	})

	t.Run("does not mutate the existing record", func(t *testing.T) {
		existing := base()
		applyPatch(existing, cards.ProfilePatch{Name: strptr("Other")}, "2024-01-02T00:00:00.000Z")

		if existing.Name != "Dana" {
			t.Errorf("existing.Name = %v, patch mutated its input", existing.Name)
		}
	})
}

func TestMergeProfiles(t *testing.T) {
	t.Run("existing fields win and gaps fill from incoming", func(t *testing.T) {
		existing := &model.Profile{
			ID: "p-1", Name: "Dana", Status: model.StatusRegular,
			Notes:     "kept",
			UpdatedAt: "2024-01-05T00:00:00.000Z",
		}
		incoming := &model.Profile{
			ID: "p-1", Name: "Other", Status: model.StatusClosed,
			Contacts:          &model.Contacts{Telegram: "@dana"},
			Vibe:              intptr(3),
			Notes:             "incoming",
			LastInteractionAt: "2024-01-04T00:00:00.000Z",
			UpdatedAt:         "2024-01-03T00:00:00.000Z",
			PhotoIDs:          []string{"ph-1"},
		}

		out := mergeProfiles(existing, incoming)

		if out.Name != "Dana" || out.Status != model.StatusRegular || out.Notes != "kept" {
			t.Errorf("existing fields lost: %+v", out)
		}
		if out.Contacts == nil || out.Contacts.Telegram != "@dana" {
			t.Errorf("Contacts = %+v, want filled from incoming", out.Contacts)
		}
		if out.Vibe == nil || *out.Vibe != 3 {
			t.Errorf("Vibe = %v, want filled from incoming", out.Vibe)
		}
		if out.LastInteractionAt != "2024-01-04T00:00:00.000Z" {
			t.Errorf("LastInteractionAt = %v, want filled from incoming", out.LastInteractionAt)
		}
		if len(out.PhotoIDs) != 1 || out.PhotoIDs[0] != "ph-1" {
			t.Errorf("PhotoIDs = %v, want filled from incoming", out.PhotoIDs)
		}
		if out.UpdatedAt != "2024-01-05T00:00:00.000Z" {
			t.Errorf("UpdatedAt = %v, want later of the two", out.UpdatedAt)
		}
	})

	t.Run("incoming updatedAt wins when later", func(t *testing.T) {
		existing := &model.Profile{ID: "p-1", UpdatedAt: "2024-01-03T00:00:00.000Z"}
		incoming := &model.Profile{ID: "p-1", UpdatedAt: "2024-01-05T00:00:00.000Z"}

		out := mergeProfiles(existing, incoming)
		if out.UpdatedAt != "2024-01-05T00:00:00.000Z" {
			t.Errorf("UpdatedAt = %v, want incoming", out.UpdatedAt)
		}
	})
}

func TestMergeEvents(t *testing.T) {
	t.Run("incoming wins, omitted optionals kept", func(t *testing.T) {
		existing := &model.TimelineEvent{
			ID: "ev-1", ProfileID: "p-1", Type: model.EventMessage,
			At:   "2024-01-01T00:00:00.000Z",
			Mood: strptr("old mood"),
			Text: strptr("old text"),
		}
		incoming := &model.TimelineEvent{
			ID: "ev-1", ProfileID: "p-1", Type: model.EventDate,
			At:   "2024-01-02T00:00:00.000Z",
			Text: strptr("new text"),
		}

		out := mergeEvents(existing, incoming)

		if out.Type != model.EventDate || out.At != "2024-01-02T00:00:00.000Z" {
			t.Errorf("incoming fields lost: %+v", out)
		}
		if out.Text == nil || *out.Text != "new text" {
			t.Errorf("Text = %v, want incoming", out.Text)
		}
		if out.Mood == nil || *out.Mood != "old mood" {
			t.Errorf("Mood = %v, want kept from existing", out.Mood)
		}
	})
}
