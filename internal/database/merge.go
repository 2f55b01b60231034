package database

import (
	"dc-go/internal/cards"
	"dc-go/internal/model"
)

// applyPatch produces the profile that results from applying patch to
// existing. Each field's update rule is explicit: a nil patch field keeps
// the stored value, a set field replaces it. Contacts is replaced
// wholesale; individual handles are never deep-merged. ID and createdAt
// are immutable. updatedAt is forced to now unless the patch carries its
// own value (the import path does).
func applyPatch(existing *model.Profile, patch cards.ProfilePatch, now string) *model.Profile {
	out := *existing

	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	if patch.Contacts != nil {
		out.Contacts = patch.Contacts
	}
	if patch.Attractiveness != nil {
		out.Attractiveness = patch.Attractiveness
	}
	if patch.Vibe != nil {
		out.Vibe = patch.Vibe
	}
	if patch.Notes != nil {
		out.Notes = *patch.Notes
	}
	if patch.LastInteractionAt != nil {
		out.LastInteractionAt = *patch.LastInteractionAt
	}

	out.UpdatedAt = now
	if patch.UpdatedAt != nil {
		out.UpdatedAt = *patch.UpdatedAt
	}

	return &out
}

// mergeProfiles resolves an import-merge collision: the existing record's
// fields take precedence, incoming fills only the optional fields the
// existing record lacks, and updatedAt becomes the chronologically later
// of the two (ISO string max).
func mergeProfiles(existing, incoming *model.Profile) *model.Profile {
	out := *existing

	if out.Contacts == nil {
		out.Contacts = incoming.Contacts
	}
	if out.Attractiveness == nil {
		out.Attractiveness = incoming.Attractiveness
	}
	if out.Vibe == nil {
		out.Vibe = incoming.Vibe
	}
	if out.Notes == "" {
		out.Notes = incoming.Notes
	}
	if out.LastInteractionAt == "" {
		out.LastInteractionAt = incoming.LastInteractionAt
	}
	if len(out.PhotoIDs) == 0 {
		out.PhotoIDs = incoming.PhotoIDs
	}

	out.UpdatedAt = cards.MaxISO(existing.UpdatedAt, incoming.UpdatedAt)
	return &out
}

// mergeEvents resolves an import-merge collision for events: the incoming
// record wins field by field, keeping the existing value only where the
// incoming record omits an optional field.
func mergeEvents(existing, incoming *model.TimelineEvent) *model.TimelineEvent {
	out := *incoming

	if out.Mood == nil {
		out.Mood = existing.Mood
	}
	if out.Text == nil {
		out.Text = existing.Text
	}
	return &out
}
