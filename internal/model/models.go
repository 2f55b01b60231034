package model

// ProfileStatus is the relationship stage of a tracked person.
type ProfileStatus string

const (
	StatusNew       ProfileStatus = "New"
	StatusTalking   ProfileStatus = "Talking"
	StatusFirstDate ProfileStatus = "FirstDate"
	StatusRegular   ProfileStatus = "Regular"
	StatusCooling   ProfileStatus = "Cooling"
	StatusClosed    ProfileStatus = "Closed"
)

// EventType categorizes a logged interaction.
type EventType string

const (
	EventMessage   EventType = "message"
	EventCall      EventType = "call"
	EventDate      EventType = "date"
	EventImportant EventType = "important"
)

// Contacts holds optional messenger handles for a profile.
// Updates replace the whole struct; individual handles are never merged.
type Contacts struct {
	Telegram  string `json:"telegram,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is a tracked person. All timestamps are ISO-8601 strings of the
// form 2006-01-02T15:04:05.000Z so that lexicographic comparison matches
// chronological order.
type Profile struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Status         ProfileStatus `json:"status"`
	Contacts       *Contacts     `json:"contacts,omitempty"`
	Attractiveness *int          `json:"attractiveness,omitempty"` // 0-5
	Vibe           *int          `json:"vibe,omitempty"`           // 0-5
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      string        `json:"createdAt"`
	UpdatedAt      string        `json:"updatedAt"`

	// LastInteractionAt is the maximum `at` across the profile's events.
	// It is maintained by AddEvent and never set directly by the user.
	LastInteractionAt string `json:"lastInteractionAt,omitempty"`

	// PhotoIDs is ordered; the first entry is the main photo.
	PhotoIDs []string `json:"photoIds"`
}

// TimelineEvent is a logged interaction belonging to a profile.
// At is user-editable and may be backdated; CreatedAt is system time.
type TimelineEvent struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Type      EventType `json:"type"`
	At        string    `json:"at"`
	Mood      *string   `json:"mood,omitempty"`
	Text      *string   `json:"text,omitempty"`
	CreatedAt string    `json:"createdAt"`
}

// Photo is a binary image attachment. The blob is immutable once stored;
// only its membership in a profile's PhotoIDs changes.
type Photo struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Mime      string `json:"mime"`
	Blob      []byte `json:"-"`
}

// Snapshot is a decoded point-in-time copy of all three collections.
// It is what the store exports and imports; the base64 wire encoding
// lives in ExportDumpV1.
type Snapshot struct {
	Profiles []*Profile
	Events   []*TimelineEvent
	Photos   []*Photo
}

// ExportPhoto is the wire form of a Photo: the blob re-encoded as standard
// base64 text, since the dump is serialized to JSON.
type ExportPhoto struct {
	ID         string `json:"id"`
	CreatedAt  string `json:"createdAt"`
	Mime       string `json:"mime"`
	DataBase64 string `json:"dataBase64"`
}

// DumpVersion is the only export format version this build reads or writes.
const DumpVersion = 1

// ExportDumpV1 is the versioned export file format.
type ExportDumpV1 struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exportedAt"`
	Profiles   []*Profile       `json:"profiles"`
	Events     []*TimelineEvent `json:"events"`
	Photos     []ExportPhoto    `json:"photos"`
}
