package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dc-go/internal/cards"
	"dc-go/internal/database/migrations"
	"dc-go/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the cards.Store interface using SQLite.
// All timestamps are stored as ISO-8601 TEXT so that SQL ordering and the
// string comparisons in the merge rules agree with chronological order.
// A profile's photo_ids column holds a JSON-encoded array to preserve the
// significant ordering (first id = main photo).
type SQLiteStore struct {
	db    *sql.DB
	path  string
	clock cards.Clock
	idgen cards.IDGenerator
}

// NewSQLiteStore creates a new SQLite-backed store.
// path can be a file path or ":memory:" for an in-memory database.
// clock and idgen may be nil, in which case real implementations are used.
func NewSQLiteStore(path string, clock cards.Clock, idgen cards.IDGenerator) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}
	s := NewSQLiteStoreFromDB(db, clock, idgen)
	s.path = path
	return s, nil
}

// NewSQLiteStoreFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteStoreFromDB(db *sql.DB, clock cards.Clock, idgen cards.IDGenerator) *SQLiteStore {
	if clock == nil {
		clock = cards.RealClock{}
	}
	if idgen == nil {
		idgen = cards.UUIDGenerator{}
	}
	return &SQLiteStore{db: db, clock: clock, idgen: idgen}
}

// OpenConnection opens and configures a SQLite connection with appropriate
// PRAGMAs. Exported for tools and tests that need a properly configured
// connection. path can be a file path or ":memory:".
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

const profileColumns = "id, name, status, contact_telegram, contact_instagram, attractiveness, vibe, notes, created_at, updated_at, last_interaction_at, photo_ids"

const eventColumns = "id, profile_id, type, at, mood, text, created_at"

// Profile operations

func (s *SQLiteStore) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+profileColumns+" FROM profiles ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	return profiles, nil
}

func (s *SQLiteStore) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	p, err := getProfile(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) CreateProfile(ctx context.Context, in cards.ProfileInput) (*model.Profile, error) {
	now := cards.FormatISO(s.clock.Now())
	p := &model.Profile{
		ID:             s.idgen.New(),
		Name:           in.Name,
		Status:         in.Status,
		Contacts:       in.Contacts,
		Attractiveness: in.Attractiveness,
		Vibe:           in.Vibe,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
		PhotoIDs:       []string{},
	}

	if err := upsertProfile(ctx, s.db, p); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) UpdateProfile(ctx context.Context, id string, patch cards.ProfilePatch) (*model.Profile, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getProfile(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("updating profile %s: %w", id, cards.ErrProfileNotFound)
	}

	updated := applyPatch(existing, patch, cards.FormatISO(s.clock.Now()))
	if err := upsertProfile(ctx, tx, updated); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return updated, nil
}

// DeleteProfile removes the profile, its events and its listed photos in a
// single transaction. A missing profile is a no-op.
func (s *SQLiteStore) DeleteProfile(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	profile, err := getProfile(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("finding profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE profile_id = ?", id); err != nil {
		return fmt.Errorf("deleting events: %w", err)
	}

	if profile != nil {
		for _, photoID := range profile.PhotoIDs {
			if _, err := tx.ExecContext(ctx, "DELETE FROM photos WHERE id = ?", photoID); err != nil {
				return fmt.Errorf("deleting photo %s: %w", photoID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Photo operations

func (s *SQLiteStore) GetPhoto(ctx context.Context, id string) (*model.Photo, error) {
	var p model.Photo
	err := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, mime, data FROM photos WHERE id = ?", id).
		Scan(&p.ID, &p.CreatedAt, &p.Mime, &p.Blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding photo: %w", err)
	}
	return &p, nil
}

// AddPhoto inserts the photo record and appends its id to the profile's
// photo list, both in one transaction so a crash can leave neither an
// orphan photo nor a dangling id.
func (s *SQLiteStore) AddPhoto(ctx context.Context, profileID, mime string, data []byte) (*model.Photo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	profile, err := getProfile(ctx, tx, profileID)
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("adding photo to profile %s: %w", profileID, cards.ErrProfileNotFound)
	}

	now := cards.FormatISO(s.clock.Now())
	photo := &model.Photo{
		ID:        s.idgen.New(),
		CreatedAt: now,
		Mime:      mime,
		Blob:      data,
	}

	if err := upsertPhoto(ctx, tx, photo); err != nil {
		return nil, fmt.Errorf("inserting photo: %w", err)
	}

	profile.PhotoIDs = append(profile.PhotoIDs, photo.ID)
	profile.UpdatedAt = now
	if err := upsertProfile(ctx, tx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return photo, nil
}

// RemovePhoto deletes the photo record and drops its id from the profile's
// list atomically. An id not present in the list is a no-op on the list
// side; the record deletion still proceeds.
func (s *SQLiteStore) RemovePhoto(ctx context.Context, profileID, photoID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	profile, err := getProfile(ctx, tx, profileID)
	if err != nil {
		return fmt.Errorf("finding profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("removing photo from profile %s: %w", profileID, cards.ErrProfileNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM photos WHERE id = ?", photoID); err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}

	kept := profile.PhotoIDs[:0]
	for _, id := range profile.PhotoIDs {
		if id != photoID {
			kept = append(kept, id)
		}
	}
	profile.PhotoIDs = kept
	profile.UpdatedAt = cards.FormatISO(s.clock.Now())

	if err := upsertProfile(ctx, tx, profile); err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Event operations

func (s *SQLiteStore) ListEvents(ctx context.Context, profileID string) ([]*model.TimelineEvent, error) {
	return s.queryEvents(ctx,
		"SELECT "+eventColumns+" FROM events WHERE profile_id = ? ORDER BY at DESC", profileID)
}

func (s *SQLiteStore) ListEventsRange(ctx context.Context, fromISO, toISO string) ([]*model.TimelineEvent, error) {
	return s.queryEvents(ctx,
		"SELECT "+eventColumns+" FROM events WHERE at >= ? AND at <= ? ORDER BY at DESC", fromISO, toISO)
}

func (s *SQLiteStore) queryEvents(ctx context.Context, query string, args ...any) ([]*model.TimelineEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*model.TimelineEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// AddEvent inserts the event and updates the owning profile in the same
// transaction: updatedAt is bumped and lastInteractionAt raised to the
// event's `at` only when it is later (monotonic max, so backdated events
// never move it backward).
func (s *SQLiteStore) AddEvent(ctx context.Context, profileID string, in cards.EventInput) (*model.TimelineEvent, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	profile, err := getProfile(ctx, tx, profileID)
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("adding event to profile %s: %w", profileID, cards.ErrProfileNotFound)
	}

	now := cards.FormatISO(s.clock.Now())
	event := &model.TimelineEvent{
		ID:        s.idgen.New(),
		ProfileID: profileID,
		Type:      in.Type,
		At:        in.At,
		Mood:      in.Mood,
		Text:      in.Text,
		CreatedAt: now,
	}

	if err := upsertEvent(ctx, tx, event); err != nil {
		return nil, fmt.Errorf("inserting event: %w", err)
	}

	profile.LastInteractionAt = cards.MaxISO(profile.LastInteractionAt, event.At)
	profile.UpdatedAt = now
	if err := upsertProfile(ctx, tx, profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event record. The owning profile's
// lastInteractionAt is not recomputed and may go stale.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", eventID); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// Export / import

func (s *SQLiteStore) Export(ctx context.Context) (*model.Snapshot, error) {
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.queryEvents(ctx, "SELECT "+eventColumns+" FROM events ORDER BY at DESC")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, created_at, mime, data FROM photos ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	defer rows.Close()

	var photos []*model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.Mime, &p.Blob); err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}

	return &model.Snapshot{Profiles: profiles, Events: events, Photos: photos}, nil
}

// Import writes the snapshot collection by collection, each in its own
// transaction. A failure leaves no collection partially written, but
// collections committed before the failure stay committed (best-effort
// across the group).
func (s *SQLiteStore) Import(ctx context.Context, snap *model.Snapshot, mode cards.ImportMode) error {
	if err := s.importProfiles(ctx, snap.Profiles, mode); err != nil {
		return fmt.Errorf("importing profiles: %w", err)
	}
	if err := s.importEvents(ctx, snap.Events, mode); err != nil {
		return fmt.Errorf("importing events: %w", err)
	}
	if err := s.importPhotos(ctx, snap.Photos, mode); err != nil {
		return fmt.Errorf("importing photos: %w", err)
	}
	return nil
}

func (s *SQLiteStore) importProfiles(ctx context.Context, profiles []*model.Profile, mode cards.ImportMode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if mode == cards.ImportReplace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
			return fmt.Errorf("clearing profiles: %w", err)
		}
	}

	for _, p := range profiles {
		record := p
		if mode == cards.ImportMerge {
			existing, err := getProfile(ctx, tx, p.ID)
			if err != nil {
				return fmt.Errorf("finding existing profile: %w", err)
			}
			if existing != nil {
				record = mergeProfiles(existing, p)
			}
		}
		if err := upsertProfile(ctx, tx, record); err != nil {
			return fmt.Errorf("writing profile %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) importEvents(ctx context.Context, events []*model.TimelineEvent, mode cards.ImportMode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if mode == cards.ImportReplace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM events"); err != nil {
			return fmt.Errorf("clearing events: %w", err)
		}
	}

	for _, ev := range events {
		record := ev
		if mode == cards.ImportMerge {
			existing, err := getEvent(ctx, tx, ev.ID)
			if err != nil {
				return fmt.Errorf("finding existing event: %w", err)
			}
			if existing != nil {
				record = mergeEvents(existing, ev)
			}
		}
		if err := upsertEvent(ctx, tx, record); err != nil {
			return fmt.Errorf("writing event %s: %w", ev.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) importPhotos(ctx context.Context, photos []*model.Photo, mode cards.ImportMode) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if mode == cards.ImportReplace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM photos"); err != nil {
			return fmt.Errorf("clearing photos: %w", err)
		}
	}

	// In merge mode incoming photos win unconditionally: every dump photo
	// carries all fields, so the field-level merge degenerates to overwrite.
	for _, p := range photos {
		if err := upsertPhoto(ctx, tx, p); err != nil {
			return fmt.Errorf("writing photo %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// WipeAll clears all three collections in one transaction.
func (s *SQLiteStore) WipeAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"profiles", "events", "photos"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteStore) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteStore) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// MigrateUp brings the database schema to the latest version.
func (s *SQLiteStore) MigrateUp() error {
	return migrations.MigrateUp(s.db)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// querier lets the row helpers run against either *sql.DB or *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getProfile(ctx context.Context, q querier, id string) (*model.Profile, error) {
	row := q.QueryRowContext(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = ?", id)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return p, nil
}

func getEvent(ctx context.Context, q querier, id string) (*model.TimelineEvent, error) {
	row := q.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return ev, nil
}

func upsertProfile(ctx context.Context, q querier, p *model.Profile) error {
	photoIDs, err := encodePhotoIDs(p.PhotoIDs)
	if err != nil {
		return fmt.Errorf("encoding photo ids: %w", err)
	}

	var telegram, instagram sql.NullString
	if p.Contacts != nil {
		telegram = nullString(p.Contacts.Telegram)
		instagram = nullString(p.Contacts.Instagram)
	}

	_, err = q.ExecContext(ctx,
		"INSERT OR REPLACE INTO profiles ("+profileColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, string(p.Status), telegram, instagram,
		nullInt(p.Attractiveness), nullInt(p.Vibe), p.Notes,
		p.CreatedAt, p.UpdatedAt, nullString(p.LastInteractionAt), photoIDs)
	return err
}

func upsertEvent(ctx context.Context, q querier, ev *model.TimelineEvent) error {
	_, err := q.ExecContext(ctx,
		"INSERT OR REPLACE INTO events ("+eventColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		ev.ID, ev.ProfileID, string(ev.Type), ev.At,
		nullStringPtr(ev.Mood), nullStringPtr(ev.Text), ev.CreatedAt)
	return err
}

func upsertPhoto(ctx context.Context, q querier, p *model.Photo) error {
	_, err := q.ExecContext(ctx,
		"INSERT OR REPLACE INTO photos (id, created_at, mime, data) VALUES (?, ?, ?, ?)",
		p.ID, p.CreatedAt, p.Mime, p.Blob)
	return err
}

// scanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*model.Profile, error) {
	var (
		p                    model.Profile
		telegram, instagram  sql.NullString
		attractiveness, vibe sql.NullInt64
		lastInteraction      sql.NullString
		photoIDs             string
	)

	err := row.Scan(&p.ID, &p.Name, &p.Status, &telegram, &instagram,
		&attractiveness, &vibe, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&lastInteraction, &photoIDs)
	if err != nil {
		return nil, err
	}

	if telegram.Valid || instagram.Valid {
		p.Contacts = &model.Contacts{Telegram: telegram.String, Instagram: instagram.String}
	}
	if attractiveness.Valid {
		v := int(attractiveness.Int64)
		p.Attractiveness = &v
	}
	if vibe.Valid {
		v := int(vibe.Int64)
		p.Vibe = &v
	}
	p.LastInteractionAt = lastInteraction.String

	ids, err := decodePhotoIDs(photoIDs)
	if err != nil {
		return nil, fmt.Errorf("decoding photo ids: %w", err)
	}
	p.PhotoIDs = ids

	return &p, nil
}

func scanEvent(row scanner) (*model.TimelineEvent, error) {
	var (
		ev         model.TimelineEvent
		mood, text sql.NullString
	)

	err := row.Scan(&ev.ID, &ev.ProfileID, &ev.Type, &ev.At, &mood, &text, &ev.CreatedAt)
	if err != nil {
		return nil, err
	}

	if mood.Valid {
		ev.Mood = &mood.String
	}
	if text.Valid {
		ev.Text = &text.String
	}
	return &ev, nil
}

func encodePhotoIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodePhotoIDs(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// Compile-time check that SQLiteStore implements the cards.Store interface
var _ cards.Store = (*SQLiteStore)(nil)
