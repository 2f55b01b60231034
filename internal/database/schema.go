package database

// Schema is the complete current schema, kept in sync with the migration
// files under migrations/files. Tests apply it directly to in-memory
// databases instead of running migrations.
const Schema = `
CREATE TABLE profiles (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    status TEXT NOT NULL,
    contact_telegram TEXT,
    contact_instagram TEXT,
    attractiveness INTEGER,
    vibe INTEGER,
    notes TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    last_interaction_at TEXT,
    photo_ids TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX idx_profiles_updated_at ON profiles(updated_at);

CREATE TABLE events (
    id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    type TEXT NOT NULL,
    at TEXT NOT NULL,
    mood TEXT,
    text TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX idx_events_profile_id ON events(profile_id);
CREATE INDEX idx_events_at ON events(at);

CREATE TABLE photos (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    mime TEXT NOT NULL,
    data BLOB NOT NULL
);
`
