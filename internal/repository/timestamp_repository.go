package repository

import "strings"

// TimestampStore keeps first-seen timestamps for candidate identities. The
// sheets do not carry reliable creation times, so this is the only state the
// service owns itself. Implementations never surface storage errors: a broken
// backend degrades to an empty no-op store because the feature is
// supplementary metadata, not a system of record.
type TimestampStore interface {
	Get(name, email string) (string, bool)
	// Set records a timestamp only if the key has none yet (first write wins).
	Set(name, email, timestamp string)
	// Overwrite records a timestamp unconditionally.
	Overwrite(name, email, timestamp string)
	Remove(name, email string)
	// Migrate rekeys an entry after an identity-changing edit. The old value
	// is copied only when the new key is still empty; the old key is removed
	// either way.
	Migrate(oldName, oldEmail, newName, newEmail string)
}

// TimestampKey builds the stable store key: trimmed name, lowercased email,
// joined with a separator neither field contains.
func TimestampKey(name, email string) string {
	return strings.TrimSpace(name) + "|" + strings.ToLower(strings.TrimSpace(email))
}
