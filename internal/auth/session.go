// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"encoding/json"
	"strconv"
	"time"
)

// StorageKey is the fixed store key the current session lives under.
const StorageKey = "careconnect_user"

// Session is the identity record for the current portal user.
// It is created whole by EstablishSession and never updated in place.
type Session struct {
	ID        string
	Email     string
	Role      Role
	Name      string
	AvatarURL string
	CreatedAt time.Time
}

// sessionRecord is the persisted layout. The id field is declared as any
// because earlier clients wrote numeric ids; both forms are accepted on
// read and normalized to a string.
type sessionRecord struct {
	ID        any    `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"createdAt"`
}

// encodeSession serializes a session to its stored form.
func encodeSession(s *Session) ([]byte, error) {
	rec := sessionRecord{
		ID:        s.ID,
		Email:     s.Email,
		Role:      s.Role.String(),
		Name:      s.Name,
		AvatarURL: s.AvatarURL,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
	return json.Marshal(rec)
}

// decodeSession parses a stored blob back into a Session.
// Malformed data is reported with ok=false and treated by callers exactly
// like an absent record; it never blocks startup. Unknown extra fields are
// ignored. A record missing id, email, or role - or carrying a role outside
// the enumeration - is considered absent.
func decodeSession(blob []byte) (*Session, bool) {
	var rec sessionRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, false
	}

	id := normalizeID(rec.ID)
	if id == "" || rec.Email == "" {
		return nil, false
	}

	role := Role(rec.Role)
	if !role.Valid() {
		return nil, false
	}

	name := rec.Name
	if name == "" {
		name = role.DefaultName()
	}
	avatar := rec.AvatarURL
	if avatar == "" {
		avatar = role.AvatarURL()
	}

	// A missing or unparsable timestamp does not invalidate the session.
	createdAt, _ := time.Parse(time.RFC3339, rec.CreatedAt)

	return &Session{
		ID:        id,
		Email:     rec.Email,
		Role:      role,
		Name:      name,
		AvatarURL: avatar,
		CreatedAt: createdAt,
	}, true
}

// normalizeID renders a stored id as a string, whatever JSON type it used.
func normalizeID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}
