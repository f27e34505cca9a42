// Package session implements the login gate: a fixed demo credential pair,
// one session record in a durable key-value store, and a TTL checked on
// every read. This is a demonstration shell, not a security design.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"employee-directory/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// sessionKey is the single fixed key the record is stored under.
const sessionKey = "employee_directory_session"

// Fixed demo credentials, reversibly encoded. Overridable with a bcrypt
// hash via ADMIN_PASSWORD_HASH for anything beyond a demo.
const (
	encodedUsername = "c2FpZWQ="
	encodedPassword = "c2FpZWQ="
)

func decode(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(b)
}

// Gate validates credentials and owns the session record lifecycle.
type Gate struct {
	store        Store
	ttl          time.Duration
	passwordHash string
	now          func() time.Time
}

type Option func(*Gate)

// WithPasswordHash replaces the encoded demo password with a bcrypt hash.
func WithPasswordHash(hash string) Option {
	return func(g *Gate) { g.passwordHash = hash }
}

// WithClock injects the time source, for TTL boundary tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

func NewGate(store Store, ttl time.Duration, opts ...Option) *Gate {
	g := &Gate{store: store, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ValidateCredentials checks the pair against the fixed constants. No rate
// limiting, no lockout; a mismatch reveals nothing about which field failed.
func (g *Gate) ValidateCredentials(username, password string) bool {
	if username != decode(encodedUsername) {
		return false
	}
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	}
	return password == decode(encodedPassword)
}

// CreateSession stores a fresh record under the fixed key, overwriting any
// prior session.
func (g *Gate) CreateSession(ctx context.Context, username string) (models.SessionRecord, error) {
	now := g.now()
	rec := models.SessionRecord{
		ID:              uuid.New().String(),
		Username:        username,
		CreatedAtMillis: now.UnixMilli(),
		CreatedAtISO:    now.UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return models.SessionRecord{}, err
	}
	if err := g.store.Put(ctx, sessionKey, data); err != nil {
		return models.SessionRecord{}, err
	}
	return rec, nil
}

// Current returns the stored session when it is still valid. Absent,
// unparsable or expired records are cleared and reported as "no session" —
// never as an error.
func (g *Gate) Current(ctx context.Context) (models.SessionRecord, bool) {
	data, err := g.store.Get(ctx, sessionKey)
	if err != nil {
		return models.SessionRecord{}, false
	}
	var rec models.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.Username == "" {
		g.store.Delete(ctx, sessionKey)
		return models.SessionRecord{}, false
	}
	if g.now().Sub(rec.CreatedAt()) > g.ttl {
		g.store.Delete(ctx, sessionKey)
		return models.SessionRecord{}, false
	}
	return rec, true
}

// IsSessionValid reports whether a valid session exists, clearing it lazily
// on expiry.
func (g *Gate) IsSessionValid(ctx context.Context) bool {
	_, ok := g.Current(ctx)
	return ok
}

// Logout unconditionally clears the stored record.
func (g *Gate) Logout(ctx context.Context) error {
	return g.store.Delete(ctx, sessionKey)
}
