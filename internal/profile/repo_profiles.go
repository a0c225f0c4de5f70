package profile

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrNoSession          = errors.New("no active session")
)

type Profile struct {
	ID          string
	Email       string
	DisplayName string
	PersonaID   string
	CreatedAt   string
	UpdatedAt   string
}

type Session struct {
	Token     string
	ProfileID string
	CreatedAt string
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// SignUp creates a profile and opens a session for it.
func (r *Repo) SignUp(ctx context.Context, email, password, displayName string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrInvalidCredentials
	}

	var exists int
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM profiles WHERE email = ?)", email).Scan(&exists); err != nil {
		return Session{}, fmt.Errorf("check email: %w", err)
	}
	if exists == 1 {
		return Session{}, ErrEmailTaken
	}

	salt, err := randomHex(16)
	if err != nil {
		return Session{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	id := uuid.NewString()

	if _, err := r.db.ExecContext(
		ctx,
		`INSERT INTO profiles (id, email, display_name, persona_id, password_salt, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?, ?, ?)`,
		id, email, strings.TrimSpace(displayName), salt, hashPassword(password, salt), now, now,
	); err != nil {
		return Session{}, fmt.Errorf("insert profile: %w", err)
	}

	return r.openSession(ctx, id)
}

// SignIn verifies the credentials and opens a session.
func (r *Repo) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var id, salt, hash string
	err := r.db.QueryRowContext(
		ctx,
		"SELECT id, password_salt, password_hash FROM profiles WHERE email = ?",
		email,
	).Scan(&id, &salt, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("look up profile: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(hashPassword(password, salt)), []byte(hash)) != 1 {
		return Session{}, ErrInvalidCredentials
	}

	return r.openSession(ctx, id)
}

// SignOut removes the session for the given token. Unknown tokens are
// not an error.
func (r *Repo) SignOut(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GetSession returns the session for the token, or ErrNoSession.
func (r *Repo) GetSession(ctx context.Context, token string) (Session, error) {
	var s Session
	err := r.db.QueryRowContext(
		ctx,
		"SELECT token, profile_id, created_at FROM sessions WHERE token = ?",
		token,
	).Scan(&s.Token, &s.ProfileID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("look up session: %w", err)
	}
	return s, nil
}

// GetProfile returns the profile by id.
func (r *Repo) GetProfile(ctx context.Context, id string) (Profile, error) {
	var p Profile
	err := r.db.QueryRowContext(
		ctx,
		"SELECT id, email, display_name, persona_id, created_at, updated_at FROM profiles WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Email, &p.DisplayName, &p.PersonaID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile %q: %w", id, err)
	}
	return p, nil
}

// UpdateProfile stores the display name and preferred persona.
func (r *Repo) UpdateProfile(ctx context.Context, id, displayName, personaID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE profiles SET display_name = ?, persona_id = ?, updated_at = ? WHERE id = ?",
		strings.TrimSpace(displayName), personaID, now, id,
	)
	if err != nil {
		return fmt.Errorf("update profile %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update profile %q: not found", id)
	}
	return nil
}

func (r *Repo) openSession(ctx context.Context, profileID string) (Session, error) {
	token, err := randomHex(32)
	if err != nil {
		return Session{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.ExecContext(
		ctx,
		"INSERT INTO sessions (token, profile_id, created_at) VALUES (?, ?, ?)",
		token, profileID, now,
	); err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return Session{Token: token, ProfileID: profileID, CreatedAt: now}, nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
