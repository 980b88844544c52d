// Package credentials is the process-wide credential record: bearer token,
// nickname, email and profile fields, persisted in the local prefs table and
// observable by every screen.
package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studygroups/internal/client/observable"
	"github.com/dmitrijs2005/studygroups/internal/client/repositories/prefs"
	"github.com/dmitrijs2005/studygroups/internal/common"
	"github.com/dmitrijs2005/studygroups/internal/cryptox"
	"github.com/dmitrijs2005/studygroups/internal/dbx"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

const (
	keyToken    = "token"
	keyNickname = "nickname"
	keyEmail    = "email"
	keyMajor    = "major"
	keyBio      = "bio"
	keyImageURL = "image_url"
	keySalt     = "store_salt"

	saltSize = 16
)

var credentialKeys = []string{keyToken, keyNickname, keyEmail, keyMajor, keyBio, keyImageURL}

// Credentials is an immutable snapshot of the stored record.
type Credentials struct {
	Token    string
	Nickname string
	Email    string
	Major    string
	Bio      string
	ImageURL string
}

// LoggedIn reports whether a token is stored.
func (c Credentials) LoggedIn() bool {
	return c.Token != ""
}

// DisplayNickname returns the nickname or common.DefaultNickname when unset.
func (c Credentials) DisplayNickname() string {
	if c.Nickname == "" {
		return common.DefaultNickname
	}
	return c.Nickname
}

// Patch lists the fields to overwrite; nil pointers are left untouched.
type Patch struct {
	Token    *string
	Nickname *string
	Email    *string
	Major    *string
	Bio      *string
	ImageURL *string
}

// Str is a helper for building a Patch inline.
func Str(s string) *string { return &s }

// Store persists Credentials and publishes every change.
type Store struct {
	db    *sql.DB
	key   []byte
	value *observable.Value[Credentials]
	log   logging.Logger
}

// Open loads the stored record from db. When passphrase is non-empty the
// token is sealed at rest with a key derived from it and a per-install salt.
func Open(ctx context.Context, db *sql.DB, passphrase []byte, log logging.Logger) (*Store, error) {
	s := &Store{
		db:    db,
		value: observable.New(Credentials{}),
		log:   log.With("component", "credentials"),
	}

	if len(passphrase) > 0 {
		salt, err := s.ensureSalt(ctx)
		if err != nil {
			return nil, err
		}
		s.key = cryptox.DeriveKey(passphrase, salt)
	}

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.value.Set(current)
	return s, nil
}

func (s *Store) repo(db dbx.DBTX) prefs.Repository {
	return prefs.NewSQLiteRepository(db)
}

func (s *Store) ensureSalt(ctx context.Context) ([]byte, error) {
	r := s.repo(s.db)
	salt, err := r.Get(ctx, keySalt)
	if err != nil {
		return nil, fmt.Errorf("read store salt: %w", err)
	}
	if len(salt) > 0 {
		return salt, nil
	}
	salt = common.GenerateRandByteArray(saltSize)
	if err := r.Set(ctx, keySalt, salt); err != nil {
		return nil, fmt.Errorf("save store salt: %w", err)
	}
	return salt, nil
}

func (s *Store) load(ctx context.Context) (Credentials, error) {
	all, err := s.repo(s.db).List(ctx)
	if err != nil {
		return Credentials{}, fmt.Errorf("load credentials: %w", err)
	}

	c := Credentials{
		Nickname: string(all[keyNickname]),
		Email:    string(all[keyEmail]),
		Major:    string(all[keyMajor]),
		Bio:      string(all[keyBio]),
		ImageURL: string(all[keyImageURL]),
	}

	if raw := all[keyToken]; len(raw) > 0 {
		token, err := s.decodeToken(raw)
		if err != nil {
			// a changed passphrase leaves an unreadable token; treat as logged out
			s.log.Warn(ctx, "stored token unreadable, ignoring", "error", err)
		} else {
			c.Token = token
		}
	}
	return c, nil
}

func (s *Store) encodeToken(token string) ([]byte, error) {
	if s.key == nil || token == "" {
		return []byte(token), nil
	}
	return cryptox.Seal([]byte(token), s.key)
}

func (s *Store) decodeToken(raw []byte) (string, error) {
	if s.key == nil {
		return string(raw), nil
	}
	plain, err := cryptox.Open(raw, s.key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Current returns the latest snapshot.
func (s *Store) Current() Credentials {
	return s.value.Get()
}

// Token returns the stored bearer token ("" when logged out).
func (s *Store) Token() string {
	return s.value.Get().Token
}

// Subscribe streams snapshots until ctx is done.
func (s *Store) Subscribe(ctx context.Context) <-chan Credentials {
	return s.value.Subscribe(ctx)
}

// Apply writes the non-nil fields of p in one transaction and then publishes
// the merged record.
func (s *Store) Apply(ctx context.Context, p Patch) error {
	writes := make(map[string][]byte)

	if p.Token != nil {
		enc, err := s.encodeToken(*p.Token)
		if err != nil {
			return fmt.Errorf("seal token: %w", err)
		}
		writes[keyToken] = enc
	}
	for key, v := range map[string]*string{
		keyNickname: p.Nickname,
		keyEmail:    p.Email,
		keyMajor:    p.Major,
		keyBio:      p.Bio,
		keyImageURL: p.ImageURL,
	} {
		if v != nil {
			writes[key] = []byte(*v)
		}
	}
	if len(writes) == 0 {
		return nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		for k, v := range writes {
			if err := r.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.value.Update(func(c Credentials) Credentials {
		return merge(c, p)
	})
	return nil
}

// SaveSession stores the result of a successful login or signup. Profile
// fields belong to the previous session and are reset; an empty nickname or
// email keeps the stored one.
func (s *Store) SaveSession(ctx context.Context, token, nickname, email string) error {
	p := Patch{Token: Str(token), Major: Str(""), Bio: Str(""), ImageURL: Str("")}
	if nickname != "" {
		p.Nickname = Str(nickname)
	}
	if email != "" {
		p.Email = Str(email)
	}
	return s.Apply(ctx, p)
}

// Clear removes every credential field (the sealing salt is kept).
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		for _, k := range credentialKeys {
			if err := r.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	s.value.Set(Credentials{})
	return nil
}

func merge(c Credentials, p Patch) Credentials {
	if p.Token != nil {
		c.Token = *p.Token
	}
	if p.Nickname != nil {
		c.Nickname = *p.Nickname
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Major != nil {
		c.Major = *p.Major
	}
	if p.Bio != nil {
		c.Bio = *p.Bio
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	return c
}
