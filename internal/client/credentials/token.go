package credentials

import (
	"time"

	"github.com/dmitrijs2005/studygroups/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim without verifying the signature; the
// server remains the authority, this only lets the client notice a stale
// session early. ok is false when the token has no exp claim.
func TokenExpiry(token string) (exp time.Time, ok bool, err error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false, common.ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}

// CheckSession returns common.ErrNotLoggedIn when there is no token and
// common.ErrTokenExpired when its exp claim is before now. Opaque (non-JWT)
// tokens are accepted as-is.
func (s *Store) CheckSession(now time.Time) error {
	token := s.Token()
	if token == "" {
		return common.ErrNotLoggedIn
	}
	exp, ok, err := TokenExpiry(token)
	if err != nil || !ok {
		return nil
	}
	if !now.Before(exp) {
		return common.ErrTokenExpired
	}
	return nil
}
