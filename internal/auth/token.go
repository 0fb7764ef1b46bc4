package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopfront/shopfront/internal/identity"
)

const bearerScheme = "Bearer"

// Identity is the claim set embedded in an access token. It is a snapshot of
// the user taken at login; a profile change is only reflected after the user
// logs in again.
type Identity struct {
	UserID         int64     `json:"id"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	DateOfCreation time.Time `json:"dateOfCreation"`
}

// IdentityOf builds the claim set for user.
func IdentityOf(user identity.User) Identity {
	return Identity{
		UserID:         user.ID,
		Firstname:      user.Firstname,
		Lastname:       user.Lastname,
		Email:          user.Email,
		Address:        user.Address,
		DateOfCreation: user.DateOfCreation,
	}
}

// Claims are the JWT claims of an access token.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens with a process-wide key.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer. The secret is fixed for the lifetime of the process.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for id that expires exactly ttl after issuance.
func (i *TokenIssuer) Issue(id Identity) (string, time.Time, error) {
	issuedAt := i.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(i.ttl)

	claims := Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of raw and returns its claims.
// A token is accepted only while the current time is strictly before its expiry.
func (i *TokenIssuer) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidOrExpiredCredential
	}
	return claims, nil
}

// Authorize resolves an Authorization header value into the identity it
// carries. The header must read "Bearer <token>".
func (i *TokenIssuer) Authorize(header string) (Identity, error) {
	raw, err := bearerToken(header)
	if err != nil {
		return Identity{}, err
	}
	claims, err := i.Verify(raw)
	if err != nil {
		return Identity{}, err
	}
	return claims.Identity, nil
}

func bearerToken(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrMissingCredential
	}
	if len(parts) > 2 {
		return "", ErrInvalidOrExpiredCredential
	}
	return parts[1], nil
}

// IsAuthFailure reports whether err is one of the request rejection errors.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrInvalidOrExpiredCredential)
}
