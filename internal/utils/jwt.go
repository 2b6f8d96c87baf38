package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in every issued token. On top of the
// registered claims it carries the user's display name, the numeric user
// id encoded as a string, and the username.
type Claims struct {
	UserFullName string `json:"userFullName"`
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	jwt.RegisteredClaims
}

// CallerID parses the userId claim as a base-10 int64.
func (c *Claims) CallerID() (int64, error) {
	id, err := strconv.ParseInt(c.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting userId claim to int64: %w", err)
	}

	return id, nil
}

// TokenManager issues and validates HMAC-SHA256 signed JWTs. All state is
// read-only after construction, so a single instance is safe for
// concurrent use.
type TokenManager struct {
	signKey string
	issuer  string
}

// NewTokenManager constructs a TokenManager with the given symmetric sign
// key and "iss" claim value.
func NewTokenManager(signKey, issuer string) *TokenManager {
	return &TokenManager{signKey: signKey, issuer: issuer}
}

// Issue creates a signed token for the given user attributes, valid for
// ttl from now. The ttl is a parameter rather than manager state because
// the two applications issue tokens with different lifetimes.
func (tm *TokenManager) Issue(fullName string, userID int64, username string, ttl time.Duration) (string, error) {
	if tm.signKey == "" || ttl == 0 {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &Claims{
		UserFullName: fullName,
		UserID:       strconv.FormatInt(userID, 10),
		Username:     username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tm.signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies the signature, the signing method, the issuer, and the
// expiration of the given token string and returns its claims.
func (tm *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.signKey), nil
	}, jwt.WithIssuer(tm.issuer))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ParseBearerToken extracts the token value from an "Authorization:
// Bearer <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
