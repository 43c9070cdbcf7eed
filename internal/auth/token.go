package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that are malformed, tampered with,
// expired, or signed with the wrong method.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken signs a session token carrying the identity's email and user
// ID, valid for ttl.
func IssueToken(id Identity, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("token secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email":  id.Email,
		"userId": strconv.FormatUint(uint64(id.UserID), 10),
		"exp":    now.Add(ttl).Unix(),
		"iat":    now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a session token, returning the identity
// it carries. Any failure collapses into ErrInvalidToken.
func VerifyToken(tokenString, secret string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["userId"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil || userID == 0 {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Identity{UserID: uint(userID), Email: email}, nil
}
