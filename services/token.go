package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stayhub-backend/config"
	"stayhub-backend/domain"
	"stayhub-backend/models"
)

// TokenClaims is the decoded identity carried by an access token.
type TokenClaims struct {
	UserID   uint
	Username string
	Role     string
}

// TokenIssuer signs and verifies HS256 access tokens. The secret and
// TTL come from the immutable settings, never from the environment.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewTokenIssuer(settings config.Settings) TokenIssuer {
	return TokenIssuer{
		Secret: []byte(settings.JWTSecret),
		TTL:    settings.JWTTTL,
		Now:    time.Now,
	}
}

func (t TokenIssuer) Issue(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      t.Now().Add(t.TTL).Unix(),
	})
	return token.SignedString(t.Secret)
}

func (t TokenIssuer) Parse(raw string) (TokenClaims, error) {
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.Secret, nil
	}, jwt.WithTimeFunc(t.Now))
	if err != nil || !token.Valid {
		return TokenClaims{}, domain.ForbiddenError{Msg: "invalid or expired token"}
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, domain.ForbiddenError{Msg: "invalid token claims"}
	}
	userID, ok := mapClaims["user_id"].(float64)
	if !ok || userID <= 0 {
		return TokenClaims{}, domain.ForbiddenError{Msg: "invalid token claims"}
	}
	username, _ := mapClaims["username"].(string)
	role, _ := mapClaims["role"].(string)
	return TokenClaims{
		UserID:   uint(userID),
		Username: username,
		Role:     role,
	}, nil
}
