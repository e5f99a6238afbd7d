package service

import (
	"errors"
	"time"

	"todo_service/internal/domain"
	"todo_service/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only verification error callers ever see.
// Expired, malformed and badly signed tokens are indistinguishable from
// the outside so the API cannot be used as an oracle.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated principal carried by a verified token.
type Identity struct {
	UserID   int64
	Username string
}

type claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:   user.ID,
		Username: user.Username,
	})
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		logger.Debug("token rejected", "reason", err.Error())
		return nil, ErrInvalidToken
	}
	if !token.Valid || c.UserID == 0 {
		logger.Debug("token rejected", "reason", "invalid claims")
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: c.UserID, Username: c.Username}, nil
}
