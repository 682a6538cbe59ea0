package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/admindesk/user-service/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// JWTTokenService issues and validates HS256-signed bearer tokens carrying
// a domain.Principal in the claims.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs the principal's claims with an expiry of now + TTL.
func (s *JWTTokenService) Issue(principal domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"id":     principal.ID,
		"email":  principal.Email,
		"name":   principal.Name,
		"access": principal.Access,
		"exp":    s.now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature and expiry. Malformed, tampered, wrongly signed
// and expired tokens all map to domain.ErrInvalidToken; callers never learn
// which check failed.
func (s *JWTTokenService) Validate(token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	principal := &domain.Principal{
		ID:     stringClaim(claims, "id"),
		Email:  stringClaim(claims, "email"),
		Name:   stringClaim(claims, "name"),
		Access: accessClaim(claims),
	}
	if principal.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return principal, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

// accessClaim tolerates both []string (pre-serialization, in tests) and
// []any (what encoding/json produces for a round-tripped token).
func accessClaim(claims jwt.MapClaims) []string {
	switch v := claims["access"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
