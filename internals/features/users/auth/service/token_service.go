package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quizprep_backend/internals/configs"
	"quizprep_backend/internals/constants"
)

// TokenPayload is the identity carried inside both access and refresh tokens.
type TokenPayload struct {
	UserID uuid.UUID
	Email  string
	Role   constants.UserRole
}

// TokenPair bundles a freshly signed access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // refresh token expiry, mirrors the session row
}

func signToken(payload TokenPayload, typ, secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":   payload.UserID.String(),
		"email": payload.Email,
		"role":  string(payload.Role),
		"typ":   typ,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// GenerateTokenPair signs an access and a refresh token for the given identity.
func GenerateTokenPair(payload TokenPayload) (*TokenPair, error) {
	now := time.Now()

	access, _, err := signToken(payload, "access", configs.JWTSecret, configs.AccessTokenTTL, now)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := signToken(payload, "refresh", configs.JWTRefreshSecret, configs.RefreshTokenTTL, now)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    refreshExp,
	}, nil
}

func parseToken(raw, typ, secret string) (*TokenPayload, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if gotTyp, _ := claims["typ"].(string); gotTyp != typ {
		return nil, errors.New("invalid token type")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid token subject")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &TokenPayload{
		UserID: userID,
		Email:  email,
		Role:   constants.UserRole(role),
	}, nil
}

// VerifyAccessToken validates signature, expiry, and token type of an access token.
func VerifyAccessToken(raw string) (*TokenPayload, error) {
	return parseToken(raw, "access", configs.JWTSecret)
}

// VerifyRefreshToken validates signature, expiry, and token type of a refresh token.
func VerifyRefreshToken(raw string) (*TokenPayload, error) {
	return parseToken(raw, "refresh", configs.JWTRefreshSecret)
}

// ComputeRefreshHash derives the session lookup key from a raw refresh token.
// Sessions store this digest instead of the token itself.
func ComputeRefreshHash(rawToken string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(rawToken))
	return mac.Sum(nil)
}
