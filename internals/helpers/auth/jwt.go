package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"kantinku_backend/internals/configs"
	helper "kantinku_backend/internals/helpers"
)

const (
	AccessTTLDefault  = 24 * time.Hour
	RefreshTTLDefault = 7 * 24 * time.Hour
)

// CreateAccessToken membuat access token HS256 berisi user_id & login_id.
func CreateAccessToken(userID uuid.UUID, loginID string) (string, error) {
	return createToken(userID, loginID, configs.JWTSecret, AccessTTLDefault)
}

// CreateRefreshToken membuat refresh token dengan secret terpisah.
func CreateRefreshToken(userID uuid.UUID, loginID string) (string, error) {
	return createToken(userID, loginID, configs.JWTRefreshSecret, RefreshTTLDefault)
}

func createToken(userID uuid.UUID, loginID, secret string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", helper.ErrInternal
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"login_id": loginID,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken memverifikasi signature + exp, mengembalikan claims.
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	return parseToken(tokenString, configs.JWTSecret)
}

// ParseRefreshToken memverifikasi refresh token.
func ParseRefreshToken(tokenString string) (jwt.MapClaims, error) {
	return parseToken(tokenString, configs.JWTRefreshSecret)
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, helper.ErrInternal
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, helper.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, helper.ErrTokenExpired
		}
		return nil, helper.ErrInvalidToken
	}
	return claims, nil
}

// ValidateToken cek cepat tanpa mengambil claims.
func ValidateToken(tokenString string) bool {
	_, err := ParseAccessToken(tokenString)
	return err == nil
}

// UserIDFromClaims mengambil user_id (uuid) dari claims.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, helper.ErrInvalidToken
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, helper.ErrInvalidToken
	}
	return id, nil
}

// UserIDFromToken parse token lalu ambil user_id sekaligus.
func UserIDFromToken(tokenString string) (uuid.UUID, error) {
	claims, err := ParseAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return UserIDFromClaims(claims)
}
