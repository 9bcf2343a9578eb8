package utils

import (
	"errors"
	"time"

	"walletbook/internal/config"
	"walletbook/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	tokenIssuer     = "walletbook-api"
)

// GenerateTokens issues an access token and a refresh token for the
// given claims. The signing secret comes from JWT_SECRET.
func GenerateTokens(claims *models.UserClaims) (accessToken string, refreshToken string, err error) {
	secret, err := config.JWTSecret()
	if err != nil {
		return "", "", err
	}

	now := time.Now()

	accessClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   claims.UserID,
		},
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   claims.UserID,
		},
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ParseToken validates a token's signature and expiry and returns its
// claims. Decoding without signature verification is not offered; a
// token that does not verify against JWT_SECRET is rejected outright.
func ParseToken(tokenStr string) (*models.UserClaims, error) {
	secret, err := config.JWTSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
