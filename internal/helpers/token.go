package helpers

import (
	"context"
	"errors"
	"strings"
	"time"

	"matchdash/internal/configuration"
	"matchdash/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// createToken signs the claims of an admin session.
func createToken(jwtSecret string, admin models.AdminIdentity, audience string, expiryMinutes int) (string, error) {
	now := time.Now()
	claims := models.UserClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Aud:      audience,
		Issuer:   configuration.AppName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  &jwt.NumericDate{Time: now},
			ExpiresAt: &jwt.NumericDate{Time: now.Add(time.Minute * time.Duration(expiryMinutes))},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseToken parses and validates a JWT token: signature, expiry and issuer.
// The requireBearer parameter controls whether the "Bearer " prefix is required.
func ParseToken(jwtSecret string, tokenString string, requireBearer bool) (models.UserClaims, error) {
	if requireBearer {
		if !strings.HasPrefix(tokenString, "Bearer ") {
			return models.UserClaims{}, errors.New("invalid token")
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	}

	claims := &models.UserClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return models.UserClaims{}, errors.New("invalid token")
	}

	if claims.Issuer != configuration.AppName {
		return models.UserClaims{}, errors.New("invalid token issuer")
	}

	return *claims, nil
}

func NewAccessToken(jwtSecret string, admin models.AdminIdentity, expiryMinutes int) (string, error) {
	return createToken(jwtSecret, admin, configuration.AudienceAccessToken, expiryMinutes)
}

// ParseAccessToken validates an Authorization header value and checks the
// token was issued for the dashboard.
func ParseAccessToken(jwtSecret string, header string) (models.UserClaims, error) {
	claims, err := ParseToken(jwtSecret, header, true)
	if err != nil {
		return models.UserClaims{}, err
	}

	if claims.Aud != configuration.AudienceAccessToken {
		return models.UserClaims{}, errors.New("invalid token audience")
	}

	return claims, nil
}

func GetUserClaims(c context.Context) (models.UserClaims, error) {
	value, ok := c.Value(models.UserClaimKey{}).(models.UserClaims)
	if !ok {
		return models.UserClaims{}, errors.New("invalid user claims")
	}
	return value, nil
}
