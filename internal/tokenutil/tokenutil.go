// Package tokenutil extracts the caller identity from the bearer
// tokens minted by the external identity provider.
package tokenutil

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Identity is the authenticated caller as asserted by the provider:
// an opaque id plus the profile attributes the catalog needs.
type Identity struct {
	UserID   string
	Email    string
	FullName string
	ImageURL string
}

func ExtractIdentity(requestToken string, secret string) (*Identity, error) {
	token, err := jwt.Parse(requestToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &Identity{
		UserID:   sub,
		Email:    email,
		FullName: name,
		ImageURL: picture,
	}, nil
}

// CreateToken mints an HMAC token carrying the identity claims. Used
// by tests and local tooling; production tokens come from the provider.
func CreateToken(identity *Identity, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     identity.UserID,
		"email":   identity.Email,
		"name":    identity.FullName,
		"picture": identity.ImageURL,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
