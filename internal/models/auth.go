package models

import "github.com/golang-jwt/jwt/v5"

type UserClaimKey struct{}

type UserClaims struct {
	AdminID  uint64 `json:"admin_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Aud      string `json:"aud"`
	Issuer   string `json:"iss"`
	jwt.RegisteredClaims
}

type AuthLoginBody struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type AuthLoginResponse struct {
	User        AdminIdentity `json:"user"`
	AccessToken string        `json:"access_token"`
}

type AuthVerifyBody struct {
	AccessToken string `json:"access_token" validate:"required,max=2048"`
}
