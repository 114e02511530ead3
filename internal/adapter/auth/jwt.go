package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskcollab/internal/config"
	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type JWTConfig struct {
	AccessSecret         string
	RefreshSecret        string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	Issuer               string
}

func JWTConfigFrom(conf *config.Config) JWTConfig {
	return JWTConfig{
		AccessSecret:         conf.JwtAccessSecret,
		RefreshSecret:        conf.JwtRefreshSecret,
		AccessTokenDuration:  conf.JwtAccessTTL,
		RefreshTokenDuration: conf.JwtRefreshTTL,
		Issuer:               conf.JwtIssuer,
	}
}

type Claims struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager signs access and refresh tokens with distinct secrets.
type JWTManager struct {
	config JWTConfig
}

var (
	_ ports.TokenIssuer   = (*JWTManager)(nil)
	_ ports.TokenVerifier = (*JWTManager)(nil)
)

func NewJWTManager(config JWTConfig) *JWTManager {
	return &JWTManager{config: config}
}

func (m *JWTManager) Issue(user domain.User) (domain.TokenPair, error) {
	access, err := m.generateToken(user, tokenTypeAccess, m.config.AccessSecret, m.config.AccessTokenDuration)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh, err := m.generateToken(user, tokenTypeRefresh, m.config.RefreshSecret, m.config.RefreshTokenDuration)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *JWTManager) VerifyAccessToken(tokenString string) (domain.Caller, error) {
	claims, err := m.parse(tokenString, m.config.AccessSecret)
	if err != nil {
		return domain.Caller{}, err
	}
	if claims.TokenType != tokenTypeAccess {
		return domain.Caller{}, ErrInvalidToken
	}

	return domain.Caller{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  domain.Role(claims.Role),
	}, nil
}

func (m *JWTManager) generateToken(user domain.User, tokenType, secret string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (m *JWTManager) parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
