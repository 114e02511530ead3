package domain

import (
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the public projection of a user embedded in other entities.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}

// Caller is the authenticated identity a request acts as. It is resolved from
// the bearer token and passed explicitly to every operation.
type Caller struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// RoleForNewUser returns the role assigned at registration given how many
// accounts already exist.
func RoleForNewUser(existingUsers int) Role {
	if existingUsers == 0 {
		return RoleAdmin
	}
	return RoleUser
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is returned by signup and login.
type Session struct {
	User   User
	Tokens TokenPair
}

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Normalize trims the input and validates it.
func (in RegisterInput) Normalize() (RegisterInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" {
		return in, ErrNameRequired
	}
	if address, err := mail.ParseAddress(in.Email); err != nil || address.Address != in.Email {
		return in, ErrInvalidEmail
	}
	if len(in.Password) < MinPasswordLength || len(in.Password) > MaxPasswordLength {
		return in, ErrInvalidPassword
	}
	return in, nil
}
