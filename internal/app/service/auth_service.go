package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	tokens         ports.TokenIssuer
}

func NewAuthService(userRepository ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{userRepository: userRepository, hasher: hasher, tokens: tokens}
}

// Register creates the account and signs the caller in. The very first
// account becomes ADMIN.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.Session, error) {
	input, err := input.Normalize()
	if err != nil {
		return domain.Session{}, err
	}

	if _, err := s.userRepository.FindByEmail(ctx, input.Email); err == nil {
		return domain.Session{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.Session{}, err
	}

	existing, err := s.userRepository.Count(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.Session{}, err
	}

	user, err := s.userRepository.Create(ctx, domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleForNewUser(existing),
	})
	if err != nil {
		return domain.Session{}, err
	}
	if user.Role == domain.RoleAdmin {
		zap.L().Info("first account registered as admin", zap.String("user_id", user.ID))
	}

	return s.session(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.userRepository.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *AuthService) session(user domain.User) (domain.Session, error) {
	tokens, err := s.tokens.Issue(user)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{User: user, Tokens: tokens}, nil
}

var _ ports.AuthService = (*AuthService)(nil)
