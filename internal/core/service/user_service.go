package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mitienda/tienda-api/internal/core/domain"
	"github.com/mitienda/tienda-api/internal/core/ports"
)

// UserService implements the identity use cases on top of four injected
// collaborators: the credential store, the password hasher, the token
// service and the id validator.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	ids    ports.IDValidator
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, ids ports.IDValidator, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens, ids: ids, logger: logger}
}

// Register creates an account. The email lookup runs before the insert so a
// duplicate fails fast; the unique index backs it up against races. The new
// account is not logged in automatically.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) error {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleClient
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		Phone:        in.Phone,
		Role:         role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return err
	}

	s.logger.Info().Str("user_id", created.ID).Str("rol", created.Role).Msg("usuario registrado")
	return nil
}

// Login verifies the credentials and returns a freshly signed session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("inicio de sesión")
	return token, nil
}

// GetProfile loads the account named by a verified token's id claim. The id
// still gets the syntactic check: the claim is caller-supplied data.
func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	if !s.ids.IsValid(id) {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial account update. A new password is hashed before
// it reaches the store; every other field is written as given — including
// rol and email, with no privilege or uniqueness re-check.
func (s *UserService) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	if !s.ids.IsValid(id) {
		return nil, domain.ErrInvalidID
	}

	update := ports.UserUpdate{
		Name:    patch.Name,
		Email:   patch.Email,
		Address: patch.Address,
		Phone:   patch.Phone,
		Role:    patch.Role,
	}

	if patch.Password != nil && *patch.Password != "" {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	user, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("usuario actualizado")
	return user, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Delete removes an account. No soft delete, no audit trail.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if !s.ids.IsValid(id) {
		return domain.ErrInvalidID
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("usuario eliminado")
	return nil
}
