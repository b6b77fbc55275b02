package application

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"

	"frankies/internal/service/account/domain"
)

// PasswordHasher abstracts the bcrypt implementation in infrastructure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AccountService owns user CRUD and the profile projection. Password hashing
// happens here, so every create path stores a hash regardless of transport.
type AccountService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	tracer trace.Tracer
}

func NewAccountService(users domain.UserRepository, hasher PasswordHasher, tracer trace.Tracer) *AccountService {
	return &AccountService{users: users, hasher: hasher, tracer: tracer}
}

func (s *AccountService) AddUser(ctx context.Context, req *CreateUserRequest) (*domain.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.AddUser")
	defer span.End()

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &domain.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Status:       "active",
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "add user")
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *AccountService) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) error {
	ctx, span := s.tracer.Start(ctx, "account.UpdateUser")
	defer span.End()

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	if req.Status != "" {
		user.Status = req.Status
	}
	return errors.Wrap(s.users.Save(ctx, user), "update user")
}

func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "account.DeleteUser")
	defer span.End()

	return s.users.Delete(ctx, id)
}

// GetUserProfile returns the sanitized projection, or nil (not an error)
// when the user does not exist.
func (s *AccountService) GetUserProfile(ctx context.Context, id string) (*domain.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.GetUserProfile")
	defer span.End()

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetch user profile")
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateUserProfile applies the caller-editable profile fields and returns
// the updated projection, or nil when the user does not exist.
func (s *AccountService) UpdateUserProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*domain.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.UpdateUserProfile")
	defer span.End()

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetch user")
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	if err := s.users.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "update user profile")
	}
	profile := user.Profile()
	return &profile, nil
}
