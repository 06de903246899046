package commands

import (
	"context"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthValidation      = errs.New("invalid credentials format")
	ErrEmailAlreadyTaken   = errs.New("email is already registered")
	ErrInvalidCredentials  = errs.New("invalid email or password")
	ErrUserDeactivated     = errs.New("user account is deactivated")
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrPasswordHashFailure = errs.New("password hashing failed")
)

type RegisterRequest struct {
	Email    string
	Password string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwtService: jwtService}
}

func (c *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	creds, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthValidation)
	}

	// Self-service registration always yields a customer. Fleet manager and
	// admin accounts are provisioned out of band.
	entity, err := user.NewUser(creds.Email(), user.RoleCustomer)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthValidation)
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashFailure)
	}

	var result RegisterResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, tx.DB(), entity, hash)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyTaken
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		result.UserID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	snap, err := c.uow.CommandReads().UserByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !snap.IsActive {
		return nil, ErrUserDeactivated
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := c.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: snap.ID, Role: role, AccessToken: token}, nil
}
