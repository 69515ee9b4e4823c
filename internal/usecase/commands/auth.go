package commands

import (
	"context"

	"bonus-crm/internal/infra"
	"bonus-crm/internal/pkg/errs"
	"bonus-crm/internal/pkg/jwt"
	"bonus-crm/internal/pkg/password"
	"bonus-crm/internal/usecase/queries"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type LoginResult struct {
	Token string
	User  queries.AdminUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users AdminUserReader
	jwt   *jwt.Service
}

func NewAuthCommands(users AdminUserReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwt: jwtService}
}

func (uc *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snap, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwt.GenerateToken(snap.ID, snap.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign access token")
	}

	return &LoginResult{
		Token: token,
		User: queries.AdminUserView{
			ID:    snap.ID,
			Email: snap.Email,
			Role:  snap.Role,
		},
	}, nil
}
