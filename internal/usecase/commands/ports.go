package commands

import (
	"context"

	"github.com/google/uuid"
)

// AdminUserSnapshot is the minimal account data login needs.
type AdminUserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}

type AdminUserReader interface {
	FindByEmail(ctx context.Context, email string) (*AdminUserSnapshot, error)
}
