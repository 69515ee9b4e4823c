package readstore

import (
	"context"

	"bonus-crm/internal/infra"
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/pkg/pgconv"
	"bonus-crm/internal/usecase/commands"
	"bonus-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminUserView, error) {
	var view queries.AdminUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role FROM admin_users WHERE id = $1`, id,
	).Scan(&view.ID, &view.Email, &view.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin user by id", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*commands.AdminUserSnapshot, error) {
	var snapshot commands.AdminUserSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, password_hash FROM admin_users WHERE email = $1`, email,
	).Scan(&snapshot.ID, &snapshot.Email, &snapshot.Role, &snapshot.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin user by email", err)
	}
	return &snapshot, nil
}
