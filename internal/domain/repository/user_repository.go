package repository

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}

// RoleRepository define el puerto de persistencia para roles y la matriz rol/permiso.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Role, error)
	ListPermissions(ctx context.Context) ([]*entity.Permission, error)
	PermissionsOf(ctx context.Context, roleID int64) ([]string, error)
	// ReplacePermissions sustituye la fila completa de la matriz para el rol (en una transacción).
	ReplacePermissions(ctx context.Context, roleID int64, keys []string) error
	HasPermission(ctx context.Context, roleName, key string) (bool, error)
}
