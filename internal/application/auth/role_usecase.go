package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// RoleUseCase roles y matriz rol/permiso.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
}

func NewRoleUseCase(roleRepo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo}
}

func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	r := &entity.Role{Nombre: strings.ToLower(strings.TrimSpace(in.Nombre)), Descripcion: strings.TrimSpace(in.Descripcion)}
	if err := uc.roleRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRoleResponse(r, []string{}), nil
}

func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.RoleRequest) (*dto.RoleResponse, error) {
	r, err := uc.require(ctx, id)
	if err != nil {
		return nil, err
	}
	nombre := strings.ToLower(strings.TrimSpace(in.Nombre))
	if r.Nombre == entity.RoleAdmin && nombre != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: el rol admin no se puede renombrar", domain.ErrConflict)
	}
	r.Nombre = nombre
	r.Descripcion = strings.TrimSpace(in.Descripcion)
	if err := uc.roleRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete el rol admin no se elimina; roles con usuarios devuelven ErrInUse.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	r, err := uc.require(ctx, id)
	if err != nil {
		return err
	}
	if r.Nombre == entity.RoleAdmin {
		return fmt.Errorf("%w: el rol admin no se puede eliminar", domain.ErrConflict)
	}
	return uc.roleRepo.Delete(ctx, id)
}

func (uc *RoleUseCase) Get(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	r, err := uc.require(ctx, id)
	if err != nil {
		return nil, err
	}
	perms, err := uc.roleRepo.PermissionsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(r, perms), nil
}

func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	list, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		perms, err := uc.roleRepo.PermissionsOf(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toRoleResponse(r, perms))
	}
	return out, nil
}

// ListPermissions catálogo fijo de permisos.
func (uc *RoleUseCase) ListPermissions(ctx context.Context) ([]dto.PermissionResponse, error) {
	list, err := uc.roleRepo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermissionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PermissionResponse{ID: p.ID, Clave: p.Clave, Descripcion: p.Descripcion})
	}
	return out, nil
}

// Permissions fila de la matriz para el rol.
func (uc *RoleUseCase) Permissions(ctx context.Context, id int64) ([]string, error) {
	if _, err := uc.require(ctx, id); err != nil {
		return nil, err
	}
	return uc.roleRepo.PermissionsOf(ctx, id)
}

// ReplacePermissions sustituye la fila completa. Claves desconocidas devuelven ErrInvalidInput y no cambia nada.
func (uc *RoleUseCase) ReplacePermissions(ctx context.Context, id int64, keys []string) ([]string, error) {
	if _, err := uc.require(ctx, id); err != nil {
		return nil, err
	}
	clean := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			clean = append(clean, k)
		}
	}
	if err := uc.roleRepo.ReplacePermissions(ctx, id, clean); err != nil {
		return nil, err
	}
	return uc.roleRepo.PermissionsOf(ctx, id)
}

func (uc *RoleUseCase) require(ctx context.Context, id int64) (*entity.Role, error) {
	r, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func toRoleResponse(r *entity.Role, perms []string) *dto.RoleResponse {
	if perms == nil {
		perms = []string{}
	}
	return &dto.RoleResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion, Permisos: perms}
}
