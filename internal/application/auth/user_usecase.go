package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del back-office.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// Create hashea la password con bcrypt y persiste. ErrEmailAlreadyExists si el email ya existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := uc.requireRole(ctx, in.IDRol)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		RoleID:       role.ID,
		RoleName:     role.Nombre,
		Nombre:       strings.TrimSpace(in.Nombre),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Activo:       in.Activo == nil || *in.Activo,
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

func (uc *UserUseCase) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(u), nil
}

// Update edición parcial. actorID no puede desactivarse a sí mismo.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.IDRol != nil && *in.IDRol != u.RoleID {
		role, err := uc.requireRole(ctx, *in.IDRol)
		if err != nil {
			return nil, err
		}
		u.RoleID, u.RoleName = role.ID, role.Nombre
	}
	if in.Nombre != nil {
		u.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil && *in.Password != "" {
		if u.PasswordHash, err = hashPassword(*in.Password); err != nil {
			return nil, err
		}
	}
	if in.Activo != nil {
		if !*in.Activo && actorID == id {
			return nil, fmt.Errorf("%w: no puede desactivar su propio usuario", domain.ErrConflict)
		}
		u.Activo = *in.Activo
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

func (uc *UserUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return fmt.Errorf("%w: no puede eliminar su propio usuario", domain.ErrConflict)
	}
	return uc.userRepo.Delete(ctx, id)
}

func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func (uc *UserUseCase) requireRole(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: rol %d", domain.ErrInvalidInput, id)
	}
	return role, nil
}

func hashPassword(plain string) (string, error) {
	if len(plain) < 8 {
		return "", fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
