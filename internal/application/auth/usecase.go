package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
	"github.com/jhoicas/boutique-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, perfil y chequeo de permisos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp, err := uc.withPermissions(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *resp,
	}, nil
}

// Me devuelve el usuario autenticado con sus permisos efectivos.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, domain.ErrUnauthorized
	}
	return uc.withPermissions(ctx, user)
}

// HasPermission admin pasa siempre; el resto se consulta en la matriz rol/permiso.
func (uc *AuthUseCase) HasPermission(ctx context.Context, role, key string) (bool, error) {
	if role == entity.RoleAdmin {
		return true, nil
	}
	if role == "" {
		return false, nil
	}
	return uc.roleRepo.HasPermission(ctx, role, key)
}

func (uc *AuthUseCase) withPermissions(ctx context.Context, u *entity.User) (*dto.UserResponse, error) {
	perms, err := effectivePermissions(ctx, uc.roleRepo, u)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	resp.Permisos = perms
	return resp, nil
}

func effectivePermissions(ctx context.Context, roles repository.RoleRepository, u *entity.User) ([]string, error) {
	if u.RoleName != entity.RoleAdmin {
		return roles.PermissionsOf(ctx, u.RoleID)
	}
	all, err := roles.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(all))
	for _, p := range all {
		keys = append(keys, p.Clave)
	}
	return keys, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		IDRol:     u.RoleID,
		Rol:       u.RoleName,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
