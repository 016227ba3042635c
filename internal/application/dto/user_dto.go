package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el caso de uso).
type CreateUserRequest struct {
	IDRol    int64  `json:"idRol" validate:"required,gt=0"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Activo   *bool  `json:"activo"`
}

// UpdateUserRequest edición parcial. Password vacío conserva la actual.
type UpdateUserRequest struct {
	IDRol    *int64  `json:"idRol" validate:"omitempty,gt=0"`
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=150"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Activo   *bool   `json:"activo"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	IDRol     int64     `json:"idRol"`
	Rol       string    `json:"rol"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	Permisos  []string  `json:"permisos,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario. El token también viaja en la cookie de sesión.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RoleRequest alta/edición de rol.
type RoleRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=60"`
	Descripcion string `json:"descripcion" validate:"max=255"`
}

// RoleResponse rol con sus permisos.
type RoleResponse struct {
	ID          int64    `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Permisos    []string `json:"permisos"`
}

// PermissionResponse permiso del catálogo fijo.
type PermissionResponse struct {
	ID          int64  `json:"id"`
	Clave       string `json:"clave"`
	Descripcion string `json:"descripcion"`
}

// RolePermissionsRequest fila completa de la matriz para un rol.
type RolePermissionsRequest struct {
	Permisos []string `json:"permisos" validate:"dive,required"`
}
