package entity

import "time"

// RoleAdmin rol con acceso total; no se consulta la matriz de permisos.
const RoleAdmin = "admin"

// User operador del back-office.
type User struct {
	ID           int64
	RoleID       int64
	RoleName     string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role agrupa permisos.
type Role struct {
	ID          int64
	Nombre      string
	Descripcion string
}

// Permission clave de permiso del catálogo fijo (catalogo, inventario, compras...).
type Permission struct {
	ID          int64
	Clave       string
	Descripcion string
}

// Claves de permisos sembradas por la migración inicial.
// PermInventario solo se administra en la matriz: el kardex (/api/movements) va con autenticación opcional.
const (
	PermCatalogo   = "catalogo"
	PermInventario = "inventario"
	PermCompras    = "compras"
	PermContenido  = "contenido"
	PermUsuarios   = "usuarios"
	PermReportes   = "reportes"
)
