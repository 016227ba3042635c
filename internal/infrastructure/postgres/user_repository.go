package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.RoleRepository = (*RoleRepo)(nil)
)

const userSelect = `
	SELECT u.id, u.role_id, r.nombre, u.nombre, u.email, u.password_hash, u.activo, u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. El email se guarda en minúsculas.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	query := `
		INSERT INTO users (role_id, nombre, email, password_hash, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, u.RoleID, u.Nombre, u.Email, u.PasswordHash, u.Activo).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con el nombre de su rol.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

// FindByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, userSelect+` WHERE u.email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update actualiza datos, rol, estado y hash de contraseña.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	err := r.pool.QueryRow(ctx, `
		UPDATE users SET role_id = $2, nombre = $3, email = $4, password_hash = $5, activo = $6, updated_at = now()
		WHERE id = $1 RETURNING updated_at`,
		u.ID, u.RoleID, u.Nombre, u.Email, u.PasswordHash, u.Activo,
	).Scan(&u.UpdatedAt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrUserNotFound
	case isUniqueViolation(err):
		return domain.ErrEmailAlreadyExists
	}
	return insertErr("update user", err)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	err := deleteByID(ctx, r.pool, "users", id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, userSelect+` ORDER BY u.nombre LIMIT $1 OFFSET $2`, limitOr(limit, 50, 200), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.RoleID, &u.RoleName, &u.Nombre, &u.Email, &u.PasswordHash, &u.Activo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RoleRepo roles y matriz rol/permiso.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO roles (nombre, descripcion) VALUES ($1, $2) RETURNING id`,
		role.Nombre, role.Descripcion).Scan(&role.ID)
	return insertErr("insert role", err)
}

func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	var role entity.Role
	err := r.pool.QueryRow(ctx, `SELECT id, nombre, descripcion FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Nombre, &role.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE roles SET nombre = $2, descripcion = $3 WHERE id = $1`,
		role.ID, role.Nombre, role.Descripcion)
	if err != nil {
		return insertErr("update role", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete falla con ErrInUse si hay usuarios con el rol.
func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.pool, "roles", id)
}

func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre, descripcion FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Role, 0)
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Nombre, &role.Descripcion); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

func (r *RoleRepo) ListPermissions(ctx context.Context) ([]*entity.Permission, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, clave, descripcion FROM permissions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Permission, 0)
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Clave, &p.Descripcion); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// PermissionsOf claves de permiso asignadas al rol.
func (r *RoleRepo) PermissionsOf(ctx context.Context, roleID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.clave FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = $1 ORDER BY p.id`, roleID)
	if err != nil {
		return nil, fmt.Errorf("permissions of role: %w", err)
	}
	defer rows.Close()
	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan permission key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// ReplacePermissions borra la fila del rol en la matriz e inserta las claves recibidas.
// Claves desconocidas se rechazan con ErrInvalidInput.
func (r *RoleRepo) ReplacePermissions(ctx context.Context, roleID int64, keys []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	if len(keys) > 0 {
		cmd, err := tx.Exec(ctx, `
			INSERT INTO role_permissions (role_id, permission_id)
			SELECT $1, id FROM permissions WHERE clave = ANY($2)`, roleID, keys)
		if err != nil {
			return insertErr("insert role permissions", err)
		}
		if int(cmd.RowsAffected()) != len(uniqueStrings(keys)) {
			return domain.ErrInvalidInput
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// HasPermission consulta la matriz por nombre de rol.
func (r *RoleRepo) HasPermission(ctx context.Context, roleName, key string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM role_permissions rp
			JOIN roles r ON r.id = rp.role_id
			JOIN permissions p ON p.id = rp.permission_id
			WHERE r.nombre = $1 AND p.clave = $2
		)`, roleName, key).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("has permission: %w", err)
	}
	return ok, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
