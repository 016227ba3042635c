package auth_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/auth"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/pkg/jwt"
)

type memUsers struct {
	byID map[int64]*entity.User
	seq  int64
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, o := range m.byID {
		if o.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.seq++
	u.ID = m.seq
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}
func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}
func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}
func (m *memUsers) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.byID, id)
	return nil
}
func (m *memUsers) List(context.Context, int, int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

type memRoles struct {
	roles  map[int64]*entity.Role
	matrix map[int64][]string
	keys   []string
}

func (m *memRoles) Create(_ context.Context, r *entity.Role) error {
	r.ID = int64(len(m.roles) + 1)
	m.roles[r.ID] = r
	return nil
}
func (m *memRoles) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	if r, ok := m.roles[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}
func (m *memRoles) Update(_ context.Context, r *entity.Role) error {
	m.roles[r.ID] = r
	return nil
}
func (m *memRoles) Delete(_ context.Context, id int64) error {
	delete(m.roles, id)
	return nil
}
func (m *memRoles) List(context.Context) ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(m.roles))
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}
func (m *memRoles) ListPermissions(context.Context) ([]*entity.Permission, error) {
	out := make([]*entity.Permission, 0, len(m.keys))
	for i, k := range m.keys {
		out = append(out, &entity.Permission{ID: int64(i + 1), Clave: k})
	}
	return out, nil
}
func (m *memRoles) PermissionsOf(_ context.Context, roleID int64) ([]string, error) {
	return append([]string{}, m.matrix[roleID]...), nil
}
func (m *memRoles) ReplacePermissions(_ context.Context, roleID int64, keys []string) error {
	for _, k := range keys {
		found := false
		for _, known := range m.keys {
			found = found || known == k
		}
		if !found {
			return domain.ErrInvalidInput
		}
	}
	sorted := append([]string{}, keys...)
	sort.Strings(sorted)
	m.matrix[roleID] = sorted
	return nil
}
func (m *memRoles) HasPermission(_ context.Context, roleName, key string) (bool, error) {
	for id, r := range m.roles {
		if r.Nombre != roleName {
			continue
		}
		for _, k := range m.matrix[id] {
			if k == key {
				return true, nil
			}
		}
	}
	return false, nil
}

const secret = "test-secret"

func fixtures() (*memUsers, *memRoles) {
	roles := &memRoles{
		roles: map[int64]*entity.Role{
			1: {ID: 1, Nombre: entity.RoleAdmin},
			2: {ID: 2, Nombre: "vendedor"},
		},
		matrix: map[int64][]string{2: {entity.PermInventario}},
		keys: []string{entity.PermCatalogo, entity.PermInventario, entity.PermCompras,
			entity.PermContenido, entity.PermUsuarios, entity.PermReportes},
	}
	return &memUsers{byID: map[int64]*entity.User{}}, roles
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users, roles := fixtures()
	uuc := auth.NewUserUseCase(users, roles)
	created, err := uuc.Create(ctx, dto.CreateUserRequest{IDRol: 2, Nombre: "Ana", Email: "Ana@Boutique.pe", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@boutique.pe", created.Email)

	auc := auth.NewAuthUseCase(users, roles, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"})

	resp, err := auc.Login(ctx, dto.LoginRequest{Email: "ana@boutique.pe", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PermInventario}, resp.User.Permisos)
	uid, role, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, uid)
	assert.Equal(t, "vendedor", role)

	_, err = auc.Login(ctx, dto.LoginRequest{Email: "ana@boutique.pe", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = auc.Login(ctx, dto.LoginRequest{Email: "nadie@boutique.pe", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	ctx := context.Background()
	users, roles := fixtures()
	inactive := false
	_, err := auth.NewUserUseCase(users, roles).Create(ctx, dto.CreateUserRequest{
		IDRol: 2, Nombre: "Luis", Email: "luis@boutique.pe", Password: "secreto123", Activo: &inactive,
	})
	require.NoError(t, err)

	auc := auth.NewAuthUseCase(users, roles, auth.JWTConfig{Secret: secret, ExpMinutes: 60})
	_, err = auc.Login(ctx, dto.LoginRequest{Email: "luis@boutique.pe", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestHasPermission(t *testing.T) {
	ctx := context.Background()
	users, roles := fixtures()
	auc := auth.NewAuthUseCase(users, roles, auth.JWTConfig{Secret: secret})

	ok, err := auc.HasPermission(ctx, entity.RoleAdmin, entity.PermUsuarios)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = auc.HasPermission(ctx, "vendedor", entity.PermInventario)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = auc.HasPermission(ctx, "vendedor", entity.PermCompras)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = auc.HasPermission(ctx, "", entity.PermInventario)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplacePermissions(t *testing.T) {
	ctx := context.Background()
	_, roles := fixtures()
	ruc := auth.NewRoleUseCase(roles)

	perms, err := ruc.ReplacePermissions(ctx, 2, []string{" compras ", entity.PermCatalogo})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PermCatalogo, entity.PermCompras}, perms)

	_, err = ruc.ReplacePermissions(ctx, 2, []string{"volar"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	perms, err = ruc.Permissions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, perms, 2, "una clave inválida no altera la fila")

	_, err = ruc.ReplacePermissions(ctx, 99, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleAdminProtegido(t *testing.T) {
	ctx := context.Background()
	_, roles := fixtures()
	ruc := auth.NewRoleUseCase(roles)

	assert.ErrorIs(t, ruc.Delete(ctx, 1), domain.ErrConflict)
	_, err := ruc.Update(ctx, 1, dto.RoleRequest{Nombre: "jefe"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserUseCase_NoSeEliminaASiMismo(t *testing.T) {
	ctx := context.Background()
	users, roles := fixtures()
	uuc := auth.NewUserUseCase(users, roles)
	u, err := uuc.Create(ctx, dto.CreateUserRequest{IDRol: 1, Nombre: "Root", Email: "root@boutique.pe", Password: "secreto123"})
	require.NoError(t, err)

	assert.ErrorIs(t, uuc.Delete(ctx, u.ID, u.ID), domain.ErrConflict)
	off := false
	_, err = uuc.Update(ctx, u.ID, u.ID, dto.UpdateUserRequest{Activo: &off})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uuc.Create(ctx, dto.CreateUserRequest{IDRol: 9, Nombre: "X", Email: "x@boutique.pe", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
