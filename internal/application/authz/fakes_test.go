package authz_test

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests del núcleo de autorización
// ──────────────────────────────────────────────────────────────────────────────

// fakeRoleRepo implementa repository.RoleRepository sobre mapas.
type fakeRoleRepo struct {
	roles  map[string]*entity.Role
	grants map[string][]string // roleID -> permission keys
}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles:  make(map[string]*entity.Role),
		grants: make(map[string][]string),
	}
}

func (f *fakeRoleRepo) addRole(r *entity.Role, keys ...string) {
	f.roles[r.ID] = r
	f.grants[r.ID] = keys
}

func (f *fakeRoleRepo) Create(role *entity.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) visible(r *entity.Role, shopID string) bool {
	return r.ShopID == nil || *r.ShopID == shopID
}

func (f *fakeRoleRepo) GetVisible(id, shopID string) (*entity.Role, error) {
	r, ok := f.roles[id]
	if !ok || !f.visible(r, shopID) {
		return nil, nil
	}
	return r, nil
}

func (f *fakeRoleRepo) GetByNameInScope(name string, shopID *string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.Name != name {
			continue
		}
		if shopID == nil && r.ShopID == nil {
			return r, nil
		}
		if shopID != nil && r.ShopID != nil && *r.ShopID == *shopID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) ListByScope(shopID *string) ([]*repository.RoleSummary, error) {
	var out []*repository.RoleSummary
	for _, r := range f.roles {
		match := (shopID == nil && r.ShopID == nil) ||
			(shopID != nil && r.ShopID != nil && *r.ShopID == *shopID)
		if match {
			out = append(out, &repository.RoleSummary{Role: *r, PermissionCount: len(f.grants[r.ID])})
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(role *entity.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) Delete(id string) error {
	delete(f.roles, id)
	delete(f.grants, id)
	return nil
}

func (f *fakeRoleRepo) PermissionsOf(roleID string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, k := range f.grants[roleID] {
		out = append(out, &entity.Permission{ID: "perm-" + k, Key: k})
	}
	return out, nil
}

func (f *fakeRoleRepo) PermissionKeys(_ context.Context, roleID, shopID string) ([]string, error) {
	r, ok := f.roles[roleID]
	if !ok || !f.visible(r, shopID) {
		// Rol inexistente o de otra tienda: mismo resultado, sin filtrar existencia.
		return nil, nil
	}
	return f.grants[roleID], nil
}

func (f *fakeRoleRepo) ReplaceGrants(roleID string, permissionIDs []string) error {
	keys := make([]string, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		keys = append(keys, "key-"+id)
	}
	f.grants[roleID] = keys
	return nil
}

// fakeUserRepo implementa repository.UserRepository sobre un mapa.
type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) AssignShop(userID, shopID string) error {
	if u, ok := f.users[userID]; ok {
		u.ShopID = shopID
	}
	return nil
}

func (f *fakeUserRepo) ListByShop(shopID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.ShopID == shopID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*entity.User, error)       { return f.GetByID(id) }
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return f.GetByEmail(email) }

func (f *fakeUserRepo) CurrentShopID(_ context.Context, userID string) (string, error) {
	u, ok := f.users[userID]
	if !ok {
		return "", nil
	}
	return u.ShopID, nil
}

func strPtr(s string) *string { return &s }
