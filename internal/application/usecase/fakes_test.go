package usecase_test

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	shopA = "00000000-0000-0000-0000-00000000000a"
	shopB = "00000000-0000-0000-0000-00000000000b"
)

func strPtr(s string) *string { return &s }

func sameScope(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoleRepo struct {
	roles  map[string]*entity.Role
	grants map[string][]string // roleID -> permission IDs
}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[string]*entity.Role{}, grants: map[string][]string{}}
}

func (f *fakeRoleRepo) Create(role *entity.Role) error {
	cp := *role
	f.roles[role.ID] = &cp
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
	cp := *r
	return &cp, nil
}

func (f *fakeRoleRepo) GetByNameInScope(name string, shopID *string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.Name == name && sameScope(r.ShopID, shopID) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) ListByScope(shopID *string) ([]*repository.RoleSummary, error) {
	var out []*repository.RoleSummary
	for _, r := range f.roles {
		if sameScope(r.ShopID, shopID) {
			out = append(out, &repository.RoleSummary{Role: *r, PermissionCount: len(f.grants[r.ID])})
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(role *entity.Role) error {
	cp := *role
	f.roles[role.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) Delete(id string) error {
	delete(f.roles, id)
	delete(f.grants, id)
	return nil
}

func (f *fakeRoleRepo) PermissionsOf(roleID string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, id := range f.grants[roleID] {
		out = append(out, &entity.Permission{ID: id, Key: "key-" + id})
	}
	return out, nil
}

func (f *fakeRoleRepo) PermissionKeys(_ context.Context, roleID, shopID string) ([]string, error) {
	r, ok := f.roles[roleID]
	if !ok || !f.visible(r, shopID) {
		return nil, nil
	}
	var out []string
	for _, id := range f.grants[roleID] {
		out = append(out, "key-"+id)
	}
	return out, nil
}

func (f *fakeRoleRepo) ReplaceGrants(roleID string, permissionIDs []string) error {
	f.grants[roleID] = append([]string(nil), permissionIDs...)
	return nil
}

type fakePermRepo struct {
	perms map[string]*entity.Permission
}

var _ repository.PermissionRepository = (*fakePermRepo)(nil)

func newFakePermRepo(ids ...string) *fakePermRepo {
	f := &fakePermRepo{perms: map[string]*entity.Permission{}}
	for _, id := range ids {
		f.perms[id] = &entity.Permission{ID: id, Key: "key-" + id}
	}
	return f
}

func (f *fakePermRepo) ListAll() ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, p := range f.perms {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePermRepo) GetByIDs(ids []string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, id := range ids {
		if p, ok := f.perms[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePermRepo) Seed(perms []*entity.Permission) error {
	for _, p := range perms {
		if _, ok := f.perms[p.ID]; !ok {
			cp := *p
			f.perms[p.ID] = &cp
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) AssignShop(userID, shopID string) error {
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.ShopID = shopID
	return nil
}

func (f *fakeUserRepo) ListByShop(shopID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.ShopID == shopID {
			cp := *u
			out = append(out, &cp)
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

type fakeShopRepo struct {
	shops map[string]*entity.Shop
}

var _ repository.ShopRepository = (*fakeShopRepo)(nil)

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: map[string]*entity.Shop{}}
}

func (f *fakeShopRepo) Create(s *entity.Shop) error {
	cp := *s
	f.shops[s.ID] = &cp
	return nil
}

func (f *fakeShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShopRepo) Update(s *entity.Shop) error {
	cp := *s
	f.shops[s.ID] = &cp
	return nil
}

// fakeGrantTx pasa el mismo repo de roles al callback; las transacciones
// reales viven en la capa de infraestructura.
type fakeGrantTx struct {
	roles *fakeRoleRepo
	runs  int
}

var _ usecase.GrantTxRunner = (*fakeGrantTx)(nil)

func (f *fakeGrantTx) RunGrants(_ context.Context, fn func(roles repository.RoleRepository) error) error {
	f.runs++
	return fn(f.roles)
}
