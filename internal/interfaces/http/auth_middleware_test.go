package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "tienda-pro-test"
	testExpMin    = 60
	testShopA     = "00000000-0000-0000-0000-00000000000a"
	testShopB     = "00000000-0000-0000-0000-00000000000b"
)

func strPtr(s string) *string { return &s }

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
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
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) AssignShop(userID, shopID string) error {
	if u, ok := f.users[userID]; ok {
		u.ShopID = shopID
	}
	return nil
}
func (f *fakeUserRepo) ListByShop(string, int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(id string) error                              { delete(f.users, id); return nil }
func (f *fakeUserRepo) FindByID(id string) (*entity.User, error)            { return f.GetByID(id) }
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error)      { return f.GetByEmail(email) }
func (f *fakeUserRepo) CurrentShopID(_ context.Context, userID string) (string, error) {
	if u, ok := f.users[userID]; ok {
		return u.ShopID, nil
	}
	return "", nil
}

type fakeRoleRepo struct {
	grants map[string][]string // roleID -> keys
	scopes map[string]*string  // roleID -> shop scope
}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func (f *fakeRoleRepo) Create(*entity.Role) error                              { return nil }
func (f *fakeRoleRepo) GetVisible(string, string) (*entity.Role, error)        { return nil, nil }
func (f *fakeRoleRepo) GetByNameInScope(string, *string) (*entity.Role, error) { return nil, nil }
func (f *fakeRoleRepo) ListByScope(*string) ([]*repository.RoleSummary, error) { return nil, nil }
func (f *fakeRoleRepo) Update(*entity.Role) error                              { return nil }
func (f *fakeRoleRepo) Delete(string) error                                    { return nil }
func (f *fakeRoleRepo) PermissionsOf(string) ([]*entity.Permission, error)     { return nil, nil }
func (f *fakeRoleRepo) ReplaceGrants(string, []string) error                   { return nil }

func (f *fakeRoleRepo) PermissionKeys(_ context.Context, roleID, shopID string) ([]string, error) {
	scope, ok := f.scopes[roleID]
	if !ok {
		return nil, nil
	}
	if scope != nil && *scope != shopID {
		return nil, nil
	}
	return f.grants[roleID], nil
}

// failingUserRepo simula la BD caída en la carga de sesión.
type failingUserRepo struct {
	*fakeUserRepo
}

func (f *failingUserRepo) FindByID(string) (*entity.User, error) {
	return nil, errors.New("conexión rechazada")
}

// buildTestApp construye una aplicación Fiber mínima con la cadena completa:
// AuthMiddleware → RequireShop → RequirePermission → handler dummy.
func buildTestApp(users repository.UserRepository, roles *fakeRoleRepo, permKey string) *fiber.App {
	engine := authz.NewEngine(authz.NewCatalog(), roles)
	gate := authz.NewGate(engine)
	resolver := authz.NewResolver(users)

	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, users),
		apphttp.RequireShop(resolver),
		apphttp.RequirePermission(permKey, gate),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"shop_id": apphttp.GetShopID(c),
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenFor emite un token de sesión firmado para el usuario.
func tokenFor(t *testing.T, u *entity.User, shopID string) string {
	t.Helper()
	tok, err := token.Issue(testJWTSecret, token.Session{
		UserID: u.ID, Email: u.Email, Role: u.Role, ShopID: shopID,
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, bearer, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — sesión
// ──────────────────────────────────────────────────────────────────────────────

func adminUser() *entity.User {
	return &entity.User{ID: "u-admin", ShopID: testShopA, Email: "dueno@tienda.co", Role: entity.RoleAdmin}
}

// Caso 1: sin token → 401.
func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), &fakeRoleRepo{}, "view_products")
	resp := doRequest(t, app, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 2: token malformado → 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo(), &fakeRoleRepo{}, "view_products")
	resp := doRequest(t, app, "token.invalido.aqui", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: token válido pero el usuario ya no existe (ej. empleado eliminado)
// → 401, se falla cerrado.
func TestAuthMiddleware_UsuarioEliminado_Retorna401(t *testing.T) {
	ghost := adminUser()
	app := buildTestApp(newFakeUserRepo(), &fakeRoleRepo{}, "view_products")

	resp := doRequest(t, app, tokenFor(t, ghost, testShopA), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Si la BD falla al cargar el usuario, la respuesta es 503 (no un 401 que
// invite a re-loguear): el token puede ser válido, solo no se pudo verificar.
func TestAuthMiddleware_ErrorDeBD_Retorna503(t *testing.T) {
	admin := adminUser()
	users := &failingUserRepo{fakeUserRepo: newFakeUserRepo(admin)}
	app := buildTestApp(users, &fakeRoleRepo{}, "view_products")

	resp := doRequest(t, app, tokenFor(t, admin, testShopA), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "AUTH_CHECK_FAILED")
}

// Caso 4: el token también viaja en la cookie de sesión.
func TestAuthMiddleware_CookieDeSesion(t *testing.T) {
	admin := adminUser()
	app := buildTestApp(newFakeUserRepo(admin), &fakeRoleRepo{}, "view_products")

	resp := doRequest(t, app, "", tokenFor(t, admin, testShopA))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireShop — tenencia
// ──────────────────────────────────────────────────────────────────────────────

// Usuario en pre-onboarding: NO_SHOP, distinguible de un 401.
func TestRequireShop_SinTienda_Retorna403NoShop(t *testing.T) {
	admin := &entity.User{ID: "u-admin", Email: "dueno@tienda.co", Role: entity.RoleAdmin}
	app := buildTestApp(newFakeUserRepo(admin), &fakeRoleRepo{}, "view_products")

	resp := doRequest(t, app, tokenFor(t, admin, ""), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_SHOP")
}

// Token viejo con shop vacío pero tienda ya creada en BD: se resuelve desde
// BD sin exigir re-login.
func TestRequireShop_TokenViejoResuelveDesdeBD(t *testing.T) {
	admin := adminUser() // en BD ya tiene testShopA
	app := buildTestApp(newFakeUserRepo(admin), &fakeRoleRepo{}, "view_products")

	resp := doRequest(t, app, tokenFor(t, admin, ""), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testShopA, body["shop_id"], "la tienda debe salir de la BD, no del token")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission — set efectivo
// ──────────────────────────────────────────────────────────────────────────────

// El admin pasa cualquier key del catálogo sin grants persistidos.
func TestRequirePermission_AdminPasaSinGrants(t *testing.T) {
	admin := adminUser()
	app := buildTestApp(newFakeUserRepo(admin), &fakeRoleRepo{}, "delete_product")

	resp := doRequest(t, app, tokenFor(t, admin, testShopA), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Empleado con rol: pasa las keys otorgadas y nada más.
func TestRequirePermission_EmpleadoSoloSusGrants(t *testing.T) {
	emp := &entity.User{
		ID: "u-emp", ShopID: testShopA, Email: "ana@tienda.co",
		Role: entity.RoleEmployee, RoleID: strPtr("r-cajero"),
	}
	roles := &fakeRoleRepo{
		grants: map[string][]string{"r-cajero": {"view_sales", "create_sale"}},
		scopes: map[string]*string{"r-cajero": strPtr(testShopA)},
	}

	okApp := buildTestApp(newFakeUserRepo(emp), roles, "create_sale")
	resp := doRequest(t, okApp, tokenFor(t, emp, testShopA), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	deniedApp := buildTestApp(newFakeUserRepo(emp), roles, "manage_employees")
	resp2 := doRequest(t, deniedApp, tokenFor(t, emp, testShopA), "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Empleado sin rol asignado: set vacío, todo denegado.
func TestRequirePermission_SinRol_TodoDenegado(t *testing.T) {
	emp := &entity.User{ID: "u-emp", ShopID: testShopA, Email: "ana@tienda.co", Role: entity.RoleEmployee}
	app := buildTestApp(newFakeUserRepo(emp), &fakeRoleRepo{}, "view_dashboard")

	resp := doRequest(t, app, tokenFor(t, emp, testShopA), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Rol de otra tienda en BD: no aporta grants aunque el RoleID apunte a él.
func TestRequirePermission_RolDeOtraTiendaNoResuelve(t *testing.T) {
	emp := &entity.User{
		ID: "u-emp", ShopID: testShopA, Email: "ana@tienda.co",
		Role: entity.RoleEmployee, RoleID: strPtr("r-ajeno"),
	}
	roles := &fakeRoleRepo{
		grants: map[string][]string{"r-ajeno": {"view_sales"}},
		scopes: map[string]*string{"r-ajeno": strPtr(testShopB)},
	}
	app := buildTestApp(newFakeUserRepo(emp), roles, "view_sales")

	resp := doRequest(t, app, tokenFor(t, emp, testShopA), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
