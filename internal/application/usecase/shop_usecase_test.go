package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/token"
)

const testSecret = "secreto-de-prueba-para-tests"

func newShopHarness() (*usecase.ShopUseCase, *fakeShopRepo, *fakeUserRepo) {
	shops := newFakeShopRepo()
	users := newFakeUserRepo()
	cfg := auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "tienda-pro"}
	return usecase.NewShopUseCase(shops, users, cfg), shops, users
}

// ──────────────────────────────────────────────────────────────────────────────
// Onboarding
// ──────────────────────────────────────────────────────────────────────────────

// Crear la tienda asigna el shop_id al admin y reemite el token de sesión
// con la tienda nueva: el cliente no depende del fallback de tenencia.
func TestShopCreate_AsignaTiendaYReemiteToken(t *testing.T) {
	uc, shops, users := newShopHarness()
	users.users["admin-1"] = &entity.User{
		ID: "admin-1", Email: "dueno@tienda.co", Role: entity.RoleAdmin,
	}

	out, err := uc.Create("admin-1", dto.CreateShopRequest{
		ShopName: "La Esquina", OwnerName: "Carlos Ruiz", Email: "dueno@tienda.co",
	})
	require.NoError(t, err)
	assert.Contains(t, shops.shops, out.Shop.ID)
	assert.Equal(t, out.Shop.ID, users.users["admin-1"].ShopID)

	sess, err := token.Verify(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Shop.ID, sess.ShopID, "el token reemitido debe traer la tienda nueva")
	assert.Equal(t, "admin-1", sess.UserID)
}

// Un admin con tienda no puede crear otra.
func TestShopCreate_SegundaTiendaEsConflicto(t *testing.T) {
	uc, _, users := newShopHarness()
	users.users["admin-1"] = &entity.User{
		ID: "admin-1", ShopID: shopA, Role: entity.RoleAdmin,
	}

	_, err := uc.Create("admin-1", dto.CreateShopRequest{ShopName: "Otra"})
	require.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura y settings
// ──────────────────────────────────────────────────────────────────────────────

func TestShopInfo_NotFoundSiNoExiste(t *testing.T) {
	uc, _, _ := newShopHarness()

	_, err := uc.Info(shopA)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShopUpdate_ActualizaDatos(t *testing.T) {
	uc, shops, users := newShopHarness()
	users.users["admin-1"] = &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	out, err := uc.Create("admin-1", dto.CreateShopRequest{ShopName: "La Esquina", Currency: "COP"})
	require.NoError(t, err)

	err = uc.Update(out.Shop.ID, dto.UpdateShopRequest{ShopName: "La Esquina 2", Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "La Esquina 2", shops.shops[out.Shop.ID].ShopName)
	assert.Equal(t, "USD", shops.shops[out.Shop.ID].Currency)
}
