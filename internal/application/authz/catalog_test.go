package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/authz"
)

func TestCatalog_KeysUnicasYEstables(t *testing.T) {
	c := authz.NewCatalog()
	keys := c.AllKeys()
	require.NotEmpty(t, keys)

	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		_, dup := seen[k]
		assert.False(t, dup, "key duplicada en el catálogo: %s", k)
		seen[k] = struct{}{}
		assert.True(t, c.Has(k))
	}
	assert.False(t, c.Has("permiso_inexistente"))
}

func TestCatalog_MenuCubreTodasLasCategorias(t *testing.T) {
	c := authz.NewCatalog()
	menu := c.ListMenuItems()
	require.Len(t, menu, 9)

	for _, m := range menu {
		features := c.PermissionsByCategory(m.Category)
		assert.NotEmpty(t, features, "la categoría %s debe tener permisos", m.Category)
		// La key de nivel tab del menú vive dentro de su propia categoría.
		found := false
		for _, f := range features {
			if f.Key == m.Permission {
				found = true
			}
		}
		assert.True(t, found, "la key de tab %s debe pertenecer a la categoría %s", m.Permission, m.Category)
	}
}

func TestCatalog_SoloAdminFlags(t *testing.T) {
	c := authz.NewCatalog()
	adminOnly := map[string]bool{}
	for _, m := range c.ListMenuItems() {
		adminOnly[m.Category] = m.AdminOnly
	}
	assert.True(t, adminOnly["employees"])
	assert.True(t, adminOnly["roles"])
	assert.True(t, adminOnly["settings"])
	assert.False(t, adminOnly["products"])
}

func TestCatalog_CopiasDefensivas(t *testing.T) {
	c := authz.NewCatalog()
	keys := c.AllKeys()
	keys[0] = "mutado"
	assert.NotEqual(t, "mutado", c.AllKeys()[0], "AllKeys debe devolver una copia")

	menu := c.ListMenuItems()
	menu[0].Label = "Mutado"
	assert.NotEqual(t, "Mutado", c.ListMenuItems()[0].Label, "ListMenuItems debe devolver una copia")
}
