package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// PermissionHandler expone el catálogo de permisos: el persistido (con IDs,
// para asignar grants) y el menú navegable filtrado por el set efectivo.
type PermissionHandler struct {
	perms  repository.PermissionRepository
	engine *authz.Engine
}

// NewPermissionHandler construye el handler de permisos.
func NewPermissionHandler(perms repository.PermissionRepository, engine *authz.Engine) *PermissionHandler {
	return &PermissionHandler{perms: perms, engine: engine}
}

// List godoc
// @Summary      Catálogo persistido de permisos, plano y agrupado por categoría
// @Tags         permissions
// @Produce      json
// @Success      200  {object}  dto.GroupedPermissionsResponse
// @Security     BearerAuth
// @Router       /api/permissions [get]
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	perms, err := h.perms.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	out := dto.GroupedPermissionsResponse{
		Permissions: make([]dto.PermissionResponse, 0, len(perms)),
		Grouped:     make(map[string][]dto.PermissionResponse),
	}
	for _, p := range perms {
		resp := dto.PermissionResponse{
			ID: p.ID, Key: p.Key, Name: p.Name, Category: p.Category, Description: p.Description,
		}
		out.Permissions = append(out.Permissions, resp)
		out.Grouped[p.Category] = append(out.Grouped[p.Category], resp)
	}
	return c.JSON(out)
}

// MenuItems godoc
// @Summary      Entradas del menú visibles para el llamador
// @Description  Filtra el menú por el set efectivo de permisos; las entradas
// @Description  admin-only solo aparecen para admins.
// @Tags         permissions
// @Produce      json
// @Success      200  {array}  authz.MenuItem
// @Security     BearerAuth
// @Router       /api/permissions/menu-items [get]
func (h *PermissionHandler) MenuItems(c *fiber.Ctx) error {
	user := CurrentUser(c)
	set, err := h.engine.PermissionsFor(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	isAdmin := user.AuthzModeOf() == entity.ModeAdmin
	var visible []authz.MenuItem
	for _, item := range h.engine.Catalog().ListMenuItems() {
		if item.AdminOnly && !isAdmin {
			continue
		}
		if !set.Has(item.Permission) {
			continue
		}
		visible = append(visible, item)
	}
	if visible == nil {
		visible = []authz.MenuItem{}
	}
	return c.JSON(visible)
}

// tabPermissions un tab del menú con sus permisos de grano fino anidados.
// Es la forma que consume el editor de roles.
type tabPermissions struct {
	Href        string                    `json:"href"`
	Icon        string                    `json:"icon"`
	Label       string                    `json:"label"`
	Permission  string                    `json:"permission"`
	AdminOnly   bool                      `json:"admin_only"`
	Permissions []authz.FeaturePermission `json:"permissions"`
}

// ByTabs godoc
// @Summary      Catálogo completo agrupado por tab del menú
// @Description  Estructura para el editor de roles: cada tab con sus permisos
// @Description  de grano fino. No se filtra por el set del llamador.
// @Tags         permissions
// @Produce      json
// @Success      200  {array}  http.tabPermissions
// @Security     BearerAuth
// @Router       /api/permissions/by-tabs [get]
func (h *PermissionHandler) ByTabs(c *fiber.Ctx) error {
	catalog := h.engine.Catalog()
	items := catalog.ListMenuItems()
	out := make([]tabPermissions, 0, len(items))
	for _, item := range items {
		out = append(out, tabPermissions{
			Href:        item.Href,
			Icon:        item.Icon,
			Label:       item.Label,
			Permission:  item.Permission,
			AdminOnly:   item.AdminOnly,
			Permissions: catalog.PermissionsByCategory(item.Category),
		})
	}
	return c.JSON(out)
}
