package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// RequirePermission devuelve un middleware Fiber que exige una permission key
// del catálogo. Debe usarse DESPUÉS de AuthMiddleware (necesita el usuario
// cargado). El set efectivo se calcula fresco en cada request: sin caché, un
// cambio de grants aplica de inmediato.
//
// Comportamiento:
//   - 403 FORBIDDEN → la key no está en el set efectivo del usuario.
//   - 401 → no hay usuario en el contexto (falta AuthMiddleware).
func RequirePermission(key string, gate *authz.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado en el contexto",
			})
		}
		if err := gate.Authorize(c.Context(), user, key); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}
