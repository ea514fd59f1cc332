package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/tienda-api/internal/application/authz"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/token"
)

// Locals keys en Fiber.
const (
	LocalUserID  = "user_id"
	LocalEmail   = "email"
	LocalRole    = "role"
	LocalShopID  = "shop_id"
	LocalUser    = "current_user"
	LocalSession = "session"
)

// SessionCookie nombre de la cookie donde viaja el token.
const SessionCookie = "token"

// AuthMiddleware verifica la sesión y carga el usuario actual en c.Locals.
// El token se lee primero de la cookie de sesión y si no, del header
// Authorization (Bearer). Se falla cerrado: token ilegible, firma inválida,
// expirado o usuario ya inexistente responden 401 sin distinguir la causa
// concreta más allá del código genérico.
//
// Role y RoleID salen del usuario en BD, no de los claims: un cambio de rol
// aplica en la siguiente request sin re-login. Los claims solo dan identidad.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
			}
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		sess, err := token.Verify(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		user, err := users.FindByID(sess.UserID)
		if err != nil {
			log.Error().Err(err).Str("user_id", sess.UserID).Msg("verificación de sesión contra BD falló")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
		}
		if user == nil {
			// El usuario del token ya no existe (ej. empleado eliminado).
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalUser, user)
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// RequireShop resuelve la tienda activa y la deja en c.Locals. Debe usarse
// DESPUÉS de AuthMiddleware. Un usuario en pre-onboarding recibe 403 NO_SHOP:
// error de cliente distinguible ("termina el onboarding"), no un 401.
func RequireShop(resolver *authz.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no encontrada"})
		}
		shopID, err := resolver.Resolve(c.Context(), sess)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalShopID, shopID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetShopID devuelve la tienda activa del contexto (después de RequireShop).
func GetShopID(c *fiber.Ctx) string {
	v := c.Locals(LocalShopID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// CurrentUser devuelve el usuario cargado por AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetSession devuelve la sesión verificada del token.
func GetSession(c *fiber.Ctx) *token.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*token.Session)
	return s
}
