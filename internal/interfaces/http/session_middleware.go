package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/ports"
)

// LocalSession key de la credencial de sesión en Fiber locals.
const LocalSession = "session_token"

// loginPath ruta a la que la UI debe navegar ante la señal de no autorizado.
const loginPath = "/login.html"

// SessionMiddleware extrae la cookie de sesión y la deja en locals para que
// cada handler la reenvíe al backend. La credencial no se valida aquí: el
// backend es la única autoridad. Sin cookie no hay nada que reenviar, así que
// se responde la señal de redirección sin gastar un viaje.
func SessionMiddleware(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return respondUnauthorized(c)
		}
		c.Locals(LocalSession, token)
		return c.Next()
	}
}

// GetSession devuelve la credencial del contexto (después del middleware).
func GetSession(c *fiber.Ctx) string {
	v := c.Locals(LocalSession)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// requestCtx contexto de la petición con la sesión adjunta, listo para el
// cliente del backend.
func requestCtx(c *fiber.Ctx) context.Context {
	return ports.WithSession(c.UserContext(), GetSession(c))
}

func respondUnauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:     "UNAUTHORIZED",
		Message:  "sesión expirada o inválida",
		Redirect: loginPath,
	})
}
