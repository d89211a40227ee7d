package middleware

import (
	"log/slog"
	"time"

	"Backend-Booking-Designer/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "designer_session"
	sessionIDKey      = "designerSessionID"
)

// DesignerSession ผูก request กับ session ของ designer ผ่าน cookie ที่เซ็นด้วย JWT.
// A missing, tampered or expired cookie starts a brand new session.
func DesignerSession(secret []byte, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := utils.ParseSessionToken(secret, c.Cookies(SessionCookieName)); err == nil {
			c.Locals(sessionIDKey, claims.SessionID)
			return c.Next()
		}

		sid := uuid.NewString()
		token, err := utils.GenerateSessionToken(secret, sid, ttl)
		if err != nil {
			LoggerFromContext(c).Error("❌ failed to sign designer session", slog.Any("error", err))
			return utils.HandleError(c, fiber.StatusInternalServerError, "Ocorreu um erro interno")
		}

		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(sessionIDKey, sid)
		return c.Next()
	}
}

// SessionID returns the designer session bound by DesignerSession.
func SessionID(c *fiber.Ctx) string {
	if sid, ok := c.Locals(sessionIDKey).(string); ok {
		return sid
	}
	return ""
}
