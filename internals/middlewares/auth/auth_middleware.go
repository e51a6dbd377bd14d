// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quizprep_backend/internals/configs"
	helper "quizprep_backend/internals/helpers"
)

// AuthMiddleware verifies the access token: signature and expiry only.
// Sessions are not consulted here; the refresh token is the sole
// revocable artifact, so a logged-out access token stays valid until its
// own short expiry elapses.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Not an access token")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return jwt.ErrTokenExpired
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals(helper.LocUserID, sub)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals(helper.LocUserEmail, email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals(helper.LocUserRole, role)
	}
}
