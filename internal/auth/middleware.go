package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"tastetrack/internal/model"
	"tastetrack/internal/response"
)

// JWTMiddleware rejects missing, expired or tampered tokens with 401 before
// any handler runs. Verification is delegated to the JWTService so the
// middleware and any direct callers share one parsing path, and the context
// carries the typed claims rather than a raw token.
func JWTMiddleware(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return svc.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized,
				response.Fail("missing or invalid token"))
		},
	})
}

// RequireRoles admits the request only when the token's role claim is one of
// the allowed roles. A valid token with the wrong role gets 403, so callers
// can tell an expired session from an insufficient one.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized,
					response.Fail("missing or invalid token"))
			}
			if !allowed[claims.Role] {
				return echo.NewHTTPError(http.StatusForbidden,
					response.Fail("insufficient role"))
			}
			return next(c)
		}
	}
}

// ClaimsFromContext extracts the verified claims placed by the JWT middleware.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	claims, ok := c.Get("user").(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no token in context")
	}
	return claims, nil
}
