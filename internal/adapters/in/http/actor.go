package http

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderActor names the caller when no JWT secret is configured.
	HeaderActor = "X-Actor"
	// AnonymousActor is recorded when the caller cannot be identified.
	AnonymousActor = "anonymous"

	actorContextKey = "actor"
	bearerPrefix    = "Bearer "
)

// ActorMiddleware resolves who is calling. With a secret only the subject of
// a valid HS256 bearer token counts and X-Actor is ignored. Without one bearer
// tokens are ignored and X-Actor is used. Otherwise the actor is "anonymous".
func ActorMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(actorContextKey, resolveActor(ctx, secret))
			return next(ctx)
		}
	}
}

// ActorFrom returns the actor stored by ActorMiddleware.
func ActorFrom(ctx echo.Context) string {
	if actor, ok := ctx.Get(actorContextKey).(string); ok && actor != "" {
		return actor
	}
	return AnonymousActor
}

func resolveActor(ctx echo.Context, secret []byte) string {
	if len(secret) > 0 {
		if subject := bearerSubject(ctx.Request().Header.Get(echo.HeaderAuthorization), secret); subject != "" {
			return subject
		}
		return AnonymousActor
	}
	if actor := strings.TrimSpace(ctx.Request().Header.Get(HeaderActor)); actor != "" {
		return actor
	}
	return AnonymousActor
}

func bearerSubject(header string, secret []byte) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)),
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return ""
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(subject)
}
