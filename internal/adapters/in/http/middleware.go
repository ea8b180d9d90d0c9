package http

import (
	"servicetrack/internal/core/domain/model/kernel"
	"servicetrack/internal/core/domain/model/principal"
	"servicetrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// PrincipalHeader carries the id of the acting principal. The identity layer
// in front of this service authenticates the session and forwards the id;
// this core only resolves it against the directory.
const PrincipalHeader = "X-Principal-ID"

const principalContextKey = "servicetrack.principal"

// ResolvePrincipal returns middleware that loads the acting principal from
// the directory based on the request header. A missing, malformed, or
// unknown id leaves the principal unset; the access gate then denies the
// operation with no_session instead of the edge guessing at intent.
func ResolvePrincipal(directory ports.PrincipalDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(PrincipalHeader)
			if raw == "" {
				return next(c)
			}

			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return next(c)
			}

			actor, err := directory.Get(c.Request().Context(), id)
			if err != nil {
				return next(c)
			}

			c.Set(principalContextKey, actor)
			return next(c)
		}
	}
}

// actorFromContext returns the resolved principal, or nil when the request
// carried no usable identity.
func actorFromContext(c echo.Context) *principal.Principal {
	actor, _ := c.Get(principalContextKey).(*principal.Principal)
	return actor
}
