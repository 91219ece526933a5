// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthContext holds authentication details extracted from JWT.
type AuthContext struct {
	Subject string // user:<uuid>
	Kind    string // user
	Roles   []string
}

// UserID parses the uuid out of a user:<uuid> subject.
func (ac *AuthContext) UserID() (uuid.UUID, bool) {
	if ac == nil || !strings.HasPrefix(ac.Subject, "user:") {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimPrefix(ac.Subject, "user:"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// HasRole reports whether the context carries the given role.
func (ac *AuthContext) HasRole(role string) bool {
	if ac == nil {
		return false
	}
	for _, r := range ac.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenParser parses a token string and returns subject, kind, roles.
type TokenParser func(token string) (string, string, []string, error)

// JWTMiddlewareDynamic attaches auth context parsed by the given token parser.
func JWTMiddlewareDynamic(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, kind, roles, err := parse(token)
		if err == nil && sub != "" {
			c.Locals("auth", &AuthContext{Subject: sub, Kind: kind, Roles: roles})
		}
		return c.Next()
	}
}

// RequireUser enforces authenticated user (kind=user)
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind != "user" || ac.Subject == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// RequireRoles enforces that the authenticated context has at least one of the roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind == "" {
			return fiber.ErrUnauthorized
		}
		if len(roles) == 0 {
			return c.Next()
		}
		for _, need := range roles {
			if ac.HasRole(need) {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}
