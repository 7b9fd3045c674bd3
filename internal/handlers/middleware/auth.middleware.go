package middleware

import (
	"context"
	"strings"

	"rentalos/internal/models"
	"rentalos/internal/queries"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

// AuthContextKey is used to store the session member in context
type AuthContextKey string

const (
	MemberKey      AuthContextKey = "member"
	MemberKeyFiber string         = "Member" // Fiber context key (string)
)

// RequireAuth validates the bearer session token and resolves the member it
// belongs to from the current state snapshot.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").TraceFromContext(c.Context()).Function("RequireAuth")

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Info("missing authorization header")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Check for Bearer token format
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			log.Info("invalid authorization header format")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		token := tokenParts[1]
		if token == "" {
			log.Info("empty token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token required",
			})
		}

		claims, err := m.token.Validate(token)
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// The member may have been removed since the token was issued
		member, found := queries.MemberByID(m.Store.Snapshot(), claims.MemberID)
		if !found {
			log.Info("member not found for session", "memberID", claims.MemberID)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Member not found",
			})
		}

		// Store member in Fiber context
		c.Locals(MemberKeyFiber, &member)

		// Add to Go context for services (preserve trace ID from TraceID middleware)
		ctx := context.WithValue(c.UserContext(), MemberKey, &member)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RequirePermission gates a route on the member's role permissions. Must run
// after RequireAuth.
func (m *Middleware) RequirePermission(permission models.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").
			TraceFromContext(c.Context()).
			Function("RequirePermission")

		member := GetMember(c)
		if member == nil {
			log.Info("no member in context")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if !member.Role.HasPermission(permission) {
			log.Info(
				"permission denied",
				"memberID", member.ID,
				"role", member.Role,
				"permission", permission,
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Permission denied",
			})
		}

		return c.Next()
	}
}

// GetMember extracts the session member from Fiber context
func GetMember(c *fiber.Ctx) *models.Member {
	member, ok := c.Locals(MemberKeyFiber).(*models.Member)
	if !ok {
		return nil
	}
	return member
}
