package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/domain/model/kernel"
	"urbanmart/internal/core/domain/model/user"
)

const (
	actorIDKey   = "actorID"
	actorRoleKey = "actorRole"
)

// claims is the JWT payload: the user identifier as subject plus the role.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth issues and verifies the bearer tokens gating every non-public route.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

// NewAuth creates a token authority with the given signing secret and token
// lifetime.
func NewAuth(secret string, ttl time.Duration) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl}
}

// IssueToken signs a token carrying the user's identity and role.
func (a *Auth) IssueToken(userID kernel.UUID, role user.Role, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	})

	return token.SignedString(a.secret)
}

// Middleware authenticates the request and stores the actor's identity and
// role in the echo context. Missing or garbage tokens get 401; role checks
// happen separately in RequireRoles.
func (a *Auth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return c.JSON(http.StatusUnauthorized,
					envelope{Success: false, Error: "missing bearer token"})
			}

			parsed := &claims{}
			_, err := jwt.ParseWithClaims(raw, parsed, func(*jwt.Token) (any, error) {
				return a.secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					envelope{Success: false, Error: "invalid token"})
			}

			actorID, err := kernel.UUIDFromString(parsed.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					envelope{Success: false, Error: "invalid token subject"})
			}
			role, err := user.ParseRole(parsed.Role)
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					envelope{Success: false, Error: "invalid token role"})
			}

			c.Set(actorIDKey, actorID)
			c.Set(actorRoleKey, role)
			return next(c)
		}
	}
}

// RequireRoles rejects authenticated actors whose role is not in the allow
// list with 403.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := actorRole(c)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden,
				envelope{Success: false, Error: "insufficient role"})
		}
	}
}

func actorID(c echo.Context) kernel.UUID {
	id, _ := c.Get(actorIDKey).(kernel.UUID)
	return id
}

func actorRole(c echo.Context) user.Role {
	role, _ := c.Get(actorRoleKey).(user.Role)
	return role
}
