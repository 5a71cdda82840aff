package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aftab6363/Spare-Parts-Depot/internal/model"
)

// identityContextKey is where middleware stores the resolved Identity.
const identityContextKey = "identity"

// Identity is the authenticated caller attached to a request by the
// JWT middleware.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// IdentityFromToken builds an Identity from the claims echo-jwt parsed.
// echo-jwt stores a jwt/v5 token with MapClaims under "user".
func IdentityFromToken(c echo.Context) (Identity, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return Identity{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, false
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return Identity{}, false
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return Identity{UserID: userID, Email: email, Role: role}, true
}

// SetIdentity attaches an Identity to the request context.
func SetIdentity(c echo.Context, ident Identity) {
	c.Set(identityContextKey, ident)
}

// CurrentIdentity returns the Identity stored by the middleware.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityContextKey).(Identity)
	return ident, ok
}
