package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenpark/cms/internal/db"
)

// AdminSessionCookie is the cookie the admin panel sets after sign-in. The
// recognized value is the literal "true"; there is no session store behind
// it and a single implicit admin identity.
const AdminSessionCookie = "admin-session"

const userContextKey = "__user"

// adminUserID is the id attached to the static admin identity. EnsureAdmin
// seeds the matching row as the first account.
const adminUserID uint = 1

// AuthUser is the identity derived for a request; nil means anonymous.
type AuthUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// Identity inspects the admin-session cookie and the Authorization header
// against the configured admin credentials. Anything else is anonymous.
func (a *API) Identity(c *gin.Context) *AuthUser {
	if cookie, err := c.Cookie(AdminSessionCookie); err == nil && cookie == "true" {
		return a.adminIdentity()
	}

	header := c.GetHeader("Authorization")
	if a.admin.Email != "" && header == "Bearer "+a.admin.Email+":"+a.admin.Password {
		return a.adminIdentity()
	}

	return nil
}

func (a *API) adminIdentity() *AuthUser {
	return &AuthUser{
		ID:    adminUserID,
		Email: a.admin.Email,
		Role:  db.RoleAdmin,
		Name:  "Admin",
	}
}

// WithUser derives the request identity once and stores it in the context.
func (a *API) WithUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := a.Identity(c); user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// AuthRequired rejects anonymous requests.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired rejects anonymous requests and non-admin identities.
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
			c.Abort()
			return
		}
		if !strings.EqualFold(user.Role, db.RoleAdmin) {
			respondError(c, http.StatusForbidden, CodeForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *AuthUser {
	if value, exists := c.Get(userContextKey); exists {
		if user, ok := value.(*AuthUser); ok {
			return user
		}
	}
	return nil
}
