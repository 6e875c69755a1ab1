package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/auth"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/response"
	log "github.com/sirupsen/logrus"
)

// AdminUserIDKey is the gin context key holding the verified admin's id.
const AdminUserIDKey = "admin_user_id"

// AdminChecker re-reads a user and reports whether it is an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

// RequireAdmin lets a request through when the caller is a current admin.
// The caller is named by a bearer token with the ADMIN role or by the
// adminUserId query parameter; either way the user is re-read. Anything else
// is answered with 403.
func RequireAdmin(users AdminChecker, tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := adminFromToken(c, tokens)
		if !ok {
			parsed, err := strconv.ParseUint(c.Query("adminUserId"), 10, 64)
			if err != nil {
				denyAdmin(c)
				return
			}
			id = uint(parsed)
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), id)
		if err != nil {
			log.WithError(err).WithField("adminUserId", id).Error("admin check failed")
		}
		if err != nil || !isAdmin {
			denyAdmin(c)
			return
		}

		c.Set(AdminUserIDKey, id)
		c.Next()
	}
}

func adminFromToken(c *gin.Context, tokens *auth.TokenIssuer) (uint, bool) {
	if !tokens.Enabled() {
		return 0, false
	}

	// Get the token from the header
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if tokenString == "" || tokenString == header {
		return 0, false
	}

	claims, err := tokens.Parse(tokenString)
	if err != nil {
		log.WithError(err).Debug("rejected bearer token")
		return 0, false
	}
	if claims.Role != string(models.RoleAdmin) {
		return 0, false
	}
	return claims.UserID, true
}

func denyAdmin(c *gin.Context) {
	response.Fail(c, http.StatusForbidden, "Admin access required")
	c.Abort()
}

// AdminUserID returns the admin id RequireAdmin stored on the context.
func AdminUserID(c *gin.Context) uint {
	return c.GetUint(AdminUserIDKey)
}
