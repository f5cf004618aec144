package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"depo-backend/internal/model"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// SetTokenCookies sets access_token and refresh_token as HttpOnly cookies
func SetTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", accessToken, 3600*24, "/", "", secure, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", secure, true)
}

// ClearTokenCookies removes access_token and refresh_token cookies
func ClearTokenCookies(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
}

// extractToken reads the access token from the cookie, falling back to the
// Authorization header. Returns "" plus an error message on failure.
func extractToken(c *gin.Context) (string, string) {
	tokenString, cookieErr := c.Cookie("access_token")
	if cookieErr == nil && tokenString != "" {
		return tokenString, ""
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization is missing"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", "Invalid authorization format. Expected 'Bearer <token>'"
	}
	return parts[1], ""
}

// RequireAuth validates the JWT and stores userID, username, and roleID in the context
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, errMsg := extractToken(c)
		if errMsg != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(errMsg))
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return GetJWTSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Invalid token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Invalid token claims"))
			return
		}

		roleID, ok := claims["role_id"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Role not found in token"))
			return
		}

		c.Set("userID", claims["sub"])
		c.Set("username", claims["username"])
		c.Set("roleID", roleID)

		c.Next()
	}
}

// --- Permission guards ---

// roleCacheEntry stores a cached role with TTL
type roleCacheEntry struct {
	role      *model.Role
	expiresAt time.Time
}

var (
	roleCache    sync.Map // roleID -> roleCacheEntry
	roleCacheTTL = 5 * time.Minute
)

// permDB holds the database reference for role lookups — set via InitPermissionMiddleware
var permDB *gorm.DB

// InitPermissionMiddleware sets the DB reference for the permission guards
func InitPermissionMiddleware(db *gorm.DB) {
	permDB = db
}

// RequirePage checks that the caller's role may view the given page key.
// Runs after RequireAuth. Unknown keys and unreadable permission columns
// never match — denial is the default.
func RequirePage(pageKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := loadRole(c)
		if !ok {
			return
		}

		if !role.PagePermissions.Has(pageKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Access denied: page '"+pageKey+"' is not permitted"))
			return
		}

		c.Next()
	}
}

// RequireAction checks that the caller's role may perform the given action
// (add/edit/delete) on the given entity. Runs after RequireAuth.
func RequireAction(entity, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := loadRole(c)
		if !ok {
			return
		}

		if !role.EntityPermissions.Can(entity, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Access denied: missing '"+action+"' permission on '"+entity+"'"))
			return
		}

		c.Next()
	}
}

func loadRole(c *gin.Context) (*model.Role, bool) {
	roleID := c.GetString("roleID")
	if roleID == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Role not found in token"))
		return nil, false
	}

	role, err := getRoleCached(roleID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error("Failed to verify permissions"))
		return nil, false
	}
	return role, true
}

// getRoleCached returns the cached or DB-fetched role for an id
func getRoleCached(roleID string) (*model.Role, error) {
	if entry, ok := roleCache.Load(roleID); ok {
		cached := entry.(roleCacheEntry)
		if time.Now().Before(cached.expiresAt) {
			return cached.role, nil
		}
	}

	if permDB == nil {
		return nil, gorm.ErrInvalidDB
	}

	var role model.Role
	if err := permDB.First(&role, "id = ?", roleID).Error; err != nil {
		return nil, err
	}

	roleCache.Store(roleID, roleCacheEntry{
		role:      &role,
		expiresAt: time.Now().Add(roleCacheTTL),
	})

	return &role, nil
}

// GetRoleFromDB exposes the cached role lookup for handlers (e.g., /me endpoint)
func GetRoleFromDB(roleID string) (*model.Role, error) {
	return getRoleCached(roleID)
}

// ClearRoleCache removes a cached role (or all roles if id is empty).
// Called whenever a role's permissions are mutated.
func ClearRoleCache(roleID string) {
	if roleID == "" {
		roleCache.Range(func(key, _ interface{}) bool {
			roleCache.Delete(key)
			return true
		})
	} else {
		roleCache.Delete(roleID)
	}
}
