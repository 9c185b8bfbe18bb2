package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AuthContextKey holds the utils.AuthSession of an authenticated request
const AuthContextKey = "auth"

var errTokenExpired = errors.New("token expired")

// tokenClaims reads the claims of a token issued by the remote auth service.
// The signing key lives there, so only the expiry is checked here; the
// remote service verifies the signature on every proxied call.
func tokenClaims(tokenString string, now time.Time) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	if !claims.VerifyExpiresAt(now.Unix(), false) {
		return nil, errTokenExpired
	}
	return claims, nil
}

// AuthMiddleware accepts the token stored in the visitor's session or sent as
// a bearer header. Expired tokens are dropped from the session.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("AuthMiddleware called")

		auth, fromSession := utils.GetAuthSession(c)
		if !fromSession {
			authHeader := c.GetHeader("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || tokenString == authHeader {
				utils.LogError("Missing session token and Authorization header")
				utils.Unauthorized(c, utils.ErrUnauthorized)
				c.Abort()
				return
			}
			auth = utils.AuthSession{Token: tokenString}
		}

		claims, err := tokenClaims(auth.Token, time.Now())
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			if fromSession {
				if cerr := utils.ClearAuthSession(c); cerr != nil {
					utils.LogError("Failed to clear auth session: %v", cerr)
				}
			}
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}
		if auth.Role == "" {
			auth.Role, _ = claims["role"].(string)
		}

		c.Set(AuthContextKey, auth)
		utils.LogDebug("Request authenticated with role %q", auth.Role)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("AdminMiddleware called")

		auth, ok := CurrentAuth(c)
		if !ok {
			utils.LogError("Auth not found in context")
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}
		if !auth.IsAdmin() {
			utils.LogError("Non-admin role %q attempted admin access", auth.Role)
			utils.Forbidden(c, utils.ErrForbidden)
			c.Abort()
			return
		}

		utils.LogInfo("Admin access granted")
		c.Next()
	}
}

// CurrentAuth returns the auth set by AuthMiddleware
func CurrentAuth(c *gin.Context) (utils.AuthSession, bool) {
	v, exists := c.Get(AuthContextKey)
	if !exists {
		return utils.AuthSession{}, false
	}
	auth, ok := v.(utils.AuthSession)
	return auth, ok
}
