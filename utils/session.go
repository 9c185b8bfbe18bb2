package utils

import (
	"fmt"

	"github.com/Govind-619/Storefront/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys
const (
	sessionTokenKey     = "token"
	sessionRoleKey      = "role"
	sessionDraftKeyBase = "draft:"
)

// AuthSession is the visitor's login state: the remote service's access token and role
type AuthSession struct {
	Token string
	Role  string
}

// IsAdmin reports whether the session carries the admin role
func (a AuthSession) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// SetAuthSession stores the token and role in the visitor's session
func SetAuthSession(c *gin.Context, auth AuthSession) error {
	session := sessions.Default(c)
	session.Set(sessionTokenKey, auth.Token)
	session.Set(sessionRoleKey, auth.Role)
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession reads the token and role; ok is false when no token is stored
func GetAuthSession(c *gin.Context) (AuthSession, bool) {
	session := sessions.Default(c)
	token, _ := session.Get(sessionTokenKey).(string)
	role, _ := session.Get(sessionRoleKey).(string)
	if token == "" {
		return AuthSession{}, false
	}
	return AuthSession{Token: token, Role: role}, true
}

// ClearAuthSession forgets the token and role
func ClearAuthSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionTokenKey)
	session.Delete(sessionRoleKey)
	return session.Save()
}

// GetDraftID returns the draft id the visitor holds for productID
func GetDraftID(c *gin.Context, productID string) string {
	id, _ := sessions.Default(c).Get(sessionDraftKeyBase + productID).(string)
	return id
}

// SetDraftID remembers the visitor's draft for productID
func SetDraftID(c *gin.Context, productID, draftID string) error {
	session := sessions.Default(c)
	session.Set(sessionDraftKeyBase+productID, draftID)
	return session.Save()
}

// ClearDraftID drops the visitor's draft reference for productID
func ClearDraftID(c *gin.Context, productID string) error {
	session := sessions.Default(c)
	session.Delete(sessionDraftKeyBase + productID)
	return session.Save()
}
