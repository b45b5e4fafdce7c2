package utils

import (
	"fmt"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session keys. The stored user record is the server-side counterpart of the
// browser-local "user" entry of the old client: populated on login, cleared
// on logout, read-only everywhere else.
const (
	sessionKeyUser    = "user"
	sessionKeyToken   = "token"
	sessionKeyListing = "listing_sid"
)

// SetSessionUser stores the authenticated user and their API token
func SetSessionUser(c *gin.Context, user models.User, token string) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUser, user)
	session.Set(sessionKeyToken, token)
	return session.Save()
}

// GetSessionUser returns the stored user, if any
func GetSessionUser(c *gin.Context) (models.User, bool) {
	session := sessions.Default(c)
	val := session.Get(sessionKeyUser)
	if val == nil {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	if !ok || user.ID == 0 {
		return models.User{}, false
	}
	return user, true
}

// GetSessionToken returns the stored API token, if any
func GetSessionToken(c *gin.Context) string {
	session := sessions.Default(c)
	if val, ok := session.Get(sessionKeyToken).(string); ok {
		return val
	}
	return ""
}

// ClearSession drops everything stored for this customer
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to clear session: %v", err)
	}
	return nil
}

// ListingSessionID returns the identifier binding this browser session to its
// listing filter state, creating one on first use.
func ListingSessionID(c *gin.Context) (string, error) {
	session := sessions.Default(c)
	if sid, ok := session.Get(sessionKeyListing).(string); ok && sid != "" {
		return sid, nil
	}
	sid := uuid.New().String()
	session.Set(sessionKeyListing, sid)
	if err := session.Save(); err != nil {
		return "", fmt.Errorf("failed to persist listing session id: %v", err)
	}
	return sid, nil
}
