package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ProfileHeader = "X-Profile-ID"
	ProfileCookie = "profile_id"

	profileContextKey = "profileID"
	profileCookieAge  = 365 * 24 * 60 * 60
	maxProfileIDLen   = 64
)

// ProfileMiddleware resolves the caller's profile from the X-Profile-ID
// header or the profile_id cookie, minting a new one when neither is usable.
// The resolved id is echoed back in the header and cookie.
func ProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := strings.TrimSpace(c.GetHeader(ProfileHeader))
		if profileID != "" && !validProfileID(profileID) {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile id"})
			return
		}

		if profileID == "" {
			if cookie, err := c.Cookie(ProfileCookie); err == nil && validProfileID(cookie) {
				profileID = cookie
			}
		}
		if profileID == "" {
			profileID = uuid.NewString()
		}

		c.Set(profileContextKey, profileID)
		c.Header(ProfileHeader, profileID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(ProfileCookie, profileID, profileCookieAge, "/", "", false, true)
		c.Next()
	}
}

func validProfileID(id string) bool {
	if id == "" || len(id) > maxProfileIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// profileIDFrom returns the id set by ProfileMiddleware
func profileIDFrom(c *gin.Context) string {
	return c.GetString(profileContextKey)
}
