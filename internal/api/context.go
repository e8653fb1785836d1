package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the identity the auth middleware stored on the
// context. When it is missing the request never passed the middleware, so
// the handler bails out with a 401.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return 0, false
	}
	userID, ok := v.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return 0, false
	}
	return userID, true
}
