package middleware

import (
	"net/http"
	"strings"

	accountRepo "visaflow/database/repository/account"
	"visaflow/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired authenticates the request via the Bearer token. The token is
// validated, its hash compared against the one stored on the account, and
// the resolved identity placed in the request context. Any failure aborts
// with 401; no endpoint behind this middleware is reachable anonymously.
func AuthRequired(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, _, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		acct, err := accounts.GetByID(accountID)
		if err != nil || acct == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}

		// A signed-out or superseded session has a different stored hash.
		if acct.SessionTokenHash == "" || acct.SessionTokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
			return
		}

		c.Set("accountID", acct.ID)
		c.Set("accountEmail", acct.Email)
		c.Set("accountRole", acct.Role)
		c.Next()
	}
}
