package handlers

import (
	"net/http"

	"visaflow/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginHandler verifies credentials and issues a session token.
func LoginHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler revokes the caller's session token.
func LogoutHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetString("accountID")
		if err := svc.SignOut(accountID); err != nil {
			respondError(c, err)
			return
		}
		getLogger(c).Info("account signed out", zap.String("accountID", accountID))
		c.JSON(http.StatusOK, gin.H{"message": "signed out"})
	}
}
