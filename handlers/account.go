package handlers

import (
	"net/http"

	"visaflow/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateClientHandler registers a client account.
func CreateClientHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.NewAccount
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		acct, err := svc.CreateClient(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, acct)
	}
}

// GetClientsHandler lists all client accounts.
func GetClientsHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accts, err := svc.GetClients()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, accts)
	}
}

// GetAccountHandler fetches one account by ID.
func GetAccountHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, err := svc.GetAccountByID(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, acct)
	}
}

// UpdateAccountHandler applies a partial account update.
func UpdateAccountHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.AccountUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.ID = c.Param("id")

		acct, err := svc.UpdateAccount(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, acct)
	}
}

// ResetPasswordHandler replaces an account's password and revokes sessions.
func ResetPasswordHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.ResetPassword(c.Param("id"), req.Password); err != nil {
			respondError(c, err)
			return
		}
		getLogger(c).Info("password reset", zap.String("accountID", c.Param("id")))
		c.JSON(http.StatusOK, gin.H{"message": "password reset"})
	}
}

// CreateCollaboratorHandler registers a staff collaborator account.
func CreateCollaboratorHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.NewAccount
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		acct, err := svc.CreateCollaborator(req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, acct)
	}
}

// GetCollaboratorsHandler lists all collaborator accounts.
func GetCollaboratorsHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accts, err := svc.GetCollaborators()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, accts)
	}
}

// DeleteCollaboratorHandler removes a collaborator account.
func DeleteCollaboratorHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCollaborator(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "collaborator deleted"})
	}
}
