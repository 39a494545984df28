package account

import (
	"fmt"
	"time"

	"visaflow/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens live for a day; the hash stored on the account is
// re-checked on every authenticated call.
const sessionTokenTTL = 24 * time.Hour

// Authenticate verifies credentials and returns the identity and a session
// token. Failures are deliberately indistinct.
func (s *DefaultAccountService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	acct, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if acct == nil {
		return nil, utils.UnauthorizedError{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed sign-in attempt", zap.String("email", email))
		return nil, utils.UnauthorizedError{Message: "invalid credentials"}
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.Repo.UpdateWithDocument(acct.ID, bson.M{"sessionTokenHash": utils.HashToken(token)}); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	return &AuthResponse{
		ID:    acct.ID,
		Name:  acct.Name,
		Email: acct.Email,
		Role:  acct.Role,
		Token: token,
	}, nil
}

// SignOut clears the stored session token hash.
func (s *DefaultAccountService) SignOut(accountID string) error {
	if err := s.Repo.UpdateWithDocument(accountID, bson.M{"sessionTokenHash": ""}); err != nil {
		return fmt.Errorf("failed to sign out account %s: %w", accountID, err)
	}
	return nil
}

// VerifyPasswordComplexity enforces the minimum password rule.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return utils.BadRequestError{Message: "password must be at least 8 characters"}
	}
	return nil
}

// ResetPassword replaces an account's password. Existing sessions are
// revoked.
func (s *DefaultAccountService) ResetPassword(accountID, newPassword string) error {
	acct, err := s.Repo.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to look up account %s: %w", accountID, err)
	}
	if acct == nil {
		return utils.NotFoundError{Message: "account not found"}
	}

	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	update := bson.M{"passwordHash": string(hash), "sessionTokenHash": ""}
	if err := s.Repo.UpdateWithDocument(accountID, update); err != nil {
		return fmt.Errorf("failed to reset password for account %s: %w", accountID, err)
	}
	return nil
}
