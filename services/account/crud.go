package account

import (
	"fmt"

	"visaflow/models"
	"visaflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// create builds and persists an account with the given role.
func (s *DefaultAccountService) create(input NewAccount, role string) (*models.Account, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError{Message: fmt.Sprintf("email %s is already registered", input.Email)}
	}

	group := input.Group
	if input.NewGroup != "" {
		taken, err := s.Repo.GroupExists(input.NewGroup)
		if err != nil {
			return nil, fmt.Errorf("failed to check group uniqueness: %w", err)
		}
		if taken {
			return nil, utils.ConflictError{Message: fmt.Sprintf("group %s already exists", input.NewGroup)}
		}
		group = input.NewGroup
	}

	if err := VerifyPasswordComplexity(input.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &models.Account{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     string(hash),
		Role:             role,
		Cel:              input.Cel,
		Address:          input.Address,
		ScheduleAccount:  input.ScheduleAccount,
		SchedulePassword: input.SchedulePassword,
		Budget:           input.Budget,
		BudgetPaid:       input.BudgetPaid,
		Group:            group,
	}

	if err := s.Repo.Create(acct); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("account created", zap.String("accountID", acct.ID), zap.String("role", role))
	return acct, nil
}

// CreateClient creates a client account.
func (s *DefaultAccountService) CreateClient(input NewAccount) (*models.Account, error) {
	return s.create(input, models.RoleClient)
}

// CreateCollaborator creates a staff collaborator account.
func (s *DefaultAccountService) CreateCollaborator(input NewAccount) (*models.Account, error) {
	return s.create(input, models.RoleCollaborator)
}

// GetAccountByID retrieves an account by its unique ID.
func (s *DefaultAccountService) GetAccountByID(id string) (*models.Account, error) {
	acct, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", id, err)
	}
	if acct == nil {
		return nil, utils.NotFoundError{Message: "account not found"}
	}
	return acct, nil
}

// GetClients retrieves all client accounts.
func (s *DefaultAccountService) GetClients() ([]models.Account, error) {
	return s.Repo.GetAllByRole(models.RoleClient)
}

// GetCollaborators retrieves all collaborator accounts.
func (s *DefaultAccountService) GetCollaborators() ([]models.Account, error) {
	return s.Repo.GetAllByRole(models.RoleCollaborator)
}

// UpdateAccount applies a partial update; empty fields are left unchanged.
func (s *DefaultAccountService) UpdateAccount(req AccountUpdateRequest) (*models.Account, error) {
	if req.ID == "" {
		return nil, utils.BadRequestError{Message: "account ID is required for update"}
	}

	updateFields := bson.M{}
	if req.Name != "" {
		updateFields["name"] = req.Name
	}
	if req.Email != "" {
		existing, err := s.Repo.GetByEmail(req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil && existing.ID != req.ID {
			return nil, utils.ConflictError{Message: fmt.Sprintf("email %s is already registered", req.Email)}
		}
		updateFields["email"] = req.Email
	}
	if req.Cel != "" {
		updateFields["cel"] = req.Cel
	}
	if req.Address != "" {
		updateFields["address"] = req.Address
	}
	if req.ScheduleAccount != "" {
		updateFields["scheduleAccount"] = req.ScheduleAccount
	}
	if req.SchedulePassword != "" {
		updateFields["schedulePassword"] = req.SchedulePassword
	}
	if req.Budget != nil {
		updateFields["budget"] = *req.Budget
	}
	if req.BudgetPaid != nil {
		updateFields["budgetPaid"] = *req.BudgetPaid
	}
	if req.Group != "" {
		updateFields["group"] = req.Group
	}

	if len(updateFields) == 0 {
		return nil, utils.BadRequestError{Message: "no updatable fields provided"}
	}

	if err := s.Repo.UpdateWithDocument(req.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return s.GetAccountByID(req.ID)
}

// DeleteCollaborator removes a collaborator account.
func (s *DefaultAccountService) DeleteCollaborator(id string) error {
	acct, err := s.GetAccountByID(id)
	if err != nil {
		return err
	}
	if acct.Role != models.RoleCollaborator {
		return utils.BadRequestError{Message: "account is not a collaborator"}
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete collaborator %s: %w", id, err)
	}
	return nil
}
