package wizard

import (
	"fmt"

	formRepo "visaflow/database/repository/form"
	profileRepo "visaflow/database/repository/profile"
	"visaflow/models"
	"visaflow/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubmitResult is returned by SubmitStep. IsEditing is echoed back so the
// caller can decide where to navigate (summary page vs. next step).
type SubmitResult struct {
	Message     string `json:"message"`
	IsEditing   bool   `json:"isEditing"`
	CurrentStep int    `json:"currentStep"`
	Status      string `json:"status"`
}

// SaveResult is returned by SaveStep. RedirectStep echoes the requested
// target step; the client performs the navigation.
type SaveResult struct {
	Message      string `json:"message"`
	RedirectStep int    `json:"redirectStep,omitempty"`
}

// WizardView bundles a profile with its form for the summary view.
type WizardView struct {
	Profile *models.Profile `json:"profile"`
	Form    *models.Form    `json:"form"`
}

// StatusNotifier is told about profile status transitions.
type StatusNotifier interface {
	ProfileStatusChanged(profile *models.Profile, newStatus string)
}

// WizardService defines the step submit/save operations.
type WizardService interface {
	// SubmitStep validates the full step, persists it, and unless the
	// client is revisiting from the summary view (isEditing) advances the
	// profile's step pointer, marking the profile filled on the terminal step.
	SubmitStep(profileID, slug string, isEditing bool, fields map[string]any) (*SubmitResult, error)
	// SaveStep persists whatever has been entered so far without full
	// validation, used by save-as-draft and navigate-away flows.
	SaveStep(profileID, slug string, redirectStep int, fields map[string]any) (*SaveResult, error)
	// GetWizard returns the profile and its form for the summary view.
	GetWizard(profileID string) (*WizardView, error)
}

// DefaultWizardService is the production implementation.
type DefaultWizardService struct {
	Profiles profileRepo.ProfileRepository
	Forms    formRepo.FormRepository
	Notifier StatusNotifier
}

// resolve loads the profile and its form, surfacing the two not-found
// cases distinctly. A profile without a form is a data-integrity failure,
// not a user error, so it is logged at error level.
func (s *DefaultWizardService) resolve(profileID string) (*models.Profile, *models.Form, error) {
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve profile %s: %w", profileID, err)
	}
	if profile == nil {
		return nil, nil, utils.NotFoundError{Message: "profile not found"}
	}

	form, err := s.Forms.GetByProfileID(profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve form for profile %s: %w", profileID, err)
	}
	if form == nil {
		utils.GetLogger().Error("profile has no linked form", zap.String("profileID", profileID))
		return nil, nil, utils.NotFoundError{Message: "form not found"}
	}
	return profile, form, nil
}

// SubmitStep implements WizardService.
func (s *DefaultWizardService) SubmitStep(profileID, slug string, isEditing bool, fields map[string]any) (*SubmitResult, error) {
	logger := utils.GetLogger()

	step, ok := StepBySlug(slug)
	if !ok {
		return nil, utils.BadRequestError{Message: fmt.Sprintf("unknown wizard step %q", slug)}
	}

	profile, _, err := s.resolve(profileID)
	if err != nil {
		return nil, err
	}

	if errs := ValidateStep(step, fields); len(errs) > 0 {
		return nil, utils.ValidationError{Fields: errs}
	}

	update, err := BuildSubmitUpdate(step, fields)
	if err != nil {
		return nil, err
	}

	status := profile.Status
	currentStep := profile.CurrentStep
	if !isEditing {
		// First-pass linear flow: the step pointer advances before the
		// form fields are written. Revisits from the summary view leave
		// the pointer alone.
		currentStep = step.Ordinal
		profileUpdate := bson.M{"currentStep": step.Ordinal}
		switch {
		case step.Terminal():
			status = models.StatusFilled
		case profile.Status == models.StatusAwaiting:
			status = models.StatusFilling
		}
		if status != profile.Status {
			profileUpdate["status"] = status
		}
		if err := s.Profiles.UpdateWithDocument(profileID, profileUpdate); err != nil {
			return nil, fmt.Errorf("failed to advance profile %s: %w", profileID, err)
		}
		if status != profile.Status && s.Notifier != nil {
			s.Notifier.ProfileStatusChanged(profile, status)
		}
	}

	if err := s.Forms.UpdateFields(profileID, update); err != nil {
		return nil, fmt.Errorf("failed to persist step %s for profile %s: %w", step.Name, profileID, err)
	}

	logger.Debug("step submitted",
		zap.String("profileID", profileID),
		zap.String("step", step.Name),
		zap.Bool("isEditing", isEditing))

	return &SubmitResult{
		Message:     fmt.Sprintf("%s submitted successfully", step.Name),
		IsEditing:   isEditing,
		CurrentStep: currentStep,
		Status:      status,
	}, nil
}

// SaveStep implements WizardService.
func (s *DefaultWizardService) SaveStep(profileID, slug string, redirectStep int, fields map[string]any) (*SaveResult, error) {
	step, ok := StepBySlug(slug)
	if !ok {
		return nil, utils.BadRequestError{Message: fmt.Sprintf("unknown wizard step %q", slug)}
	}

	if _, _, err := s.resolve(profileID); err != nil {
		return nil, err
	}

	update, err := BuildSaveUpdate(step, fields)
	if err != nil {
		return nil, err
	}

	if len(update) > 0 {
		if err := s.Forms.UpdateFields(profileID, update); err != nil {
			return nil, fmt.Errorf("failed to save step %s for profile %s: %w", step.Name, profileID, err)
		}
	}

	return &SaveResult{
		Message:      fmt.Sprintf("%s saved", step.Name),
		RedirectStep: redirectStep,
	}, nil
}

// GetWizard implements WizardService.
func (s *DefaultWizardService) GetWizard(profileID string) (*WizardView, error) {
	profile, form, err := s.resolve(profileID)
	if err != nil {
		return nil, err
	}
	return &WizardView{Profile: profile, Form: form}, nil
}
