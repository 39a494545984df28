package wizard

import (
	"errors"
	"testing"

	"visaflow/models"
	"visaflow/utils"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	updates  []bson.M
}

func (r *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) GetByAccountID(accountID string) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Create(p *models.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) UpdateWithDocument(id string, fields bson.M) error {
	p, ok := r.profiles[id]
	if !ok {
		return errors.New("profile missing")
	}
	r.updates = append(r.updates, fields)
	if v, ok := fields["currentStep"].(int); ok {
		p.CurrentStep = v
	}
	if v, ok := fields["status"].(string); ok {
		p.Status = v
	}
	return nil
}

func (r *fakeProfileRepo) Delete(id string) error {
	delete(r.profiles, id)
	return nil
}

type fakeFormRepo struct {
	forms   map[string]*models.Form
	updates []bson.M
}

func (r *fakeFormRepo) GetByProfileID(profileID string) (*models.Form, error) {
	return r.forms[profileID], nil
}

func (r *fakeFormRepo) Create(f *models.Form) error {
	r.forms[f.ProfileID] = f
	return nil
}

func (r *fakeFormRepo) UpdateFields(profileID string, fields bson.M) error {
	if _, ok := r.forms[profileID]; !ok {
		return errors.New("form missing")
	}
	r.updates = append(r.updates, fields)
	return nil
}

func (r *fakeFormRepo) DeleteByProfileID(profileID string) error {
	delete(r.forms, profileID)
	return nil
}

type fakeNotifier struct {
	statuses []string
}

func (n *fakeNotifier) ProfileStatusChanged(profile *models.Profile, newStatus string) {
	n.statuses = append(n.statuses, newStatus)
}

type WizardServiceSuite struct {
	suite.Suite
	profiles *fakeProfileRepo
	forms    *fakeFormRepo
	notifier *fakeNotifier
	svc      *DefaultWizardService
}

func (s *WizardServiceSuite) SetupTest() {
	s.profiles = &fakeProfileRepo{profiles: map[string]*models.Profile{}}
	s.forms = &fakeFormRepo{forms: map[string]*models.Form{}}
	s.notifier = &fakeNotifier{}
	s.svc = &DefaultWizardService{
		Profiles: s.profiles,
		Forms:    s.forms,
		Notifier: s.notifier,
	}
}

func TestWizardServiceSuite(t *testing.T) {
	suite.Run(t, new(WizardServiceSuite))
}

func (s *WizardServiceSuite) seedProfile(status string, currentStep int) *models.Profile {
	p := &models.Profile{
		ID:          "p1",
		AccountID:   "a1",
		Name:        "Ana",
		Category:    models.CategoryAmericanVisa,
		Status:      status,
		CurrentStep: currentStep,
	}
	s.profiles.profiles[p.ID] = p
	s.forms.forms[p.ID] = &models.Form{ID: "f1", ProfileID: p.ID}
	return p
}

func (s *WizardServiceSuite) securityAnswers(answer string) map[string]any {
	fields := map[string]any{}
	for _, q := range securityQuestions {
		fields[q] = answer
	}
	return fields
}

func (s *WizardServiceSuite) TestSubmitUnknownStep() {
	s.seedProfile(models.StatusAwaiting, 0)

	_, err := s.svc.SubmitStep("p1", "no-such-step", false, map[string]any{})
	var badRequest utils.BadRequestError
	s.Require().ErrorAs(err, &badRequest)
}

func (s *WizardServiceSuite) TestSubmitUnknownProfile() {
	_, err := s.svc.SubmitStep("ghost", "personal-data", false, map[string]any{})
	var notFound utils.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("profile not found", notFound.Message)
}

func (s *WizardServiceSuite) TestSubmitMissingFormIsDistinct() {
	p := s.seedProfile(models.StatusAwaiting, 0)
	delete(s.forms.forms, p.ID)

	_, err := s.svc.SubmitStep("p1", "personal-data", false, map[string]any{})
	var notFound utils.NotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("form not found", notFound.Message)
}

func (s *WizardServiceSuite) TestSubmitValidationFailureLeavesEverythingUntouched() {
	s.seedProfile(models.StatusAwaiting, 0)

	_, err := s.svc.SubmitStep("p1", "personal-data", false, map[string]any{
		"otherNamesConfirmation": "",
	})

	var validation utils.ValidationError
	s.Require().ErrorAs(err, &validation)
	s.Contains(validation.Fields, "otherNamesConfirmation")

	s.Empty(s.profiles.updates, "step pointer must not advance")
	s.Empty(s.forms.updates, "no field may be persisted")
	s.Equal(0, s.profiles.profiles["p1"].CurrentStep)
	s.Equal(models.StatusAwaiting, s.profiles.profiles["p1"].Status)
}

func (s *WizardServiceSuite) TestFirstSubmitStartsFilling() {
	s.seedProfile(models.StatusAwaiting, 0)

	result, err := s.svc.SubmitStep("p1", "personal-data", false, map[string]any{
		"firstName":                    "Ana",
		"otherNamesConfirmation":       "Não",
		"otherNationalityConfirmation": "Não",
	})
	s.Require().NoError(err)

	s.Equal(1, result.CurrentStep)
	s.Equal(models.StatusFilling, result.Status)
	s.Equal([]string{models.StatusFilling}, s.notifier.statuses)

	s.Require().Len(s.forms.updates, 1)
	s.Equal("Ana", s.forms.updates[0]["personalData.firstName"])
	s.Equal(false, s.forms.updates[0]["personalData.otherNamesConfirmation"])
}

func (s *WizardServiceSuite) TestEditingSubmitKeepsPointerAndStatus() {
	s.seedProfile(models.StatusFilled, 11)

	result, err := s.svc.SubmitStep("p1", "personal-data", true, map[string]any{
		"firstName":                    "Ana Maria",
		"otherNamesConfirmation":       "Não",
		"otherNationalityConfirmation": "Não",
	})
	s.Require().NoError(err)

	s.True(result.IsEditing)
	s.Equal(11, result.CurrentStep)
	s.Equal(models.StatusFilled, result.Status)
	s.Empty(s.profiles.updates)
	s.Empty(s.notifier.statuses)
	s.Len(s.forms.updates, 1)
}

func (s *WizardServiceSuite) TestTerminalSubmitMarksFilled() {
	s.seedProfile(models.StatusFilling, 10)

	result, err := s.svc.SubmitStep("p1", "security", false, s.securityAnswers("Não"))
	s.Require().NoError(err)

	s.Equal(11, result.CurrentStep)
	s.Equal(models.StatusFilled, result.Status)
	s.Equal([]string{models.StatusFilled}, s.notifier.statuses)

	s.Require().Len(s.forms.updates, 1)
	for _, q := range securityQuestions {
		s.Equal(false, s.forms.updates[0]["security."+q], q)
	}
}

func (s *WizardServiceSuite) TestSaveSkipsBlanksAndEchoesRedirect() {
	s.seedProfile(models.StatusFilling, 8)

	result, err := s.svc.SaveStep("p1", "work-education", 3, map[string]any{
		"occupation": "",
		"office":     "Engineer",
	})
	s.Require().NoError(err)
	s.Equal(3, result.RedirectStep)

	s.Require().Len(s.forms.updates, 1)
	s.NotContains(s.forms.updates[0], "workEducation.occupation")
	s.Equal("Engineer", s.forms.updates[0]["workEducation.office"])

	// Pointer and status never move on save.
	s.Empty(s.profiles.updates)
	s.Empty(s.notifier.statuses)
}

func (s *WizardServiceSuite) TestSaveTwiceWithSameInputPersistsTheSameState() {
	s.seedProfile(models.StatusFilling, 9)

	fields := map[string]any{
		"previousJobConfirmation": "Sim",
		"previousJobs": []any{
			map[string]any{
				"companyName":   "Acme",
				"office":        "Analyst",
				"admissionDate": "2019-02-01",
			},
		},
	}

	_, err := s.svc.SaveStep("p1", "work-education", 0, fields)
	s.Require().NoError(err)
	_, err = s.svc.SaveStep("p1", "work-education", 0, fields)
	s.Require().NoError(err)

	s.Require().Len(s.forms.updates, 2)
	s.Equal(s.forms.updates[0], s.forms.updates[1])

	// Lists replace wholesale, so a repeated save never appends entries.
	list, ok := s.forms.updates[1]["workEducation.previousJobs"].([]bson.M)
	s.Require().True(ok)
	s.Require().Len(list, 1)
	s.Equal("Acme", list[0]["companyName"])
}

func (s *WizardServiceSuite) TestSaveWithNothingToPersistSkipsWrite() {
	s.seedProfile(models.StatusFilling, 8)

	_, err := s.svc.SaveStep("p1", "work-education", 0, map[string]any{
		"occupation": "",
	})
	s.Require().NoError(err)
	s.Empty(s.forms.updates)
}

func (s *WizardServiceSuite) TestGetWizard() {
	s.seedProfile(models.StatusFilling, 4)

	view, err := s.svc.GetWizard("p1")
	s.Require().NoError(err)
	s.Equal("p1", view.Profile.ID)
	s.Equal("p1", view.Form.ProfileID)

	_, err = s.svc.GetWizard("ghost")
	var notFound utils.NotFoundError
	s.Require().ErrorAs(err, &notFound)
}
