package profile

import (
	"testing"
	"time"

	"visaflow/models"
	"visaflow/utils"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
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
	p := r.profiles[id]
	if v, ok := fields["name"].(string); ok {
		p.Name = v
	}
	if v, ok := fields["status"].(string); ok {
		p.Status = v
	}
	if v, ok := fields["interviewDate"].(time.Time); ok {
		p.InterviewDate = &v
	}
	return nil
}

func (r *fakeProfileRepo) Delete(id string) error {
	delete(r.profiles, id)
	return nil
}

type fakeFormRepo struct {
	forms map[string]*models.Form
}

func (r *fakeFormRepo) GetByProfileID(profileID string) (*models.Form, error) {
	return r.forms[profileID], nil
}

func (r *fakeFormRepo) Create(f *models.Form) error {
	r.forms[f.ProfileID] = f
	return nil
}

func (r *fakeFormRepo) UpdateFields(profileID string, fields bson.M) error {
	return nil
}

func (r *fakeFormRepo) DeleteByProfileID(profileID string) error {
	delete(r.forms, profileID)
	return nil
}

type ProfileServiceSuite struct {
	suite.Suite
	profiles *fakeProfileRepo
	forms    *fakeFormRepo
	svc      *DefaultProfileService
}

func (s *ProfileServiceSuite) SetupTest() {
	s.profiles = &fakeProfileRepo{profiles: map[string]*models.Profile{}}
	s.forms = &fakeFormRepo{forms: map[string]*models.Form{}}
	s.svc = &DefaultProfileService{Profiles: s.profiles, Forms: s.forms}
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceSuite))
}

func (s *ProfileServiceSuite) TestCreateProfileCreatesFormTogether() {
	p, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  models.CategoryAmericanVisa,
	})
	s.Require().NoError(err)

	s.Equal(models.StatusAwaiting, p.Status)
	s.Equal(0, p.CurrentStep)

	form, err := s.forms.GetByProfileID(p.ID)
	s.Require().NoError(err)
	s.Require().NotNil(form, "a profile never exists without its form")
	s.Equal(p.ID, form.ProfileID)
}

func (s *ProfileServiceSuite) TestCreateProfileRejectsUnknownCategory() {
	_, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  "green_card",
	})
	var badRequest utils.BadRequestError
	s.Require().ErrorAs(err, &badRequest)
}

func (s *ProfileServiceSuite) TestEmittedRequiresInterviewDate() {
	p, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  models.CategoryPassport,
	})
	s.Require().NoError(err)

	_, err = s.svc.UpdateProfile(ProfileUpdateRequest{
		ID:     p.ID,
		Status: models.StatusEmitted,
	})
	var badRequest utils.BadRequestError
	s.Require().ErrorAs(err, &badRequest)
	s.Equal("profile lacks a required date", badRequest.Message)
	s.Equal(models.StatusAwaiting, s.profiles.profiles[p.ID].Status)
}

func (s *ProfileServiceSuite) TestEmittedWithDateInSameRequest() {
	p, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  models.CategoryPassport,
	})
	s.Require().NoError(err)

	updated, err := s.svc.UpdateProfile(ProfileUpdateRequest{
		ID:            p.ID,
		Status:        models.StatusEmitted,
		InterviewDate: "2026-09-15",
	})
	s.Require().NoError(err)
	s.Equal(models.StatusEmitted, updated.Status)
	s.Require().NotNil(updated.InterviewDate)
}

func (s *ProfileServiceSuite) TestEmittedWithStoredDate() {
	p, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  models.CategoryPassport,
	})
	s.Require().NoError(err)

	_, err = s.svc.UpdateProfile(ProfileUpdateRequest{ID: p.ID, InterviewDate: "2026-09-15"})
	s.Require().NoError(err)

	updated, err := s.svc.UpdateProfile(ProfileUpdateRequest{ID: p.ID, Status: models.StatusEmitted})
	s.Require().NoError(err)
	s.Equal(models.StatusEmitted, updated.Status)
}

func (s *ProfileServiceSuite) TestDeleteProfileRemovesForm() {
	p, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  models.CategoryETA,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteProfile(p.ID))
	s.NotContains(s.profiles.profiles, p.ID)
	s.NotContains(s.forms.forms, p.ID)

	var notFound utils.NotFoundError
	s.Require().ErrorAs(s.svc.DeleteProfile("ghost"), &notFound)
}

func (s *ProfileServiceSuite) TestUpdateRejectsInvalidInputs() {
	p, err := s.svc.CreateProfile(NewProfile{
		AccountID: "a1",
		Name:      "Ana",
		Category:  models.CategoryETA,
	})
	s.Require().NoError(err)

	var badRequest utils.BadRequestError
	_, err = s.svc.UpdateProfile(ProfileUpdateRequest{ID: p.ID, Status: "archived"})
	s.Require().ErrorAs(err, &badRequest)

	_, err = s.svc.UpdateProfile(ProfileUpdateRequest{ID: p.ID, InterviewDate: "15/09/2026"})
	s.Require().ErrorAs(err, &badRequest)

	_, err = s.svc.UpdateProfile(ProfileUpdateRequest{ID: p.ID})
	s.Require().ErrorAs(err, &badRequest)

	var notFound utils.NotFoundError
	_, err = s.svc.UpdateProfile(ProfileUpdateRequest{ID: "ghost", Name: "X"})
	s.Require().ErrorAs(err, &notFound)
}
