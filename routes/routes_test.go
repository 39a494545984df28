package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"visaflow/handlers"
	"visaflow/models"
	"visaflow/services/annotation"
	"visaflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeAccountRepo struct {
	account *models.Account
}

func (r *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	if r.account != nil && r.account.ID == id {
		return r.account, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*models.Account, error)   { return nil, nil }
func (r *fakeAccountRepo) GetAllByRole(role string) ([]models.Account, error) { return nil, nil }
func (r *fakeAccountRepo) Create(account *models.Account) error               { return nil }
func (r *fakeAccountRepo) UpdateWithDocument(id string, fields bson.M) error  { return nil }
func (r *fakeAccountRepo) Delete(id string) error                             { return nil }
func (r *fakeAccountRepo) GroupExists(group string) (bool, error)             { return false, nil }

// capturingAnnotationService records the IDs each operation was called
// with, so tests can pin the route-parameter wiring.
type capturingAnnotationService struct {
	profileID string
	accountID string
	created   bool
}

func (s *capturingAnnotationService) Create(input annotation.NewAnnotation) (*models.Annotation, error) {
	s.created = true
	return &models.Annotation{ID: "n1", AccountID: input.AccountID, Text: input.Text}, nil
}

func (s *capturingAnnotationService) Update(id, text string) (*models.Annotation, error) {
	return &models.Annotation{ID: id, Text: text}, nil
}

func (s *capturingAnnotationService) Delete(id string) error { return nil }

func (s *capturingAnnotationService) GetByProfile(profileID string) ([]models.Annotation, error) {
	s.profileID = profileID
	return []models.Annotation{}, nil
}

func (s *capturingAnnotationService) GetByAccount(accountID string) ([]models.Annotation, error) {
	s.accountID = accountID
	return []models.Annotation{}, nil
}

func signedInAccount(t *testing.T, role string) (*models.Account, string) {
	t.Helper()
	token, err := utils.GenerateToken("acc-1", "ana@example.com", time.Hour)
	require.NoError(t, err)
	return &models.Account{
		ID:               "acc-1",
		Email:            "ana@example.com",
		Role:             role,
		SessionTokenHash: utils.HashToken(token),
	}, token
}

func newStaffRouter(repo *fakeAccountRepo, svc annotation.AnnotationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	nop := func(c *gin.Context) { c.Status(http.StatusOK) }
	hb := &handlers.HandlerBundle{
		AccountRepo: repo,

		CreateClientHandler:  nop,
		GetClientsHandler:    nop,
		GetAccountHandler:    nop,
		UpdateAccountHandler: nop,
		ResetPasswordHandler: nop,

		CreateCollaboratorHandler: nop,
		GetCollaboratorsHandler:   nop,
		DeleteCollaboratorHandler: nop,

		CreateProfileHandler:      nop,
		GetProfileHandler:         nop,
		GetAccountProfilesHandler: nop,
		UpdateProfileHandler:      nop,
		DeleteProfileHandler:      nop,

		CreateAnnotationHandler:      handlers.CreateAnnotationHandler(svc),
		UpdateAnnotationHandler:      handlers.UpdateAnnotationHandler(svc),
		DeleteAnnotationHandler:      handlers.DeleteAnnotationHandler(svc),
		GetProfileAnnotationsHandler: handlers.GetProfileAnnotationsHandler(svc),
		GetAccountAnnotationsHandler: handlers.GetAccountAnnotationsHandler(svc),

		GetNotificationsHandler:       nop,
		MarkNotificationViewedHandler: nop,

		GetBannersHandler:   nop,
		CreateBannerHandler: nop,
		UpdateBannerHandler: nop,
		DeleteBannerHandler: nop,
	}

	r := gin.New()
	RegisterStaffRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	return r
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	return w
}

func TestAnnotationListingRoutesPassThePathID(t *testing.T) {
	acct, token := signedInAccount(t, models.RoleCollaborator)
	svc := &capturingAnnotationService{}
	router := newStaffRouter(&fakeAccountRepo{account: acct}, svc)

	w := do(router, http.MethodGet, "/api/clients/acct-1/annotations", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acct-1", svc.accountID)

	w = do(router, http.MethodGet, "/api/profiles/prof-1/annotations", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "prof-1", svc.profileID)
}

func TestAnnotationWritesAreAdminOnly(t *testing.T) {
	body := `{"accountId":"acct-1","text":"call before noon"}`

	collab, collabToken := signedInAccount(t, models.RoleCollaborator)
	svc := &capturingAnnotationService{}
	router := newStaffRouter(&fakeAccountRepo{account: collab}, svc)

	w := do(router, http.MethodPost, "/api/annotations", collabToken, body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, svc.created, "the gate must reject before the service runs")

	admin, adminToken := signedInAccount(t, models.RoleAdmin)
	router = newStaffRouter(&fakeAccountRepo{account: admin}, svc)

	w = do(router, http.MethodPost, "/api/annotations", adminToken, body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.created)
}
