package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"visaflow/models"
	"visaflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeAccountRepo struct {
	account *models.Account
	lookups int
}

func (r *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	r.lookups++
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

func newAuthRouter(repo *fakeAccountRepo, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthRequired(repo)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountID": c.GetString("accountID")})
	})
	r.GET("/protected", chain...)
	return r
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

func TestAuthRequiredRejectsMissingHeaderBeforeAnyLookup(t *testing.T) {
	repo := &fakeAccountRepo{}
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, repo.lookups, "no persistence access before the token is verified")
}

func TestAuthRequiredRejectsGarbageToken(t *testing.T) {
	repo := &fakeAccountRepo{}
	router := newAuthRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, repo.lookups)
}

func TestAuthRequiredRejectsRevokedSession(t *testing.T) {
	acct, token := signedInAccount(t, models.RoleClient)
	acct.SessionTokenHash = ""
	router := newAuthRouter(&fakeAccountRepo{account: acct})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAdmitsValidSession(t *testing.T) {
	acct, token := signedInAccount(t, models.RoleClient)
	router := newAuthRouter(&fakeAccountRepo{account: acct})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acc-1")
}

func TestRoleGates(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		gate     gin.HandlerFunc
		expected int
	}{
		{"client blocked from staff routes", models.RoleClient, CollaboratorRequired(), http.StatusUnauthorized},
		{"collaborator admitted to staff routes", models.RoleCollaborator, CollaboratorRequired(), http.StatusOK},
		{"admin admitted to staff routes", models.RoleAdmin, CollaboratorRequired(), http.StatusOK},
		{"collaborator blocked from admin routes", models.RoleCollaborator, AdminRequired(), http.StatusUnauthorized},
		{"admin admitted to admin routes", models.RoleAdmin, AdminRequired(), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acct, token := signedInAccount(t, tc.role)
			router := newAuthRouter(&fakeAccountRepo{account: acct}, tc.gate)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestProfileAccessRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	owned := &models.Profile{ID: "p1", AccountID: "acc-1"}
	foreign := &models.Profile{ID: "p2", AccountID: "someone-else"}
	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"p1": owned,
		"p2": foreign,
	}}

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.GET("/wizard/:profileId",
			func(c *gin.Context) {
				c.Set("accountID", "acc-1")
				c.Set("accountRole", role)
			},
			ProfileAccessRequired(profiles),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	get := func(r *gin.Engine, path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	client := newRouter(models.RoleClient)
	assert.Equal(t, http.StatusOK, get(client, "/wizard/p1"))
	assert.Equal(t, http.StatusNotFound, get(client, "/wizard/p2"), "foreign profiles read as absent")
	assert.Equal(t, http.StatusNotFound, get(client, "/wizard/ghost"))

	staff := newRouter(models.RoleCollaborator)
	assert.Equal(t, http.StatusOK, get(staff, "/wizard/p2"))
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (r *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) GetByAccountID(accountID string) ([]models.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error              { return nil }
func (r *fakeProfileRepo) UpdateWithDocument(id string, fields bson.M) error { return nil }
func (r *fakeProfileRepo) Delete(id string) error                            { return nil }
