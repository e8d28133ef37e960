package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rally-backend/internal/database/models"
	"rally-backend/internal/mocks"
	"rally-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssociationHandlerTestSuite defines the test suite for AssociationHandler
type AssociationHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	mockAssocRepo  *mocks.MockAssociationRepositoryInterface
	mockLeagueRepo *mocks.MockLeagueRepositoryInterface
	handler        *AssociationHandler
	router         *gin.Engine
	userID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AssociationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockAssocRepo = mocks.NewMockAssociationRepositoryInterface(suite.ctrl)
	suite.mockLeagueRepo = mocks.NewMockLeagueRepositoryInterface(suite.ctrl)

	discoveryService := service.NewDiscoveryService(
		suite.mockUserRepo,
		suite.mockPlayerRepo,
		suite.mockAssocRepo,
		suite.mockLeagueRepo,
	)
	suite.handler = NewAssociationHandler(discoveryService, suite.mockAssocRepo)
	suite.userID = uuid.New()

	suite.router = gin.New()
	// stand-in for the auth middleware
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})
	suite.router.GET("/associations/me", suite.handler.GetMyAssociations)
	suite.router.POST("/associations/discover", suite.handler.DiscoverMine)
	suite.router.POST("/associations/discover-all", suite.handler.DiscoverAll)
}

// TearDownTest cleans up after each test
func (suite *AssociationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetMyAssociations tests listing the current user's associations
func (suite *AssociationHandlerTestSuite) TestGetMyAssociations() {
	associations := []models.UserPlayerAssociation{
		{UserID: suite.userID, TenniscoresPlayerID: "NSTF-001"},
		{UserID: suite.userID, TenniscoresPlayerID: "APTA-002"},
	}
	suite.mockAssocRepo.EXPECT().
		GetByUser(suite.userID).
		Return(associations, nil).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/associations/me", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), float64(2), body["count"])
}

// TestGetMyAssociationsRepoFailure tests the 500 path
func (suite *AssociationHandlerTestSuite) TestGetMyAssociationsRepoFailure() {
	suite.mockAssocRepo.EXPECT().
		GetByUser(suite.userID).
		Return(nil, assert.AnError).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/associations/me", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

// TestDiscoverMine tests a discovery run over HTTP
func (suite *AssociationHandlerTestSuite) TestDiscoverMine() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: suite.userID},
		Email:     "ross@example.com",
		FirstName: "Ross",
		LastName:  "Freedman",
	}

	suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(user, nil).Times(1)
	suite.mockAssocRepo.EXPECT().GetPlayerIDsByUser(suite.userID).Return([]string{}, nil).Times(1)
	suite.mockPlayerRepo.EXPECT().
		FindActiveByName("ross", "freedman").
		Return([]models.Player{}, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		FindActiveByEmail("ross@example.com").
		Return([]models.Player{}, nil).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/associations/discover", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var result service.DiscoveryResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(suite.T(), 0, result.AssociationsCreated)
}

// TestDiscoverMineEmailOverride tests that a body email overrides the stored one
func (suite *AssociationHandlerTestSuite) TestDiscoverMineEmailOverride() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: suite.userID},
		Email:     "stored@example.com",
		FirstName: "Ross",
		LastName:  "Freedman",
	}

	suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(user, nil).Times(1)
	suite.mockAssocRepo.EXPECT().GetPlayerIDsByUser(suite.userID).Return([]string{}, nil).Times(1)
	suite.mockPlayerRepo.EXPECT().
		FindActiveByName("ross", "freedman").
		Return([]models.Player{}, nil).
		Times(1)
	suite.mockPlayerRepo.EXPECT().
		FindActiveByEmail("override@example.com").
		Return([]models.Player{}, nil).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/associations/discover",
		strings.NewReader(`{"email":"override@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDiscoverMineUserNotFound tests the 404 path
func (suite *AssociationHandlerTestSuite) TestDiscoverMineUserNotFound() {
	suite.mockUserRepo.EXPECT().
		GetByID(suite.userID).
		Return(nil, assert.AnError).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/associations/discover", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDiscoverMineLookupUnavailable tests the 503 path when the directory
// cannot be queried
func (suite *AssociationHandlerTestSuite) TestDiscoverMineLookupUnavailable() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: suite.userID},
		Email:     "ross@example.com",
		FirstName: "Ross",
		LastName:  "Freedman",
	}

	suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(user, nil).Times(1)
	suite.mockAssocRepo.EXPECT().GetPlayerIDsByUser(suite.userID).Return([]string{}, nil).Times(1)
	suite.mockPlayerRepo.EXPECT().
		FindActiveByName("ross", "freedman").
		Return(nil, assert.AnError).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/associations/discover", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

// TestDiscoverAll tests a batch run over HTTP
func (suite *AssociationHandlerTestSuite) TestDiscoverAll() {
	suite.mockUserRepo.EXPECT().
		FindDiscoveryTargets(5).
		Return([]models.User{}, nil).
		Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/associations/discover-all?limit=5", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var batch service.BatchResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &batch))
	assert.Equal(suite.T(), 0, batch.UsersProcessed)
}

// TestDiscoverAllInvalidLimit tests limit validation
func (suite *AssociationHandlerTestSuite) TestDiscoverAllInvalidLimit() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/associations/discover-all?limit=zero", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestAssociationHandlerTestSuite runs the test suite
func TestAssociationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationHandlerTestSuite))
}
