//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"rally-backend/internal/database/models"
	"rally-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssociationRepositoryTestSuite tests the AssociationRepository against a real Postgres
type AssociationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssociationRepository

	user *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *AssociationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssociationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AssociationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssociationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.user).Error)
}

// TearDownTest runs after each test
func (suite *AssociationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndExists tests the basic create/exists roundtrip
func (suite *AssociationRepositoryTestSuite) TestCreateAndExists() {
	assoc := testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")
	suite.NoError(suite.repo.Create(assoc))

	exists, err := suite.repo.Exists(suite.user.ID, "NSTF-001")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(suite.user.ID, "NSTF-999")
	suite.NoError(err)
	suite.False(exists)
}

// TestDuplicateRejectedByUniqueIndex tests that the same user/player pair
// cannot be inserted twice. This constraint is what discovery relies on for
// idempotency under concurrent runs.
func (suite *AssociationRepositoryTestSuite) TestDuplicateRejectedByUniqueIndex() {
	first := testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")
	suite.NoError(suite.repo.Create(first))

	dup := testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")
	err := suite.repo.Create(dup)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestSamePlayerDifferentUsers tests that distinct users may link the same
// directory entry
func (suite *AssociationRepositoryTestSuite) TestSamePlayerDifferentUsers() {
	otherUser := testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(otherUser).Error)

	suite.NoError(suite.repo.Create(testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")))
	suite.NoError(suite.repo.Create(testutils.NewAssociationFactory().Create(otherUser.ID, "NSTF-001")))
}

// TestGetPlayerIDsByUser tests plucking linked identifiers
func (suite *AssociationRepositoryTestSuite) TestGetPlayerIDsByUser() {
	suite.NoError(suite.repo.Create(testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")))
	suite.NoError(suite.repo.Create(testutils.NewAssociationFactory().Create(suite.user.ID, "APTA-002")))

	ids, err := suite.repo.GetPlayerIDsByUser(suite.user.ID)

	suite.NoError(err)
	suite.ElementsMatch([]string{"NSTF-001", "APTA-002"}, ids)
}

// TestGetByUserOrdersByCreation tests that associations come back oldest first
func (suite *AssociationRepositoryTestSuite) TestGetByUserOrdersByCreation() {
	first := testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")
	suite.NoError(suite.repo.Create(first))
	second := testutils.NewAssociationFactory().Create(suite.user.ID, "APTA-002")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.NoError(suite.repo.Create(second))

	assocs, err := suite.repo.GetByUser(suite.user.ID)

	suite.NoError(err)
	suite.Len(assocs, 2)
	suite.Equal("NSTF-001", assocs[0].TenniscoresPlayerID)
	suite.Equal("APTA-002", assocs[1].TenniscoresPlayerID)
}

// TestCountByUser tests association counting
func (suite *AssociationRepositoryTestSuite) TestCountByUser() {
	count, err := suite.repo.CountByUser(suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	suite.NoError(suite.repo.Create(testutils.NewAssociationFactory().Create(suite.user.ID, "NSTF-001")))

	count, err = suite.repo.CountByUser(suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestAssociationRepositoryTestSuite runs the test suite
func TestAssociationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationRepositoryTestSuite))
}
