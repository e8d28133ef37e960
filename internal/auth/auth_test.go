package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rally-backend/internal/database/models"
	apperrors "rally-backend/internal/errors"
	"rally-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryInterface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	return NewAuthService(users, validator.New(), "test-signing-key", time.Hour), users
}

func TestPasswordHashing(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("hash and verify roundtrip", func(t *testing.T) {
		hash, err := svc.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)
		assert.True(t, svc.CheckPassword(hash, "correct horse battery staple"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := svc.HashPassword("password-one")
		require.NoError(t, err)
		assert.False(t, svc.CheckPassword(hash, "password-two"))
	})
}

func TestJWTRoundtrip(t *testing.T) {
	svc, _ := newTestService(t)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "ross@example.com",
		IsAdmin:   true,
	}

	t.Run("valid token parses back to the same identity", func(t *testing.T) {
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "ross@example.com", claims.Email)
		assert.True(t, claims.IsAdmin)

		parsed, err := UserIDFromClaims(claims)
		require.NoError(t, err)
		assert.Equal(t, user.ID, parsed)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := NewAuthService(nil, validator.New(), "another-key", time.Hour)
		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewAuthService(nil, validator.New(), "test-signing-key", -time.Minute)
		token, err := expired.GenerateJWT(user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid credentials return the user", func(t *testing.T) {
		svc, users := newTestService(t)
		hash, err := svc.HashPassword("secret-password")
		require.NoError(t, err)

		stored := &models.User{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			Email:        "ross@example.com",
			PasswordHash: hash,
		}
		users.EXPECT().GetByEmail("ross@example.com").Return(stored, nil)

		user, err := svc.Authenticate("ross@example.com", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc, users := newTestService(t)
		hash, err := svc.HashPassword("secret-password")
		require.NoError(t, err)

		users.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
		_, errUnknown := svc.Authenticate("nobody@example.com", "whatever")

		stored := &models.User{Email: "ross@example.com", PasswordHash: hash}
		users.EXPECT().GetByEmail("ross@example.com").Return(stored, nil)
		_, errWrong := svc.Authenticate("ross@example.com", "wrong-password")

		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestRegister(t *testing.T) {
	t.Run("creates a user with a hashed password", func(t *testing.T) {
		svc, users := newTestService(t)
		users.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(u *models.User) error {
				assert.Equal(t, "ross@example.com", u.Email)
				assert.NotEqual(t, "secret-password", u.PasswordHash)
				assert.True(t, svc.CheckPassword(u.PasswordHash, "secret-password"))
				return nil
			})

		user, err := svc.Register("ross@example.com", "secret-password", "Ross", "Freedman")
		require.NoError(t, err)
		assert.Equal(t, "Ross", user.FirstName)
	})

	t.Run("rejects an invalid email without touching storage", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Register("not-an-email", "secret-password", "Ross", "Freedman")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		svc, users := newTestService(t)
		users.EXPECT().Create(gomock.Any()).Return(apperrors.ErrUserExists)

		_, err := svc.Register("ross@example.com", "secret-password", "Ross", "Freedman")
		assert.ErrorIs(t, err, apperrors.ErrUserExists)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(svc *AuthService) *gin.Engine {
		router := gin.New()
		middleware := NewAuthMiddleware(svc)
		router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
			id, ok := GetUserID(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
		})
		return router
	}

	t.Run("missing header", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and sets context", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "ross@example.com"}
		token, err := svc.GenerateJWT(user)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.ID.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(svc *AuthService) *gin.Engine {
		router := gin.New()
		middleware := NewAuthMiddleware(svc)
		router.GET("/admin", middleware.RequireAuth(), middleware.RequireAdmin(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return router
	}

	t.Run("non-admin token is forbidden", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		token, err := svc.GenerateJWT(&models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     "ross@example.com",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin token is allowed", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		token, err := svc.GenerateJWT(&models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     "admin@example.com",
			IsAdmin:   true,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
